// Package dict filters a word corpus down to the words spellable with
// amino-acid one-letter codes.
package dict

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"

	"github.com/divergentti/dna2polypeptidetool/bio"
)

// Dictionary is the set of corpus words whose letters are all
// amino-acid one-letter codes. It is built once per corpus and then
// only read, so it may be shared between goroutines.
type Dictionary struct {
	// Fingerprint of the corpus the dictionary was built from.
	Fingerprint string
	// MaxWordLen used during filtering.
	MaxWordLen int

	words map[string]struct{}
}

// New creates a dictionary from an already filtered word list, e.g.
// one loaded from the cache.
func New(fingerprint string, maxLen int, words []string) *Dictionary {
	d := &Dictionary{
		Fingerprint: fingerprint,
		MaxWordLen:  maxLen,
		words:       make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		d.words[w] = struct{}{}
	}
	return d
}

// Contains tests membership of the uppercased word.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[strings.ToUpper(word)]
	return ok
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns the words as a sorted slice.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.words))
	for w := range d.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

func (d *Dictionary) String() string {
	return fmt.Sprintf("<Dictionary: %d words, maxlen=%d, corpus=%s>",
		len(d.words), d.MaxWordLen, d.Fingerprint)
}

// Encodable tests if every letter of the word is an amino-acid code.
// Unlike Contains it does not require corpus membership.
func Encodable(word string) bool {
	word = strings.ToUpper(word)
	if len(word) == 0 {
		return false
	}
	for i := 0; i < len(word); i++ {
		if !bio.IsAminoAcid(word[i]) {
			return false
		}
	}
	return true
}

// Build filters a corpus into a Dictionary. Words are uppercased;
// empty words, words longer than maxLen and words containing a
// non-amino-acid letter are silently excluded. The result depends only
// on the corpus content, not on its order.
func Build(corpus []string, maxLen int) *Dictionary {
	d := &Dictionary{
		Fingerprint: Fingerprint(corpus),
		MaxWordLen:  maxLen,
		words:       make(map[string]struct{}),
	}
	for _, w := range corpus {
		w = strings.ToUpper(w)
		if len(w) == 0 || len(w) > maxLen {
			continue
		}
		if Encodable(w) {
			d.words[w] = struct{}{}
		}
	}
	return d
}

// BuildCached returns cached unchanged when it was built from the same
// corpus with the same maxLen, skipping the corpus rescan. Otherwise
// the corpus is filtered anew.
func BuildCached(corpus []string, maxLen int, cached *Dictionary) *Dictionary {
	if cached != nil && cached.MaxWordLen == maxLen &&
		cached.Fingerprint == Fingerprint(corpus) {
		return cached
	}
	return Build(corpus, maxLen)
}

// Fingerprint computes a version tag for a corpus: a sha256 over the
// entry count and the entries themselves.
func Fingerprint(corpus []string) string {
	h := sha256.New()
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], uint64(len(corpus)))
	h.Write(n[:])
	for _, w := range corpus {
		h.Write([]byte(w))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
