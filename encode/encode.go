// Package encode converts short phrases into nucleotide sequences
// using the canonical codon of each letter.
package encode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/divergentti/dna2polypeptidetool/bio"
	"github.com/divergentti/dna2polypeptidetool/dict"
)

// MaxPhraseWords is the maximum number of words in a phrase.
const MaxPhraseWords = 3

var (
	// ErrEmptyInput is returned for a phrase with no words.
	ErrEmptyInput = errors.New("empty phrase")
	// ErrTooManyWords is returned for a phrase with more than
	// MaxPhraseWords words.
	ErrTooManyWords = fmt.Errorf("a phrase may have at most %d words", MaxPhraseWords)
)

// WordNotEncodableError names a phrase word missing from the
// dictionary.
type WordNotEncodableError string

func (e WordNotEncodableError) Error() string {
	return fmt.Sprintf("word %q is not in the dictionary of encodable words", string(e))
}

// Word encodes a single word, letter by letter, as the concatenation
// of canonical codons. The word does not have to be a dictionary
// member, only spellable in amino-acid codes.
func Word(word string) (string, error) {
	word = strings.ToUpper(word)
	var b strings.Builder
	b.Grow(3 * len(word))
	for i := 0; i < len(word); i++ {
		c, err := bio.CanonicalCodon(word[i])
		if err != nil {
			return "", err
		}
		b.WriteString(c)
	}
	return b.String(), nil
}

// Phrase encodes 1-3 dictionary words into a single nucleotide
// sequence. Words are concatenated without a separator, so word
// boundaries are not recoverable from the sequence alone. Every word
// must be a dictionary member; otherwise WordNotEncodableError names
// the first one that is not, and no partial sequence is returned.
func Phrase(d *dict.Dictionary, words []string) (string, error) {
	if len(words) == 0 {
		return "", ErrEmptyInput
	}
	if len(words) > MaxPhraseWords {
		return "", ErrTooManyWords
	}
	var b strings.Builder
	for _, w := range words {
		if !d.Contains(w) {
			return "", WordNotEncodableError(strings.ToUpper(w))
		}
		enc, err := Word(w)
		if err != nil {
			return "", err
		}
		b.WriteString(enc)
	}
	return b.String(), nil
}
