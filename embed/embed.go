// Package embed rewrites codons of an existing nucleotide sequence so
// that chosen words appear in its reading frames.
package embed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/divergentti/dna2polypeptidetool/bio"
	"github.com/divergentti/dna2polypeptidetool/codon"
	"github.com/divergentti/dna2polypeptidetool/dict"
	"github.com/divergentti/dna2polypeptidetool/encode"
	"github.com/divergentti/dna2polypeptidetool/scan"
)

// DefaultMaxCandidates caps the breadth-first search over candidate
// sequences.
const DefaultMaxCandidates = 10000

// ErrEmptyInput is returned for an empty sequence.
var ErrEmptyInput = errors.New("empty sequence")

// Placement records where a word was written: the frame index and the
// start offset in that frame's translation.
type Placement struct {
	Word  string
	Frame int
	Pos   int
}

// Result is one modified sequence containing all requested words.
type Result struct {
	Sequence   string
	Placements []Placement
}

type candidate struct {
	seq        string
	placements []Placement
}

// writeWord overwrites the codons of one frame position with the
// word's canonical codons and returns the modified sequence. For
// reverse frames the rewrite happens on the reverse complement and is
// flipped back, so the word reads on the opposite strand.
func writeWord(seq, word string, f codon.Frame, pos int) string {
	working := seq
	if f.Strand == codon.Reverse {
		working = bio.ReverseComplement(seq)
	}
	ns := []byte(working)
	for j := 0; j < len(word); j++ {
		c, err := bio.CanonicalCodon(word[j])
		if err != nil {
			// callers validate words up front
			return seq
		}
		copy(ns[f.Offset+(pos+j)*3:], c)
	}
	out := string(ns)
	if f.Strand == codon.Reverse {
		out = bio.ReverseComplement(out)
	}
	return out
}

// placeOne returns every candidate obtained by writing the word at
// some position of some reading frame of the sequence.
func placeOne(c candidate, word string) []candidate {
	var out []candidate
	for _, f := range codon.Frames {
		nCodons := (len(c.seq) - f.Offset) / 3
		for pos := 0; pos+len(word) <= nCodons; pos++ {
			placements := make([]Placement, len(c.placements), len(c.placements)+1)
			copy(placements, c.placements)
			placements = append(placements, Placement{Word: word, Frame: f.Index(), Pos: pos})
			out = append(out, candidate{
				seq:        writeWord(c.seq, word, f, pos),
				placements: placements,
			})
		}
	}
	return out
}

// Words embeds 1-3 words into the sequence by rewriting codons.
// Candidates are generated breadth-first, one word at a time, with the
// queue capped at maxCandidates; each survivor is verified by scanning
// so only sequences actually containing all words are returned. Each
// word must be spellable in amino-acid codes. The search is fully
// deterministic.
func Words(seq string, words []string, maxCandidates int) ([]Result, error) {
	if len(words) == 0 {
		return nil, encode.ErrEmptyInput
	}
	if len(words) > encode.MaxPhraseWords {
		return nil, encode.ErrTooManyWords
	}
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}

	clean, err := bio.CleanSequence(seq)
	if err != nil {
		return nil, err
	}
	if len(clean) == 0 {
		return nil, ErrEmptyInput
	}

	upper := make([]string, len(words))
	maxLen := 0
	for i, w := range words {
		if _, err := encode.Word(w); err != nil {
			return nil, fmt.Errorf("cannot embed %q: %w", w, err)
		}
		upper[i] = strings.ToUpper(w)
		if len(upper[i]) > maxLen {
			maxLen = len(upper[i])
		}
		if len(upper[i])*3 > len(clean) {
			return nil, fmt.Errorf("word %q does not fit in a %d nucleotide sequence", upper[i], len(clean))
		}
	}

	queue := []candidate{{seq: clean}}
	for _, w := range upper {
		var next []candidate
		for _, c := range queue {
			next = append(next, placeOne(c, w)...)
			if len(next) >= maxCandidates {
				next = next[:maxCandidates]
				break
			}
		}
		queue = next
		if len(queue) == 0 {
			break
		}
	}

	// keep only candidates where every word survived the later rewrites
	checker := scan.NewScanner(dict.New("", maxLen, upper), 1, false)
	var results []Result
	seen := make(map[string]bool)
	for _, c := range queue {
		if seen[c.seq] {
			continue
		}
		matches, err := checker.Scan(c.seq)
		if err != nil {
			return nil, err
		}
		found := make(map[string]bool)
		for _, m := range matches {
			found[m.Word] = true
		}
		ok := true
		for _, w := range upper {
			if !found[w] {
				ok = false
				break
			}
		}
		if ok {
			seen[c.seq] = true
			results = append(results, Result{Sequence: c.seq, Placements: c.placements})
		}
	}
	return results, nil
}
