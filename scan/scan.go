// Package scan searches the six reading frames of a nucleotide
// sequence for hidden dictionary words.
package scan

import (
	"errors"
	"sort"

	"github.com/divergentti/dna2polypeptidetool/bio"
	"github.com/divergentti/dna2polypeptidetool/codon"
	"github.com/divergentti/dna2polypeptidetool/dict"
)

// ErrEmptyInput is returned when a zero-length sequence is scanned.
var ErrEmptyInput = errors.New("empty sequence")

// Match records one occurrence of a dictionary word: the frame index
// (position in codon.Frames) and the start offset in that frame's
// translation.
type Match struct {
	Word  string `json:"word"`
	Frame int    `json:"frame"`
	Pos   int    `json:"pos"`
}

// Scanner matches all dictionary words against frame translations in
// one pass using an Aho-Corasick automaton built once per dictionary.
// A Scanner is read-only after construction and safe for concurrent
// use.
type Scanner struct {
	words         []string
	nodes         []node
	stopTruncated bool
}

// node is one state in the automaton. Edges are indexed by letter
// (A=0..Z=25); dictionary words contain nothing else.
type node struct {
	next [26]int32
	fail int32
	out  []int32 // word indexes that end at this state
}

// NewScanner builds a scanner for the dictionary. Words shorter than
// minLen are left out of the automaton. With stopTruncated each
// translation is cut at its first stop marker before matching;
// otherwise stop markers simply reset the automaton, so no match ever
// spans one.
func NewScanner(d *dict.Dictionary, minLen int, stopTruncated bool) *Scanner {
	words := make([]string, 0, d.Len())
	for _, w := range d.Words() {
		if len(w) >= minLen {
			words = append(words, w)
		}
	}
	return &Scanner{
		words:         words,
		nodes:         buildTrie(words),
		stopTruncated: stopTruncated,
	}
}

// buildTrie constructs the automaton: a trie over all words with
// failure links set by BFS, outputs propagated along them.
func buildTrie(words []string) []node {
	nodes := make([]node, 1) // state 0 = root

	for i, w := range words {
		cur := int32(0)
		for j := 0; j < len(w); j++ {
			c := w[j] - 'A'
			if nodes[cur].next[c] == 0 {
				nodes = append(nodes, node{})
				nodes[cur].next[c] = int32(len(nodes) - 1)
			}
			cur = nodes[cur].next[c]
		}
		nodes[cur].out = append(nodes[cur].out, int32(i))
	}

	queue := make([]int32, 0, len(nodes))
	for c := 0; c < 26; c++ {
		if child := nodes[0].next[c]; child != 0 {
			queue = append(queue, child)
		}
	}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		for c := 0; c < 26; c++ {
			s := nodes[r].next[c]
			if s == 0 {
				continue
			}
			queue = append(queue, s)
			f := nodes[r].fail
			for f > 0 && nodes[f].next[c] == 0 {
				f = nodes[f].fail
			}
			if nodes[f].next[c] != 0 {
				f = nodes[f].next[c]
			}
			nodes[s].fail = f
			if len(nodes[f].out) > 0 {
				nodes[s].out = append(nodes[s].out, nodes[f].out...)
			}
		}
	}
	return nodes
}

// matchFrame runs the automaton over one translation and records all
// word occurrences, overlapping ones included.
func (s *Scanner) matchFrame(translation string, frame int, matches []Match) []Match {
	state := int32(0)
	for i := 0; i < len(translation); i++ {
		b := translation[i]
		if b < 'A' || b > 'Z' {
			// stop marker or other sentinel
			state = 0
			continue
		}
		c := b - 'A'
		for state > 0 && s.nodes[state].next[c] == 0 {
			state = s.nodes[state].fail
		}
		if next := s.nodes[state].next[c]; next != 0 {
			state = next
		}
		for _, idx := range s.nodes[state].out {
			w := s.words[idx]
			matches = append(matches, Match{Word: w, Frame: frame, Pos: i - len(w) + 1})
		}
	}
	return matches
}

// Scan translates the sequence in all six reading frames and returns
// every dictionary word occurrence. Matches are ordered by frame
// index, then start position, then word.
func (s *Scanner) Scan(seq string) ([]Match, error) {
	if len(seq) == 0 {
		return nil, ErrEmptyInput
	}
	clean, err := bio.CleanSequence(seq)
	if err != nil {
		return nil, err
	}
	if len(clean) == 0 {
		return nil, ErrEmptyInput
	}

	matches := make([]Match, 0, 16)
	for _, f := range codon.Frames {
		translation := codon.Translate(clean, f)
		if s.stopTruncated {
			translation = codon.TruncateAtStop(translation)
		}
		start := len(matches)
		matches = s.matchFrame(translation, f.Index(), matches)
		frame := matches[start:]
		sort.Slice(frame, func(i, j int) bool {
			if frame[i].Pos != frame[j].Pos {
				return frame[i].Pos < frame[j].Pos
			}
			return frame[i].Word < frame[j].Word
		})
	}
	return matches, nil
}
