// Package codon translates nucleotide sequences in the six reading
// frames.
package codon

import (
	"strings"

	"github.com/divergentti/dna2polypeptidetool/bio"
)

// Strand of a reading frame.
type Strand int

const (
	// Forward reads the sequence as given.
	Forward Strand = iota
	// Reverse reads the reverse complement.
	Reverse
)

func (s Strand) String() string {
	if s == Reverse {
		return "reverse"
	}
	return "forward"
}

// Frame is one of the six reading frames: a strand and a codon offset
// (0, 1 or 2) on it.
type Frame struct {
	Strand Strand
	Offset int
}

// Frames enumerates all six reading frames in the canonical order:
// forward 0, 1, 2, then reverse 0, 1, 2. Frame indices used throughout
// the program refer to positions in this array.
var Frames = [6]Frame{
	{Forward, 0}, {Forward, 1}, {Forward, 2},
	{Reverse, 0}, {Reverse, 1}, {Reverse, 2},
}

// Index returns the frame's position in Frames (0-5).
func (f Frame) Index() int {
	if f.Strand == Reverse {
		return 3 + f.Offset
	}
	return f.Offset
}

func (f Frame) String() string {
	return f.Strand.String() + " frame " + string(rune('0'+f.Offset))
}

// Translate translates a clean nucleotide sequence in the given
// reading frame. For the reverse strand the reverse complement is
// translated. Trailing 1-2 nucleotides that do not fill a codon are
// dropped. Stop codons appear as bio.Stop markers.
func Translate(seq string, f Frame) string {
	if f.Strand == Reverse {
		seq = bio.ReverseComplement(seq)
	}
	var b strings.Builder
	if n := len(seq) - f.Offset; n > 0 {
		b.Grow(n / 3)
	}
	for i := f.Offset; i+3 <= len(seq); i += 3 {
		b.WriteByte(bio.AminoAcid(seq[i : i+3]))
	}
	return b.String()
}

// TruncateAtStop cuts a translation at its first stop marker.
func TruncateAtStop(t string) string {
	if i := strings.IndexByte(t, bio.Stop); i >= 0 {
		return t[:i]
	}
	return t
}
