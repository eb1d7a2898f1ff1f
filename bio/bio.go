// Package bio provides the genetic code and functions on nucleotide
// sequences.
package bio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Stop is the marker used in translations for the three stop codons.
// It is deliberately not a letter so no dictionary word can contain it.
const Stop = '*'

var (
	// GeneticCode is a map, codon string (capital letters) is the key,
	// amino acids (capital letter) are values. Stop codons map to Stop.
	GeneticCode = map[string]byte{
		"ATA": 'I', "ATC": 'I', "ATT": 'I', "ATG": 'M',
		"ACA": 'T', "ACC": 'T', "ACG": 'T', "ACT": 'T',
		"AAC": 'N', "AAT": 'N', "AAA": 'K', "AAG": 'K',
		"AGC": 'S', "AGT": 'S', "AGA": 'R', "AGG": 'R',
		"CTA": 'L', "CTC": 'L', "CTG": 'L', "CTT": 'L',
		"CCA": 'P', "CCC": 'P', "CCG": 'P', "CCT": 'P',
		"CAC": 'H', "CAT": 'H', "CAA": 'Q', "CAG": 'Q',
		"CGA": 'R', "CGC": 'R', "CGG": 'R', "CGT": 'R',
		"GTA": 'V', "GTC": 'V', "GTG": 'V', "GTT": 'V',
		"GCA": 'A', "GCC": 'A', "GCG": 'A', "GCT": 'A',
		"GAC": 'D', "GAT": 'D', "GAA": 'E', "GAG": 'E',
		"GGA": 'G', "GGC": 'G', "GGG": 'G', "GGT": 'G',
		"TCA": 'S', "TCC": 'S', "TCG": 'S', "TCT": 'S',
		"TTC": 'F', "TTT": 'F', "TTA": 'L', "TTG": 'L',
		"TAC": 'Y', "TAT": 'Y', "TAA": Stop, "TAG": Stop,
		"TGC": 'C', "TGT": 'C', "TGA": Stop, "TGG": 'W'}
	// RGeneticCode is mapping amino acids to their codons. Each codon
	// list is sorted, so the first element is the canonical codon.
	RGeneticCode map[byte][]string

	complement [256]byte
)

func init() {
	// initialize RGeneticCode
	RGeneticCode = make(map[byte][]string, 21)
	for codon, aa := range GeneticCode {
		RGeneticCode[aa] = append(RGeneticCode[aa], codon)
	}
	for _, codons := range RGeneticCode {
		sort.Strings(codons)
	}

	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['G'] = 'C'
	complement['C'] = 'G'
}

// InvalidAminoAcidError is returned when a symbol is not one of the 20
// amino-acid one-letter codes.
type InvalidAminoAcidError byte

func (e InvalidAminoAcidError) Error() string {
	return fmt.Sprintf("invalid amino-acid code %q", string(byte(e)))
}

// InvalidNucleotideError is returned when a sequence contains a symbol
// outside the nucleotide alphabet.
type InvalidNucleotideError byte

func (e InvalidNucleotideError) Error() string {
	return fmt.Sprintf("invalid nucleotide %q, only A, C, G, T and U are allowed", string(byte(e)))
}

// IsAminoAcid tests if aa is one of the 20 amino-acid one-letter codes
// (capital letter; the stop marker is not an amino acid).
func IsAminoAcid(aa byte) bool {
	if aa == Stop {
		return false
	}
	_, ok := RGeneticCode[aa]
	return ok
}

// Codons returns the sorted list of codons translating to the given
// amino acid.
func Codons(aa byte) ([]string, error) {
	if !IsAminoAcid(aa) {
		return nil, InvalidAminoAcidError(aa)
	}
	return RGeneticCode[aa], nil
}

// CanonicalCodon returns the codon used to encode the given amino acid:
// the lexicographically smallest one, so encoding is reproducible.
func CanonicalCodon(aa byte) (string, error) {
	codons, err := Codons(aa)
	if err != nil {
		return "", err
	}
	return codons[0], nil
}

// AminoAcid translates a codon (DNA alphabet, capital letters) into an
// amino acid one-letter code or Stop.
func AminoAcid(codon string) byte {
	return GeneticCode[codon]
}

// IsStopCodon tests if the string is a stop-codon (DNA alphabet,
// capital letters).
func IsStopCodon(codon string) bool {
	return GeneticCode[codon] == Stop
}

// CleanSequence uppercases a nucleotide sequence, removes spaces,
// replaces U with T and rejects every other symbol outside {A,C,G,T}.
func CleanSequence(seq string) (string, error) {
	seq = strings.Replace(strings.ToUpper(seq), " ", "", -1)
	seq = strings.Replace(seq, "U", "T", -1)
	for i := 0; i < len(seq); i++ {
		if complement[seq[i]] == 0 {
			return "", InvalidNucleotideError(seq[i])
		}
	}
	return seq, nil
}

// ReverseComplement returns the reverse complement of a clean
// nucleotide sequence. It is an involution:
// ReverseComplement(ReverseComplement(s)) == s.
func ReverseComplement(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return string(out)
}

// Sequence is a type which is intended for storing a nucleotide
// sequence with it's name.
type Sequence struct {
	Name     string
	Sequence string
}

// Sequences stores multiple sequences.
type Sequences []Sequence

// ParseFasta parses FASTA sequences from a reader.
func ParseFasta(rd io.Reader) (seqs Sequences, err error) {
	seqs = make(Sequences, 0, 10)
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			seq := Sequence{Name: line[1:]}
			seqs = append(seqs, seq)
		} else {
			if len(seqs) == 0 {
				return nil, errors.New("sequence w/o prefix")
			}
			line = strings.ToUpper(strings.Replace(line, " ", "", -1))
			seqs[len(seqs)-1].Sequence += line
		}
	}
	return
}

// Wrap inputs a string and wraps it so string length is n characters
// or less.
func Wrap(seq string, n int) (s string) {
	for i := 0; i < len(seq); i += n {
		end := i + n
		if end > len(seq) {
			end = len(seq)
		}
		s += seq[i:end] + "\n"
	}
	return
}

// String returns a sequence in FASTA format.
func (seq Sequence) String() (s string) {
	s = ">" + seq.Name + "\n" + Wrap(seq.Sequence, 80)
	return
}

// String returns sequences in FASTA format.
func (seqs Sequences) String() (s string) {
	for _, seq := range seqs {
		s += seq.String()
	}
	return s[:len(s)-1]
}
