package dict

import (
	"testing"

	"github.com/divergentti/dna2polypeptidetool/bio"
)

var corpus = []string{
	"men", "Katainen", "MINISTERI", // encodable
	"bar", "jazz", "box", // B, J, Z, O, X are not amino-acid codes
	"", "x", "don't", "re-do", // empty / invalid characters
	"characteristically", // encodable but too long for maxLen=12
}

func TestBuild(tst *testing.T) {
	d := Build(corpus, 12)
	if d.Len() != 3 {
		tst.Error("Wrong dictionary size:", d.Len(), d.Words())
	}
	for _, w := range []string{"MEN", "KATAINEN", "MINISTERI"} {
		if !d.Contains(w) {
			tst.Error("Missing word:", w)
		}
	}
	// membership is case-insensitive
	if !d.Contains("katainen") {
		tst.Error("Missing lowercase word")
	}
	if d.Contains("BAR") || d.Contains("") {
		tst.Error("Rejected word present")
	}
}

// Every kept word is spelled in amino-acid codes; every rejected
// non-empty, non-overlong word has a letter that is not one.
func TestFilterCorrectness(tst *testing.T) {
	d := Build(corpus, 12)
	for _, w := range d.Words() {
		for i := 0; i < len(w); i++ {
			if !bio.IsAminoAcid(w[i]) {
				tst.Errorf("Word %q contains invalid letter %q", w, w[i])
			}
		}
	}
	for _, w := range corpus {
		if len(w) == 0 || len(w) > 12 || d.Contains(w) {
			continue
		}
		if Encodable(w) {
			tst.Errorf("Encodable word %q was rejected", w)
		}
	}
}

func TestBuildOrderIndependent(tst *testing.T) {
	d1 := Build(corpus, 12)
	reversed := make([]string, 0, len(corpus))
	for i := len(corpus) - 1; i >= 0; i-- {
		reversed = append(reversed, corpus[i])
	}
	d2 := Build(reversed, 12)
	w1, w2 := d1.Words(), d2.Words()
	if len(w1) != len(w2) {
		tst.Fatal("Different sizes:", len(w1), len(w2))
	}
	for i := range w1 {
		if w1[i] != w2[i] {
			tst.Error("Different words:", w1[i], w2[i])
		}
	}
}

func TestMaxLen(tst *testing.T) {
	d := Build(corpus, 3)
	if d.Len() != 1 || !d.Contains("MEN") {
		tst.Error("Wrong dictionary for maxLen=3:", d.Words())
	}
	d = Build(corpus, 18)
	if !d.Contains("CHARACTERISTICALLY") {
		tst.Error("Long word missing for maxLen=18")
	}
}

func TestBuildCached(tst *testing.T) {
	cached := Build(corpus, 12)
	if d := BuildCached(corpus, 12, cached); d != cached {
		tst.Error("Cache not used on matching fingerprint")
	}
	if d := BuildCached(corpus, 5, cached); d == cached {
		tst.Error("Cache used despite different maxLen")
	}
	other := append([]string{"extra"}, corpus...)
	d := BuildCached(other, 12, cached)
	if d == cached {
		tst.Error("Cache used despite different corpus")
	}
	if d.Fingerprint == cached.Fingerprint {
		tst.Error("Fingerprint did not change with the corpus")
	}
}

func TestFingerprint(tst *testing.T) {
	if Fingerprint(corpus) != Fingerprint(corpus) {
		tst.Error("Fingerprint is not deterministic")
	}
	if Fingerprint([]string{"ab", "c"}) == Fingerprint([]string{"a", "bc"}) {
		tst.Error("Fingerprint ignores word boundaries")
	}
}
