package encode

import (
	"testing"

	"github.com/divergentti/dna2polypeptidetool/dict"
)

func testDict() *dict.Dictionary {
	return dict.Build([]string{"men", "katainen", "ministeri", "aha", "bar"}, 12)
}

func TestPhrase(tst *testing.T) {
	d := testDict()
	seq, err := Phrase(d, []string{"MEN"})
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if seq != "ATGGAAAAC" {
		tst.Error("Wrong encoding of MEN:", seq)
	}

	// concatenation without separator
	seq, err = Phrase(d, []string{"men", "aha"})
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if seq != "ATGGAAAAC"+"GCACACGCA" {
		tst.Error("Wrong encoding of MEN AHA:", seq)
	}
}

func TestPhraseDeterministic(tst *testing.T) {
	d := testDict()
	s1, err1 := Phrase(d, []string{"katainen", "ministeri"})
	s2, err2 := Phrase(d, []string{"katainen", "ministeri"})
	if err1 != nil || err2 != nil {
		tst.Fatal("Error: ", err1, err2)
	}
	if s1 != s2 {
		tst.Error("Encoding is not deterministic:", s1, s2)
	}
}

func TestWordNotEncodable(tst *testing.T) {
	d := testDict()
	// BAR passed the corpus but is not in the dictionary (letter B)
	_, err := Phrase(d, []string{"men", "bar"})
	if err == nil {
		tst.Fatal("No error for unencodable word")
	}
	if werr, ok := err.(WordNotEncodableError); !ok {
		tst.Error("Wrong error type:", err)
	} else if string(werr) != "BAR" {
		tst.Error("Error names wrong word:", string(werr))
	}

	// not a dictionary member even though encodable
	if _, err = Phrase(d, []string{"wine"}); err == nil {
		tst.Error("No error for word outside the dictionary")
	}
}

func TestPhraseLimits(tst *testing.T) {
	d := testDict()
	if _, err := Phrase(d, nil); err != ErrEmptyInput {
		tst.Error("Expected empty input error, got:", err)
	}
	words := []string{"men", "aha", "men", "aha"}
	if _, err := Phrase(d, words); err != ErrTooManyWords {
		tst.Error("Expected too many words error, got:", err)
	}
}

func TestWord(tst *testing.T) {
	seq, err := Word("wine")
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if seq != "TGG"+"ATA"+"AAC"+"GAA" {
		tst.Error("Wrong encoding of WINE:", seq)
	}
	if _, err = Word("box"); err == nil {
		tst.Error("No error for unencodable word")
	}
}
