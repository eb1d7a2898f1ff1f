package embed

import (
	"reflect"
	"testing"

	"github.com/divergentti/dna2polypeptidetool/dict"
	"github.com/divergentti/dna2polypeptidetool/scan"
)

const exampleSeq = "TACTTCAAGGCGGAAAAATGATCAACATTAGCACAGAAAGAATTTAATAAAAGCGACGGCGATTAACGAAAACTAATTTAATTTAATTTTTGGGAAAAAATTTT"

func TestEmbedOneWord(tst *testing.T) {
	results, err := Words(exampleSeq, []string{"wine"}, 500)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if len(results) == 0 {
		tst.Fatal("No embedding found")
	}

	checker := scan.NewScanner(dict.Build([]string{"wine"}, 12), 1, false)
	for _, r := range results {
		if len(r.Sequence) != len(exampleSeq) {
			tst.Error("Embedding changed the sequence length")
		}
		matches, err := checker.Scan(r.Sequence)
		if err != nil {
			tst.Fatal("Error: ", err)
		}
		found := false
		for _, m := range matches {
			if m.Word == "WINE" {
				found = true
				break
			}
		}
		if !found {
			tst.Error("WINE not present in result")
		}
		if len(r.Placements) != 1 || r.Placements[0].Word != "WINE" {
			tst.Error("Wrong placements:", r.Placements)
		}
	}

	// the first candidate writes the word at frame 0, position 0
	first := results[0]
	if first.Placements[0].Frame != 0 || first.Placements[0].Pos != 0 {
		tst.Error("Unexpected first placement:", first.Placements[0])
	}
}

func TestEmbedTwoWords(tst *testing.T) {
	results, err := Words(exampleSeq, []string{"men", "aha"}, 2000)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if len(results) == 0 {
		tst.Fatal("No embedding found")
	}

	checker := scan.NewScanner(dict.Build([]string{"men", "aha"}, 12), 1, false)
	for _, r := range results {
		matches, err := checker.Scan(r.Sequence)
		if err != nil {
			tst.Fatal("Error: ", err)
		}
		found := map[string]bool{}
		for _, m := range matches {
			found[m.Word] = true
		}
		if !found["MEN"] || !found["AHA"] {
			tst.Error("Not all words present:", matches)
		}
	}
}

func TestEmbedDeterministic(tst *testing.T) {
	r1, err1 := Words(exampleSeq, []string{"men"}, 300)
	r2, err2 := Words(exampleSeq, []string{"men"}, 300)
	if err1 != nil || err2 != nil {
		tst.Fatal("Error: ", err1, err2)
	}
	if !reflect.DeepEqual(r1, r2) {
		tst.Error("Embedding is not deterministic")
	}
}

func TestEmbedErrors(tst *testing.T) {
	if _, err := Words(exampleSeq, nil, 100); err == nil {
		tst.Error("No error for empty word list")
	}
	if _, err := Words(exampleSeq, []string{"a", "b", "c", "d"}, 100); err == nil {
		tst.Error("No error for too many words")
	}
	if _, err := Words(exampleSeq, []string{"box"}, 100); err == nil {
		tst.Error("No error for unencodable word")
	}
	if _, err := Words("", []string{"men"}, 100); err == nil {
		tst.Error("No error for empty sequence")
	}
	if _, err := Words("ATGGAA", []string{"katainen"}, 100); err == nil {
		tst.Error("No error for word longer than the sequence")
	}
}
