/*
Dnaenc hides short words in DNA sequences and finds them again. A word
is encoded by replacing every letter with a codon translating to the
amino acid with that one-letter code; a sequence is searched by
translating all six reading frames and matching dictionary words
against the translations.

Build the dictionary once from a word corpus:

	dnaenc --corpus words.txt words

then encode, scan or embed:

	dnaenc encode MEN
	dnaenc scan TACTTCAAGGCGGAA...
	dnaenc embed KATAINEN --fasta genome.fst

To see all the options run:

	dnaenc --help
*/
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"github.com/divergentti/dna2polypeptidetool/bio"
	"github.com/divergentti/dna2polypeptidetool/cache"
	"github.com/divergentti/dna2polypeptidetool/codon"
	"github.com/divergentti/dna2polypeptidetool/dict"
	"github.com/divergentti/dna2polypeptidetool/embed"
	"github.com/divergentti/dna2polypeptidetool/encode"
	"github.com/divergentti/dna2polypeptidetool/scan"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("dnaenc")
var formatter = logging.MustStringFormatter(`%{message}`)

// defaultSequence is the sequence used when none is given. It contains
// KATAINEN (forward, offset 1) and MINISTERI (forward, offset 2).
const defaultSequence = "TACTTCAAGGCGGAAAAATGATCAACATTAGCACAGAAAGAATTTAATAAAAGCGACGGCGATTAACGAAAACTAATTTAATTTAATTTTTGGGAAAAAATTTT"

// command-line options
var (
	// application
	app = kingpin.New("dnaenc", "encode words as DNA and scan DNA for hidden words").Version(version)

	// dictionary
	dbPath     = app.Flag("db", "dictionary cache database (empty for no cache)").Default("dnaenc.db").String()
	corpusF    = app.Flag("corpus", "word corpus file, one word per line").String()
	maxWordLen = app.Flag("maxlen", "maximum dictionary word length").Default("12").Int()

	// input/output
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
	jsonF = app.Flag("json", "write json summary to a file").String()

	// commands
	wordsCmd = app.Command("words", "build or refresh the dictionary from the corpus")

	encodeCmd   = app.Command("encode", "encode 1-3 dictionary words into a nucleotide sequence")
	encodeWords = encodeCmd.Arg("word", "words to encode").Required().Strings()

	scanCmd    = app.Command("scan", "scan a sequence for hidden dictionary words")
	scanSeq    = scanCmd.Arg("sequence", "nucleotide sequence (default: the example sequence)").String()
	scanFasta  = scanCmd.Flag("fasta", "read the sequence from a FASTA file").ExistingFile()
	scanMinLen = scanCmd.Flag("minlen", "minimum word length to report").Default("3").Int()
	scanStops  = scanCmd.Flag("stops", "truncate each frame at its first stop codon").Bool()

	embedCmd   = app.Command("embed", "embed 1-3 words into a sequence by rewriting codons")
	embedWords = embedCmd.Arg("word", "words to embed").Required().Strings()
	embedSeq   = embedCmd.Flag("seq", "nucleotide sequence to modify (default: the example sequence)").String()
	embedFasta = embedCmd.Flag("fasta", "read the sequence from a FASTA file").ExistingFile()
	embedMax   = embedCmd.Flag("max-candidates", "candidate queue limit").Default("10000").Int()
	embedShow  = embedCmd.Flag("show", "number of results to print").Default("5").Int()
)

// readCorpus reads a word list, one word per line.
func readCorpus(fn string) ([]string, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	corpus := make([]string, 0, 1024)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			corpus = append(corpus, word)
		}
	}
	return corpus, scanner.Err()
}

// readSequence returns the sequence to work on: the FASTA file if
// given, the positional argument otherwise, the example sequence as a
// fallback.
func readSequence(fastaF, arg string) (string, error) {
	if fastaF != "" {
		f, err := os.Open(fastaF)
		if err != nil {
			return "", err
		}
		defer f.Close()
		seqs, err := bio.ParseFasta(f)
		if err != nil {
			return "", err
		}
		if len(seqs) == 0 {
			return "", fmt.Errorf("no sequences in %s", fastaF)
		}
		if len(seqs) > 1 {
			log.Warningf("%s has %d sequences, using %q", fastaF, len(seqs), seqs[0].Name)
		}
		return seqs[0].Sequence, nil
	}
	if arg != "" {
		return arg, nil
	}
	log.Notice("No sequence given, using the example sequence")
	return defaultSequence, nil
}

// dictionary loads the working dictionary: from the cache when the
// corpus fingerprint matches, rebuilding and storing it otherwise.
// Without a corpus the most recently cached dictionary is used.
func dictionary(store *cache.Store) (*dict.Dictionary, error) {
	if *corpusF == "" {
		d, err := store.Latest()
		if err == cache.ErrFingerprintMismatch {
			return nil, fmt.Errorf("no cached dictionary, run 'dnaenc --corpus <file> words' first")
		}
		return d, err
	}

	corpus, err := readCorpus(*corpusF)
	if err != nil {
		return nil, err
	}
	cached, err := store.Get(dict.Fingerprint(corpus))
	if err != nil && err != cache.ErrFingerprintMismatch {
		return nil, err
	}
	if cached != nil && cached.MaxWordLen == *maxWordLen {
		log.Infof("Corpus fingerprint matches, skipping rescan of %d words", len(corpus))
	} else {
		cached = nil
		log.Infof("Filtering corpus of %d words", len(corpus))
	}
	d := dict.BuildCached(corpus, *maxWordLen, cached)
	if d != cached {
		if err = store.Put(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func runWords(store *cache.Store, summary *CallSummary) error {
	if *corpusF == "" {
		return fmt.Errorf("words command needs --corpus")
	}
	d, err := dictionary(store)
	if err != nil {
		return err
	}
	log.Noticef("Dictionary has %d encodable words (maxlen=%d)", d.Len(), d.MaxWordLen)
	fmt.Printf("%d words, corpus fingerprint %s\n", d.Len(), d.Fingerprint)
	summary.Words = &WordsSummary{
		DictionaryWords: d.Len(),
		MaxWordLen:      d.MaxWordLen,
		Fingerprint:     d.Fingerprint,
	}
	return nil
}

func runEncode(store *cache.Store, summary *CallSummary) error {
	d, err := dictionary(store)
	if err != nil {
		return err
	}
	seq, err := encode.Phrase(d, *encodeWords)
	if err != nil {
		return err
	}
	fmt.Println(seq)
	summary.Encode = &EncodeSummary{Words: *encodeWords, Sequence: seq}
	return nil
}

func runScan(store *cache.Store, summary *CallSummary) error {
	d, err := dictionary(store)
	if err != nil {
		return err
	}
	seq, err := readSequence(*scanFasta, *scanSeq)
	if err != nil {
		return err
	}

	sc := scan.NewScanner(d, *scanMinLen, *scanStops)
	matches, err := sc.Scan(seq)
	if err != nil {
		return err
	}
	for _, m := range matches {
		f := codon.Frames[m.Frame]
		fmt.Printf("%s\tframe %d (%s), position %d\n", m.Word, m.Frame, f, m.Pos)
	}
	log.Noticef("Found %d matches", len(matches))
	summary.Scan = &ScanSummary{
		SequenceLength:  len(seq),
		DictionaryWords: d.Len(),
		Matches:         matches,
	}
	return nil
}

func runEmbed(summary *CallSummary) error {
	seq, err := readSequence(*embedFasta, *embedSeq)
	if err != nil {
		return err
	}
	results, err := embed.Words(seq, *embedWords, *embedMax)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("no suitable embedding found")
	}
	for i, r := range results {
		if i >= *embedShow {
			break
		}
		fmt.Printf("option %d:", i+1)
		for _, p := range r.Placements {
			fmt.Printf(" %s@%s+%d", p.Word, codon.Frames[p.Frame], p.Pos)
		}
		fmt.Println()
		fmt.Print(bio.Wrap(r.Sequence, 80))
	}
	log.Noticef("Generated %d sequences containing all words", len(results))
	summary.Embed = &EmbedSummary{Words: *embedWords, Results: len(results)}
	return nil
}

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "dnaenc")
	logging.SetLevel(level, "cache")

	log.Info(version)
	log.Info("Command line:", os.Args)

	var db *bolt.DB
	if *dbPath != "" {
		db, err = bolt.Open(*dbPath, 0644, nil)
		if err != nil {
			log.Fatal("Error opening dictionary cache:", err)
		}
		defer db.Close()
	}
	store := cache.NewStore(db)

	startTime := time.Now()
	summary := &CallSummary{
		Version:     version,
		CommandLine: os.Args,
		Command:     cmd,
	}

	switch cmd {
	case wordsCmd.FullCommand():
		err = runWords(store, summary)
	case encodeCmd.FullCommand():
		err = runEncode(store, summary)
	case scanCmd.FullCommand():
		err = runScan(store, summary)
	case embedCmd.FullCommand():
		err = runEmbed(summary)
	}
	if err != nil {
		log.Fatal(err)
	}

	summary.Time = time.Since(startTime).Seconds()

	// output summary in json format
	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			log.Debug(string(j))
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}
}
