package main

import "github.com/divergentti/dna2polypeptidetool/scan"

// CallSummary is storing dnaenc run summary information.
type CallSummary struct {
	// Version stores dnaenc version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Command is the subcommand that was run.
	Command string `json:"command"`
	// Time is the computation time in seconds.
	Time float64 `json:"time"`

	Words  *WordsSummary  `json:"words,omitempty"`
	Encode *EncodeSummary `json:"encode,omitempty"`
	Scan   *ScanSummary   `json:"scan,omitempty"`
	Embed  *EmbedSummary  `json:"embed,omitempty"`
}

// WordsSummary describes a dictionary build.
type WordsSummary struct {
	// DictionaryWords is the number of encodable words kept.
	DictionaryWords int `json:"dictionaryWords"`
	// MaxWordLen is the filter's word length limit.
	MaxWordLen int `json:"maxWordLen"`
	// Fingerprint is the corpus version tag the dictionary is keyed by.
	Fingerprint string `json:"fingerprint"`
}

// EncodeSummary describes an encode call.
type EncodeSummary struct {
	Words    []string `json:"words"`
	Sequence string   `json:"sequence"`
}

// ScanSummary describes a scan call.
type ScanSummary struct {
	SequenceLength  int          `json:"sequenceLength"`
	DictionaryWords int          `json:"dictionaryWords"`
	Matches         []scan.Match `json:"matches"`
}

// EmbedSummary describes an embed call.
type EmbedSummary struct {
	Words   []string `json:"words"`
	Results int      `json:"results"`
}
