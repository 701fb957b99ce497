package textmodel

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/deanrtaylor1/gosource/lexer"
	"github.com/deanrtaylor1/gosource/stem"
	"github.com/deanrtaylor1/gosource/util"
)

type TermFreq map[string]int
type LengthFreq map[int]int

// conjunctions tracked in the Conjunctions table
var conjunctions = map[string]bool{
	"and": true,
	"or":  true,
	"but": true,
	"for": true,
	"nor": true,
	"so":  true,
	"yet": true,
}

// Model is the stylistic fingerprint of one or more documents
type Model struct {
	Name            string
	Words           TermFreq
	WordLengths     LengthFreq
	Stems           TermFreq
	SentenceLengths LengthFreq
	Conjunctions    TermFreq
	// Stemmer fills the Stems table, stem.Heuristic when nil
	Stemmer stem.Stemmer
}

// This function returns a new empty model labelled with name
func NewModel(name string) *Model {
	return &Model{
		Name:            name,
		Words:           make(TermFreq),
		WordLengths:     make(LengthFreq),
		Stems:           make(TermFreq),
		SentenceLengths: make(LengthFreq),
		Conjunctions:    make(TermFreq),
	}
}

func (m *Model) stemmer() stem.Stemmer {
	if m.Stemmer == nil {
		return stem.Heuristic{}
	}
	return m.Stemmer
}

// AddString adds the text content to the model's feature tables
func (m *Model) AddString(content string) {
	for _, n := range lexer.SentenceLengths(content) {
		m.SentenceLengths[n] += 1
	}

	stemmer := m.stemmer()
	for _, token := range lexer.Tokenize(content) {
		m.Words[token] += 1
		m.WordLengths[utf8.RuneCountInString(token)] += 1
		m.Stems[stemmer.Stem(token)] += 1
		if conjunctions[token] {
			m.Conjunctions[token] += 1
		}
	}
}

// AddFile reads the document at location (a file path or http(s) URL) and adds its text to the model
func (m *Model) AddFile(ctx context.Context, location string, timeout time.Duration) error {
	content, err := util.ReadDocument(ctx, location, timeout)
	if err != nil {
		return fmt.Errorf("error adding %s to model %s: %w", location, m.Name, err)
	}
	m.AddString(content)
	return nil
}

// String returns the model name and the number of entries in each table
func (m *Model) String() string {
	s := "text model name: " + m.Name + "\n"
	s += fmt.Sprintf("  number of words: %d\n", len(m.Words))
	s += fmt.Sprintf("  number of word lengths: %d\n", len(m.WordLengths))
	s += fmt.Sprintf("  number of stems: %d\n", len(m.Stems))
	s += fmt.Sprintf("  number of sentence lengths: %d\n", len(m.SentenceLengths))
	s += fmt.Sprintf("  number of conjunction words: %d\n", len(m.Conjunctions))
	return s
}

// FromDocuments builds a model called name from every document in locations
func FromDocuments(ctx context.Context, name string, stemmer stem.Stemmer, timeout time.Duration, locations ...string) (*Model, error) {
	m := NewModel(name)
	m.Stemmer = stemmer
	for _, location := range locations {
		if err := m.AddFile(ctx, location, timeout); err != nil {
			return nil, err
		}
	}
	return m, nil
}
