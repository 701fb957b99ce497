package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/deanrtaylor1/gosource/textmodel"
)

var (
	ErrInvalidName   = errors.New("invalid model name")
	ErrModelNotFound = errors.New("model not found")
)

// Table file suffixes, one file per feature table
const (
	WordsSuffix           = "_words"
	WordLengthsSuffix     = "_word_lengths"
	StemsSuffix           = "_stems"
	SentenceLengthsSuffix = "_sentence_lengths"
	ConjunctionsSuffix    = "_conjunctions"
)

var suffixes = []string{
	WordsSuffix,
	WordLengthsSuffix,
	StemsSuffix,
	SentenceLengthsSuffix,
	ConjunctionsSuffix,
}

type FileOps interface {
	MkdirAll(dirName string, perm os.FileMode) error
	WriteFile(filename string, data []byte, perm os.FileMode) error
}

type FileOpsImpl struct{}

func (f FileOpsImpl) MkdirAll(dirName string, perm os.FileMode) error {
	return os.MkdirAll(dirName, perm)
}

func (f FileOpsImpl) WriteFile(filename string, data []byte, perm os.FileMode) error {
	return os.WriteFile(filename, data, perm)
}

type FileOpsNoOp struct{}

func (f FileOpsNoOp) MkdirAll(dirName string, perm os.FileMode) error {
	return nil
}

func (f FileOpsNoOp) WriteFile(filename string, data []byte, perm os.FileMode) error {
	return nil
}

// ValidateName rejects names that cannot be used as a file name prefix
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// TablePath returns the file a model table is stored in
func TablePath(dir, name, suffix string) string {
	return filepath.Join(dir, name+suffix)
}

// SaveModel writes the five tables of model to dir
func SaveModel(fileOps FileOps, dir string, model *textmodel.Model) error {
	if err := ValidateName(model.Name); err != nil {
		return err
	}
	if err := fileOps.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating model directory: %w", err)
	}

	tables := map[string]string{
		WordsSuffix:           textmodel.EncodeTable(model.Words),
		WordLengthsSuffix:     textmodel.EncodeTable(model.WordLengths),
		StemsSuffix:           textmodel.EncodeTable(model.Stems),
		SentenceLengthsSuffix: textmodel.EncodeTable(model.SentenceLengths),
		ConjunctionsSuffix:    textmodel.EncodeTable(model.Conjunctions),
	}
	for _, suffix := range suffixes {
		if err := fileOps.WriteFile(TablePath(dir, model.Name, suffix), []byte(tables[suffix]), 0644); err != nil {
			return fmt.Errorf("error writing %s%s: %w", model.Name, suffix, err)
		}
	}
	return nil
}

// ReadModel loads the model called name from dir
func ReadModel(dir, name string) (*textmodel.Model, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	model := textmodel.NewModel(name)
	var err error
	if model.Words, err = readTable[string](dir, name, WordsSuffix); err != nil {
		return nil, err
	}
	if model.WordLengths, err = readTable[int](dir, name, WordLengthsSuffix); err != nil {
		return nil, err
	}
	if model.Stems, err = readTable[string](dir, name, StemsSuffix); err != nil {
		return nil, err
	}
	if model.SentenceLengths, err = readTable[int](dir, name, SentenceLengthsSuffix); err != nil {
		return nil, err
	}
	if model.Conjunctions, err = readTable[string](dir, name, ConjunctionsSuffix); err != nil {
		return nil, err
	}
	return model, nil
}

func readTable[K textmodel.Key](dir, name, suffix string) (map[K]int, error) {
	data, err := os.ReadFile(TablePath(dir, name, suffix))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
		}
		return nil, fmt.Errorf("error reading %s%s: %w", name, suffix, err)
	}
	table, err := textmodel.DecodeTable[K](string(data))
	if err != nil {
		return nil, fmt.Errorf("error reading %s%s: %w", name, suffix, err)
	}
	return table, nil
}

// ListModels returns the sorted names of models in dir that have all five table files
func ListModels(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("error listing models: %w", err)
	}

	found := map[string]int{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		for _, suffix := range suffixes {
			if name, ok := strings.CutSuffix(e.Name(), suffix); ok && name != "" {
				found[name] += 1
			}
		}
	}

	names := []string{}
	for name, n := range found {
		if n == len(suffixes) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
