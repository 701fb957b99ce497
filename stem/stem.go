package stem

import (
	"fmt"
	"strings"

	"github.com/tebeka/snowball"
)

// Stemmer reduces a word token to an approximate root form
type Stemmer interface {
	Stem(word string) string
}

// Names accepted by New
const (
	HeuristicName = "heuristic"
	SnowballName  = "snowball"
)

// New returns the stemmer registered under name
func New(name string) (Stemmer, error) {
	switch strings.ToLower(name) {
	case "", HeuristicName:
		return Heuristic{}, nil
	case SnowballName:
		return NewSnowball()
	default:
		return nil, fmt.Errorf("unknown stemmer %q", name)
	}
}

// Heuristic is the suffix-stripping rule chain implemented by Stem
type Heuristic struct{}

func (Heuristic) Stem(word string) string { return Stem(word) }

// Stem applies the suffix rules in order. Each rule sees the word as left by
// the rules before it, so a plural and an -ing or -er suffix can both be
// stripped from the same word.
func Stem(word string) string {
	s := []rune(word)

	// three letter words are left alone
	if len(s) == 3 {
		return word
	}

	if hasSuffix(s, "s") {
		s = s[:len(s)-1]
		if len(s) <= 1 {
			return string(s)
		}
	}

	if hasSuffix(s, "e") {
		s = s[:len(s)-1]
	}

	if hasSuffix(s, "y") {
		s = append(s[:len(s)-1], 'i')
	}

	// -ing is only stripped after a doubled letter, "running" -> "run".
	// A doubled l keeps one of the pair, "rolling" -> "roll".
	if hasSuffix(s, "ing") && len(s) >= 5 {
		n := len(s)
		if s[n-4] == s[n-5] {
			if s[n-4] == 'l' {
				s = s[:n-3]
			} else {
				s = s[:n-4]
			}
		}
	}

	// -er, -ly and -ed always go; a doubled letter before them loses one
	// copy too, except l.
	if (hasSuffix(s, "er") || hasSuffix(s, "ly") || hasSuffix(s, "ed")) && len(s) >= 4 {
		n := len(s)
		if s[n-3] == s[n-4] {
			if s[n-3] == 'l' {
				s = s[:n-2]
			} else {
				s = s[:n-3]
			}
		} else {
			s = s[:n-2]
		}
	}

	return string(s)
}

func hasSuffix(s []rune, suffix string) bool {
	return strings.HasSuffix(string(s), suffix)
}

// Snowball stems with the English Snowball algorithm
type Snowball struct {
	stemmer *snowball.Stemmer
}

// NewSnowball creates an English Snowball stemmer. Close releases it.
func NewSnowball() (*Snowball, error) {
	stemmer, err := snowball.New("english")
	if err != nil {
		return nil, fmt.Errorf("error creating snowball stemmer: %w", err)
	}
	return &Snowball{stemmer: stemmer}, nil
}

func (s *Snowball) Stem(word string) string {
	return s.stemmer.Stem(word)
}

// Close releases the underlying stemmer
func (s *Snowball) Close() {
	s.stemmer.Close()
}
