package textmodel

import (
	"encoding/json"
	"fmt"
)

// Decision is the outcome of classifying a model against two sources
type Decision int

const (
	Ambiguous Decision = iota
	SourceA
	SourceB
)

func (d Decision) String() string {
	switch d {
	case SourceA:
		return "source_a"
	case SourceB:
		return "source_b"
	default:
		return "ambiguous"
	}
}

func (d Decision) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Classification reports which of two sources a model most resembles and the scores behind the vote
type Classification struct {
	Name     string      `json:"name"`
	SourceA  string      `json:"source_a"`
	SourceB  string      `json:"source_b"`
	ScoresA  ScoreVector `json:"scores_a"`
	ScoresB  ScoreVector `json:"scores_b"`
	TallyA   int         `json:"tally_a"`
	TallyB   int         `json:"tally_b"`
	Decision Decision    `json:"decision"`
}

// Winner returns the name of the winning source, or "" when the vote is ambiguous
func (c Classification) Winner() string {
	switch c.Decision {
	case SourceA:
		return c.SourceA
	case SourceB:
		return c.SourceB
	default:
		return ""
	}
}

func (c Classification) String() string {
	if c.Decision == Ambiguous {
		return fmt.Sprintf("%s could have come from either source.", c.Name)
	}
	return fmt.Sprintf("%s is more likely to have come from %s", c.Name, c.Winner())
}

// Classify scores the model against both sources and takes a majority vote over the features.
// A feature votes for the source with the strictly higher score; equal tallies are Ambiguous.
func (m *Model) Classify(a, b *Model) Classification {
	c := Classification{
		Name:    m.Name,
		SourceA: a.Name,
		SourceB: b.Name,
		ScoresA: m.SimilarityScores(a),
		ScoresB: m.SimilarityScores(b),
	}
	c.TallyA, c.TallyB = Tally(c.ScoresA, c.ScoresB)

	switch {
	case c.TallyA > c.TallyB:
		c.Decision = SourceA
	case c.TallyB > c.TallyA:
		c.Decision = SourceB
	default:
		c.Decision = Ambiguous
	}
	return c
}

// Tally counts the positions where each vector's score is strictly higher than the other's
func Tally(a, b ScoreVector) (tallyA, tallyB int) {
	for i := range a {
		if a[i] > b[i] {
			tallyA += 1
		}
		if b[i] > a[i] {
			tallyB += 1
		}
	}
	return tallyA, tallyB
}
