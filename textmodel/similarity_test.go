package textmodel

import (
	"encoding/json"
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestCompareDictionaries(t *testing.T) {
	cases := []struct {
		name      string
		reference TermFreq
		query     TermFreq
		want      float64
	}{
		{"empty reference", TermFreq{}, TermFreq{"a": 1}, -50},
		{"empty reference and query", TermFreq{}, TermFreq{}, -50},
		{"hit", TermFreq{"a": 4, "b": 1}, TermFreq{"a": 1}, math.Log(4.0 / 5.0)},
		{"unseen key", TermFreq{"a": 4}, TermFreq{"b": 1}, math.Log(0.5 / 4.0)},
		{"empty query", TermFreq{"a": 4}, TermFreq{}, 0},
		{
			"weighted by query count",
			TermFreq{"a": 2, "b": 2},
			TermFreq{"a": 3, "c": 2},
			3*math.Log(2.0/4.0) + 2*math.Log(0.5/4.0),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CompareDictionaries(tc.reference, tc.query)
			if !almostEqual(got, tc.want) {
				t.Errorf("CompareDictionaries(%v, %v) == %v, want %v", tc.reference, tc.query, got, tc.want)
			}
		})
	}
}

func TestCompareDictionariesIntKeys(t *testing.T) {
	got := CompareDictionaries(LengthFreq{3: 1, 4: 3}, LengthFreq{4: 2, 9: 1})
	want := 2*math.Log(3.0/4.0) + math.Log(0.5/4.0)
	if !almostEqual(got, want) {
		t.Errorf("CompareDictionaries() == %v, want %v", got, want)
	}
}

func TestSimilarityScores(t *testing.T) {
	source := NewModel("source")
	source.AddString("The cat sat. The cat ran and hid.")

	unknown := NewModel("unknown")
	unknown.AddString("The cat hid.")

	scores := unknown.SimilarityScores(source)

	want := ScoreVector{
		CompareDictionaries(source.Words, unknown.Words),
		CompareDictionaries(source.WordLengths, unknown.WordLengths),
		CompareDictionaries(source.Stems, unknown.Stems),
		CompareDictionaries(source.SentenceLengths, unknown.SentenceLengths),
		CompareDictionaries(source.Conjunctions, unknown.Conjunctions),
	}
	if scores != want {
		t.Errorf("SimilarityScores() == %v, want %v", scores, want)
	}

	// the unknown text has no conjunctions, so that score is an empty sum
	if scores[FeatureConjunctions] != 0 {
		t.Errorf("SimilarityScores()[conjunctions] == %v, want 0", scores[FeatureConjunctions])
	}

	empty := NewModel("empty")
	for i, s := range unknown.SimilarityScores(empty) {
		if s != EmptyReferenceScore {
			t.Errorf("SimilarityScores(empty)[%v] == %v, want %v", Feature(i), s, EmptyReferenceScore)
		}
	}
}

func TestFeatureString(t *testing.T) {
	want := []string{"words", "word_lengths", "stems", "sentence_lengths", "conjunctions"}
	for i, f := range Features {
		if f.String() != want[i] {
			t.Errorf("Feature(%d).String() == %q, want %q", i, f.String(), want[i])
		}
	}
	if Feature(99).String() != "unknown" {
		t.Errorf("Feature(99).String() == %q, want %q", Feature(99).String(), "unknown")
	}
}

func TestTally(t *testing.T) {
	cases := []struct {
		name  string
		a, b  ScoreVector
		wantA int
		wantB int
	}{
		{"all a", ScoreVector{-1, -1, -1, -1, -1}, ScoreVector{-2, -2, -2, -2, -2}, 5, 0},
		{"all ties", ScoreVector{-1, -2, -3, -4, -5}, ScoreVector{-1, -2, -3, -4, -5}, 0, 0},
		{"mixed with tie", ScoreVector{-1, -3, -2, -50, -4}, ScoreVector{-2, -1, -2, -3, -5}, 2, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := Tally(tc.a, tc.b)
			if a != tc.wantA || b != tc.wantB {
				t.Errorf("Tally() == (%d, %d), want (%d, %d)", a, b, tc.wantA, tc.wantB)
			}
		})
	}
}

func newTestModel(name, text string) *Model {
	m := NewModel(name)
	m.AddString(text)
	return m
}

func TestClassify(t *testing.T) {
	sourceA := newTestModel("Dogs", "The dog barked and barked. The dog ran for the ball. Dogs love balls!")
	sourceB := newTestModel("Markets", "Stock prices fell sharply yesterday, but traders remained calm. Yet markets are volatile.")
	unknown := newTestModel("Unknown", "The dog barked at the ball. The dog ran!")

	c := unknown.Classify(sourceA, sourceB)
	if c.Decision != SourceA {
		t.Errorf("Classify().Decision == %v, want %v (scores %v vs %v)", c.Decision, SourceA, c.ScoresA, c.ScoresB)
	}
	if c.Winner() != "Dogs" {
		t.Errorf("Classify().Winner() == %q, want %q", c.Winner(), "Dogs")
	}
	if c.TallyA+c.TallyB > len(Features) {
		t.Errorf("Classify() tallies %d + %d exceed %d features", c.TallyA, c.TallyB, len(Features))
	}
	if c.String() != "Unknown is more likely to have come from Dogs" {
		t.Errorf("Classify().String() == %q", c.String())
	}
}

func TestClassifySymmetry(t *testing.T) {
	sourceA := newTestModel("A", "The dog barked and barked. The dog ran for the ball.")
	sourceB := newTestModel("B", "Stock prices fell sharply yesterday, but traders remained calm.")
	unknown := newTestModel("Unknown", "The dog barked at the ball.")

	forward := unknown.Classify(sourceA, sourceB)
	reverse := unknown.Classify(sourceB, sourceA)

	if forward.ScoresA != reverse.ScoresB || forward.ScoresB != reverse.ScoresA {
		t.Errorf("swapping sources did not swap score vectors: %+v vs %+v", forward, reverse)
	}
	if forward.TallyA != reverse.TallyB || forward.TallyB != reverse.TallyA {
		t.Errorf("swapping sources did not swap tallies: %+v vs %+v", forward, reverse)
	}
	if forward.Winner() != reverse.Winner() {
		t.Errorf("Winner() == %q after swap, want %q", reverse.Winner(), forward.Winner())
	}
	if forward.Decision != SourceA || reverse.Decision != SourceB {
		t.Errorf("Decision == %v and %v, want %v and %v", forward.Decision, reverse.Decision, SourceA, SourceB)
	}
}

func TestClassifyAmbiguous(t *testing.T) {
	a := newTestModel("A", "Same words here.")
	b := newTestModel("B", "Same words here.")
	unknown := newTestModel("Unknown", "Same words.")

	c := unknown.Classify(a, b)
	if c.Decision != Ambiguous {
		t.Errorf("Classify().Decision == %v, want %v", c.Decision, Ambiguous)
	}
	if c.TallyA != 0 || c.TallyB != 0 {
		t.Errorf("Classify() tallies == (%d, %d), want (0, 0)", c.TallyA, c.TallyB)
	}
	if c.Winner() != "" {
		t.Errorf("Classify().Winner() == %q, want empty", c.Winner())
	}
	if c.String() != "Unknown could have come from either source." {
		t.Errorf("Classify().String() == %q", c.String())
	}
}

func TestClassificationJSON(t *testing.T) {
	c := Classification{Name: "x", SourceA: "a", SourceB: "b", Decision: SourceB}
	b, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if decoded["decision"] != "source_b" {
		t.Errorf("decision == %v, want %q", decoded["decision"], "source_b")
	}
	if scores, ok := decoded["scores_a"].([]any); !ok || len(scores) != len(Features) {
		t.Errorf("scores_a == %v, want %d scores", decoded["scores_a"], len(Features))
	}
}
