package textmodel

import "math"

// EmptyReferenceScore is returned by CompareDictionaries when the reference table is empty
const EmptyReferenceScore = -50.0

// unseenCount is the pseudo count given to query keys missing from the reference
const unseenCount = 0.5

// Key is the key type of a frequency table
type Key interface {
	string | int
}

// Feature names the position of a table in a ScoreVector
type Feature int

const (
	FeatureWords Feature = iota
	FeatureWordLengths
	FeatureStems
	FeatureSentenceLengths
	FeatureConjunctions
)

// Features lists every feature in ScoreVector order
var Features = [...]Feature{
	FeatureWords,
	FeatureWordLengths,
	FeatureStems,
	FeatureSentenceLengths,
	FeatureConjunctions,
}

var featureNames = [...]string{
	"words",
	"word_lengths",
	"stems",
	"sentence_lengths",
	"conjunctions",
}

func (f Feature) String() string {
	if f < 0 || int(f) >= len(featureNames) {
		return "unknown"
	}
	return featureNames[f]
}

// ScoreVector holds one log similarity score per feature, indexed by Feature
type ScoreVector [len(Features)]float64

// CompareDictionaries returns the log similarity score of query against reference.
// Every occurrence in query adds the log of its relative frequency in reference,
// keys missing from reference count as seen half a time.
func CompareDictionaries[M ~map[K]int, K Key](reference, query M) float64 {
	if len(reference) == 0 {
		return EmptyReferenceScore
	}

	total := 0
	for _, count := range reference {
		total += count
	}

	score := 0.0
	for key, count := range query {
		if refCount, ok := reference[key]; ok {
			score += float64(count) * math.Log(float64(refCount)/float64(total))
		} else {
			score += float64(count) * math.Log(unseenCount/float64(total))
		}
	}
	return score
}

// SimilarityScores scores how well the model's tables match the other model's tables
func (m *Model) SimilarityScores(other *Model) ScoreVector {
	var scores ScoreVector
	scores[FeatureWords] = CompareDictionaries(other.Words, m.Words)
	scores[FeatureWordLengths] = CompareDictionaries(other.WordLengths, m.WordLengths)
	scores[FeatureStems] = CompareDictionaries(other.Stems, m.Stems)
	scores[FeatureSentenceLengths] = CompareDictionaries(other.SentenceLengths, m.SentenceLengths)
	scores[FeatureConjunctions] = CompareDictionaries(other.Conjunctions, m.Conjunctions)
	return scores
}
