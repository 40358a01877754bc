package usecase

import "strings"

// Overlap labels. These exact strings are part of the page contract and
// appear verbatim in persisted comparison documents.
const (
	labelSuitsAll       = "One product suits all skin types"
	labelDifferentTypes = "Different target skin types"
	labelIdenticalTypes = "Identical skin type targeting"
	labelPartialOverlap = "Partial overlap in skin types"

	labelHighSimilarity    = "High similarity"
	labelMediumSimilarity  = "Medium similarity"
	labelDifferentFormulas = "Different formulations"
	labelUnknownSimilarity = "Unknown"
)

// Jaccard thresholds for ingredient similarity. Strictly greater-than:
// a similarity of exactly 0.7 is still "Medium similarity".
const (
	highSimilarityThreshold   = 0.7
	mediumSimilarityThreshold = 0.3
)

// tokenSet lowercases a comma-separated attribute list, strips spaces, and
// splits it into a set of tokens. Duplicates collapse; order is irrelevant.
func tokenSet(s string) map[string]struct{} {
	s = strings.ReplaceAll(strings.ToLower(s), " ", "")
	set := make(map[string]struct{})
	for _, tok := range strings.Split(s, ",") {
		set[tok] = struct{}{}
	}
	return set
}

// intersectionSize counts tokens present in both sets.
func intersectionSize(a, b map[string]struct{}) int {
	n := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			n++
		}
	}
	return n
}

// unionSize counts distinct tokens across both sets.
func unionSize(a, b map[string]struct{}) int {
	union := make(map[string]struct{}, len(a)+len(b))
	for tok := range a {
		union[tok] = struct{}{}
	}
	for tok := range b {
		union[tok] = struct{}{}
	}
	return len(union)
}

// SkinTypeOverlap labels the compatibility between two skin type lists.
// A product declaring "all" short-circuits every other rule.
func SkinTypeOverlap(a, b string) string {
	if strings.Contains(strings.ToLower(a), "all") || strings.Contains(strings.ToLower(b), "all") {
		return labelSuitsAll
	}

	setA := tokenSet(a)
	setB := tokenSet(b)
	overlap := intersectionSize(setA, setB)

	switch {
	case overlap == 0:
		return labelDifferentTypes
	case overlap == len(setA) && overlap == len(setB):
		return labelIdenticalTypes
	default:
		return labelPartialOverlap
	}
}

// IngredientSimilarity labels how close two ingredient lists are using
// Jaccard similarity over their token sets.
func IngredientSimilarity(a, b string) string {
	setA := tokenSet(a)
	setB := tokenSet(b)

	union := unionSize(setA, setB)
	if union == 0 {
		return labelUnknownSimilarity
	}

	similarity := float64(intersectionSize(setA, setB)) / float64(union)

	switch {
	case similarity > highSimilarityThreshold:
		return labelHighSimilarity
	case similarity > mediumSimilarityThreshold:
		return labelMediumSimilarity
	default:
		return labelDifferentFormulas
	}
}
