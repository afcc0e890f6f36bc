package engine

// Weights holds every tuning constant used by the matcher. Scoring is purely
// additive, so adjusting a single field shifts one signal without touching the
// others.
type Weights struct {
	ExactMatch            float64 // query equals the question verbatim
	QueryContains         float64 // query contains the full question text
	QuestionContains      float64 // question contains the full query text
	KeywordBase           float64 // flat bonus per keyword found in the query
	KeywordLengthCap      float64 // cap on the per-keyword length bonus (len/2)
	KeywordPartMin        int     // keyword length above which sub-parts also count
	KeywordPartBonus      float64 // bonus when a sub-part of a compound keyword hits
	OverlapScale          float64 // scale for the query-token overlap percentage
	CategoryMention       float64 // query names the entry's category
	MinScore              float64 // entries at or below this never become candidates
	ConfidenceDenom       float64 // score / denom, clamped to 1
	SuggestBelow          float64 // confidence under which alternatives are offered
	MaxSuggestions        int     // alternative questions shown with a weak match
	MaxFallbackCategories int     // category names shown when nothing matches
}

// DefaultWeights returns the tuned production weights.
func DefaultWeights() Weights {
	return Weights{
		ExactMatch:            50,
		QueryContains:         20,
		QuestionContains:      15,
		KeywordBase:           5,
		KeywordLengthCap:      5,
		KeywordPartMin:        5,
		KeywordPartBonus:      2,
		OverlapScale:          10,
		CategoryMention:       5,
		MinScore:              2,
		ConfidenceDenom:       30,
		SuggestBelow:          0.8,
		MaxSuggestions:        3,
		MaxFallbackCategories: 5,
	}
}
