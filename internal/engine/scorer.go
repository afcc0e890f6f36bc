package engine

import (
	"strings"

	"campusfaq/internal/model"
)

// Score computes the relevance of an FAQ entry for a query. All signals are
// additive and independent: exact match, containment both ways, keyword hits,
// query-token overlap and a category mention. It is pure; the same inputs
// always produce the same score.
func Score(query string, entry *model.FAQEntry, w Weights) float64 {
	q := strings.ToLower(query)
	question := strings.ToLower(entry.Question)

	var score float64

	if q == question {
		score += w.ExactMatch
	}
	if strings.Contains(q, question) {
		score += w.QueryContains
	}
	if strings.Contains(question, q) {
		score += w.QuestionContains
	}

	for _, keyword := range entry.Keywords {
		kw := strings.ToLower(keyword)
		if kw == "" {
			continue
		}
		if strings.Contains(q, kw) {
			bonus := float64(len(kw)) / 2
			if bonus > w.KeywordLengthCap {
				bonus = w.KeywordLengthCap
			}
			score += w.KeywordBase + bonus
		}
		// Compound keywords ("admission process") still earn a small bonus
		// when only one of their parts appears in the query.
		if len(kw) > w.KeywordPartMin {
			for _, part := range strings.Fields(kw) {
				if strings.Contains(q, part) {
					score += w.KeywordPartBonus
					break
				}
			}
		}
	}

	queryTokens := Tokenize(query)
	if len(queryTokens) > 0 {
		questionTokens := Tokenize(entry.Question)
		overlap := 0
		for token := range queryTokens {
			if _, ok := questionTokens[token]; ok {
				overlap++
			}
		}
		score += float64(overlap) / float64(len(queryTokens)) * w.OverlapScale
	}

	if cat := strings.ToLower(string(entry.Category)); cat != "" && strings.Contains(q, cat) {
		score += w.CategoryMention
	}

	return score
}
