package engine

import (
	"sort"
	"strings"

	"campusfaq/internal/model"
)

// FallbackAnswer is returned when no entry clears the minimum score.
const FallbackAnswer = "Sorry, I couldn't find an answer to that. Try asking about one of the topics below."

// Candidate pairs an FAQ entry with its score for one query. Candidates only
// live for the duration of a single Match call.
type Candidate struct {
	Entry *model.FAQEntry
	Score float64
}

// Rank sorts candidates by score descending. The sort is stable, so entries
// with equal scores keep their corpus order; that ordering is the tie-break
// contract.
func Rank(candidates []Candidate) []Candidate {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}

// Confidence maps a raw score into [0, 1].
func Confidence(score float64, w Weights) float64 {
	c := score / w.ConfidenceDenom
	if c > 1 {
		c = 1
	}
	return c
}

// Match scores the query against every entry in the corpus snapshot and builds
// the chatbot response. The corpus must already be filtered to active entries.
// Match is pure and safe to call concurrently.
func Match(query string, corpus []*model.FAQEntry, w Weights) model.MatchResult {
	var candidates []Candidate
	// A blank query would trivially be "contained" in every question; treat it
	// as matching nothing. The HTTP layer rejects blank input anyway, but the
	// engine stays well-behaved without it.
	if strings.TrimSpace(query) != "" {
		for _, entry := range corpus {
			if score := Score(query, entry, w); score > w.MinScore {
				candidates = append(candidates, Candidate{Entry: entry, Score: score})
			}
		}
	}

	if len(candidates) == 0 {
		return model.MatchResult{
			Answer:      FallbackAnswer,
			Confidence:  0,
			Suggestions: fallbackCategories(corpus, w.MaxFallbackCategories),
		}
	}

	ranked := Rank(candidates)
	best := ranked[0]
	confidence := Confidence(best.Score, w)

	suggestions := []string{}
	if len(ranked) > 1 && confidence < w.SuggestBelow {
		for _, c := range ranked[1:] {
			if len(suggestions) == w.MaxSuggestions {
				break
			}
			suggestions = append(suggestions, c.Entry.Question)
		}
	}

	return model.MatchResult{
		Answer:      best.Entry.Answer,
		Confidence:  confidence,
		Category:    best.Entry.Category,
		Suggestions: suggestions,
	}
}

// fallbackCategories collects up to limit distinct category names in corpus
// order, so an unmatched user still sees what topics exist.
func fallbackCategories(corpus []*model.FAQEntry, limit int) []string {
	seen := make(map[model.Category]bool)
	names := []string{}
	for _, entry := range corpus {
		if entry.Category == "" || seen[entry.Category] {
			continue
		}
		seen[entry.Category] = true
		names = append(names, string(entry.Category))
		if len(names) == limit {
			break
		}
	}
	return names
}
