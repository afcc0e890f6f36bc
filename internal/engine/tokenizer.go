package engine

import "strings"

// Tokenize lowercases text, splits it on whitespace and returns the distinct
// words longer than two characters. Short tokens ("a", "is", "to") carry no
// signal and are dropped. An empty input yields an empty set.
func Tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if len(word) > 2 {
			tokens[word] = struct{}{}
		}
	}
	return tokens
}
