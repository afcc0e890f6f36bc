package model

// ChatRequest is the request body for a chatbot query
type ChatRequest struct {
	Query string `json:"query"`
}

// MatchResult is the chatbot's answer to one query. Category is empty when the
// query matched nothing; Suggestions then carries category names instead of
// alternative questions.
type MatchResult struct {
	Answer      string   `json:"answer"`
	Confidence  float64  `json:"confidence"`
	Category    Category `json:"category,omitempty"`
	Suggestions []string `json:"suggestions"`
}

// UnmatchedQuery is one query the engine could not answer, with how often it
// has been asked
type UnmatchedQuery struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}
