package model

// ChatRequest carries one conversational turn. The caller owns the
// conversation state: Previous is the criteria record it accumulated in
// earlier turns, or null on the first one.
type ChatRequest struct {
	Message  string          `json:"message" binding:"required"`
	Previous *SearchCriteria `json:"previous,omitempty"`
}

// ChatResponse is the outcome of one turn.
type ChatResponse struct {
	SearchID     string         `json:"search_id"`
	IsHouseQuery bool           `json:"is_house_query"`
	Criteria     SearchCriteria `json:"criteria"`
	Summary      string         `json:"summary,omitempty"`
	Refinement   string         `json:"refinement,omitempty"`
	Matches      []CasaMatch    `json:"matches"`
	ResultsText  string         `json:"results_text,omitempty"`
	Took         int64          `json:"took_ms"`
}

// SearchRequest scores the catalog against an already-built criteria
// record, bypassing extraction.
type SearchRequest struct {
	Criteria SearchCriteria `json:"criteria"`
}

// SearchResponse is the ranked match list for a direct search.
type SearchResponse struct {
	SearchID string      `json:"search_id"`
	Matches  []CasaMatch `json:"matches"`
	Took     int64       `json:"took_ms"`
}

// FeedbackRequest records a user action on a returned property.
type FeedbackRequest struct {
	SearchID string `json:"search_id" binding:"required"`
	CasaID   int64  `json:"casa_id" binding:"required"`
	Action   string `json:"action" binding:"required"` // click, contact, view_details
}

// FeedbackResponse acknowledges a feedback submission.
type FeedbackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
