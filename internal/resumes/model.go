package resumes

import "time"

// Resume is one uploaded document. Field names are the wire contract shared
// with existing clients. SuggestionsPath is nil when suggestion generation
// or its storage failed (degraded record).
type Resume struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	FileURL         string    `json:"fileUrl"`
	SuggestionsPath *string   `json:"suggestionsPath"`
	UploadedAt      time.Time `json:"uploadedAt"`
}

// SuggestionResponse carries the latest suggestion text for a resume.
// CreatedAt is the request time; the store keeps no meaningful creation
// timestamp for this read.
type SuggestionResponse struct {
	ResumeID    string    `json:"resumeId"`
	Suggestions string    `json:"suggestions"`
	CreatedAt   time.Time `json:"createdAt"`
}
