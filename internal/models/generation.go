package models

import (
	"time"

	"github.com/google/uuid"
)

// Generation features.
const (
	FeatureIdeas  = "ideas"
	FeatureSearch = "search"
)

// IdeaRequest is the content-idea form and JSON body.
type IdeaRequest struct {
	Title    string `json:"title" form:"title"`
	Category string `json:"category" form:"category"`
	Details  string `json:"details" form:"details"`
}

// SearchRequest is the search form and JSON body.
type SearchRequest struct {
	Query string `json:"query" form:"query"`
}

// GeneratedResponse is a single generated result. It is built once per
// request and never stored.
type GeneratedResponse struct {
	ID          uuid.UUID `json:"id"`
	Feature     string    `json:"feature"`
	Template    string    `json:"template"`
	Query       string    `json:"query"`
	Category    string    `json:"category,omitempty"`
	Details     string    `json:"details,omitempty"`
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generated_at"`
}

// NewGeneratedResponse stamps a result with a fresh ID and the current time.
func NewGeneratedResponse(feature, template, query, content string) *GeneratedResponse {
	return &GeneratedResponse{
		ID:          uuid.New(),
		Feature:     feature,
		Template:    template,
		Query:       query,
		Content:     content,
		GeneratedAt: time.Now().UTC(),
	}
}
