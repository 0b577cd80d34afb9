package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewGeneratedResponse(t *testing.T) {
	resp := NewGeneratedResponse(FeatureSearch, "search_news", "breaking news", "# Latest News: breaking news")

	if resp.ID == uuid.Nil {
		t.Error("ID should be set")
	}
	if resp.Feature != FeatureSearch {
		t.Errorf("Feature = %q, want %q", resp.Feature, FeatureSearch)
	}
	if resp.Template != "search_news" {
		t.Errorf("Template = %q, want search_news", resp.Template)
	}
	if resp.Query != "breaking news" {
		t.Errorf("Query = %q, want %q", resp.Query, "breaking news")
	}
	if resp.GeneratedAt.IsZero() {
		t.Error("GeneratedAt should be set")
	}
}

func TestNewGeneratedResponse_UniqueIDs(t *testing.T) {
	a := NewGeneratedResponse(FeatureIdeas, "default", "x", "x")
	b := NewGeneratedResponse(FeatureIdeas, "default", "x", "x")
	if a.ID == b.ID {
		t.Error("each response should get its own ID")
	}
}
