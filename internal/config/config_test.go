package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "SERVER_ADDR", "GENERATION_DELAY", "RATE_LIMIT_MAX", "SITE_TITLE", "REDIS_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ServerAddr != ":3000" {
		t.Errorf("ServerAddr = %q, want :3000", cfg.ServerAddr)
	}
	if cfg.GenerationDelay != 2500*time.Millisecond {
		t.Errorf("GenerationDelay = %v, want 2.5s", cfg.GenerationDelay)
	}
	if cfg.RateLimitMax != 100 {
		t.Errorf("RateLimitMax = %d, want 100", cfg.RateLimitMax)
	}
	if cfg.SiteTitle != "MediaLens" {
		t.Errorf("SiteTitle = %q, want MediaLens", cfg.SiteTitle)
	}
	if cfg.RedisURL != "" {
		t.Errorf("RedisURL = %q, want empty", cfg.RedisURL)
	}
	if !cfg.IsDev() {
		t.Error("default environment should be development")
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"unset", "", time.Second},
		{"milliseconds", "1500", 1500 * time.Millisecond},
		{"zero disables", "0", 0},
		{"duration string", "250ms", 250 * time.Millisecond},
		{"seconds", "3s", 3 * time.Second},
		{"invalid", "soon", time.Second},
		{"negative", "-1s", time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DELAY", tt.value)
			if got := getEnvAsDuration("TEST_DELAY", time.Second); got != tt.want {
				t.Errorf("getEnvAsDuration(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := getEnvAsInt("TEST_INT", 1); got != 42 {
		t.Errorf("getEnvAsInt = %d, want 42", got)
	}
	t.Setenv("TEST_INT", "many")
	if got := getEnvAsInt("TEST_INT", 1); got != 1 {
		t.Errorf("getEnvAsInt invalid = %d, want fallback 1", got)
	}
}

func TestParseYAMLConfig(t *testing.T) {
	data := []byte(`
categories:
  - slug: Entertainment
    label: Fun Stuff
  - slug: gaming
`)
	cfg, err := ParseYAMLConfig(data)
	if err != nil {
		t.Fatalf("ParseYAMLConfig() error = %v", err)
	}

	categories := cfg.GetCategories()
	if len(categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(categories))
	}
	if categories[0].Slug != "entertainment" || categories[0].Label != "Fun Stuff" {
		t.Errorf("unexpected first category: %+v", categories[0])
	}
	if categories[1].Label != "gaming" {
		t.Errorf("missing label should default to slug, got %q", categories[1].Label)
	}
	if cfg.GetCategoryBySlug("gaming") == nil {
		t.Error("GetCategoryBySlug(gaming) should find the category")
	}
	if cfg.GetCategoryBySlug("missing") != nil {
		t.Error("GetCategoryBySlug(missing) should return nil")
	}
}

func TestParseYAMLConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "categories: [unterminated"},
		{"missing slug", "categories:\n  - label: Nope\n"},
		{"duplicate slug", "categories:\n  - slug: news\n  - slug: NEWS\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseYAMLConfig([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadYAMLConfigFile_Missing(t *testing.T) {
	cfg, err := LoadYAMLConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg != nil {
		t.Error("missing file should return nil config")
	}

	// A nil catalog still yields the defaults.
	if got := cfg.GetCategories(); len(got) != len(DefaultCategories) {
		t.Errorf("nil config returned %d categories, want %d", len(got), len(DefaultCategories))
	}
}

func TestLoadYAMLConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("categories:\n  - slug: travel\n    label: Travel\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadYAMLConfigFile(path)
	if err != nil {
		t.Fatalf("LoadYAMLConfigFile() error = %v", err)
	}
	if got := cfg.GetCategories(); len(got) != 1 || got[0].Slug != "travel" {
		t.Errorf("unexpected categories: %+v", got)
	}
}

func TestConfig_CategoriesDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.Categories(); len(got) != 6 {
		t.Errorf("Categories() = %d entries, want 6", len(got))
	}
}
