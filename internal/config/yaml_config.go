package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
type YAMLConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// CategoryConfig defines one option of the category select.
type CategoryConfig struct {
	Slug  string `yaml:"slug" json:"slug"`
	Label string `yaml:"label" json:"label"`
}

// DefaultCategories is used when no config file is present or it lists no
// categories.
var DefaultCategories = []CategoryConfig{
	{Slug: "entertainment", Label: "Entertainment"},
	{Slug: "technology", Label: "Technology"},
	{Slug: "lifestyle", Label: "Lifestyle"},
	{Slug: "education", Label: "Education"},
	{Slug: "news", Label: "News & Current Events"},
	{Slug: "business", Label: "Business & Finance"},
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLConfigFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLConfigFile loads the YAML configuration from path.
func LoadYAMLConfigFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}
	return ParseYAMLConfig(data)
}

// ParseYAMLConfig decodes and validates YAML config data.
func ParseYAMLConfig(data []byte) (*YAMLConfig, error) {
	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	seen := make(map[string]bool, len(cfg.Categories))
	for i := range cfg.Categories {
		c := &cfg.Categories[i]
		c.Slug = strings.ToLower(strings.TrimSpace(c.Slug))
		if c.Slug == "" {
			return nil, fmt.Errorf("category %d: slug is required", i)
		}
		if seen[c.Slug] {
			return nil, fmt.Errorf("category %q: duplicate slug", c.Slug)
		}
		seen[c.Slug] = true
		if c.Label == "" {
			c.Label = c.Slug
		}
	}

	return &cfg, nil
}

// GetCategories returns the configured categories, or DefaultCategories.
func (c *YAMLConfig) GetCategories() []CategoryConfig {
	if c == nil || len(c.Categories) == 0 {
		return DefaultCategories
	}
	return c.Categories
}

// GetCategoryBySlug finds a category by its slug.
func (c *YAMLConfig) GetCategoryBySlug(slug string) *CategoryConfig {
	categories := c.GetCategories()
	for i := range categories {
		if categories[i].Slug == slug {
			return &categories[i]
		}
	}
	return nil
}
