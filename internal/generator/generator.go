// Package generator builds canned, markdown-flavoured responses for the
// content-idea and search features by matching keywords in the user's input
// against fixed rule tables. All functions are pure and safe for concurrent use.
package generator

import (
	"fmt"
	"strings"
)

// Generate returns content ideas for query within category. An empty or
// unrecognised category selects the default template.
func Generate(query, category string) (string, error) {
	r, err := selectIdea(query, category)
	if err != nil {
		return "", err
	}
	category = strings.TrimSpace(category)
	if r.lowerCategory {
		category = strings.ToLower(category)
	}
	return fill(r.text, query, category) + fill(tipsText, query, category), nil
}

// GenerateIdeas is the content-idea feature entry point. details is accepted
// for parity with the form but does not influence the output.
func GenerateIdeas(title, category, details string) (string, error) {
	return Generate(title, category)
}

// Select reports which idea template Generate would use.
func Select(query, category string) (TemplateID, error) {
	r, err := selectIdea(query, category)
	if err != nil {
		return "", err
	}
	return r.id, nil
}

// GenerateSearchResult returns a canned search result for query.
func GenerateSearchResult(query string) (string, error) {
	r, err := selectSearch(query)
	if err != nil {
		return "", err
	}
	return fill(r.text, query, ""), nil
}

// SelectSearch reports which search template GenerateSearchResult would use.
func SelectSearch(query string) (TemplateID, error) {
	r, err := selectSearch(query)
	if err != nil {
		return "", err
	}
	return r.id, nil
}

func selectIdea(query, category string) (rule, error) {
	if err := checkQuery(query); err != nil {
		return rule{}, err
	}
	in := input{
		topic:    strings.ToLower(query),
		category: strings.ToLower(strings.TrimSpace(category)),
	}
	return pick(ideaRules, defaultIdeaRule, in), nil
}

func selectSearch(query string) (rule, error) {
	if err := checkQuery(query); err != nil {
		return rule{}, err
	}
	return pick(searchRules, defaultSearchRule, input{topic: strings.ToLower(query)}), nil
}

func checkQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("generate: %w", ErrInvalidInput)
	}
	return nil
}

// fill substitutes placeholders in a single pass, so user text containing a
// placeholder is never expanded again.
func fill(text, query, category string) string {
	return strings.NewReplacer(
		placeholderQuery, query,
		placeholderCategory, category,
	).Replace(text)
}
