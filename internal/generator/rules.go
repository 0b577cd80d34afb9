package generator

import "strings"

// Category values recognised by the idea ladder. Any other value selects the
// default template.
const (
	CategoryEntertainment = "entertainment"
	CategoryTechnology    = "technology"
	CategoryLifestyle     = "lifestyle"
	CategoryEducation     = "education"
	CategoryNews          = "news"
	CategoryBusiness      = "business"
)

// Categories lists every category in display order.
var Categories = []string{
	CategoryEntertainment,
	CategoryTechnology,
	CategoryLifestyle,
	CategoryEducation,
	CategoryNews,
	CategoryBusiness,
}

// input is the normalised view of a request that rules match against.
type input struct {
	topic    string // lowercased query
	category string // lowercased, trimmed category
}

// rule pairs a predicate with the template it selects.
type rule struct {
	id    TemplateID
	match func(in input) bool
	text  string

	lowerCategory bool // fill {{category}} with the normalised value
}

// ideaRules are evaluated in order; the first match wins. AI is checked
// before music.
var ideaRules = []rule{
	{
		id: TemplateAIEntertainment,
		match: func(in input) bool {
			return in.category == CategoryEntertainment && strings.Contains(in.topic, "ai")
		},
		text: aiEntertainmentText,
	},
	{
		id: TemplateMusicEntertainment,
		match: func(in input) bool {
			return in.category == CategoryEntertainment && strings.Contains(in.topic, "music")
		},
		text:          musicEntertainmentText,
		lowerCategory: true,
	},
	{
		id:    TemplateGenericEntertainment,
		match: categoryIs(CategoryEntertainment),
		text:  genericEntertainmentText,
	},
	{
		id:    TemplateTechnology,
		match: categoryIs(CategoryTechnology),
		text:  technologyText,
	},
	{
		id:    TemplateLifestyle,
		match: categoryIs(CategoryLifestyle),
		text:  lifestyleText,
	},
}

var defaultIdeaRule = rule{id: TemplateDefault, text: defaultText}

// searchRules are evaluated in order; news keywords win over product ones.
var searchRules = []rule{
	{
		id:    TemplateSearchNews,
		match: topicContainsAny("news", "breaking", "latest"),
		text:  searchNewsText,
	},
	{
		id:    TemplateSearchProduct,
		match: topicContainsAny("skincare", "product", "review"),
		text:  searchProductText,
	},
}

var defaultSearchRule = rule{id: TemplateSearchGeneric, text: searchGenericText}

func categoryIs(category string) func(input) bool {
	return func(in input) bool {
		return in.category == category
	}
}

func topicContainsAny(keywords ...string) func(input) bool {
	return func(in input) bool {
		for _, k := range keywords {
			if strings.Contains(in.topic, k) {
				return true
			}
		}
		return false
	}
}

// pick returns the first rule matching in, or fallback.
func pick(rules []rule, fallback rule, in input) rule {
	for _, r := range rules {
		if r.match(in) {
			return r
		}
	}
	return fallback
}
