// Package classify assigns browsing domains to a fixed set of categories.
// A deterministic pattern pass handles well-known domains; the remainder
// is submitted in batches to a remote model, with the deterministic result
// as fallback so the final mapping is always total over the input.
package classify

import "strings"

// Category is one of the fixed semantic buckets for domain purpose.
type Category string

const (
	CategoryVideo         Category = "video"
	CategoryDevelopment   Category = "development"
	CategorySocialMedia   Category = "social_media"
	CategoryNews          Category = "news"
	CategoryProductivity  Category = "productivity"
	CategoryShopping      Category = "shopping"
	CategoryEntertainment Category = "entertainment"
	CategorySearch        Category = "search"
	CategoryReference     Category = "reference"
	CategoryOther         Category = "other"
)

// AllCategories lists every category in declaration order.
var AllCategories = []Category{
	CategoryVideo,
	CategoryDevelopment,
	CategorySocialMedia,
	CategoryNews,
	CategoryProductivity,
	CategoryShopping,
	CategoryEntertainment,
	CategorySearch,
	CategoryReference,
	CategoryOther,
}

// categoryDescriptions documents each bucket for the remote model prompt.
var categoryDescriptions = map[Category]string{
	CategoryVideo:         "Video and streaming content",
	CategoryDevelopment:   "Programming, coding, technical documentation",
	CategorySocialMedia:   "Social networking platforms",
	CategoryNews:          "News websites and publications",
	CategoryProductivity:  "Email, task management, collaboration tools",
	CategoryShopping:      "E-commerce and online shopping",
	CategoryEntertainment: "Music, podcasts, gaming, general entertainment",
	CategorySearch:        "Search engines",
	CategoryReference:     "Wikipedia, documentation, educational content",
	CategoryOther:         "Everything else",
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	_, ok := categoryDescriptions[c]
	return ok
}

// DisplayName renders the category for humans: "social_media" becomes
// "Social Media".
func (c Category) DisplayName() string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
