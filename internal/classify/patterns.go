package classify

import "strings"

// patternEntry pairs a category with its domain substring patterns.
// Declaration order is load-bearing: patterns are tested in this order and
// the first match wins, so overlapping patterns stay reproducible.
type patternEntry struct {
	Category Category
	Patterns []string
}

var domainPatterns = []patternEntry{
	{CategoryVideo, []string{"youtube.com", "vimeo.com", "twitch.tv", "netflix.com", "hulu.com", "disneyplus.com", "hbomax.com"}},
	{CategoryDevelopment, []string{"github.com", "stackoverflow.com", "gitlab.com", "dev.to", "npmjs.com", "pypi.org", "docs.python.org", "developer.mozilla.org"}},
	{CategorySocialMedia, []string{"twitter.com", "x.com", "facebook.com", "instagram.com", "linkedin.com", "reddit.com", "tiktok.com", "snapchat.com"}},
	{CategoryNews, []string{"nytimes.com", "bbc.com", "cnn.com", "techcrunch.com", "theverge.com", "wired.com", "arstechnica.com"}},
	{CategoryProductivity, []string{"gmail.com", "outlook.com", "mail.google.com", "notion.so", "slack.com", "asana.com", "trello.com", "monday.com"}},
	{CategoryShopping, []string{"amazon.com", "ebay.com", "etsy.com", "walmart.com", "target.com", "alibaba.com"}},
	{CategoryEntertainment, []string{"spotify.com", "soundcloud.com", "apple.com/music", "pandora.com"}},
	{CategorySearch, []string{"google.com", "bing.com", "duckduckgo.com", "yahoo.com"}},
	{CategoryReference, []string{"wikipedia.org", "wikihow.com", "britannica.com"}},
}

// videoTitleKeywords trigger the video category when found in page titles
// of otherwise unmatched domains.
var videoTitleKeywords = []string{"video", "watch", "episode", "movie", "film"}

// HeuristicCategory categorizes a domain by substring pattern matching,
// falling back to a case-insensitive video keyword probe over the page
// titles. Unrecognized domains map to CategoryOther.
func HeuristicCategory(domain string, titles []string) Category {
	domainLower := strings.ToLower(domain)

	for _, entry := range domainPatterns {
		for _, pattern := range entry.Patterns {
			if strings.Contains(domainLower, pattern) {
				return entry.Category
			}
		}
	}

	if len(titles) > 0 {
		joined := strings.ToLower(strings.Join(titles, " "))
		for _, keyword := range videoTitleKeywords {
			if strings.Contains(joined, keyword) {
				return CategoryVideo
			}
		}
	}

	return CategoryOther
}
