package analyze

import (
	"net/url"
	"strings"
)

// UnknownDomain is the sentinel bucket for URLs whose host cannot be
// parsed.
const UnknownDomain = "unknown"

// DomainAggregate summarizes all visits to a single domain.
type DomainAggregate struct {
	Domain               string
	TotalDurationSeconds int64
	VisitCount           int
	Visits               []AnnotatedVisit
	// Titles holds distinct non-empty page titles in first-seen order.
	Titles []string
}

// ExtractDomain returns the host of a URL with a leading "www." stripped.
// A malformed or host-less URL maps to UnknownDomain.
func ExtractDomain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return UnknownDomain
	}

	domain := parsed.Host
	domain = strings.TrimPrefix(domain, "www.")
	if domain == "" {
		return UnknownDomain
	}
	return domain
}

// AggregateByDomain groups annotated visits into per-domain summaries.
// Aggregates are returned in domain encounter order.
func AggregateByDomain(visits []AnnotatedVisit) []DomainAggregate {
	index := make(map[string]int)
	var aggregates []DomainAggregate

	for _, visit := range visits {
		domain := ExtractDomain(visit.URL)

		i, ok := index[domain]
		if !ok {
			i = len(aggregates)
			index[domain] = i
			aggregates = append(aggregates, DomainAggregate{Domain: domain})
		}

		agg := &aggregates[i]
		agg.TotalDurationSeconds += visit.DurationSeconds
		agg.VisitCount++
		agg.Visits = append(agg.Visits, visit)
		if visit.Title != "" && !containsTitle(agg.Titles, visit.Title) {
			agg.Titles = append(agg.Titles, visit.Title)
		}
	}

	return aggregates
}

func containsTitle(titles []string, title string) bool {
	for _, t := range titles {
		if t == title {
			return true
		}
	}
	return false
}
