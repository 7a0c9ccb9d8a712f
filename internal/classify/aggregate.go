package classify

import (
	"sort"

	"github.com/runnerr0/lookback/internal/analyze"
)

// DomainShare is one domain's contribution inside a category aggregate.
type DomainShare struct {
	Domain          string
	DurationSeconds int64
	VisitCount      int
	Titles          []string
}

// CategoryAggregate combines the domain aggregates assigned to one
// category. Sums equal the member domain sums by construction.
type CategoryAggregate struct {
	Category             Category
	TotalDurationSeconds int64
	VisitCount           int
	// Domains are sorted descending by duration; ties preserve domain
	// encounter order.
	Domains []DomainShare
}

// AggregateByCategory folds domain aggregates through the mapping into
// per-category aggregates, returned in category encounter order. Domains
// missing from the mapping land in CategoryOther.
func AggregateByCategory(domains []analyze.DomainAggregate, mapping map[string]Category) []CategoryAggregate {
	index := make(map[Category]int)
	var aggregates []CategoryAggregate

	for _, agg := range domains {
		category, ok := mapping[agg.Domain]
		if !ok {
			category = CategoryOther
		}

		i, found := index[category]
		if !found {
			i = len(aggregates)
			index[category] = i
			aggregates = append(aggregates, CategoryAggregate{Category: category})
		}

		ca := &aggregates[i]
		ca.TotalDurationSeconds += agg.TotalDurationSeconds
		ca.VisitCount += agg.VisitCount
		ca.Domains = append(ca.Domains, DomainShare{
			Domain:          agg.Domain,
			DurationSeconds: agg.TotalDurationSeconds,
			VisitCount:      agg.VisitCount,
			Titles:          agg.Titles,
		})
	}

	for i := range aggregates {
		domains := aggregates[i].Domains
		sort.SliceStable(domains, func(a, b int) bool {
			return domains[a].DurationSeconds > domains[b].DurationSeconds
		})
	}

	return aggregates
}
