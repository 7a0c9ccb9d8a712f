package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/lookback/internal/analyze"
)

func categoryFixture() ([]analyze.DomainAggregate, map[string]Category) {
	domains := []analyze.DomainAggregate{
		{Domain: "github.com", TotalDurationSeconds: 600, VisitCount: 4, Titles: []string{"Repo"}},
		{Domain: "youtube.com", TotalDurationSeconds: 900, VisitCount: 3},
		{Domain: "stackoverflow.com", TotalDurationSeconds: 1200, VisitCount: 5},
	}
	mapping := map[string]Category{
		"github.com":        CategoryDevelopment,
		"youtube.com":       CategoryVideo,
		"stackoverflow.com": CategoryDevelopment,
	}
	return domains, mapping
}

func TestAggregateByCategory_SumsAndCounts(t *testing.T) {
	domains, mapping := categoryFixture()

	aggregates := AggregateByCategory(domains, mapping)
	require.Len(t, aggregates, 2)

	dev := aggregates[0]
	assert.Equal(t, CategoryDevelopment, dev.Category)
	assert.Equal(t, int64(1800), dev.TotalDurationSeconds)
	assert.Equal(t, 9, dev.VisitCount)

	// Category sums equal the sum of their member domain shares.
	var shareSum int64
	for _, d := range dev.Domains {
		shareSum += d.DurationSeconds
	}
	assert.Equal(t, dev.TotalDurationSeconds, shareSum)
}

func TestAggregateByCategory_CategoryEncounterOrder(t *testing.T) {
	domains, mapping := categoryFixture()

	aggregates := AggregateByCategory(domains, mapping)
	require.Len(t, aggregates, 2)
	assert.Equal(t, CategoryDevelopment, aggregates[0].Category)
	assert.Equal(t, CategoryVideo, aggregates[1].Category)
}

func TestAggregateByCategory_DomainsSortedByDurationDesc(t *testing.T) {
	domains, mapping := categoryFixture()

	aggregates := AggregateByCategory(domains, mapping)
	dev := aggregates[0]
	require.Len(t, dev.Domains, 2)
	assert.Equal(t, "stackoverflow.com", dev.Domains[0].Domain)
	assert.Equal(t, "github.com", dev.Domains[1].Domain)
}

// Equal durations keep domain encounter order.
func TestAggregateByCategory_TiePreservesEncounterOrder(t *testing.T) {
	domains := []analyze.DomainAggregate{
		{Domain: "b.dev", TotalDurationSeconds: 300, VisitCount: 1},
		{Domain: "a.dev", TotalDurationSeconds: 300, VisitCount: 1},
	}
	mapping := map[string]Category{
		"b.dev": CategoryDevelopment,
		"a.dev": CategoryDevelopment,
	}

	aggregates := AggregateByCategory(domains, mapping)
	require.Len(t, aggregates, 1)
	assert.Equal(t, "b.dev", aggregates[0].Domains[0].Domain)
	assert.Equal(t, "a.dev", aggregates[0].Domains[1].Domain)
}

func TestAggregateByCategory_MissingMappingFallsToOther(t *testing.T) {
	domains := []analyze.DomainAggregate{
		{Domain: "unmapped.example", TotalDurationSeconds: 120, VisitCount: 1},
	}

	aggregates := AggregateByCategory(domains, map[string]Category{})
	require.Len(t, aggregates, 1)
	assert.Equal(t, CategoryOther, aggregates[0].Category)
	assert.Equal(t, int64(120), aggregates[0].TotalDurationSeconds)
}

func TestAggregateByCategory_Empty(t *testing.T) {
	assert.Empty(t, AggregateByCategory(nil, nil))
}
