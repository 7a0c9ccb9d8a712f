package classify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/runnerr0/lookback/internal/analyze"
)

// DefaultBatchSize bounds how many domains go into one remote call.
const DefaultBatchSize = 20

// Categorizer produces a total domain-to-category mapping: a deterministic
// pattern pass first, then batched remote classification for the rest,
// falling back to the deterministic result on any remote failure.
type Categorizer struct {
	remote    RemoteClassifier
	batchSize int
	log       *slog.Logger
}

// NewCategorizer wires a Categorizer. remote may be nil, in which case
// only the deterministic phase runs. batchSize <= 0 uses the default.
func NewCategorizer(remote RemoteClassifier, batchSize int, logger *slog.Logger) *Categorizer {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Categorizer{remote: remote, batchSize: batchSize, log: logger}
}

// Categorize maps every input domain to a category. The returned mapping
// is total over the input regardless of remote outcome: domains the remote
// phase cannot settle keep their deterministic result.
func (c *Categorizer) Categorize(ctx context.Context, domains []analyze.DomainAggregate) map[string]Category {
	mapping := make(map[string]Category, len(domains))
	var deferred []DomainSample

	for _, agg := range domains {
		category := HeuristicCategory(agg.Domain, agg.Titles)
		if category != CategoryOther {
			mapping[agg.Domain] = category
			continue
		}
		mapping[agg.Domain] = CategoryOther
		deferred = append(deferred, DomainSample{Domain: agg.Domain, Titles: agg.Titles})
	}

	if len(deferred) == 0 || c.remote == nil {
		return mapping
	}

	for domain, category := range c.classifyDeferred(ctx, deferred) {
		mapping[domain] = category
	}

	return mapping
}

// classifyDeferred splits the deferred domains into batches and dispatches
// them concurrently. Batches are disjoint, so results merge by union.
func (c *Categorizer) classifyDeferred(ctx context.Context, deferred []DomainSample) map[string]Category {
	var batches [][]DomainSample
	for start := 0; start < len(deferred); start += c.batchSize {
		end := start + c.batchSize
		if end > len(deferred) {
			end = len(deferred)
		}
		batches = append(batches, deferred[start:end])
	}

	merged := make(map[string]Category)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, batch := range batches {
		wg.Add(1)
		go func(batch []DomainSample) {
			defer wg.Done()

			result, err := c.remote.Classify(ctx, batch)
			if err != nil {
				c.log.Warn("remote classification failed, using heuristic fallback",
					"domains", len(batch), "error", err)
				return
			}

			mu.Lock()
			for _, sample := range batch {
				if category, ok := result[sample.Domain]; ok {
					merged[sample.Domain] = category
				}
			}
			mu.Unlock()
		}(batch)
	}

	wg.Wait()

	if len(merged) > 0 {
		c.log.Debug("remote classification merged", "domains", sortedDomains(merged))
	}
	return merged
}
