// Package analyze reconstructs dwell time from point-in-time visit events
// and aggregates the result by domain. Durations are heuristic estimates:
// the gap to the next visit, clamped to a session ceiling.
package analyze

import (
	"sort"
	"time"

	"github.com/runnerr0/lookback/internal/history"
)

const (
	// MaxVisitSeconds caps any single visit at 30 minutes. A larger gap
	// cannot be attributed entirely to engagement.
	MaxVisitSeconds = 1800

	// FinalVisitSeconds is the fixed estimate for the last visit in a
	// sequence, which has no successor to measure against.
	FinalVisitSeconds = 60

	// SessionGapSeconds marks a gap large enough to indicate a new
	// browsing session.
	SessionGapSeconds = 1800
)

// AnnotatedVisit is a visit with its estimated dwell time attached.
type AnnotatedVisit struct {
	history.Visit
	DurationSeconds int64
}

// EstimateDurations annotates each visit with an estimated duration based
// on the gap to the next visit. The input is re-sorted ascending by time
// defensively; the original slice is not modified.
func EstimateDurations(visits []history.Visit) []AnnotatedVisit {
	if len(visits) == 0 {
		return nil
	}

	ordered := make([]history.Visit, len(visits))
	copy(ordered, visits)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Time.Before(ordered[j].Time)
	})

	annotated := make([]AnnotatedVisit, len(ordered))
	for i, v := range ordered {
		var duration int64
		if i < len(ordered)-1 {
			gap := int64(ordered[i+1].Time.Sub(v.Time) / time.Second)
			if gap > SessionGapSeconds {
				duration = MaxVisitSeconds
			} else if gap > MaxVisitSeconds {
				duration = MaxVisitSeconds
			} else {
				duration = gap
			}
		} else {
			duration = FinalVisitSeconds
		}

		if duration < 0 {
			duration = 0
		}
		annotated[i] = AnnotatedVisit{Visit: v, DurationSeconds: duration}
	}

	return annotated
}
