// Package stats orchestrates the analysis pipeline per calendar day and
// reduces the results into daily and weekly statistics. Every entry point
// returns a well-formed result: failures degrade to zero-valued stats with
// an error annotation instead of propagating.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/runnerr0/lookback/internal/analyze"
	"github.com/runnerr0/lookback/internal/classify"
	"github.com/runnerr0/lookback/internal/history"
)

// MaxDays caps the daily listing window.
const MaxDays = 30

// HistorySource reads visit records for a lookback window in hours.
type HistorySource interface {
	Read(ctx context.Context, hours int) ([]history.Visit, error)
}

// DomainCategorizer produces a total domain-to-category mapping.
type DomainCategorizer interface {
	Categorize(ctx context.Context, domains []analyze.DomainAggregate) map[string]classify.Category
}

// TopCategory names the category with the most time in a period.
type TopCategory struct {
	Name       string `json:"name"`
	Time       int64  `json:"time"`
	Percentage int    `json:"percentage"`
}

// CategoryStat is one category's share of a single day.
type CategoryStat struct {
	Time       int64 `json:"time"`
	Visits     int   `json:"visits"`
	Percentage int   `json:"percentage"`
}

// DailyStat summarizes one calendar day of browsing. Computed fresh per
// request, never persisted.
type DailyStat struct {
	Date        string                  `json:"date"`
	DayName     string                  `json:"day_name"`
	TotalTime   int64                   `json:"total_time"`
	TotalVisits int                     `json:"total_visits"`
	UniqueSites int                     `json:"unique_sites"`
	TopCategory *TopCategory            `json:"top_category"`
	Categories  map[string]CategoryStat `json:"categories"`
	Error       string                  `json:"error,omitempty"`
}

// CategoryTotals is one category's summed share of a week.
type CategoryTotals struct {
	Time   int64 `json:"time"`
	Visits int   `json:"visits"`
}

// WeeklySummary aggregates the last seven calendar days.
type WeeklySummary struct {
	Period         string                    `json:"period"`
	TotalTime      int64                     `json:"total_time"`
	TotalVisits    int                       `json:"total_visits"`
	AvgDailyTime   float64                   `json:"avg_daily_time"`
	DaysWithData   int                       `json:"days_with_data"`
	TopCategory    *TopCategory              `json:"top_category"`
	Categories     map[string]CategoryTotals `json:"categories"`
	DailyBreakdown []DailyStat               `json:"daily_breakdown"`
	Error          string                    `json:"error,omitempty"`
}

// Service runs the per-day pipeline.
type Service struct {
	source      HistorySource
	categorizer DomainCategorizer
	now         func() time.Time
	log         *slog.Logger
}

// NewService wires a stats service.
func NewService(source HistorySource, categorizer DomainCategorizer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		source:      source,
		categorizer: categorizer,
		now:         time.Now,
		log:         logger,
	}
}

// DailyStats computes stats for the last `days` calendar days, most recent
// first. days is clamped to [1, MaxDays]. A failing day yields a zero stat
// with an error annotation; sibling days are unaffected.
func (s *Service) DailyStats(ctx context.Context, days int) []DailyStat {
	if days < 1 {
		days = 1
	}
	if days > MaxDays {
		days = MaxDays
	}

	stats := make([]DailyStat, 0, days)
	for offset := 0; offset < days; offset++ {
		target := s.now().AddDate(0, 0, -offset)
		stat, err := s.processDay(ctx, target, offset)
		if err != nil {
			s.log.Warn("day processing failed", "date", target.Format("2006-01-02"), "error", err)
			stat = zeroDailyStat(target)
			stat.Error = err.Error()
		}
		stats = append(stats, stat)
	}
	return stats
}

// processDay runs the full pipeline restricted to one calendar day. A
// panic inside the pipeline is converted to an error so one broken day
// cannot take down the listing.
func (s *Service) processDay(ctx context.Context, target time.Time, offset int) (stat DailyStat, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("day pipeline panic: %v", r)
		}
	}()

	stat = zeroDailyStat(target)

	visits, err := s.source.Read(ctx, 24*(offset+1))
	if err != nil {
		return DailyStat{}, err
	}

	startOfDay := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, target.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	var dayVisits []history.Visit
	for _, v := range visits {
		if !v.Time.Before(startOfDay) && v.Time.Before(endOfDay) {
			dayVisits = append(dayVisits, v)
		}
	}

	if len(dayVisits) == 0 {
		return stat, nil
	}

	annotated := analyze.EstimateDurations(dayVisits)
	domains := analyze.AggregateByDomain(annotated)
	mapping := s.categorizer.Categorize(ctx, domains)
	categories := classify.AggregateByCategory(domains, mapping)

	var totalTime int64
	for _, d := range domains {
		totalTime += d.TotalDurationSeconds
	}

	stat.TotalTime = totalTime
	stat.TotalVisits = len(dayVisits)
	stat.UniqueSites = len(domains)
	stat.TopCategory = topCategoryOf(categories, totalTime)

	for _, cat := range categories {
		stat.Categories[cat.Category.DisplayName()] = CategoryStat{
			Time:       cat.TotalDurationSeconds,
			Visits:     cat.VisitCount,
			Percentage: percentage(cat.TotalDurationSeconds, totalTime),
		}
	}

	return stat, nil
}

// WeeklySummary reduces the last seven daily stats. The average daily time
// divides by seven unconditionally: the period is a calendar week, not the
// set of days with data.
func (s *Service) WeeklySummary(ctx context.Context) WeeklySummary {
	daily := s.DailyStats(ctx, 7)

	summary := WeeklySummary{
		Period:         "Last 7 Days",
		Categories:     make(map[string]CategoryTotals),
		DailyBreakdown: daily,
	}

	for _, day := range daily {
		summary.TotalTime += day.TotalTime
		summary.TotalVisits += day.TotalVisits
		if day.TotalVisits > 0 {
			summary.DaysWithData++
		}
		for name, cat := range day.Categories {
			totals := summary.Categories[name]
			totals.Time += cat.Time
			totals.Visits += cat.Visits
			summary.Categories[name] = totals
		}
	}

	summary.AvgDailyTime = float64(summary.TotalTime) / 7

	if len(summary.Categories) > 0 {
		names := make([]string, 0, len(summary.Categories))
		for name := range summary.Categories {
			names = append(names, name)
		}
		sort.Strings(names)

		top := names[0]
		for _, name := range names[1:] {
			if summary.Categories[name].Time > summary.Categories[top].Time {
				top = name
			}
		}
		summary.TopCategory = &TopCategory{
			Name:       top,
			Time:       summary.Categories[top].Time,
			Percentage: percentage(summary.Categories[top].Time, summary.TotalTime),
		}
	}

	return summary
}

func zeroDailyStat(target time.Time) DailyStat {
	return DailyStat{
		Date:       target.Format("2006-01-02"),
		DayName:    target.Weekday().String(),
		Categories: make(map[string]CategoryStat),
	}
}

// topCategoryOf picks the category with the most time; ties keep the first
// encountered.
func topCategoryOf(categories []classify.CategoryAggregate, totalTime int64) *TopCategory {
	if len(categories) == 0 {
		return nil
	}

	top := categories[0]
	for _, c := range categories[1:] {
		if c.TotalDurationSeconds > top.TotalDurationSeconds {
			top = c
		}
	}

	return &TopCategory{
		Name:       top.Category.DisplayName(),
		Time:       top.TotalDurationSeconds,
		Percentage: percentage(top.TotalDurationSeconds, totalTime),
	}
}

func percentage(part, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(part * 100 / total)
}
