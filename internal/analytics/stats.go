// Package analytics derives dashboard statistics from a case list. Every
// function is pure: results depend only on the cases passed in, so pages
// recompute on each request and never go stale.
package analytics

import (
	"math"
	"strings"
	"time"

	"fireforce/pkg/types"
)

// TimeWindow selects how far back the analytics pages look.
type TimeWindow string

const (
	WindowDay   TimeWindow = "1d"
	WindowWeek  TimeWindow = "7d"
	WindowMonth TimeWindow = "30d"
	WindowAll   TimeWindow = "all"
)

func (w TimeWindow) Valid() bool {
	switch w {
	case WindowDay, WindowWeek, WindowMonth, WindowAll:
		return true
	}
	return false
}

func (w TimeWindow) days() int {
	switch w {
	case WindowDay:
		return 1
	case WindowWeek:
		return 7
	case WindowMonth:
		return 30
	}
	return 0
}

// Aggregate computes the dashboard stats over the given cases.
func Aggregate(cases []*types.CaseReport) types.Stats {
	stats := types.Stats{
		Total:      len(cases),
		ByStatus:   make(map[types.CaseStatus]int),
		ByType:     make(map[types.CaseType]int),
		ByPriority: make(map[types.CasePriority]int),
	}

	reporters := make(map[string]struct{})
	for _, c := range cases {
		stats.ByStatus[c.Status]++
		stats.ByType[c.Type]++
		stats.ByPriority[c.Priority]++
		reporters[c.ReportedBy] = struct{}{}
	}
	stats.UniqueReporters = len(reporters)

	if stats.Total > 0 {
		resolved := stats.ByStatus[types.StatusResolved] + stats.ByStatus[types.StatusClosed]
		stats.ResolutionRate = int(math.Round(float64(resolved) / float64(stats.Total) * 100))
	}

	return stats
}

// FilterByWindow keeps cases reported within the window ending at now.
// WindowAll returns the input unchanged.
func FilterByWindow(cases []*types.CaseReport, window TimeWindow, now time.Time) []*types.CaseReport {
	if window == WindowAll || !window.Valid() {
		return cases
	}

	cutoff := now.Add(-time.Duration(window.days()) * 24 * time.Hour)

	out := make([]*types.CaseReport, 0, len(cases))
	for _, c := range cases {
		if !c.ReportedAt.Before(cutoff) {
			out = append(out, c)
		}
	}

	return out
}

// SearchFilter narrows the admin case-management list. Empty query and
// "all" bucket values match everything.
type SearchFilter struct {
	Query    string
	Status   string
	Type     string
	Priority string
}

func FilterCases(cases []*types.CaseReport, filter SearchFilter) []*types.CaseReport {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]*types.CaseReport, 0, len(cases))
	for _, c := range cases {
		if query != "" && !matchesQuery(c, query) {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && string(c.Status) != filter.Status {
			continue
		}
		if filter.Type != "" && filter.Type != "all" && string(c.Type) != filter.Type {
			continue
		}
		if filter.Priority != "" && filter.Priority != "all" && string(c.Priority) != filter.Priority {
			continue
		}
		out = append(out, c)
	}

	return out
}

func matchesQuery(c *types.CaseReport, query string) bool {
	return strings.Contains(strings.ToLower(c.Title), query) ||
		strings.Contains(strings.ToLower(c.Description), query) ||
		strings.Contains(strings.ToLower(c.Location), query) ||
		strings.Contains(strings.ToLower(c.ReportedBy), query)
}
