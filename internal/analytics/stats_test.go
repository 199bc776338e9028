package analytics_test

import (
	"testing"
	"time"

	"fireforce/internal/analytics"
	"fireforce/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCase(status types.CaseStatus, caseType types.CaseType, priority types.CasePriority, reporter string, reportedAt time.Time) *types.CaseReport {
	return &types.CaseReport{
		ID:         reporter + "-" + string(status) + "-" + reportedAt.Format(time.RFC3339Nano),
		Type:       caseType,
		Title:      "Sample case",
		Status:     status,
		Priority:   priority,
		ReportedBy: reporter,
		ReportedAt: reportedAt,
	}
}

func TestAggregate(t *testing.T) {
	now := time.Now()
	cases := []*types.CaseReport{
		sampleCase(types.StatusResolved, types.CaseTypeFire, types.PriorityLow, "Station User", now),
		sampleCase(types.StatusClosed, types.CaseTypeFire, types.PriorityHigh, "Station User", now),
		sampleCase(types.StatusPending, types.CaseTypeFire, types.PriorityCritical, "Fire Chief Admin", now),
	}

	stats := analytics.Aggregate(cases)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 3, stats.Type("fire"))
	assert.Equal(t, 1, stats.Status("resolved"))
	assert.Equal(t, 1, stats.Status("closed"))
	assert.Equal(t, 1, stats.Status("pending"))
	assert.Equal(t, 1, stats.Priority("low"))
	assert.Equal(t, 1, stats.Priority("high"))
	assert.Equal(t, 1, stats.Priority("critical"))
	assert.Equal(t, 2, stats.UniqueReporters)

	// round(100 * 2/3)
	assert.Equal(t, 67, stats.ResolutionRate)
}

func TestAggregateBucketsSumToTotal(t *testing.T) {
	now := time.Now()
	cases := []*types.CaseReport{
		sampleCase(types.StatusPending, types.CaseTypeFire, types.PriorityLow, "a", now),
		sampleCase(types.StatusActive, types.CaseTypeWater, types.PriorityMedium, "b", now),
		sampleCase(types.StatusResolved, types.CaseTypeMedical, types.PriorityHigh, "c", now),
		sampleCase(types.StatusClosed, types.CaseTypeGeneral, types.PriorityCritical, "a", now),
		sampleCase(types.StatusActive, types.CaseTypeGeneral, types.PriorityLow, "b", now),
	}

	stats := analytics.Aggregate(cases)

	statusSum := 0
	for _, n := range stats.ByStatus {
		statusSum += n
	}
	typeSum := 0
	for _, n := range stats.ByType {
		typeSum += n
	}
	prioritySum := 0
	for _, n := range stats.ByPriority {
		prioritySum += n
	}

	assert.Equal(t, stats.Total, statusSum)
	assert.Equal(t, stats.Total, typeSum)
	assert.Equal(t, stats.Total, prioritySum)
}

func TestAggregateEmpty(t *testing.T) {
	stats := analytics.Aggregate(nil)

	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.ResolutionRate)
	assert.Zero(t, stats.UniqueReporters)
	assert.Zero(t, stats.CasesPerReporter())
}

func TestFilterByWindow(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	cases := []*types.CaseReport{
		sampleCase(types.StatusPending, types.CaseTypeFire, types.PriorityLow, "a", now.Add(-2*time.Hour)),
		sampleCase(types.StatusPending, types.CaseTypeFire, types.PriorityLow, "a", now.AddDate(0, 0, -3)),
		sampleCase(types.StatusPending, types.CaseTypeFire, types.PriorityLow, "a", now.AddDate(0, 0, -10)),
		sampleCase(types.StatusPending, types.CaseTypeFire, types.PriorityLow, "a", now.AddDate(0, 0, -40)),
	}

	assert.Len(t, analytics.FilterByWindow(cases, analytics.WindowDay, now), 1)
	assert.Len(t, analytics.FilterByWindow(cases, analytics.WindowWeek, now), 2)
	assert.Len(t, analytics.FilterByWindow(cases, analytics.WindowMonth, now), 3)

	// The all window returns the input untouched.
	all := analytics.FilterByWindow(cases, analytics.WindowAll, now)
	require.Len(t, all, 4)
	assert.Equal(t, cases, all)

	// Widening the window never drops a case a narrower window kept.
	day := analytics.FilterByWindow(cases, analytics.WindowDay, now)
	week := analytics.FilterByWindow(cases, analytics.WindowWeek, now)
	for _, c := range day {
		assert.Contains(t, week, c)
	}
}

func TestFilterByWindowInvalid(t *testing.T) {
	now := time.Now()
	cases := []*types.CaseReport{
		sampleCase(types.StatusPending, types.CaseTypeFire, types.PriorityLow, "a", now.AddDate(-1, 0, 0)),
	}

	assert.Equal(t, cases, analytics.FilterByWindow(cases, analytics.TimeWindow("90d"), now))
}

func TestFilterCases(t *testing.T) {
	now := time.Now()
	riverRescue := sampleCase(types.StatusActive, types.CaseTypeWater, types.PriorityHigh, "Station User", now)
	riverRescue.Title = "Swimmer in the river"
	riverRescue.Location = "Miller Bridge"

	kitchenFire := sampleCase(types.StatusPending, types.CaseTypeFire, types.PriorityMedium, "Fire Chief Admin", now)
	kitchenFire.Title = "Kitchen fire"
	kitchenFire.Description = "Grease fire, extinguished on arrival"

	cases := []*types.CaseReport{riverRescue, kitchenFire}

	filtered := analytics.FilterCases(cases, analytics.SearchFilter{Query: "RIVER"})
	require.Len(t, filtered, 1)
	assert.Equal(t, riverRescue.ID, filtered[0].ID)

	filtered = analytics.FilterCases(cases, analytics.SearchFilter{Query: "chief"})
	require.Len(t, filtered, 1)
	assert.Equal(t, kitchenFire.ID, filtered[0].ID)

	filtered = analytics.FilterCases(cases, analytics.SearchFilter{Status: "pending"})
	require.Len(t, filtered, 1)
	assert.Equal(t, kitchenFire.ID, filtered[0].ID)

	filtered = analytics.FilterCases(cases, analytics.SearchFilter{Type: "water", Priority: "high"})
	require.Len(t, filtered, 1)
	assert.Equal(t, riverRescue.ID, filtered[0].ID)

	assert.Len(t, analytics.FilterCases(cases, analytics.SearchFilter{Status: "all", Type: "all"}), 2)
	assert.Empty(t, analytics.FilterCases(cases, analytics.SearchFilter{Query: "no such case"}))
}
