package store_test

import (
	"context"
	"testing"
	"time"

	"fireforce/internal/store"
	"fireforce/internal/utils"
	"fireforce/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeneralCase(title, reporter string) *types.CaseReport {
	return &types.CaseReport{
		Type:        types.CaseTypeGeneral,
		Title:       title,
		Description: "test case",
		Location:    "Route 9",
		Priority:    types.PriorityMedium,
		Status:      types.StatusPending,
		ReportedBy:  reporter,
		Data: types.GeneralIncidentData{
			IncidentType:  "Fallen Tree",
			HazardLevel:   "Low Risk",
			AffectedArea:  "Shoulder",
			TrafficImpact: "No Impact",
		},
	}
}

func TestMemoryStoreCreateAssignsID(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	c := newGeneralCase("Fallen tree", "Station User")
	require.NoError(t, s.CreateCase(ctx, c))

	assert.Len(t, c.ID, utils.NanoidSize)
	assert.False(t, c.ReportedAt.IsZero())
	assert.Equal(t, c.ReportedAt, c.UpdatedAt)
}

func TestMemoryStoreCreateKeepsBackdatedTimestamp(t *testing.T) {
	s := store.NewMemoryStore()

	reportedAt := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	c := newGeneralCase("Old case", "Station User")
	c.ReportedAt = reportedAt

	require.NoError(t, s.CreateCase(context.Background(), c))

	got, err := s.Case(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, reportedAt, got.ReportedAt)
	assert.Equal(t, reportedAt, got.UpdatedAt)
}

func TestMemoryStoreCreateRejectsMismatchedData(t *testing.T) {
	s := store.NewMemoryStore()

	c := newGeneralCase("Bad case", "Station User")
	c.Data = types.FireIncidentData{}

	require.Error(t, s.CreateCase(context.Background(), c))

	cases, err := s.Cases(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestMemoryStoreNewestFirst(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, s.CreateCase(ctx, newGeneralCase(title, "Station User")))
	}

	cases, err := s.Cases(ctx)
	require.NoError(t, err)
	require.Len(t, cases, 3)

	assert.Equal(t, "third", cases[0].Title)
	assert.Equal(t, "second", cases[1].Title)
	assert.Equal(t, "first", cases[2].Title)
}

func TestMemoryStoreCasesByReporter(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.CreateCase(ctx, newGeneralCase("mine", "Station User")))
	require.NoError(t, s.CreateCase(ctx, newGeneralCase("theirs", "Fire Chief Admin")))

	cases, err := s.CasesByReporter(ctx, "Station User")
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "mine", cases[0].Title)

	cases, err = s.CasesByReporter(ctx, "Nobody")
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestMemoryStoreUpdate(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	c := newGeneralCase("Fallen tree", "Station User")
	require.NoError(t, s.CreateCase(ctx, c))

	newStatus := types.StatusActive
	assigned := "Engine 7"
	require.NoError(t, s.UpdateCase(ctx, c.ID, types.CasePatch{
		Status:     &newStatus,
		AssignedTo: &assigned,
	}))

	got, err := s.Case(ctx, c.ID)
	require.NoError(t, err)

	assert.Equal(t, types.StatusActive, got.Status)
	require.NotNil(t, got.AssignedTo)
	assert.Equal(t, "Engine 7", *got.AssignedTo)

	// Untouched fields survive the patch.
	assert.Equal(t, "Fallen tree", got.Title)
	assert.Equal(t, types.PriorityMedium, got.Priority)
	assert.False(t, got.UpdatedAt.Before(got.ReportedAt))
}

func TestMemoryStoreUpdateMissing(t *testing.T) {
	s := store.NewMemoryStore()

	newStatus := types.StatusActive
	err := s.UpdateCase(context.Background(), "no-such-id", types.CasePatch{Status: &newStatus})
	require.ErrorIs(t, err, types.ErrCaseNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	c := newGeneralCase("Fallen tree", "Station User")
	require.NoError(t, s.CreateCase(ctx, c))

	require.NoError(t, s.DeleteCase(ctx, c.ID))

	_, err := s.Case(ctx, c.ID)
	require.ErrorIs(t, err, types.ErrCaseNotFound)

	// Deleting again reports the same absence.
	require.ErrorIs(t, s.DeleteCase(ctx, c.ID), types.ErrCaseNotFound)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	c := newGeneralCase("Fallen tree", "Station User")
	require.NoError(t, s.CreateCase(ctx, c))

	got, err := s.Case(ctx, c.ID)
	require.NoError(t, err)
	got.Title = "mutated"

	again, err := s.Case(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fallen tree", again.Title)
}
