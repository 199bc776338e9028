package seed

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"fireforce/internal/forms"
	"fireforce/internal/store"
	"fireforce/pkg/types"

	"github.com/jackc/pgx/v5/pgxpool"
)

const DefaultCaseCount = 24

// Seeded cases carry this title prefix so Reset can find them again.
const titlePrefix = "[seed] "

var sampleLocations = []string{
	"412 Oakwood Avenue", "Riverside Park, north trail", "Harbor Street Pier 3",
	"Interstate 85, mile marker 12", "Central High School gymnasium",
	"Maple & 9th intersection", "Willow Creek boat ramp", "Stonebridge Apartments, building C",
	"Old Mill Warehouse District", "County Line Road overpass",
}

var sampleReporters = []string{"Station User", "Fire Chief Admin"}

type weightedStatus struct {
	Status types.CaseStatus
	Weight int
}

var weightedStatuses = []weightedStatus{
	{Status: types.StatusPending, Weight: 30},
	{Status: types.StatusActive, Weight: 25},
	{Status: types.StatusResolved, Weight: 30},
	{Status: types.StatusClosed, Weight: 15},
}

var priorities = []types.CasePriority{
	types.PriorityLow, types.PriorityMedium, types.PriorityHigh, types.PriorityCritical,
}

// Cases creates count sample incident reports, cycling through all four
// categories so every dashboard bucket has data.
func Cases(ctx context.Context, cases store.CaseStore, count int) error {
	if count <= 0 {
		fmt.Println("Skipping case seed because count <= 0")
		return nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	batch := make([]types.CaseReport, 0, count)
	for i := 0; i < count; i++ {
		batch = append(batch, sampleCase(rng, i))
	}

	// Insert oldest first, so a prepend-on-create store still ends up
	// newest first.
	sort.Slice(batch, func(i, j int) bool {
		return batch[i].ReportedAt.Before(batch[j].ReportedAt)
	})

	for i := range batch {
		if err := cases.CreateCase(ctx, &batch[i]); err != nil {
			return fmt.Errorf("failed to seed case %d: %w", i, err)
		}
	}

	fmt.Printf("Seeded %d cases\n", len(batch))
	return nil
}

// Reset deletes previously seeded rows from the database.
func Reset(ctx context.Context, pool *pgxpool.Pool) error {
	result, err := pool.Exec(ctx, `DELETE FROM fireforce.cases WHERE title LIKE '[seed] %'`)
	if err != nil {
		return fmt.Errorf("failed to reset seeded cases: %w", err)
	}

	fmt.Printf("Reset seeded cases: %d deleted\n", result.RowsAffected())
	return nil
}

func sampleCase(rng *rand.Rand, i int) types.CaseReport {
	reporter := &types.User{Name: sampleReporters[rng.Intn(len(sampleReporters))]}
	location := sampleLocations[rng.Intn(len(sampleLocations))]
	priority := priorities[rng.Intn(len(priorities))]

	var c types.CaseReport
	switch i % 4 {
	case 0:
		form := forms.NewFireIncidentForm()
		form.Title = titlePrefix + "Structure fire reported"
		form.Description = "Smoke visible from the second floor, occupants evacuating."
		form.Location = location
		form.Priority = string(priority)
		form.FireType = forms.FireTypes[rng.Intn(len(forms.FireTypes))]
		form.BuildingType = forms.BuildingTypes[rng.Intn(len(forms.BuildingTypes))]
		form.Injuries = rng.Intn(3)
		form.ResourcesNeeded = []string{"Fire Engine", "EMS Unit"}
		form.AccessRoute = "Main entrance off the avenue"
		form.WaterSource = "Hydrant at the corner"
		c = form.ToCase(reporter)
	case 1:
		form := forms.NewWaterRescueForm()
		form.Title = titlePrefix + "Swimmer in distress"
		form.Description = "Bystanders report a swimmer unable to reach the bank."
		form.Location = location
		form.Priority = string(priority)
		form.VictimCount = 1 + rng.Intn(2)
		form.WaterType = forms.WaterTypes[rng.Intn(len(forms.WaterTypes))]
		form.CurrentConditions = forms.WaterConditions[rng.Intn(len(forms.WaterConditions))]
		form.Visibility = forms.VisibilityOptions[rng.Intn(len(forms.VisibilityOptions))]
		form.EquipmentNeeded = []string{"Rescue Boat"}
		form.AccessPoint = "Public boat ramp"
		c = form.ToCase(reporter)
	case 2:
		form := forms.NewMedicalAssistForm()
		form.Title = titlePrefix + "Medical assistance requested"
		form.Description = "Caller reports a collapse, patient breathing."
		form.Location = location
		form.Priority = string(priority)
		form.PatientCount = 1 + rng.Intn(3)
		form.InjuryType = forms.InjuryTypes[rng.Intn(len(forms.InjuryTypes))]
		form.Consciousness = forms.ConsciousnessLevels[rng.Intn(len(forms.ConsciousnessLevels))]
		form.ServicesInvolved = []string{"EMS/Ambulance"}
		form.EstimatedDuration = forms.DurationOptions[rng.Intn(len(forms.DurationOptions))]
		form.TransportNeeded = rng.Intn(2) == 0
		c = form.ToCase(reporter)
	default:
		form := forms.NewGeneralIncidentForm()
		form.Title = titlePrefix + "Roadway obstruction"
		form.Description = "Debris blocking a travel lane, traffic backing up."
		form.Location = location
		form.Priority = string(priority)
		form.IncidentType = forms.GeneralIncidentTypes[rng.Intn(len(forms.GeneralIncidentTypes))]
		form.HazardLevel = forms.HazardLevels[rng.Intn(len(forms.HazardLevels))]
		form.AffectedArea = "One block radius"
		form.TrafficImpact = forms.TrafficImpactOptions[rng.Intn(len(forms.TrafficImpactOptions))]
		form.EquipmentNeeded = []string{"Traffic Control"}
		c = form.ToCase(reporter)
	}

	c.Status = pickWeightedStatus(rng)

	// Spread reports over the last 60 days so the analytics time windows
	// show different numbers.
	c.ReportedAt = time.Now().Add(-time.Duration(rng.Intn(60*24)) * time.Hour)

	return c
}

func pickWeightedStatus(rng *rand.Rand) types.CaseStatus {
	total := 0
	for _, ws := range weightedStatuses {
		total += ws.Weight
	}

	roll := rng.Intn(total)
	for _, ws := range weightedStatuses {
		roll -= ws.Weight
		if roll < 0 {
			return ws.Status
		}
	}

	return types.StatusPending
}
