package forms

import (
	"strings"

	"fireforce/pkg/types"
)

var (
	FireTypes = []string{
		"Structure Fire", "Vehicle Fire", "Wildfire", "Electrical Fire",
		"Chemical Fire", "Explosion", "Smoke Investigation", "Other",
	}

	BuildingTypes = []string{
		"Residential", "Commercial", "Industrial", "High-rise",
		"Warehouse", "School", "Hospital", "Other",
	}

	FireResourceOptions = []string{
		"Fire Engine", "Ladder Truck", "Rescue Squad", "Hazmat Unit",
		"EMS Unit", "Fire Chief", "Additional Personnel", "Specialized Equipment",
	}
)

type FireIncidentForm struct {
	Title           string   `form:"title"`
	Description     string   `form:"description"`
	Location        string   `form:"location"`
	Priority        string   `form:"priority"`
	FireType        string   `form:"fire_type"`
	BuildingType    string   `form:"building_type"`
	Casualties      int      `form:"casualties"`
	Injuries        int      `form:"injuries"`
	EstimatedDamage string   `form:"estimated_damage"`
	ResourcesNeeded []string `form:"resources_needed"`
	AccessRoute     string   `form:"access_route"`
	WaterSource     string   `form:"water_source"`
}

func NewFireIncidentForm() *FireIncidentForm {
	return &FireIncidentForm{Priority: string(types.PriorityMedium)}
}

func (f *FireIncidentForm) Validate() map[string]string {
	errs := map[string]string{}

	validateCommon(errs, f.Title, f.Description, f.Location, f.Priority)

	if !required(f.FireType) {
		errs["fire_type"] = "Fire type is required"
	}
	if !required(f.BuildingType) {
		errs["building_type"] = "Building type is required"
	}
	if !required(f.AccessRoute) {
		errs["access_route"] = "Access route is required"
	}
	if !required(f.WaterSource) {
		errs["water_source"] = "Water source is required"
	}
	if f.Casualties < 0 {
		errs["casualties"] = "Casualties cannot be negative"
	}
	if f.Injuries < 0 {
		errs["injuries"] = "Injuries cannot be negative"
	}

	return errs
}

func (f *FireIncidentForm) ToCase(reporter *types.User) types.CaseReport {
	return types.CaseReport{
		Type:        types.CaseTypeFire,
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Location:    strings.TrimSpace(f.Location),
		Priority:    priorityOrDefault(f.Priority),
		Status:      types.StatusPending,
		ReportedBy:  reporterName(reporter),
		Data: types.FireIncidentData{
			FireType:        f.FireType,
			BuildingType:    f.BuildingType,
			Casualties:      f.Casualties,
			Injuries:        f.Injuries,
			EstimatedDamage: f.EstimatedDamage,
			ResourcesNeeded: f.ResourcesNeeded,
			AccessRoute:     strings.TrimSpace(f.AccessRoute),
			WaterSource:     strings.TrimSpace(f.WaterSource),
		},
	}
}

func (f *FireIncidentForm) Options() map[string][]string {
	return map[string][]string{
		"FireTypes":     FireTypes,
		"BuildingTypes": BuildingTypes,
		"Resources":     FireResourceOptions,
		"Priorities":    Priorities,
	}
}
