package forms

import (
	"strings"

	"fireforce/pkg/types"
)

var (
	WaterTypes = []string{
		"River", "Lake", "Ocean", "Pool", "Pond", "Stream", "Flood Water", "Other",
	}

	WaterConditions = []string{
		"Calm", "Choppy", "Rough", "Swift Current", "Still Water", "Ice Coverage", "Dangerous Current",
	}

	VisibilityOptions = []string{
		"Excellent (>50ft)", "Good (20-50ft)", "Fair (10-20ft)", "Poor (5-10ft)", "Very Poor (<5ft)",
	}

	WaterEquipmentOptions = []string{
		"Dive Team", "Rescue Boat", "Swift Water Rescue", "Ice Rescue Equipment",
		"Underwater Camera", "Sonar Equipment", "Helicopter Support", "Additional Divers",
	}
)

type WaterRescueForm struct {
	Title             string   `form:"title"`
	Description       string   `form:"description"`
	Location          string   `form:"location"`
	Priority          string   `form:"priority"`
	VictimCount       int      `form:"victim_count"`
	WaterType         string   `form:"water_type"`
	CurrentConditions string   `form:"current_conditions"`
	Visibility        string   `form:"visibility"`
	EquipmentNeeded   []string `form:"equipment_needed"`
	AccessPoint       string   `form:"access_point"`
	AdditionalHazards string   `form:"additional_hazards"`
}

func NewWaterRescueForm() *WaterRescueForm {
	return &WaterRescueForm{Priority: string(types.PriorityMedium)}
}

func (f *WaterRescueForm) Validate() map[string]string {
	errs := map[string]string{}

	validateCommon(errs, f.Title, f.Description, f.Location, f.Priority)

	if !required(f.WaterType) {
		errs["water_type"] = "Water type is required"
	}
	if !required(f.CurrentConditions) {
		errs["current_conditions"] = "Current conditions are required"
	}
	if !required(f.Visibility) {
		errs["visibility"] = "Visibility information is required"
	}
	if !required(f.AccessPoint) {
		errs["access_point"] = "Access point is required"
	}
	if f.VictimCount < 0 {
		errs["victim_count"] = "Victim count cannot be negative"
	}

	return errs
}

func (f *WaterRescueForm) ToCase(reporter *types.User) types.CaseReport {
	return types.CaseReport{
		Type:        types.CaseTypeWater,
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Location:    strings.TrimSpace(f.Location),
		Priority:    priorityOrDefault(f.Priority),
		Status:      types.StatusPending,
		ReportedBy:  reporterName(reporter),
		Data: types.WaterRescueData{
			VictimCount:       f.VictimCount,
			WaterType:         f.WaterType,
			CurrentConditions: f.CurrentConditions,
			Visibility:        f.Visibility,
			EquipmentNeeded:   f.EquipmentNeeded,
			AccessPoint:       strings.TrimSpace(f.AccessPoint),
			AdditionalHazards: f.AdditionalHazards,
		},
	}
}

func (f *WaterRescueForm) Options() map[string][]string {
	return map[string][]string{
		"WaterTypes": WaterTypes,
		"Conditions": WaterConditions,
		"Visibility": VisibilityOptions,
		"Equipment":  WaterEquipmentOptions,
		"Priorities": Priorities,
	}
}
