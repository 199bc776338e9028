package forms

import (
	"strings"

	"fireforce/pkg/types"
)

var (
	GeneralIncidentTypes = []string{
		"Fallen Tree", "Road Hazard", "Power Line Down", "Gas Leak", "Flooding",
		"Building Collapse", "Elevator Rescue", "Animal Rescue", "Public Assist", "Other",
	}

	HazardLevels = []string{
		"Low Risk", "Moderate Risk", "High Risk", "Extreme Risk",
	}

	TrafficImpactOptions = []string{
		"No Impact", "Lane Closure", "Partial Road Closure", "Full Road Closure", "Detour Required",
	}

	GeneralEquipmentOptions = []string{
		"Heavy Rescue", "Chainsaw", "Crane/Boom", "Generators", "Lighting Equipment",
		"Traffic Control", "Hazmat Equipment", "Specialized Tools",
	}

	ClearTimeOptions = []string{
		"30 minutes", "1 hour", "2-4 hours", "4-8 hours", "More than 8 hours", "Unknown",
	}

	PublicSafetyOptions = []string{
		"Area Secure", "Evacuation Required", "Shelter in Place", "Traffic Diversion", "Public Warning Issued",
	}
)

type GeneralIncidentForm struct {
	Title              string   `form:"title"`
	Description        string   `form:"description"`
	Location           string   `form:"location"`
	Priority           string   `form:"priority"`
	IncidentType       string   `form:"incident_type"`
	HazardLevel        string   `form:"hazard_level"`
	AffectedArea       string   `form:"affected_area"`
	TrafficImpact      string   `form:"traffic_impact"`
	EquipmentNeeded    []string `form:"equipment_needed"`
	EstimatedClearTime string   `form:"estimated_clear_time"`
	PublicSafety       string   `form:"public_safety"`
}

func NewGeneralIncidentForm() *GeneralIncidentForm {
	return &GeneralIncidentForm{Priority: string(types.PriorityMedium)}
}

func (f *GeneralIncidentForm) Validate() map[string]string {
	errs := map[string]string{}

	validateCommon(errs, f.Title, f.Description, f.Location, f.Priority)

	if !required(f.IncidentType) {
		errs["incident_type"] = "Incident type is required"
	}
	if !required(f.HazardLevel) {
		errs["hazard_level"] = "Hazard level is required"
	}
	if !required(f.AffectedArea) {
		errs["affected_area"] = "Affected area is required"
	}
	if !required(f.TrafficImpact) {
		errs["traffic_impact"] = "Traffic impact is required"
	}

	return errs
}

func (f *GeneralIncidentForm) ToCase(reporter *types.User) types.CaseReport {
	return types.CaseReport{
		Type:        types.CaseTypeGeneral,
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Location:    strings.TrimSpace(f.Location),
		Priority:    priorityOrDefault(f.Priority),
		Status:      types.StatusPending,
		ReportedBy:  reporterName(reporter),
		Data: types.GeneralIncidentData{
			IncidentType:       f.IncidentType,
			HazardLevel:        f.HazardLevel,
			AffectedArea:       strings.TrimSpace(f.AffectedArea),
			TrafficImpact:      f.TrafficImpact,
			EquipmentNeeded:    f.EquipmentNeeded,
			EstimatedClearTime: f.EstimatedClearTime,
			PublicSafety:       f.PublicSafety,
		},
	}
}

func (f *GeneralIncidentForm) Options() map[string][]string {
	return map[string][]string{
		"IncidentTypes": GeneralIncidentTypes,
		"HazardLevels":  HazardLevels,
		"TrafficImpact": TrafficImpactOptions,
		"Equipment":     GeneralEquipmentOptions,
		"ClearTimes":    ClearTimeOptions,
		"PublicSafety":  PublicSafetyOptions,
		"Priorities":    Priorities,
	}
}
