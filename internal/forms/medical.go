package forms

import (
	"strings"

	"fireforce/pkg/types"
)

var (
	InjuryTypes = []string{
		"Cardiac Emergency", "Respiratory Distress", "Trauma/Injury", "Overdose",
		"Stroke", "Seizure", "Burns", "Fall Injury", "Vehicle Accident", "Other",
	}

	ConsciousnessLevels = []string{
		"Alert and Responsive", "Drowsy but Responsive", "Responds to Voice",
		"Responds to Pain Only", "Unresponsive", "Unknown",
	}

	ServiceOptions = []string{
		"EMS/Ambulance", "Police Department", "Hospital", "Air Ambulance",
		"Hazmat Team", "Search and Rescue", "Coroner", "Social Services",
	}

	DurationOptions = []string{
		"15-30 minutes", "30-60 minutes", "1-2 hours", "2-4 hours", "More than 4 hours",
	}
)

type MedicalAssistForm struct {
	Title             string   `form:"title"`
	Description       string   `form:"description"`
	Location          string   `form:"location"`
	Priority          string   `form:"priority"`
	PatientCount      int      `form:"patient_count"`
	InjuryType        string   `form:"injury_type"`
	Consciousness     string   `form:"consciousness"`
	ServicesInvolved  []string `form:"services_involved"`
	EstimatedDuration string   `form:"estimated_duration"`
	SpecialEquipment  string   `form:"special_equipment"`
	TransportNeeded   bool     `form:"transport_needed"`
}

func NewMedicalAssistForm() *MedicalAssistForm {
	return &MedicalAssistForm{
		Priority:     string(types.PriorityMedium),
		PatientCount: 1,
	}
}

func (f *MedicalAssistForm) Validate() map[string]string {
	errs := map[string]string{}

	validateCommon(errs, f.Title, f.Description, f.Location, f.Priority)

	if !required(f.InjuryType) {
		errs["injury_type"] = "Injury type is required"
	}
	if !required(f.Consciousness) {
		errs["consciousness"] = "Consciousness level is required"
	}
	if !required(f.EstimatedDuration) {
		errs["estimated_duration"] = "Estimated duration is required"
	}
	if f.PatientCount < 1 {
		errs["patient_count"] = "At least one patient is required"
	}

	return errs
}

func (f *MedicalAssistForm) ToCase(reporter *types.User) types.CaseReport {
	return types.CaseReport{
		Type:        types.CaseTypeMedical,
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Location:    strings.TrimSpace(f.Location),
		Priority:    priorityOrDefault(f.Priority),
		Status:      types.StatusPending,
		ReportedBy:  reporterName(reporter),
		Data: types.MedicalAssistData{
			PatientCount:      f.PatientCount,
			InjuryType:        f.InjuryType,
			Consciousness:     f.Consciousness,
			ServicesInvolved:  f.ServicesInvolved,
			EstimatedDuration: f.EstimatedDuration,
			SpecialEquipment:  f.SpecialEquipment,
			TransportNeeded:   f.TransportNeeded,
		},
	}
}

func (f *MedicalAssistForm) Options() map[string][]string {
	return map[string][]string{
		"InjuryTypes":   InjuryTypes,
		"Consciousness": ConsciousnessLevels,
		"Services":      ServiceOptions,
		"Durations":     DurationOptions,
		"Priorities":    Priorities,
	}
}
