// Package forms holds one controller per incident category: the submitted
// field set, its required-field rules, and the construction of the tagged
// case record handed to the store.
package forms

import (
	"strings"

	"fireforce/pkg/types"
)

// UnknownReporter is stamped when no session identity is present. Report
// routes sit behind RequireAuth, so seeing it in data means the session
// middleware and the form handler disagree.
const UnknownReporter = "Unknown"

var Priorities = []string{
	string(types.PriorityLow),
	string(types.PriorityMedium),
	string(types.PriorityHigh),
	string(types.PriorityCritical),
}

// CategoryForm is what the report handlers need from each category's form.
type CategoryForm interface {
	Validate() map[string]string
	ToCase(reporter *types.User) types.CaseReport
	Options() map[string][]string
}

func NewCategoryForm(caseType types.CaseType) (CategoryForm, bool) {
	switch caseType {
	case types.CaseTypeFire:
		return NewFireIncidentForm(), true
	case types.CaseTypeWater:
		return NewWaterRescueForm(), true
	case types.CaseTypeMedical:
		return NewMedicalAssistForm(), true
	case types.CaseTypeGeneral:
		return NewGeneralIncidentForm(), true
	}
	return nil, false
}

func required(v string) bool {
	return strings.TrimSpace(v) != ""
}

// validateCommon applies the title/description/location rules shared by all
// four categories, plus the priority check.
func validateCommon(errs map[string]string, title, description, location, priority string) {
	if !required(title) {
		errs["title"] = "Title is required"
	}
	if !required(description) {
		errs["description"] = "Description is required"
	}
	if !required(location) {
		errs["location"] = "Location is required"
	}
	if priority != "" && !types.CasePriority(priority).Valid() {
		errs["priority"] = "Select a valid priority"
	}
}

func priorityOrDefault(v string) types.CasePriority {
	p := types.CasePriority(v)
	if !p.Valid() {
		return types.PriorityMedium
	}
	return p
}

func reporterName(user *types.User) string {
	if user == nil || user.Name == "" {
		return UnknownReporter
	}
	return user.Name
}
