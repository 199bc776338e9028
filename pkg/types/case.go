package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrCaseNotFound = errors.New("case not found")

type CaseType string

const (
	CaseTypeFire    CaseType = "fire"
	CaseTypeWater   CaseType = "water"
	CaseTypeMedical CaseType = "medical"
	CaseTypeGeneral CaseType = "general"
)

func (t CaseType) Valid() bool {
	switch t {
	case CaseTypeFire, CaseTypeWater, CaseTypeMedical, CaseTypeGeneral:
		return true
	}
	return false
}

func (t CaseType) Label() string {
	switch t {
	case CaseTypeFire:
		return "Fire Incident"
	case CaseTypeWater:
		return "Water Rescue"
	case CaseTypeMedical:
		return "Medical Assist"
	case CaseTypeGeneral:
		return "General Incident"
	}
	return string(t)
}

type CasePriority string

const (
	PriorityLow      CasePriority = "low"
	PriorityMedium   CasePriority = "medium"
	PriorityHigh     CasePriority = "high"
	PriorityCritical CasePriority = "critical"
)

func (p CasePriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type CaseStatus string

const (
	StatusPending  CaseStatus = "pending"
	StatusActive   CaseStatus = "active"
	StatusResolved CaseStatus = "resolved"
	StatusClosed   CaseStatus = "closed"
)

func (s CaseStatus) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// IncidentData is the payload variant attached to a CaseReport. The
// concrete type must agree with the report's Type discriminant.
type IncidentData interface {
	CaseType() CaseType
}

type FireIncidentData struct {
	FireType        string   `json:"fireType"`
	BuildingType    string   `json:"buildingType"`
	Casualties      int      `json:"casualties"`
	Injuries        int      `json:"injuries"`
	EstimatedDamage string   `json:"estimatedDamage"`
	ResourcesNeeded []string `json:"resourcesNeeded"`
	AccessRoute     string   `json:"accessRoute"`
	WaterSource     string   `json:"waterSource"`
}

func (FireIncidentData) CaseType() CaseType { return CaseTypeFire }

type WaterRescueData struct {
	VictimCount       int      `json:"victimCount"`
	WaterType         string   `json:"waterType"`
	CurrentConditions string   `json:"currentConditions"`
	Visibility        string   `json:"visibility"`
	EquipmentNeeded   []string `json:"equipmentNeeded"`
	AccessPoint       string   `json:"accessPoint"`
	AdditionalHazards string   `json:"additionalHazards"`
}

func (WaterRescueData) CaseType() CaseType { return CaseTypeWater }

type MedicalAssistData struct {
	PatientCount      int      `json:"patientCount"`
	InjuryType        string   `json:"injuryType"`
	Consciousness     string   `json:"consciousness"`
	ServicesInvolved  []string `json:"servicesInvolved"`
	EstimatedDuration string   `json:"estimatedDuration"`
	SpecialEquipment  string   `json:"specialEquipment"`
	TransportNeeded   bool     `json:"transportNeeded"`
}

func (MedicalAssistData) CaseType() CaseType { return CaseTypeMedical }

type GeneralIncidentData struct {
	IncidentType       string   `json:"incidentType"`
	HazardLevel        string   `json:"hazardLevel"`
	AffectedArea       string   `json:"affectedArea"`
	TrafficImpact      string   `json:"trafficImpact"`
	EquipmentNeeded    []string `json:"equipmentNeeded"`
	EstimatedClearTime string   `json:"estimatedClearTime"`
	PublicSafety       string   `json:"publicSafety"`
}

func (GeneralIncidentData) CaseType() CaseType { return CaseTypeGeneral }

// DecodeIncidentData decodes a raw payload into the variant selected by
// caseType.
func DecodeIncidentData(caseType CaseType, raw []byte) (IncidentData, error) {
	var (
		data IncidentData
		err  error
	)

	switch caseType {
	case CaseTypeFire:
		var d FireIncidentData
		err = json.Unmarshal(raw, &d)
		data = d
	case CaseTypeWater:
		var d WaterRescueData
		err = json.Unmarshal(raw, &d)
		data = d
	case CaseTypeMedical:
		var d MedicalAssistData
		err = json.Unmarshal(raw, &d)
		data = d
	case CaseTypeGeneral:
		var d GeneralIncidentData
		err = json.Unmarshal(raw, &d)
		data = d
	default:
		return nil, fmt.Errorf("unknown case type %q", caseType)
	}

	if err != nil {
		return nil, fmt.Errorf("decode %s incident data: %w", caseType, err)
	}

	return data, nil
}

type CaseReport struct {
	ID          string       `json:"id"`
	Type        CaseType     `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Priority    CasePriority `json:"priority"`
	Status      CaseStatus   `json:"status"`
	ReportedBy  string       `json:"reportedBy"`
	AssignedTo  *string      `json:"assignedTo,omitempty"`
	ReportedAt  time.Time    `json:"reportedAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Data        IncidentData `json:"data"`
}

// Validate checks the tag/payload invariant: Data's concrete variant must
// match Type.
func (c *CaseReport) Validate() error {
	if !c.Type.Valid() {
		return fmt.Errorf("unknown case type %q", c.Type)
	}
	if c.Data == nil {
		return fmt.Errorf("case %s has no incident data", c.ID)
	}
	if c.Data.CaseType() != c.Type {
		return fmt.Errorf("case %s: payload variant %q does not match type %q", c.ID, c.Data.CaseType(), c.Type)
	}
	return nil
}

type caseReportAlias CaseReport

type caseReportJSON struct {
	caseReportAlias
	Data json.RawMessage `json:"data"`
}

func (c *CaseReport) UnmarshalJSON(b []byte) error {
	var raw caseReportJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	data, err := DecodeIncidentData(raw.Type, raw.Data)
	if err != nil {
		return err
	}

	*c = CaseReport(raw.caseReportAlias)
	c.Data = data

	return nil
}

// CasePatch is a partial update applied by the admin case-management flow.
// Nil fields are left untouched; UpdatedAt is stamped by the store.
type CasePatch struct {
	Title       *string
	Description *string
	Location    *string
	Priority    *CasePriority
	Status      *CaseStatus
	AssignedTo  *string
}

func (p CasePatch) Apply(c *CaseReport) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.Priority != nil {
		c.Priority = *p.Priority
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.AssignedTo != nil {
		if *p.AssignedTo == "" {
			c.AssignedTo = nil
		} else {
			c.AssignedTo = p.AssignedTo
		}
	}
}
