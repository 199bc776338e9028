package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"fireforce/internal/analytics"
	"fireforce/pkg/types"
)

func (s *Service) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := s.userFromContext(r.Context())
	if !ok {
		s.redirectToLogin(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cases, err := s.cases.CasesByReporter(ctx, user.Name)
	if err != nil {
		s.logger.WithError(err).Error("failed to load reporter cases")
		s.internalServerError(w)
		return
	}

	data := &types.DashboardPageData{
		BasePageData: types.BasePageData{Title: "My Dashboard"},
		Cases:        cases,
		Stats:        analytics.Aggregate(cases),
		Notice:       r.URL.Query().Get("notice"),
	}

	if err := s.renderTemplate(w, r, "page.dashboard", data); err != nil {
		s.logger.WithError(err).Error("failed to render dashboard")
		s.internalServerError(w)
	}
}

func (s *Service) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cases, err := s.cases.Cases(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to load cases")
		s.internalServerError(w)
		return
	}

	data := &types.DashboardPageData{
		BasePageData: types.BasePageData{Title: "Admin Dashboard"},
		Cases:        cases,
		Stats:        analytics.Aggregate(cases),
		Notice:       r.URL.Query().Get("notice"),
	}

	if err := s.renderTemplate(w, r, "page.admin", data); err != nil {
		s.logger.WithError(err).Error("failed to render admin dashboard")
		s.internalServerError(w)
	}
}

func (s *Service) handleCaseManagement(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cases, err := s.cases.Cases(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to load cases")
		s.internalServerError(w)
		return
	}

	query := r.URL.Query()
	filter := analytics.SearchFilter{
		Query:    query.Get("q"),
		Status:   query.Get("status"),
		Type:     query.Get("type"),
		Priority: query.Get("priority"),
	}

	filtered := analytics.FilterCases(cases, filter)

	data := &types.CaseManagementPageData{
		BasePageData:   types.BasePageData{Title: "Case Management"},
		Cases:          filtered,
		Total:          len(filtered),
		Query:          filter.Query,
		StatusFilter:   filter.Status,
		TypeFilter:     filter.Type,
		PriorityFilter: filter.Priority,
		Notice:         query.Get("notice"),
		Error:          query.Get("error"),
	}

	if err := s.renderTemplate(w, r, "page.cases", data); err != nil {
		s.logger.WithError(err).Error("failed to render case management")
		s.internalServerError(w)
	}
}

func (s *Service) handleUpdateCase(w http.ResponseWriter, r *http.Request) {
	caseID := r.PathValue("id")

	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/admin/cases", "invalid form payload")
		return
	}

	patch, err := casePatchFromForm(r)
	if err != nil {
		s.redirectWithError(w, r, "/admin/cases", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.cases.UpdateCase(ctx, caseID, patch); err != nil {
		if errors.Is(err, types.ErrCaseNotFound) {
			s.redirectWithError(w, r, "/admin/cases", "Case no longer exists.")
			return
		}

		s.logger.WithError(err).Error("failed to update case")
		s.redirectWithError(w, r, "/admin/cases", "Unable to update case.")
		return
	}

	s.logger.WithField("case_id", caseID).Info("case updated")
	s.redirectWithNotice(w, r, "/admin/cases", "Case updated")
}

func (s *Service) handleDeleteCase(w http.ResponseWriter, r *http.Request) {
	caseID := r.PathValue("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.cases.DeleteCase(ctx, caseID); err != nil {
		if errors.Is(err, types.ErrCaseNotFound) {
			s.redirectWithError(w, r, "/admin/cases", "Case no longer exists.")
			return
		}

		s.logger.WithError(err).Error("failed to delete case")
		s.redirectWithError(w, r, "/admin/cases", "Unable to delete case.")
		return
	}

	s.logger.WithField("case_id", caseID).Info("case deleted")
	s.redirectWithNotice(w, r, "/admin/cases", "Case deleted")
}

// casePatchFromForm builds the partial update from whichever fields the
// management form posted. Unknown enum values are rejected before they
// reach the store.
func casePatchFromForm(r *http.Request) (types.CasePatch, error) {
	var patch types.CasePatch

	if r.Form.Has("status") {
		status := types.CaseStatus(r.FormValue("status"))
		if !status.Valid() {
			return patch, errors.New("invalid status")
		}
		patch.Status = &status
	}

	if r.Form.Has("priority") {
		priority := types.CasePriority(r.FormValue("priority"))
		if !priority.Valid() {
			return patch, errors.New("invalid priority")
		}
		patch.Priority = &priority
	}

	if r.Form.Has("assigned_to") {
		assignedTo := strings.TrimSpace(r.FormValue("assigned_to"))
		patch.AssignedTo = &assignedTo
	}

	if r.Form.Has("title") {
		title := strings.TrimSpace(r.FormValue("title"))
		if title == "" {
			return patch, errors.New("title cannot be empty")
		}
		patch.Title = &title
	}

	if r.Form.Has("description") {
		description := strings.TrimSpace(r.FormValue("description"))
		if description == "" {
			return patch, errors.New("description cannot be empty")
		}
		patch.Description = &description
	}

	if r.Form.Has("location") {
		location := strings.TrimSpace(r.FormValue("location"))
		if location == "" {
			return patch, errors.New("location cannot be empty")
		}
		patch.Location = &location
	}

	return patch, nil
}
