package server

import (
	"context"
	"net/http"
	"time"

	"fireforce/internal/analytics"
	"fireforce/pkg/types"
)

// handleAnalytics shows stats over the signed-in reporter's own cases.
func (s *Service) handleAnalytics(w http.ResponseWriter, r *http.Request) {
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

	s.renderAnalytics(w, r, "page.analytics", "My Analytics", cases)
}

// handleAdminAnalytics shows stats over every case in the system.
func (s *Service) handleAdminAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cases, err := s.cases.Cases(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to load cases")
		s.internalServerError(w)
		return
	}

	s.renderAnalytics(w, r, "page.admin-analytics", "Department Analytics", cases)
}

func (s *Service) renderAnalytics(w http.ResponseWriter, r *http.Request, templateName, title string, cases []*types.CaseReport) {
	window := analytics.TimeWindow(r.URL.Query().Get("window"))
	if !window.Valid() {
		window = analytics.WindowAll
	}

	filtered := analytics.FilterByWindow(cases, window, time.Now())

	data := &types.AnalyticsPageData{
		BasePageData: types.BasePageData{Title: title},
		Stats:        analytics.Aggregate(filtered),
		TimeFilter:   string(window),
		Cases:        filtered,
	}

	if err := s.renderTemplate(w, r, templateName, data); err != nil {
		s.logger.WithError(err).Error("failed to render analytics page")
		s.internalServerError(w)
	}
}
