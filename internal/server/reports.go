package server

import (
	"context"
	"net/http"
	"time"

	"fireforce/internal/forms"
	"fireforce/pkg/types"
)

func (s *Service) handleReportChooser(w http.ResponseWriter, r *http.Request) {
	data := &types.ReportChooserPageData{
		BasePageData: types.BasePageData{Title: "Report an Incident"},
	}

	if err := s.renderTemplate(w, r, "page.report", data); err != nil {
		s.logger.WithError(err).Error("failed to render report chooser")
		s.internalServerError(w)
	}
}

func (s *Service) handleGetReportForm(w http.ResponseWriter, r *http.Request) {
	caseType := types.CaseType(r.PathValue("category"))

	categoryForm, ok := forms.NewCategoryForm(caseType)
	if !ok {
		http.NotFound(w, r)
		return
	}

	s.renderReportForm(w, r, caseType, &types.ReportFormPageData{
		BasePageData: types.BasePageData{Title: caseType.Label()},
		CaseType:     caseType,
		Form:         categoryForm,
		Options:      categoryForm.Options(),
	})
}

func (s *Service) handlePostReportForm(w http.ResponseWriter, r *http.Request) {
	caseType := types.CaseType(r.PathValue("category"))

	categoryForm, ok := forms.NewCategoryForm(caseType)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/report", "invalid form payload")
		return
	}

	if err := decoder.Decode(categoryForm, r.Form); err != nil {
		s.logger.WithError(err).Warn("failed to decode report form")
		s.redirectWithError(w, r, "/report", "invalid form payload")
		return
	}

	data := &types.ReportFormPageData{
		BasePageData: types.BasePageData{Title: caseType.Label()},
		CaseType:     caseType,
		Form:         categoryForm,
		Options:      categoryForm.Options(),
	}

	data.FieldErrors = categoryForm.Validate()
	if len(data.FieldErrors) > 0 {
		s.logger.WithField("field_errors", data.FieldErrors).Info("validation errors during report submit")

		data.Error = "Please fix the highlighted fields."
		s.renderReportForm(w, r, caseType, data)
		return
	}

	user, _ := s.userFromContext(r.Context())
	newCase := categoryForm.ToCase(user)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.cases.CreateCase(ctx, &newCase); err != nil {
		s.logger.WithError(err).Error("failed to create case")
		data.Error = "Unable to submit the report right now. Please try again."
		s.renderReportForm(w, r, caseType, data)
		return
	}

	s.logger.WithFields(map[string]any{
		"case_id":   newCase.ID,
		"case_type": newCase.Type,
	}).Info("case created")

	// The success page redirects itself back to the dashboard.
	data.Submitted = true
	s.renderReportForm(w, r, caseType, data)
}

func (s *Service) renderReportForm(w http.ResponseWriter, r *http.Request, caseType types.CaseType, data *types.ReportFormPageData) {
	if err := s.renderTemplate(w, r, "page.report."+string(caseType), data); err != nil {
		s.logger.WithError(err).Error("failed to render report form")
		s.internalServerError(w)
	}
}
