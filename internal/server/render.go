package server

import (
	"net/http"

	"fireforce/pkg/types"
)

func (s *Service) renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) error {
	user, _ := s.userFromContext(r.Context())
	if user == nil {
		user, _ = s.sessionUser(r)
	}

	if setter, ok := data.(types.NavbarDataSetter); ok {
		navbar := types.NavbarData{}
		if user != nil {
			navbar = types.NavbarData{
				IsAuthenticated: true,
				IsAdmin:         user.IsAdmin(),
				UserName:        user.Name,
				UserEmail:       user.Email,
			}
		}
		setter.SetNavbarData(navbar)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return s.templates.ExecuteTemplate(w, templateName, data)
}
