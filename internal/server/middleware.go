package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"fireforce/internal"
	"fireforce/pkg/types"

	"github.com/sirupsen/logrus"
)

// Context key types to avoid collisions
type contextKey string

const contextKeyUser contextKey = "user"

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Service) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		s.logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"duration_ms": time.Since(started).Milliseconds(),
		}).Info("http request")
	})
}

// RequireAuth decodes the session cookie and adds the identity to the
// request context. Unauthenticated requests are redirected to login with a
// short-lived cookie remembering where they were headed.
func (s *Service) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := s.sessionUser(r)
		if !ok {
			s.setRedirectCookie(w, r.URL.Path, time.Minute*5)
			http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
			return
		}

		s.logger.WithFields(logrus.Fields{
			"user_id": user.ID,
			"role":    user.Role,
		}).Debug("authenticated user")

		ctx := context.WithValue(r.Context(), contextKeyUser, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin redirects non-admin sessions back to their dashboard rather
// than erroring.
func (s *Service) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _ := s.userFromContext(r.Context())
		if !user.IsAdmin() {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// sessionUser decrypts and decodes the session cookie. A cookie that fails
// to decode is treated as no session at all.
func (s *Service) sessionUser(r *http.Request) (*types.User, bool) {
	cookie, err := r.Cookie(internal.COOKIE_SESSION_NAME)
	if err != nil {
		return nil, false
	}

	var user types.User
	if err := s.cookie.Decode(internal.COOKIE_SESSION_NAME, cookie.Value, &user); err != nil {
		s.logger.WithError(err).Debug("failed to decode session cookie")
		return nil, false
	}

	if !user.Role.Valid() {
		return nil, false
	}

	return &user, true
}

func (s *Service) userFromContext(ctx context.Context) (*types.User, bool) {
	user, ok := ctx.Value(contextKeyUser).(*types.User)
	return user, ok
}

func (s *Service) StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		// Only strip if path is not root and has trailing slash
		if path != "/" && strings.HasSuffix(path, "/") {
			newPath := strings.TrimSuffix(path, "/")
			newURL := *r.URL
			newURL.Path = newPath

			// Preserve query string
			http.Redirect(w, r, newURL.String(), http.StatusMovedPermanently)
			return
		}

		next.ServeHTTP(w, r)
	})
}
