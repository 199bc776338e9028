package internal

const (
	COOKIE_SESSION_NAME  = "fireforce_session"
	COOKIE_REDIRECT_NAME = "fireforce_redirect"
)
