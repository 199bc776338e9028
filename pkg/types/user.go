package types

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the session identity created at login and destroyed at logout.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	LoginTime time.Time `json:"loginTime"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
