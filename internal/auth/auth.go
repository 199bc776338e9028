package auth

import (
	"strings"
	"time"

	"fireforce/pkg/types"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// credential is one entry in the demo credential table. Passwords are held
// as bcrypt hashes so plaintext never lives in the binary, but the table
// itself is a stand-in for a real credential backend.
type credential struct {
	email        string
	passwordHash string
	name         string
}

// Hashes of the demo passwords (admin123 / user123), cost 10.
var demoCredentials = map[types.UserRole]credential{
	types.RoleAdmin: {
		email:        "admin@fireforce.com",
		passwordHash: "$2b$10$A180eAEOERfJMfDqLDwF1.0WszlgqQlYfjVqg6orDV.20fC75MRoG",
		name:         "Fire Chief Admin",
	},
	types.RoleUser: {
		email:        "user@fireforce.com",
		passwordHash: "$2b$10$Pe0lSArdaK/wRCqMKYSCpuxrTtSsO/.UfC/qynTQYj/oUVG4l7cSq",
		name:         "Station User",
	},
}

// Authenticator validates login attempts against the static credential
// table and issues session identities.
type Authenticator struct {
	credentials map[types.UserRole]credential
	now         func() time.Time
}

func New() *Authenticator {
	return &Authenticator{
		credentials: demoCredentials,
		now:         time.Now,
	}
}

// Login checks the (email, password) pair against the single record held
// for role. A mismatch returns types.ErrInvalidCredentials without
// distinguishing unknown email from wrong password.
func (a *Authenticator) Login(email, password string, role types.UserRole) (*types.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if !role.Valid() {
		return nil, types.ErrInvalidCredentials
	}

	cred, ok := a.credentials[role]
	if !ok || cred.email != email {
		return nil, types.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.passwordHash), []byte(password)); err != nil {
		return nil, types.ErrInvalidCredentials
	}

	return &types.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      cred.name,
		Role:      role,
		LoginTime: a.now(),
	}, nil
}
