package services

import (
	"crypto/subtle"
	"strings"

	"github.com/teamhub/teamhub/internal/roles"
	"golang.org/x/crypto/bcrypt"
)

// AuthService resolves a submitted access code to a role. There is no user
// database: the boundary is a comparison against two configured secrets, and
// everything downstream only ever sees the resolved role.
type AuthService struct {
	adminCode string
	teamCode  string
}

// NewAuthService creates a new AuthService from the two configured codes.
func NewAuthService(adminCode, teamCode string) *AuthService {
	return &AuthService{
		adminCode: adminCode,
		teamCode:  teamCode,
	}
}

// ResolveRole returns the role for an access code, or RoleNone when it
// matches neither configured secret.
func (s *AuthService) ResolveRole(code string) roles.Role {
	if codeMatches(s.adminCode, code) {
		return roles.RoleAdmin
	}
	if codeMatches(s.teamCode, code) {
		return roles.RoleTeam
	}
	return roles.RoleNone
}

// codeMatches compares a submitted code with a configured secret. Secrets
// may be stored as bcrypt hashes; plaintext secrets are compared in constant
// time. An empty configured secret never matches.
func codeMatches(configured, submitted string) bool {
	if configured == "" || submitted == "" {
		return false
	}
	if strings.HasPrefix(configured, "$2a$") ||
		strings.HasPrefix(configured, "$2b$") ||
		strings.HasPrefix(configured, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(submitted)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(submitted)) == 1
}
