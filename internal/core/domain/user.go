package domain

import (
	"strings"
	"time"
)

// Role is the closed set of coarse-grained permission groups a user can hold.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// AuthorityPrefix is prepended to a role name to form its granted authority.
const AuthorityPrefix = "ROLE_"

// ParseRole maps a role string onto the Role enum. Unknown values coerce to
// RoleUser instead of failing the request; registration accepts arbitrary
// role strings and this is the single place that leniency lives.
func ParseRole(s string) Role {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUser
	}
}

// ParseRoles maps a list of role strings onto a deduplicated role set.
// A nil or empty list yields the default set {USER}.
func ParseRoles(names []string) []Role {
	if len(names) == 0 {
		return []Role{RoleUser}
	}
	seen := make(map[Role]struct{}, len(names))
	roles := make([]Role, 0, len(names))
	for _, n := range names {
		r := ParseRole(n)
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		roles = append(roles, r)
	}
	return roles
}

// Authority returns the granted-authority string for the role, e.g. "ROLE_ADMIN".
func (r Role) Authority() string {
	return AuthorityPrefix + string(r)
}

// User is the persisted identity record.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Authorities derives the granted-authority set from the user's roles.
func (u *User) Authorities() []string {
	out := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		out = append(out, r.Authority())
	}
	return out
}

// Principal is the authenticated identity resolved for a request. The password
// hash is carried only so the login path can verify credentials; it must not
// cross the API boundary.
type Principal struct {
	Username     string
	PasswordHash string
	Authorities  []string
}

// HasAuthority reports whether the principal holds the given authority.
func (p *Principal) HasAuthority(authority string) bool {
	for _, a := range p.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}
