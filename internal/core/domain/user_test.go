package domain

import (
	"reflect"
	"testing"
)

func TestParseRole_Known(t *testing.T) {
	if got := ParseRole("admin"); got != RoleAdmin {
		t.Fatalf("expected ADMIN, got %s", got)
	}
	if got := ParseRole("  USER "); got != RoleUser {
		t.Fatalf("expected USER, got %s", got)
	}
}

func TestParseRole_UnknownFallsBackToUser(t *testing.T) {
	for _, s := range []string{"SUPERUSER", "root", ""} {
		if got := ParseRole(s); got != RoleUser {
			t.Fatalf("ParseRole(%q) = %s, expected USER", s, got)
		}
	}
}

func TestParseRoles_EmptyDefaultsToUser(t *testing.T) {
	if got := ParseRoles(nil); !reflect.DeepEqual(got, []Role{RoleUser}) {
		t.Fatalf("expected default {USER}, got %v", got)
	}
}

func TestParseRoles_Deduplicates(t *testing.T) {
	got := ParseRoles([]string{"ADMIN", "admin", "SUPERUSER", "user"})
	if !reflect.DeepEqual(got, []Role{RoleAdmin, RoleUser}) {
		t.Fatalf("unexpected role set: %v", got)
	}
}

func TestAuthorities(t *testing.T) {
	u := &User{Roles: []Role{RoleUser, RoleAdmin}}
	got := u.Authorities()
	if !reflect.DeepEqual(got, []string{"ROLE_USER", "ROLE_ADMIN"}) {
		t.Fatalf("unexpected authorities: %v", got)
	}
}

func TestPrincipalHasAuthority(t *testing.T) {
	p := &Principal{Authorities: []string{"ROLE_USER"}}
	if !p.HasAuthority("ROLE_USER") {
		t.Fatalf("expected ROLE_USER to be held")
	}
	if p.HasAuthority("ROLE_ADMIN") {
		t.Fatalf("did not expect ROLE_ADMIN to be held")
	}
}
