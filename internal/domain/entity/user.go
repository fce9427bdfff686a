// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an authenticated account. It carries the standard identity and
// credential fields; supplementary per-user data lives on UserProfile.
type User struct {
	ID           uuid.UUID    // The Global Unique Identifier (GUID) for the user.
	Username     string       // Unique login identifier.
	Email        string       // The user's primary contact email.
	FirstName    string       // Given name.
	LastName     string       // Family name.
	PasswordHash string       // bcrypt hash; empty for accounts without a usable password.
	IsStaff      bool         // Whether the account may use the admin surface.
	IsActive     bool         // Inactive accounts cannot log in.
	IsSuperuser  bool         // Whether the account bypasses permission checks.
	LastLogin    *time.Time   // Nil until the first successful login.
	DateJoined   time.Time    // When the account was registered.
	Profile      *UserProfile // Nil when the profile has not been loaded or created yet.
	Timestamps
}

// String returns the email, the human-readable identity of the account.
func (u *User) String() string {
	return u.Email
}

// FullName joins first and last name, trimming missing parts.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// HasUsablePassword reports whether a password login is possible for this account.
func (u *User) HasUsablePassword() bool {
	return u.PasswordHash != ""
}

// Roles derives the authorization roles from the account flags.
func (u *User) Roles() Roles {
	roles := Roles{RoleUser}
	if u.IsStaff {
		roles = append(roles, RoleStaff)
	}
	if u.IsSuperuser {
		roles = append(roles, RoleSuperuser)
	}

	return roles
}
