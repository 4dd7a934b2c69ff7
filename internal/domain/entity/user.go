package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is a storefront account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // Unique, stored lower-cased.
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"` // UI hint only, the server checks token roles.
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	JoinDate     time.Time `json:"joinDate"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Roles derives the token roles of the user.
func (u *User) Roles() Roles {
	if u.IsAdmin {
		return Roles{RoleUser, RoleAdmin}
	}

	return Roles{RoleUser}
}

// AuthSession is what a successful login hands back.
type AuthSession struct {
	User        *User  `json:"user"`
	AccessToken string `json:"accessToken"`
}

// Role is a claim carried in access tokens.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

func (rs Roles) ToStrings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}

	return out
}

// RolesFromStrings keeps only the roles this service knows.
func RolesFromStrings(ss []string) Roles {
	out := make(Roles, 0, len(ss))
	for _, s := range ss {
		if r := Role(s); r == RoleUser || r == RoleAdmin {
			out = append(out, r)
		}
	}

	return out
}
