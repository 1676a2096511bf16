// Package domain contains entity types without logic, just meta-data
// and the small validation rules that belong to it.
package domain

import "strings"

const (
	MaxUserNameLen  = 40
	DefaultUserName = "Anonymous"
)

// ConnID is the transport-assigned connection identifier. It is the only
// identity the relay knows; everything in a room is keyed by it.
type ConnID string

type Role string

const (
	RoleMaster Role = "master"
	RolePlayer Role = "player"
)

// UserInfo is one room member's display name and authority level.
type UserInfo struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// NewUserInfo normalizes the name so adapters never store raw input.
func NewUserInfo(name string, role Role) *UserInfo {
	return &UserInfo{Name: NormalizeName(name), Role: role}
}

// NormalizeName trims, substitutes the default for an empty name and
// truncates to MaxUserNameLen characters. Truncation counts runes, not
// bytes, so a multi-byte name never ends up as invalid UTF-8.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultUserName
	}
	if runes := []rune(name); len(runes) > MaxUserNameLen {
		name = string(runes[:MaxUserNameLen])
	}
	return name
}
