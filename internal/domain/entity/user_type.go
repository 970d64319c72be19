// Package entity contains the core business objects of the project.
package entity

import "slices"

// UserType represents how an account participates in the marketplace.
type UserType string

const (
	// UserTypeSeller indicates an account that only lists products.
	UserTypeSeller UserType = "seller"
	// UserTypeBuyer indicates an account that only registers saved searches.
	UserTypeBuyer UserType = "buyer"
	// UserTypeBoth indicates an account that does both.
	UserTypeBoth UserType = "both"
)

// String returns the string representation of the UserType.
func (t UserType) String() string {
	return string(t)
}

// IsValid checks if the UserType is a valid value.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeSeller, UserTypeBuyer, UserTypeBoth:
		return true
	default:
		return false
	}
}

// Roles expands the user type into the JWT role strings carried by access tokens.
func (t UserType) Roles() []string {
	switch t {
	case UserTypeSeller:
		return []string{"seller"}
	case UserTypeBuyer:
		return []string{"buyer"}
	case UserTypeBoth:
		return []string{"seller", "buyer"}
	default:
		return nil
	}
}

// HasRole checks whether the expanded roles contain a specific role string.
func (t UserType) HasRole(role string) bool {
	return slices.Contains(t.Roles(), role)
}
