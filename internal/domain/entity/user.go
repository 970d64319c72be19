// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account on a device.
// A user may act as a seller, a buyer, or both; the type decides which operations
// the account may perform and which JWT roles it carries.
type User struct {
	ID        uuid.UUID   `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Email     string      `json:"email"`      // The user's login identifier.
	Name      string      `json:"name"`       // The user's display name.
	Type      UserType    `json:"type"`       // Whether the account sells, buys, or both.
	Location  *Coordinate `json:"location"`   // Best-effort home location; nil when never resolved.
	CreatedAt time.Time   `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt time.Time   `json:"updated_at"` // Timestamp of the last modification.
}

// CanSell reports whether the user may publish product listings.
func (u *User) CanSell() bool {
	return u.Type == UserTypeSeller || u.Type == UserTypeBoth
}

// CanBuy reports whether the user may register saved searches.
func (u *User) CanBuy() bool {
	return u.Type == UserTypeBuyer || u.Type == UserTypeBoth
}
