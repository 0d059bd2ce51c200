// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account that owns zones and listings.
// The matcher only needs its contact e-mail as a fallback destination.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // Account e-mail, used when a zone has no NotifyEmail.
	Name      string    // Display name.
	Roles     Roles     // Roles granted to the account.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}
