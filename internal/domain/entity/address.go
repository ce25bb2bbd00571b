// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a shipping address belonging to a user.
// At most one address per user carries IsDefault=true; the first address a
// user creates becomes the default automatically and is never demoted here.
type Address struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the address.
	UserID    uuid.UUID // The ID of the user that owns this address.
	Receiver  string    // Name of the person receiving the parcel.
	Addr      string    // The full, human-readable street address.
	ZipCode   string    // Postal code; optional.
	Phone     string    // 11-digit mobile number of the receiver.
	IsDefault bool      // Indicates if this is the default shipping address for the owner.
	CreatedAt time.Time // Timestamp of when this address was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
