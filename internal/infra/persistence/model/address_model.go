package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel mirrors the 'addresses' table. A partial unique index on
// user_id WHERE is_default guarantees at most one default row per user even
// under concurrent writers.
type AddressModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_addresses_user_default,where:is_default"`
	Receiver  string    `gorm:"type:varchar(100);not null"`
	Addr      string    `gorm:"type:varchar(255);not null"`
	ZipCode   string    `gorm:"type:varchar(20)"`
	Phone     string    `gorm:"type:varchar(20);not null"`
	IsDefault bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
