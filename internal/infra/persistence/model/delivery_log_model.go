package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryLogModel is the GORM-specific struct for the 'alert_delivery_logs' table.
// Each row is one proximity alert attempt for one matched zone.
type DeliveryLogModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ListingID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ZoneID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Recipient  string    `gorm:"type:text"`
	DistanceKm float64   `gorm:"type:double precision;not null"`
	Status     string    `gorm:"type:text;not null"`
	Reason     string    `gorm:"type:text"`
	SentAt     time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryLogModel) TableName() string {
	return "alert_delivery_logs"
}
