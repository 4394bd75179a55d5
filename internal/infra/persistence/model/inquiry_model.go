package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// InquiryModel is the GORM-specific struct for the 'inquiries' table.
// Documents is a jsonb object keyed by document kind; writes merge into it.
type InquiryModel struct {
	ID                  uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PhoneNumber         string            `gorm:"type:varchar(20);not null;index:idx_inquiries_phone_created,priority:1"`
	InquiryType         string            `gorm:"type:varchar(20);not null;default:consultation"`
	MarketerCode        *string           `gorm:"type:varchar(32);index"`
	LandingTemplate     *string           `gorm:"type:varchar(100)"`
	LandingSubtype      *string           `gorm:"type:varchar(100)"`
	ReferrerURL         *string           `gorm:"type:text"`
	PrivacyConsent      bool              `gorm:"not null"`
	InstallLocation     string            `gorm:"type:varchar(500);not null"`
	Address             *string           `gorm:"type:varchar(500)"`
	AddressDetail       *string           `gorm:"type:varchar(200)"`
	Zonecode            *string           `gorm:"type:varchar(10)"`
	InstallCount        int               `gorm:"not null;default:0"`
	OutdoorCount        int               `gorm:"not null;default:0"`
	IndoorCount         int               `gorm:"not null;default:0"`
	ReservationDate     *datatypes.Date   `gorm:"type:date"`
	ReservationTimeSlot *string           `gorm:"type:varchar(20)"`
	Documents           datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
	DocumentsSubmitted  bool              `gorm:"not null;default:false"`
	Status              string            `gorm:"type:varchar(30);not null;default:new;index"`
	Version             int64             `gorm:"not null;default:1"`
	SubmittedAt         time.Time         `gorm:"not null"`
	CreatedAt           time.Time         `gorm:"index:idx_inquiries_phone_created,priority:2"`
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (InquiryModel) TableName() string {
	return "inquiries"
}
