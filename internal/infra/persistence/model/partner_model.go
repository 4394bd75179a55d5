package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartnerModel is the GORM-specific struct for the 'partners' table.
type PartnerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code      string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Phone     string    `gorm:"type:varchar(20)"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PartnerModel) TableName() string {
	return "partners"
}
