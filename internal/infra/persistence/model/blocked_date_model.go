package model

import (
	"time"

	"gorm.io/datatypes"
)

// BlockedDateModel is the GORM-specific struct for the 'blocked_dates' table.
// One row per calendar date.
type BlockedDateModel struct {
	Date      datatypes.Date `gorm:"type:date;primary_key"`
	IsBlocked bool           `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlockedDateModel) TableName() string {
	return "blocked_dates"
}
