// Package entity contains the core business objects of the project.
package entity

import "time"

// BlockedDate is an admin override for one calendar date. IsBlocked=true closes a date
// that is normally open; IsBlocked=false opens a date inside the lead-time window.
type BlockedDate struct {
	Date      Date      `json:"blocked_date"`
	IsBlocked bool      `json:"is_blocked"`
	UpdatedAt time.Time `json:"-"`
}
