// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Partner is a marketer that owns a referral code. Inquiries carrying the code are
// attributed to the partner.
type Partner struct {
	ID        uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the partner.
	Code      string    `json:"code"`      // Uppercase alphanumeric referral code.
	Name      string    `json:"name"`      // Display name shown on dashboards.
	Phone     string    `json:"phone"`     // Contact number, normalized digits.
	IsActive  bool      `json:"is_active"` // Inactive partners receive no notifications.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NotificationTopic is the push topic the partner's devices subscribe to.
func (p *Partner) NotificationTopic() string {
	return PartnerTopic(p.Code)
}

// PartnerTopic returns the push topic for a referral code.
func PartnerTopic(code string) string {
	return "partner-" + code
}

// AdminTopic is the push topic every operator device subscribes to.
const AdminTopic = "admin"
