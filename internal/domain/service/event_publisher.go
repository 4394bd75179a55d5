package service

import (
	"context"
	"time"
)

// Inquiry event types.
const (
	EventInquirySubmitted    = "inquiry.submitted"
	EventReservationUpdated  = "reservation.updated"
	EventReservationComplete = "reservation.completed"
)

// InquiryEvent is published when an inquiry is created or advances. The notification
// worker turns it into push messages.
type InquiryEvent struct {
	RequestID       string    `json:"request_id,omitempty"` // For distributed tracing
	EventID         string    `json:"event_id"`
	Type            string    `json:"type"`
	InquiryID       string    `json:"inquiry_id"`
	InquiryType     string    `json:"inquiry_type"`
	Status          string    `json:"status"`
	PreviousStatus  string    `json:"previous_status,omitempty"`
	PhoneNumber     string    `json:"phone_number"`
	MarketerCode    string    `json:"marketer_code,omitempty"`
	PartnerCode     string    `json:"partner_code,omitempty"` // Set only when an active partner owns MarketerCode
	PartnerName     string    `json:"partner_name,omitempty"`
	InstallLocation string    `json:"install_location,omitempty"`
	InstallCount    int       `json:"install_count"`
	ReservationDate string    `json:"reservation_date,omitempty"`
	TimeSlot        string    `json:"time_slot,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishInquiryEvent publishes an inquiry event for async processing
	PublishInquiryEvent(ctx context.Context, event *InquiryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
