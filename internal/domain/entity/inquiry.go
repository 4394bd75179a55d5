// Package entity contains the core business objects of the project.
package entity

import (
	"maps"
	"time"

	"github.com/google/uuid"
)

// InquiryType distinguishes a plain consultation request from an installation reservation.
type InquiryType string

const (
	// InquiryTypeConsultation is a lead asking to be contacted.
	InquiryTypeConsultation InquiryType = "consultation"
	// InquiryTypeInstallation is a lead carrying reservation details.
	InquiryTypeInstallation InquiryType = "installation"
)

// IsValid checks if the InquiryType is a valid value.
func (t InquiryType) IsValid() bool {
	switch t {
	case InquiryTypeConsultation, InquiryTypeInstallation:
		return true
	default:
		return false
	}
}

// InquiryStatus is the lifecycle state of an inquiry.
type InquiryStatus string

const (
	StatusNew                 InquiryStatus = "new"
	StatusScheduled           InquiryStatus = "scheduled"
	StatusDocumentsSubmitted  InquiryStatus = "documents_submitted"
	StatusReservationComplete InquiryStatus = "reservation_complete"
	StatusInProgress          InquiryStatus = "in_progress"
	StatusContracted          InquiryStatus = "contracted"
	StatusCancelled           InquiryStatus = "cancelled"
)

// IsValid checks if the InquiryStatus is a valid value.
func (s InquiryStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusScheduled, StatusDocumentsSubmitted, StatusReservationComplete,
		StatusInProgress, StatusContracted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether reservation fields can no longer change.
func (s InquiryStatus) IsTerminal() bool {
	switch s {
	case StatusReservationComplete, StatusContracted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsAdministrative reports whether the status is only reachable through the privileged path.
func (s InquiryStatus) IsAdministrative() bool {
	switch s {
	case StatusInProgress, StatusContracted, StatusCancelled:
		return true
	default:
		return false
	}
}

// TimeSlot is the half-day window of an installation visit.
type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "morning"
	TimeSlotAfternoon TimeSlot = "afternoon"
)

// IsValid checks if the TimeSlot is a valid value.
func (s TimeSlot) IsValid() bool {
	return s == TimeSlotMorning || s == TimeSlotAfternoon
}

// DocumentKind names one of the uploadable reservation documents.
type DocumentKind string

const (
	DocumentIDCard          DocumentKind = "idCard"
	DocumentPaymentCard     DocumentKind = "paymentCard"
	DocumentBusinessLicense DocumentKind = "businessLicense"
)

// IsValid checks if the DocumentKind is a valid value.
func (k DocumentKind) IsValid() bool {
	switch k {
	case DocumentIDCard, DocumentPaymentCard, DocumentBusinessLicense:
		return true
	default:
		return false
	}
}

// Documents maps a document kind to the stored file reference.
type Documents map[DocumentKind]string

// Merge returns the union of d and patch; keys in patch overwrite keys in d and no key
// of d is ever dropped. Neither input is modified.
func (d Documents) Merge(patch Documents) Documents {
	merged := make(Documents, len(d)+len(patch))
	maps.Copy(merged, d)
	maps.Copy(merged, patch)

	return merged
}

// HasAny reports whether at least one non-empty reference is stored.
func (d Documents) HasAny() bool {
	for _, ref := range d {
		if ref != "" {
			return true
		}
	}

	return false
}

// Inquiry is one lead: a consultation request or an installation reservation.
type Inquiry struct {
	ID                  uuid.UUID     `json:"id"`
	PhoneNumber         string        `json:"phoneNumber"`
	InquiryType         InquiryType   `json:"inquiryType"`
	MarketerCode        *string       `json:"marketerCode"`
	LandingTemplate     *string       `json:"landingTemplate"`
	LandingSubtype      *string       `json:"landingSubtype"`
	ReferrerURL         *string       `json:"referrerUrl"`
	PrivacyConsent      bool          `json:"privacyConsent"`
	InstallLocation     string        `json:"installLocation"`
	Address             *string       `json:"address"`
	AddressDetail       *string       `json:"addressDetail"`
	Zonecode            *string       `json:"zonecode"`
	InstallCount        int           `json:"installCount"`
	OutdoorCount        int           `json:"outdoorCount"`
	IndoorCount         int           `json:"indoorCount"`
	ReservationDate     *Date         `json:"reservationDate"`
	ReservationTimeSlot *TimeSlot     `json:"reservationTimeSlot"`
	Documents           Documents     `json:"documents"`
	DocumentsSubmitted  bool          `json:"documentsSubmitted"`
	Status              InquiryStatus `json:"status"`
	Version             int64         `json:"-"`
	SubmittedAt         time.Time     `json:"submittedAt"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

// IsInstallation reports whether the inquiry carries reservation details.
func (i *Inquiry) IsInstallation() bool {
	return i.InquiryType == InquiryTypeInstallation
}

// Clone returns a deep copy so planners can work on a snapshot.
func (i *Inquiry) Clone() *Inquiry {
	if i == nil {
		return nil
	}

	c := *i
	c.MarketerCode = cloneString(i.MarketerCode)
	c.LandingTemplate = cloneString(i.LandingTemplate)
	c.LandingSubtype = cloneString(i.LandingSubtype)
	c.ReferrerURL = cloneString(i.ReferrerURL)
	c.Address = cloneString(i.Address)
	c.AddressDetail = cloneString(i.AddressDetail)
	c.Zonecode = cloneString(i.Zonecode)
	if i.ReservationDate != nil {
		d := *i.ReservationDate
		c.ReservationDate = &d
	}
	if i.ReservationTimeSlot != nil {
		s := *i.ReservationTimeSlot
		c.ReservationTimeSlot = &s
	}
	if i.Documents != nil {
		c.Documents = maps.Clone(i.Documents)
	}

	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s

	return &v
}
