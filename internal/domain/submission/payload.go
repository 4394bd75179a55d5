// Package submission is the validation layer for new inquiries. It reads the payload
// discriminator first, decodes the matching variant and checks it, returning either a
// typed Submission or a ValidationError listing every failing field.
package submission

import (
	"strings"
	"time"

	"funnel/internal/domain/entity"
	"funnel/internal/domain/phone"
)

// Kind discriminates the accepted payload shapes.
type Kind string

const (
	// KindLegacy is the original landing form: location and a total count.
	KindLegacy Kind = "legacy"
	// KindUnified carries inquiryType and, for installations, reservation details.
	KindUnified Kind = "unified"
)

// IsValid checks if the Kind is a valid value.
func (k Kind) IsValid() bool {
	return k == KindLegacy || k == KindUnified
}

// LegacyPayload is the shape sent by older landing pages.
type LegacyPayload struct {
	PhoneNumber     string     `json:"phoneNumber"     validate:"required,krphone"`
	InstallLocation string     `json:"installLocation" validate:"required,max=500"`
	InstallCount    *int       `json:"installCount"    validate:"required,min=1"`
	PrivacyConsent  *bool      `json:"privacyConsent"  validate:"required,eq=true"`
	ReferrerURL     *string    `json:"referrerUrl"     validate:"omitempty,max=2048"`
	MarketerCode    *string    `json:"marketerCode"    validate:"omitempty,marketercode"`
	LandingTemplate *string    `json:"landingTemplate" validate:"omitempty,max=100"`
	LandingSubtype  *string    `json:"landingSubtype"  validate:"omitempty,max=100"`
	SubmittedAt     *time.Time `json:"submittedAt"`
}

// UnifiedPayload is the shape sent by the consultation and reservation funnel.
type UnifiedPayload struct {
	InquiryType         string            `json:"inquiryType"         validate:"required,oneof=consultation installation"`
	PhoneNumber         string            `json:"phoneNumber"         validate:"required,krphone"`
	PrivacyConsent      *bool             `json:"privacyConsent"      validate:"required,eq=true"`
	ReferrerURL         *string           `json:"referrerUrl"         validate:"omitempty,max=2048"`
	MarketerCode        *string           `json:"marketerCode"        validate:"omitempty,marketercode"`
	LandingTemplate     *string           `json:"landingTemplate"     validate:"omitempty,max=100"`
	LandingSubtype      *string           `json:"landingSubtype"      validate:"omitempty,max=100"`
	InstallLocation     *string           `json:"installLocation"     validate:"omitempty,max=500"`
	InstallCount        *int              `json:"installCount"        validate:"omitempty,min=0"`
	ReservationDate     *entity.Date      `json:"reservationDate"     validate:"required_if=InquiryType installation"`
	ReservationTimeSlot *string           `json:"reservationTimeSlot" validate:"required_if=InquiryType installation,omitempty,oneof=morning afternoon"`
	Address             *string           `json:"address"             validate:"required_if=InquiryType installation,omitempty,max=500"`
	AddressDetail       *string           `json:"addressDetail"       validate:"omitempty,max=200"`
	Zonecode            *string           `json:"zonecode"            validate:"omitempty,max=10"`
	OutdoorCount        *int              `json:"outdoorCount"        validate:"omitempty,min=0"`
	IndoorCount         *int              `json:"indoorCount"         validate:"omitempty,min=0"`
	Documents           map[string]string `json:"documents"`
	DocumentsSubmitted  bool              `json:"documentsSubmitted"`
}

// IsInstallation reports whether the unified payload reserves an installation.
func (p *UnifiedPayload) IsInstallation() bool {
	return entity.InquiryType(p.InquiryType) == entity.InquiryTypeInstallation
}

// Submission is a validated payload. Exactly one of Legacy and Unified is set,
// matching Kind.
type Submission struct {
	Kind    Kind
	Legacy  *LegacyPayload
	Unified *UnifiedPayload
	// Raw is the payload as received, for attribution logging.
	Raw map[string]any
}

// PhoneNumber returns the normalized digits of the submitted phone number.
func (s *Submission) PhoneNumber() string {
	if s.Kind == KindLegacy {
		return phone.Normalize(s.Legacy.PhoneNumber)
	}

	return phone.Normalize(s.Unified.PhoneNumber)
}

// MarketerCode returns the referral code, if any.
func (s *Submission) MarketerCode() *string {
	if s.Kind == KindLegacy {
		return s.Legacy.MarketerCode
	}

	return s.Unified.MarketerCode
}

// IsInstallation reports whether the submission reserves an installation.
func (s *Submission) IsInstallation() bool {
	return s.Kind == KindUnified && s.Unified.IsInstallation()
}

func normalizeCode(code *string) *string {
	if code == nil {
		return nil
	}
	v := strings.ToUpper(strings.TrimSpace(*code))
	if v == "" {
		return nil
	}

	return &v
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}

	return &v
}
