// Package reservation holds the state machine that advances an inquiry as the customer
// completes reservation steps. Plan is pure: it takes the current snapshot and a partial
// update and returns the column changes to write plus the resulting record. Persisting
// the changes atomically is the repository's job.
package reservation

import (
	"strings"

	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
)

// DefaultMaxUnitCount caps outdoorCount and indoorCount.
const DefaultMaxUnitCount = 99

// Patch is a partial update sent by the reservation flow. Nil fields are not applied.
type Patch struct {
	ReservationDate     *entity.Date
	ReservationTimeSlot *entity.TimeSlot
	OutdoorCount        *int
	IndoorCount         *int
	Address             *string
	AddressDetail       *string
	Zonecode            *string
	Documents           entity.Documents
	DocumentsSubmitted  *bool
}

// IsEmpty reports whether the patch carries nothing to apply.
func (p *Patch) IsEmpty() bool {
	return p.ReservationDate == nil &&
		p.ReservationTimeSlot == nil &&
		p.OutdoorCount == nil &&
		p.IndoorCount == nil &&
		p.Address == nil &&
		p.AddressDetail == nil &&
		p.Zonecode == nil &&
		len(p.Documents) == 0 &&
		p.DocumentsSubmitted == nil
}

// Validate checks field values. Omitted fields are never an error.
func (p *Patch) Validate(maxUnitCount int) error {
	if maxUnitCount <= 0 {
		maxUnitCount = DefaultMaxUnitCount
	}

	var fields []domainerrors.FieldError

	if p.ReservationDate != nil && p.ReservationDate.IsZero() {
		fields = append(fields, domainerrors.FieldError{Field: "reservationDate", Message: "날짜 형식이 올바르지 않습니다."})
	}
	if p.ReservationTimeSlot != nil && !p.ReservationTimeSlot.IsValid() {
		fields = append(fields, domainerrors.FieldError{Field: "reservationTimeSlot", Message: "오전 또는 오후를 선택해주세요."})
	}
	if p.OutdoorCount != nil && (*p.OutdoorCount < 0 || *p.OutdoorCount > maxUnitCount) {
		fields = append(fields, domainerrors.FieldError{Field: "outdoorCount", Message: "실외기 수량이 올바르지 않습니다."})
	}
	if p.IndoorCount != nil && (*p.IndoorCount < 0 || *p.IndoorCount > maxUnitCount) {
		fields = append(fields, domainerrors.FieldError{Field: "indoorCount", Message: "실내기 수량이 올바르지 않습니다."})
	}
	if p.Address != nil && strings.TrimSpace(*p.Address) == "" {
		fields = append(fields, domainerrors.FieldError{Field: "address", Message: "주소를 입력해주세요."})
	}
	for kind, ref := range p.Documents {
		if !kind.IsValid() {
			fields = append(fields, domainerrors.FieldError{Field: "documents." + string(kind), Message: "지원하지 않는 서류 종류입니다."})

			continue
		}
		if strings.TrimSpace(ref) == "" {
			fields = append(fields, domainerrors.FieldError{Field: "documents." + string(kind), Message: "서류 파일 정보가 없습니다."})
		}
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationError("", fields...)
	}

	return nil
}

// Changes lists the columns a plan writes. Documents holds only the patched keys; the
// store merges them into the existing mapping.
type Changes struct {
	InquiryType         *entity.InquiryType
	ReservationDate     *entity.Date
	ReservationTimeSlot *entity.TimeSlot
	OutdoorCount        *int
	IndoorCount         *int
	InstallCount        *int
	Address             *string
	AddressDetail       *string
	Zonecode            *string
	InstallLocation     *string
	Documents           entity.Documents
	DocumentsSubmitted  *bool
	Status              *entity.InquiryStatus
}

// IsEmpty reports whether nothing would be written.
func (c *Changes) IsEmpty() bool {
	return c.InquiryType == nil &&
		c.ReservationDate == nil &&
		c.ReservationTimeSlot == nil &&
		c.OutdoorCount == nil &&
		c.IndoorCount == nil &&
		c.InstallCount == nil &&
		c.Address == nil &&
		c.AddressDetail == nil &&
		c.Zonecode == nil &&
		c.InstallLocation == nil &&
		len(c.Documents) == 0 &&
		c.DocumentsSubmitted == nil &&
		c.Status == nil
}

// Result is the outcome of planning a patch.
type Result struct {
	Changes        Changes
	Updated        *entity.Inquiry
	PreviousStatus entity.InquiryStatus
	// DateChanged is true when the patch sets a reservation date different from the
	// stored one; callers re-check calendar eligibility only in that case.
	DateChanged bool
	// SubmittedWithoutDocuments marks a documentsSubmitted=true plan that holds no
	// document references. The transition still happens.
	SubmittedWithoutDocuments bool
}

// StatusChanged reports whether the plan moves the inquiry to another status.
func (r *Result) StatusChanged() bool {
	return r.Updated.Status != r.PreviousStatus
}

// Guard rejects any reservation-field mutation on a terminal inquiry.
func Guard(current *entity.Inquiry) error {
	switch {
	case current.Status == entity.StatusReservationComplete:
		return domainerrors.ErrReservationCompleted
	case current.Status.IsTerminal():
		return domainerrors.ErrInquiryClosed
	default:
		return nil
	}
}

// Plan applies patch to a copy of current.
//
// Status rules, in order: a first reservation date moves the inquiry to scheduled
// (documents_submitted and administrative statuses are kept); documentsSubmitted=true
// moves it to documents_submitted and wins over scheduled in the same request. Any date or time
// slot promotes the inquiry to installation.
func Plan(current *entity.Inquiry, patch *Patch) (*Result, error) {
	if err := Guard(current); err != nil {
		return nil, err
	}

	updated := current.Clone()
	result := &Result{Updated: updated, PreviousStatus: current.Status}
	changes := &result.Changes

	if patch.ReservationDate != nil || patch.ReservationTimeSlot != nil {
		installation := entity.InquiryTypeInstallation
		if updated.InquiryType != installation {
			changes.InquiryType = &installation
			updated.InquiryType = installation
		}
	}

	if patch.ReservationDate != nil {
		date := *patch.ReservationDate
		result.DateChanged = current.ReservationDate == nil || *current.ReservationDate != date
		changes.ReservationDate = &date
		updated.ReservationDate = &date

		if current.ReservationDate == nil && schedulable(current.Status) {
			setStatus(changes, updated, entity.StatusScheduled)
		}
	}

	if patch.ReservationTimeSlot != nil {
		slot := *patch.ReservationTimeSlot
		changes.ReservationTimeSlot = &slot
		updated.ReservationTimeSlot = &slot
	}

	if patch.OutdoorCount != nil || patch.IndoorCount != nil {
		if patch.OutdoorCount != nil {
			v := *patch.OutdoorCount
			changes.OutdoorCount = &v
			updated.OutdoorCount = v
		}
		if patch.IndoorCount != nil {
			v := *patch.IndoorCount
			changes.IndoorCount = &v
			updated.IndoorCount = v
		}
		total := updated.OutdoorCount + updated.IndoorCount
		changes.InstallCount = &total
		updated.InstallCount = total
	}

	if patch.Address != nil {
		address := strings.TrimSpace(*patch.Address)
		changes.Address = &address
		changes.InstallLocation = &address
		updated.Address = &address
		updated.InstallLocation = address
	}
	if patch.AddressDetail != nil {
		detail := strings.TrimSpace(*patch.AddressDetail)
		changes.AddressDetail = &detail
		updated.AddressDetail = &detail
	}
	if patch.Zonecode != nil {
		zonecode := strings.TrimSpace(*patch.Zonecode)
		changes.Zonecode = &zonecode
		updated.Zonecode = &zonecode
	}

	if len(patch.Documents) > 0 {
		changes.Documents = entity.Documents{}.Merge(patch.Documents)
		updated.Documents = updated.Documents.Merge(patch.Documents)
	}

	// documentsSubmitted=false is not an un-submit; it is ignored.
	if patch.DocumentsSubmitted != nil && *patch.DocumentsSubmitted {
		result.SubmittedWithoutDocuments = !updated.Documents.HasAny()

		submitted := true
		changes.DocumentsSubmitted = &submitted
		updated.DocumentsSubmitted = true
		setStatus(changes, updated, entity.StatusDocumentsSubmitted)
	}

	return result, nil
}

// schedulable reports whether a first date may move the inquiry to scheduled.
func schedulable(status entity.InquiryStatus) bool {
	return status == entity.StatusNew || status == entity.StatusScheduled
}

func setStatus(changes *Changes, updated *entity.Inquiry, status entity.InquiryStatus) {
	s := status
	changes.Status = &s
	updated.Status = status
}

// Finalize plans the administrative move to reservation_complete.
func Finalize(current *entity.Inquiry) (*Result, error) {
	if current.Status == entity.StatusReservationComplete {
		return nil, domainerrors.ErrReservationCompleted
	}
	if current.Status != entity.StatusDocumentsSubmitted {
		return nil, domainerrors.ErrReservationNotReady
	}

	updated := current.Clone()
	result := &Result{Updated: updated, PreviousStatus: current.Status}
	setStatus(&result.Changes, updated, entity.StatusReservationComplete)

	return result, nil
}

// ChangeAdminStatus plans an administrative status change (in_progress, contracted,
// cancelled). A cancelled inquiry cannot be revived through this path.
func ChangeAdminStatus(current *entity.Inquiry, status entity.InquiryStatus) (*Result, error) {
	if !status.IsAdministrative() {
		return nil, domainerrors.ErrInvalidStatusChange.WithDetails("status " + string(status) + " is not administrative")
	}
	if current.Status == entity.StatusCancelled && status != entity.StatusCancelled {
		return nil, domainerrors.ErrInquiryClosed
	}

	updated := current.Clone()
	result := &Result{Updated: updated, PreviousStatus: current.Status}
	if current.Status != status {
		setStatus(&result.Changes, updated, status)
	}

	return result, nil
}
