package impl

import (
	"regexp"

	domainerrors "funnel/internal/domain/errors"

	"github.com/google/uuid"
)

var inquiryIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// parseInquiryID rejects anything that is not a canonical UUID before storage is touched.
func parseInquiryID(raw string) (uuid.UUID, error) {
	if !inquiryIDPattern.MatchString(raw) {
		return uuid.Nil, domainerrors.ErrInvalidInquiryID
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInquiryID
	}

	return id, nil
}
