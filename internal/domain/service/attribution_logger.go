package service

import (
	"context"
	"time"
)

// AttributionRecord is one submission as received, kept for marketing attribution.
type AttributionRecord struct {
	InquiryID    string
	InquiryType  string
	MarketerCode string
	ReferrerURL  string
	SubmittedAt  time.Time
	Payload      map[string]any
}

// AttributionLogger appends submissions to an external analytics sink.
type AttributionLogger interface {
	LogSubmission(ctx context.Context, record *AttributionRecord) error
}
