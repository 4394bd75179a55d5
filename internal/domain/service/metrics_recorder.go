package service

// MetricsRecorder records business counters.
type MetricsRecorder interface {
	// InquirySubmitted counts a persisted submission by inquiry type
	InquirySubmitted(inquiryType string)

	// ReservationTransition counts status changes by resulting status
	ReservationTransition(status string)

	// SideEffectFailed counts a failed fire-and-forget side effect
	SideEffectFailed(name string)
}
