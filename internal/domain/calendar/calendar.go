// Package calendar decides which dates can be picked for a new installation.
//
// The rule is asymmetric. Dates inside the lead-time window (today up to, but not
// including, today+LeadTimeDays) are closed unless an override opens them. Dates on or
// after the window end are open unless an override closes them. Past dates are always
// closed.
package calendar

import (
	"time"

	"funnel/internal/domain/entity"

	"github.com/jinzhu/now"
)

// DefaultLeadTimeDays is the minimum number of days between today and the earliest
// normally selectable installation date.
const DefaultLeadTimeDays = 3

// Overrides maps a date to its isBlocked flag.
type Overrides map[entity.Date]bool

// OverridesFrom indexes blocked-date rows by date.
func OverridesFrom(rows []*entity.BlockedDate) Overrides {
	overrides := make(Overrides, len(rows))
	for _, row := range rows {
		overrides[row.Date] = row.IsBlocked
	}

	return overrides
}

// Reason explains a selectability decision.
type Reason string

const (
	ReasonPast           Reason = "past"
	ReasonLeadTime       Reason = "lead_time"
	ReasonOpenedOverride Reason = "opened_by_override"
	ReasonBlocked        Reason = "blocked_by_override"
	ReasonOpen           Reason = "open"
)

// Calendar evaluates dates against a lead time.
type Calendar struct {
	LeadTimeDays int
	Location     *time.Location
}

// New returns a Calendar. Non-positive lead times fall back to DefaultLeadTimeDays and a
// nil location to UTC.
func New(leadTimeDays int, loc *time.Location) Calendar {
	if leadTimeDays <= 0 {
		leadTimeDays = DefaultLeadTimeDays
	}
	if loc == nil {
		loc = time.UTC
	}

	return Calendar{LeadTimeDays: leadTimeDays, Location: loc}
}

// Today returns the calendar date of t in the calendar's location, ignoring time-of-day.
func (c Calendar) Today(t time.Time) entity.Date {
	return entity.DateOf(now.With(t.In(c.Location)).BeginningOfDay())
}

// MinDate is the first date that is open without an override.
func (c Calendar) MinDate(today entity.Date) entity.Date {
	return today.AddDays(c.LeadTimeDays)
}

// Evaluate reports whether d is selectable given today and the overrides, with the reason.
func (c Calendar) Evaluate(d, today entity.Date, overrides Overrides) (bool, Reason) {
	if d.Before(today) {
		return false, ReasonPast
	}

	isBlocked, hasOverride := overrides[d]

	if d.Before(c.MinDate(today)) {
		if hasOverride && !isBlocked {
			return true, ReasonOpenedOverride
		}

		return false, ReasonLeadTime
	}

	if hasOverride && isBlocked {
		return false, ReasonBlocked
	}

	return true, ReasonOpen
}

// IsSelectable reports whether d can be picked for a new installation.
func (c Calendar) IsSelectable(d, today entity.Date, overrides Overrides) bool {
	ok, _ := c.Evaluate(d, today, overrides)

	return ok
}

// Day is one entry of an availability listing.
type Day struct {
	Date      entity.Date `json:"date"`
	Available bool        `json:"available"`
	Reason    Reason      `json:"reason"`
}

// Range evaluates days consecutive dates starting at from.
func (c Calendar) Range(from entity.Date, days int, today entity.Date, overrides Overrides) []Day {
	if days <= 0 {
		return []Day{}
	}

	result := make([]Day, 0, days)
	for i := range days {
		d := from.AddDays(i)
		ok, reason := c.Evaluate(d, today, overrides)
		result = append(result, Day{Date: d, Available: ok, Reason: reason})
	}

	return result
}
