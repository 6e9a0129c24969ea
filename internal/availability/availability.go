// Package availability computes booking candidates for the salon: which dates
// are bookable, which start times fit a sub-service on a date, and which of
// the assigned staff are customer-bookable. Everything here is a pure
// function over its inputs; existing appointments are not consulted, so a
// returned candidate is an offer, never a guarantee. The final overlap check
// happens at confirmation time inside a transaction.
package availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// IsDateBookable reports whether date may be offered for booking: today or
// later (date-only comparison in date's location) and not a Sunday.
func IsDateBookable(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())

	if dateOnly.Before(today) {
		return false
	}
	return dateOnly.Weekday() != time.Sunday
}

// GenerateSlots returns the ascending list of start times on the fixed
// 30-minute grid at which a service of durationMinutes both starts within
// business hours and finishes by closing time. Non-bookable dates and
// non-positive durations yield an empty list.
//
// Feasibility is decided by the end-time comparison alone, so durations off
// the 30-minute grid still produce valid slots.
func GenerateSlots(date time.Time, durationMinutes int, now time.Time) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if durationMinutes <= 0 {
		return slots
	}
	if !IsDateBookable(date, now) {
		return slots
	}

	for start := domain.BusinessOpenMinutes; start < domain.BusinessCloseMinutes; start += domain.SlotStepMinutes {
		if start+durationMinutes > domain.BusinessCloseMinutes {
			continue
		}
		slot, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			// Grid values are always inside a day; kept for completeness.
			continue
		}
		slots = append(slots, slot)
	}

	return slots
}

// ContainsSlot reports whether startTime is one of the slots GenerateSlots
// would produce for the date and duration.
func ContainsSlot(date time.Time, durationMinutes int, startTime types.TimeString, now time.Time) bool {
	for _, slot := range GenerateSlots(date, durationMinutes, now) {
		if slot == startTime {
			return true
		}
	}
	return false
}

// EligibleStaff filters a sub-service roster down to the staff a customer may
// book. Duplicate assignment rows for the same staff member are collapsed to
// the first occurrence, then administrative and managerial roles are dropped.
// The order of the remaining entries follows the input.
func EligibleStaff(assignments []domain.StaffAssignment) []domain.StaffAssignment {
	eligible := make([]domain.StaffAssignment, 0, len(assignments))
	seen := make(map[uuid.UUID]struct{}, len(assignments))

	for _, a := range assignments {
		if _, dup := seen[a.StaffID]; dup {
			continue
		}
		seen[a.StaffID] = struct{}{}

		if !a.IsBookable() {
			continue
		}
		eligible = append(eligible, a)
	}

	return eligible
}
