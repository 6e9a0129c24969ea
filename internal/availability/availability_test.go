package availability

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// now is a Wednesday.
var now = time.Date(2026, time.September, 2, 11, 30, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsDateBookable(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "today", date: date(2026, time.September, 2), want: true},
		{name: "today with time component", date: now, want: true},
		{name: "yesterday", date: date(2026, time.September, 1), want: false},
		{name: "far past", date: date(2020, time.January, 6), want: false},
		{name: "tomorrow", date: date(2026, time.September, 3), want: true},
		{name: "next saturday", date: date(2026, time.September, 5), want: true},
		{name: "next sunday", date: date(2026, time.September, 6), want: false},
		{name: "sunday far in the future", date: date(2027, time.June, 6), want: false},
		{name: "monday far in the future", date: date(2027, time.June, 7), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDateBookable(tt.date, now))
		})
	}
}

func TestIsDateBookable_CutoffFollowsSalonDay(t *testing.T) {
	// 23:00 UTC on Sep 2 is already Sep 3 on the salon clock (SAST, UTC+2),
	// so a request for Sep 2 parsed in the salon zone is a past date.
	salonNow := time.Date(2026, time.September, 2, 23, 0, 0, 0, time.UTC).In(domain.SalonLocation)

	sep2, err := domain.ParseDate("2026-09-02")
	require.NoError(t, err)
	assert.False(t, IsDateBookable(sep2, salonNow))

	sep3, err := domain.ParseDate("2026-09-03")
	require.NoError(t, err)
	assert.True(t, IsDateBookable(sep3, salonNow))
}

func TestGenerateSlots_Grid(t *testing.T) {
	monday := date(2026, time.September, 7)

	slots := GenerateSlots(monday, 30, now)

	// 07:00 .. 17:30 inclusive on a 30-minute grid.
	require.Len(t, slots, 22)
	assert.Equal(t, types.TimeString("07:00"), slots[0])
	assert.Equal(t, types.TimeString("17:30"), slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]), "slots must be strictly ascending")
	}
}

func TestGenerateSlots_DurationLimitsLastSlot(t *testing.T) {
	monday := date(2026, time.September, 7)

	slots := GenerateSlots(monday, 45, now)

	// 17:15 is not on the grid; the last grid start whose end fits is 17:00
	// (ends 17:45). 17:30 would end at 18:15 and must be excluded.
	assert.Contains(t, slots, types.TimeString("17:00"))
	assert.NotContains(t, slots, types.TimeString("17:30"))

	for _, slot := range slots {
		minutes, err := slot.Minutes()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, minutes, domain.BusinessOpenMinutes)
		assert.LessOrEqual(t, minutes+45, domain.BusinessCloseMinutes)
	}
}

func TestGenerateSlots_FullDayDuration(t *testing.T) {
	monday := date(2026, time.September, 7)

	slots := GenerateSlots(monday, 660, now)
	assert.Equal(t, []types.TimeString{"07:00"}, slots)

	slots = GenerateSlots(monday, 661, now)
	assert.Empty(t, slots, "duration exceeding the business window yields no slots")
}

func TestGenerateSlots_EveryFeasibleDurationYieldsOrderedSlots(t *testing.T) {
	monday := date(2026, time.September, 7)

	for _, duration := range []int{1, 15, 29, 30, 31, 60, 90, 175, 330, 659, 660} {
		slots := GenerateSlots(monday, duration, now)
		require.NotEmpty(t, slots, "duration %d", duration)

		for i, slot := range slots {
			minutes, err := slot.Minutes()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, minutes, domain.BusinessOpenMinutes, "duration %d", duration)
			assert.LessOrEqual(t, minutes+duration, domain.BusinessCloseMinutes, "duration %d", duration)
			if i > 0 {
				assert.True(t, slots[i-1].IsBefore(slot), "duration %d: slots must be ascending", duration)
			}
		}
	}
}

func TestGenerateSlots_EmptyCases(t *testing.T) {
	sunday := date(2026, time.September, 6)
	yesterday := date(2026, time.September, 1)
	monday := date(2026, time.September, 7)

	assert.Empty(t, GenerateSlots(sunday, 30, now), "closed on Sundays")
	assert.Empty(t, GenerateSlots(sunday, 660, now))
	assert.Empty(t, GenerateSlots(yesterday, 30, now), "no past dates")
	assert.Empty(t, GenerateSlots(monday, 0, now), "non-positive duration")
	assert.Empty(t, GenerateSlots(monday, -30, now))
}

func TestContainsSlot(t *testing.T) {
	monday := date(2026, time.September, 7)

	assert.True(t, ContainsSlot(monday, 60, "09:30", now))
	assert.False(t, ContainsSlot(monday, 60, "09:45", now), "off-grid time")
	assert.False(t, ContainsSlot(monday, 60, "17:30", now), "would end past closing")
	assert.False(t, ContainsSlot(date(2026, time.September, 6), 60, "09:30", now), "sunday")
}

func assignment(id uuid.UUID, name string, role *string) domain.StaffAssignment {
	return domain.StaffAssignment{
		StaffID:         id,
		FullName:        name,
		Role:            role,
		ExperienceLevel: domain.ExperienceBeginner,
	}
}

func TestEligibleStaff_FiltersAdministrativeRoles(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()
	dave := uuid.New()
	erin := uuid.New()

	roster := []domain.StaffAssignment{
		assignment(alice, "Alice", ptr.Ptr("Stylist")),
		assignment(bob, "Bob", ptr.Ptr("Admin")),
		assignment(carol, "Carol", ptr.Ptr("ADMIN ")),
		assignment(dave, "Dave", ptr.Ptr("manager")),
		assignment(erin, "Erin", nil),
	}

	eligible := EligibleStaff(roster)

	require.Len(t, eligible, 2)
	assert.Equal(t, alice, eligible[0].StaffID, "input order preserved")
	assert.Equal(t, erin, eligible[1].StaffID, "nil role is bookable")
}

func TestEligibleStaff_DeduplicatesByStaffID(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	roster := []domain.StaffAssignment{
		assignment(alice, "Alice", ptr.Ptr("Stylist")),
		assignment(alice, "Alice", ptr.Ptr("Stylist")),
		assignment(bob, "Bob", ptr.Ptr("Nail Tech")),
		assignment(alice, "Alice", ptr.Ptr("Stylist")),
	}

	eligible := EligibleStaff(roster)

	require.Len(t, eligible, 2)
	assert.Equal(t, alice, eligible[0].StaffID)
	assert.Equal(t, bob, eligible[1].StaffID)
}

func TestEligibleStaff_DuplicateAdminStaysExcluded(t *testing.T) {
	admin := uuid.New()

	roster := []domain.StaffAssignment{
		assignment(admin, "Olga", ptr.Ptr("admin")),
		assignment(admin, "Olga", ptr.Ptr("admin")),
	}

	assert.Empty(t, EligibleStaff(roster))
}

func TestEligibleStaff_EmptyRoster(t *testing.T) {
	assert.Empty(t, EligibleStaff(nil))
	assert.Empty(t, EligibleStaff([]domain.StaffAssignment{}))
}
