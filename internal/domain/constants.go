package domain

// Business calendar of the salon. The schedule is static: open Monday through
// Saturday, closed on Sundays, with a fixed 30-minute booking grid.
const (
	BusinessOpenMinutes  = 7 * 60  // 07:00
	BusinessCloseMinutes = 18 * 60 // 18:00
	SlotStepMinutes      = 30
)

// Staff role labels that are never customer-bookable. Roles are free text and
// compared case-insensitively after trimming.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Validation limits for catalog administration.
const (
	MaxNameLength        = 120
	MaxDescriptionLength = 2000
	MaxNotesLength       = 500
	MinDurationMinutes   = 1
	MaxDurationMinutes   = BusinessCloseMinutes - BusinessOpenMinutes
)

// PaymentCurrency is the only currency the salon charges in (South African Rand).
const PaymentCurrency = "zar"
