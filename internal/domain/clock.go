package domain

import "time"

// SalonLocation is the salon's wall-clock zone. The business calendar, the
// past-date cutoff, and incoming date strings are all evaluated in this zone
// regardless of where the server runs. SAST has no daylight saving, so a
// fixed offset is safe.
var SalonLocation = time.FixedZone("SAST", 2*60*60)

// Now returns the current time on the salon's wall clock.
func Now() time.Time {
	return time.Now().In(SalonLocation)
}

// ParseDate parses a YYYY-MM-DD value as a salon-local date.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, value, SalonLocation)
}
