package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ExperienceLevel grades how experienced a staff member is at a sub-service.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
	ExperienceExpert       ExperienceLevel = "expert"

	DefaultExperienceLevel = ExperienceBeginner
)

// ValidExperienceLevel reports whether level is one of the known grades.
func ValidExperienceLevel(level ExperienceLevel) bool {
	switch level {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced, ExperienceExpert:
		return true
	default:
		return false
	}
}

// Staff is a salon staff member. Role is a free-text label; the values
// "admin" and "manager" mark internal-only staff that customers can never book.
type Staff struct {
	ID        uuid.UUID
	FullName  string
	Role      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the staff member has the admin role.
func (s *Staff) IsAdmin() bool {
	return s.Role != nil && NormalizeRole(*s.Role) == RoleAdmin
}

// StaffAssignment is one row of the staff-to-sub-service roster, carrying the
// experience level for that pairing.
type StaffAssignment struct {
	StaffID         uuid.UUID
	FullName        string
	Role            *string
	ExperienceLevel ExperienceLevel
}

// IsBookable reports whether the assigned staff member may be offered to
// customers. Administrative and managerial roles are internal-only even when
// mistakenly assigned to a sub-service.
func (a *StaffAssignment) IsBookable() bool {
	if a.Role == nil {
		return true
	}
	role := NormalizeRole(*a.Role)
	return role != RoleAdmin && role != RoleManager
}

// NormalizeRole lowercases and trims a role label for comparison.
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
