package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// CreateStaffRequest - request to create a staff member.
type CreateStaffRequest struct {
	FullName string  `json:"fullName"`
	Role     *string `json:"role,omitempty"`
}

// UpdateStaffRequest - request to update a staff member. Nil fields are left
// unchanged; an empty role string clears the role.
type UpdateStaffRequest struct {
	FullName *string `json:"fullName,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// StaffResponse - staff member data.
type StaffResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	Role      *string   `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StaffListResponse - list of staff members.
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// FromDomainStaff converts a domain staff member to a response.
func FromDomainStaff(s *domain.Staff) *StaffResponse {
	return &StaffResponse{
		ID:        s.ID,
		FullName:  s.FullName,
		Role:      s.Role,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// FromDomainStaffList converts a list of domain staff members.
func FromDomainStaffList(staff []*domain.Staff) *StaffListResponse {
	out := make([]StaffResponse, 0, len(staff))
	for _, s := range staff {
		out = append(out, *FromDomainStaff(s))
	}
	return &StaffListResponse{Staff: out}
}
