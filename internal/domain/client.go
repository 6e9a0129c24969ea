package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is a salon customer. The ID matches the identity issued by the
// external auth gateway, so the row can be created lazily on first booking.
type Client struct {
	ID        uuid.UUID
	FullName  string
	Email     *string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
