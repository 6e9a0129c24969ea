package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/psqlbuilder"
)

const clientsTable = "clients"

// Repository persists salon clients.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a client repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches one client.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"full_name",
		"email",
		"phone",
		"created_at",
		"updated_at",
	).
		From(clientsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Client
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.FullName,
		&c.Email,
		&c.Phone,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan client: %v", ErrScanRow, err)
	}

	return &c, nil
}

// EnsureExists creates the client row on first booking. The ID comes from the
// external auth gateway, so an existing row is left untouched.
func (r *Repository) EnsureExists(ctx context.Context, c *domain.Client) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(clientsTable).
		Columns("id", "full_name", "email", "phone").
		Values(c.ID, c.FullName, c.Email, c.Phone).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: EnsureExists - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		// EnsureExists runs inside the booking transaction; a serialization
		// failure (SQLSTATE 40001) stays in the chain so it can be retried.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "40001" {
			return fmt.Errorf("%w: EnsureExists - execute insert: %w", ErrExecQuery, err)
		}
		return fmt.Errorf("%w: EnsureExists - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}
