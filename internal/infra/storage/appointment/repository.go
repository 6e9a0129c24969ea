package appointment

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

const appointmentsTable = "appointments"

// SQLSTATEs for an exclusion constraint violation and a serialization
// failure.
const (
	exclusionViolationCode   = "23P01"
	serializationFailureCode = "40001"
)

var appointmentColumns = []string{
	"id",
	"client_id",
	"service_id",
	"sub_service_id",
	"staff_id",
	"start_time",
	"end_time",
	"status",
	"notes",
	"payment_intent_id",
	"created_at",
	"updated_at",
}

// Repository persists appointments.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates an appointment repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new appointment. The staff/time-range exclusion constraint
// is the last line of defence against double-booking; a violation comes back
// as ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(appointmentsTable).
		Columns(
			"client_id",
			"service_id",
			"sub_service_id",
			"staff_id",
			"start_time",
			"end_time",
			"status",
			"notes",
			"payment_intent_id",
		).
		Values(
			appt.ClientID,
			appt.ServiceID,
			appt.SubServiceID,
			appt.StaffID,
			appt.StartTime,
			appt.EndTime,
			appt.Status,
			appt.Notes,
			appt.PaymentIntentID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&appt.CreatedAt,
		&appt.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == exclusionViolationCode {
			return nil, ErrSlotTaken
		}
		return nil, execError("Create - execute insert", err)
	}

	return appt, nil
}

// GetByID fetches one appointment.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From(appointmentsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var appt domain.Appointment
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&appt.ClientID,
		&appt.ServiceID,
		&appt.SubServiceID,
		&appt.StaffID,
		&appt.StartTime,
		&appt.EndTime,
		&appt.Status,
		&appt.Notes,
		&appt.PaymentIntentID,
		&appt.CreatedAt,
		&appt.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return &appt, nil
}

// ListDetails returns appointments joined with client, staff, and sub-service
// display data, newest first.
//
// With both StartOfDay and EndOfDay set the listing is restricted to
// appointments overlapping that window and ordered ascending instead; inside
// a transaction such a day query locks the matched rows (FOR UPDATE OF a) so
// the booking path can re-check overlap before inserting.
func (r *Repository) ListDetails(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.AppointmentDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(prefixed("a", appointmentColumns)...).
		Column("c.full_name AS client_name").
		Column("st.full_name AS staff_name").
		Column("ss.name AS sub_service_name").
		Column("ss.price AS sub_service_price").
		From(appointmentsTable + " a").
		Join("clients c ON c.id = a.client_id").
		Join("staff st ON st.id = a.staff_id").
		Join("sub_services ss ON ss.id = a.sub_service_id")

	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.client_id": *filter.ClientID})
	}
	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.staff_id": *filter.StaffID})
	}
	if filter.OnlyConfirmed {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.status": domain.StatusConfirmed})
	}

	dayQuery := filter.StartOfDay != nil && filter.EndOfDay != nil
	if dayQuery {
		// Overlap with the day window, not containment: an appointment that
		// merely starts inside the window occupies its staff slot.
		selectBuilder = selectBuilder.
			Where(squirrel.Lt{"a.start_time": *filter.EndOfDay}).
			Where(squirrel.Gt{"a.end_time": *filter.StartOfDay}).
			OrderBy("a.start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("a.start_time DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && dayQuery {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetails - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execError("ListDetails - execute query", err)
	}
	defer rows.Close()

	appointments := make([]*domain.AppointmentDetails, 0)
	for rows.Next() {
		var d domain.AppointmentDetails
		if err := rows.Scan(
			&d.ID,
			&d.ClientID,
			&d.ServiceID,
			&d.SubServiceID,
			&d.StaffID,
			&d.StartTime,
			&d.EndTime,
			&d.Status,
			&d.Notes,
			&d.PaymentIntentID,
			&d.CreatedAt,
			&d.UpdatedAt,
			&d.ClientName,
			&d.StaffName,
			&d.SubServiceName,
			&d.SubServicePrice,
		); err != nil {
			return nil, fmt.Errorf("%w: ListDetails - scan appointment: %v", ErrScanRow, err)
		}
		appointments = append(appointments, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, execError("ListDetails - iterate rows", err)
	}

	return appointments, nil
}

// Cancel marks an appointment canceled.
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(appointmentsTable).
		Set("status", domain.StatusCanceled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// execError wraps a driver failure as ErrExecQuery. Serialization failures
// (SQLSTATE 40001) stay in the chain so serializable transactions can retry
// the whole unit of work.
func execError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == serializationFailureCode {
		return fmt.Errorf("%w: %s: %w", ErrExecQuery, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}
