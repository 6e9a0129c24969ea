package subservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/psqlbuilder"
)

const (
	subServicesTable = "sub_services"
	assignmentsTable = "staff_sub_services"
)

var subServiceColumns = []string{
	"id",
	"service_id",
	"name",
	"description",
	"price",
	"duration_minutes",
	"is_active",
	"image_url",
	"created_at",
	"updated_at",
}

// Repository persists sub-services and their staff assignment roster.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a sub-service repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new sub-service.
func (r *Repository) Create(ctx context.Context, sub *domain.SubService) (*domain.SubService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(subServicesTable).
		Columns("service_id", "name", "description", "price", "duration_minutes", "is_active", "image_url").
		Values(sub.ServiceID, sub.Name, sub.Description, sub.Price, sub.DurationMinutes, sub.IsActive, sub.ImageURL).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sub.ID,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return sub, nil
}

// GetByID fetches one sub-service. When onlyActive is set, inactive rows are
// treated as not found, matching the public booking flow.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID, onlyActive bool) (*domain.SubService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(prefixed("s", subServiceColumns)...).
		Column("sv.name AS service_name").
		From(subServicesTable + " s").
		Join("services sv ON sv.id = s.service_id").
		Where(squirrel.Eq{"s.id": id})

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var sub domain.SubService
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sub.ID,
		&sub.ServiceID,
		&sub.Name,
		&sub.Description,
		&sub.Price,
		&sub.DurationMinutes,
		&sub.IsActive,
		&sub.ImageURL,
		&sub.CreatedAt,
		&sub.UpdatedAt,
		&sub.ServiceName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan sub-service: %v", ErrScanRow, err)
	}

	return &sub, nil
}

// ListByService returns the sub-services of one service ordered by name.
func (r *Repository) ListByService(ctx context.Context, serviceID uuid.UUID, onlyActive bool) ([]*domain.SubService, error) {
	selectBuilder := psqlbuilder.Select(prefixed("s", subServiceColumns)...).
		Column("sv.name AS service_name").
		Column("(SELECT COUNT(*) FROM " + assignmentsTable + " a WHERE a.sub_service_id = s.id) AS staff_count").
		From(subServicesTable + " s").
		Join("services sv ON sv.id = s.service_id").
		Where(squirrel.Eq{"s.service_id": serviceID}).
		OrderBy("s.name ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.is_active": true})
	}

	return r.querySubServices(ctx, selectBuilder, "ListByService")
}

// ListAll returns every sub-service with its parent service name and roster
// size, for the admin dashboard.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.SubService, error) {
	selectBuilder := psqlbuilder.Select(prefixed("s", subServiceColumns)...).
		Column("sv.name AS service_name").
		Column("(SELECT COUNT(*) FROM " + assignmentsTable + " a WHERE a.sub_service_id = s.id) AS staff_count").
		From(subServicesTable + " s").
		Join("services sv ON sv.id = s.service_id").
		OrderBy("sv.name ASC, s.name ASC")

	return r.querySubServices(ctx, selectBuilder, "ListAll")
}

func (r *Repository) querySubServices(ctx context.Context, selectBuilder squirrel.SelectBuilder, op string) ([]*domain.SubService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	subs := make([]*domain.SubService, 0)
	for rows.Next() {
		var sub domain.SubService
		if err := rows.Scan(
			&sub.ID,
			&sub.ServiceID,
			&sub.Name,
			&sub.Description,
			&sub.Price,
			&sub.DurationMinutes,
			&sub.IsActive,
			&sub.ImageURL,
			&sub.CreatedAt,
			&sub.UpdatedAt,
			&sub.ServiceName,
			&sub.StaffCount,
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan sub-service: %v", ErrScanRow, op, err)
		}
		subs = append(subs, &sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrExecQuery, op, err)
	}

	return subs, nil
}

// Update rewrites the mutable fields of a sub-service.
func (r *Repository) Update(ctx context.Context, sub *domain.SubService) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(subServicesTable).
		Set("service_id", sub.ServiceID).
		Set("name", sub.Name).
		Set("description", sub.Description).
		Set("price", sub.Price).
		Set("duration_minutes", sub.DurationMinutes).
		Set("is_active", sub.IsActive).
		Set("image_url", sub.ImageURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": sub.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrSubServiceNotFound
	}
	return nil
}

// Delete removes a sub-service. Assignments follow via ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(subServicesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrSubServiceNotFound
	}
	return nil
}

// ListAssignedStaff returns the raw staff assignment rows of a sub-service in
// assignment insertion order. The rows are not deduplicated or role-filtered
// here; eligibility is the availability package's concern.
func (r *Repository) ListAssignedStaff(ctx context.Context, subServiceID uuid.UUID) ([]domain.StaffAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"st.id",
		"st.full_name",
		"st.role",
		"a.experience_level",
	).
		From(assignmentsTable + " a").
		Join("staff st ON st.id = a.staff_id").
		Where(squirrel.Eq{"a.sub_service_id": subServiceID}).
		OrderBy("a.created_at ASC, st.full_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAssignedStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAssignedStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	assignments := make([]domain.StaffAssignment, 0)
	for rows.Next() {
		var a domain.StaffAssignment
		if err := rows.Scan(&a.StaffID, &a.FullName, &a.Role, &a.ExperienceLevel); err != nil {
			return nil, fmt.Errorf("%w: ListAssignedStaff - scan assignment: %v", ErrScanRow, err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAssignedStaff - iterate rows: %v", ErrExecQuery, err)
	}

	return assignments, nil
}

// ReplaceAssignments rewrites the whole roster of a sub-service, the way the
// admin form submits it: delete everything, insert the new set.
func (r *Repository) ReplaceAssignments(ctx context.Context, subServiceID uuid.UUID, assignments []domain.StaffAssignment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete(assignmentsTable).
		Where(squirrel.Eq{"sub_service_id": subServiceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAssignments - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceAssignments - execute delete: %v", ErrExecQuery, err)
	}

	if len(assignments) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert(assignmentsTable).
		Columns("staff_id", "sub_service_id", "experience_level")
	for _, a := range assignments {
		insertBuilder = insertBuilder.Values(a.StaffID, subServiceID, a.ExperienceLevel)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAssignments - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceAssignments - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}
