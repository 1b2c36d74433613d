package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
)

const maintenanceTable = "maintenance_requests"

// boardOrder ranks priorities for display; unknown values sort last.
// The secondary key pushes undated requests to the bottom.
const boardOrder = `CASE mr.priority
	WHEN 'Critical' THEN 1
	WHEN 'High' THEN 2
	WHEN 'Medium' THEN 3
	WHEN 'Low' THEN 4
	ELSE 5
END`

var maintenanceFields = []string{
	"mr.id", "mr.equipment_id", "mr.title", "mr.description", "mr.priority", "mr.status",
	"mr.assigned_to", "mr.requester_name", "mr.due_date", "mr.estimated_cost", "mr.actual_cost",
	"mr.is_recurring", "mr.frequency", "mr.created_at", "mr.updated_at",
	"e.name AS equipment_name", "e.category AS equipment_category",
}

type MaintenanceRepositoryInterface interface {
	GetRequests(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRequest, uint64, error)
	GetRequestsByEquipment(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceRequest, error)
	GetScheduled(ctx context.Context) ([]entities.MaintenanceRequest, error)
	FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, r entities.MaintenanceRequest) (*entities.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, id uint64, r entities.MaintenanceRequest) error
	UpdateRequestStatus(ctx context.Context, id uint64, status string) error
	DeleteRequest(ctx context.Context, id uint64) error
}

type MaintenanceRepository struct {
	storage *pgxpool.Pool
}

func NewMaintenanceRepository(storage *pgxpool.Pool) MaintenanceRepositoryInterface {
	return &MaintenanceRepository{storage: storage}
}

// selectRequests joins equipment for display columns. LEFT JOIN keeps
// requests whose equipment has been deleted.
func selectRequests() sq.SelectBuilder {
	return sq.Select(maintenanceFields...).
		From(maintenanceTable + " mr").
		LeftJoin("equipment e ON e.id = mr.equipment_id")
}

func requestConditions(b sq.SelectBuilder, filter types.Filter) sq.SelectBuilder {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		b = b.Where(sq.Or{
			sq.Expr("mr.title ILIKE ?", pattern),
			sq.Expr("e.name ILIKE ?", pattern),
		})
	}
	if status, ok := filter.Filter["status"]; ok {
		b = b.Where(sq.Eq{"mr.status": status})
	}
	if priority, ok := filter.Filter["priority"]; ok {
		b = b.Where(sq.Eq{"mr.priority": priority})
	}
	if equipmentID, ok := filter.Filter["equipment_id"]; ok {
		b = b.Where(sq.Eq{"mr.equipment_id": equipmentID})
	}
	return b
}

func scanRequest(row pgx.Row, r *entities.MaintenanceRequest) error {
	return row.Scan(
		&r.ID, &r.EquipmentID, &r.Title, &r.Description, &r.Priority, &r.Status,
		&r.AssignedTo, &r.RequesterName, &r.DueDate, &r.EstimatedCost, &r.ActualCost,
		&r.IsRecurring, &r.Frequency, &r.CreatedAt, &r.UpdatedAt,
		&r.EquipmentName, &r.EquipmentCategory,
	)
}

func (r *MaintenanceRepository) queryRequests(ctx context.Context, b sq.SelectBuilder) ([]entities.MaintenanceRequest, error) {
	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entities.MaintenanceRequest, 0)
	for rows.Next() {
		var req entities.MaintenanceRequest
		if err := scanRequest(rows, &req); err != nil {
			return nil, err
		}
		items = append(items, req)
	}
	return items, rows.Err()
}

func (r *MaintenanceRepository) GetRequests(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRequest, uint64, error) {
	countBuilder := requestConditions(
		sq.Select("COUNT(*)").From(maintenanceTable+" mr").LeftJoin("equipment e ON e.id = mr.equipment_id"),
		filter,
	)
	countSQL, countArgs, err := countBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	b := requestConditions(selectRequests(), filter).
		OrderBy(boardOrder, "mr.due_date ASC NULLS LAST", "mr.created_at DESC")
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	items, err := r.queryRequests(ctx, b)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *MaintenanceRepository) GetRequestsByEquipment(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceRequest, error) {
	return r.queryRequests(ctx, selectRequests().
		Where(sq.Eq{"mr.equipment_id": equipmentID}).
		OrderBy("mr.created_at DESC"))
}

// GetScheduled returns every dated request in due date order. Requests
// without a due date never appear on the calendar.
func (r *MaintenanceRepository) GetScheduled(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	return r.queryRequests(ctx, selectRequests().
		Where("mr.due_date IS NOT NULL").
		OrderBy("mr.due_date ASC", "mr.created_at DESC"))
}

func (r *MaintenanceRepository) FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	query, args, err := selectRequests().
		Where(sq.Eq{"mr.id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var req entities.MaintenanceRequest
	if err := scanRequest(r.storage.QueryRow(ctx, query, args...), &req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *MaintenanceRepository) CreateRequest(ctx context.Context, req entities.MaintenanceRequest) (*entities.MaintenanceRequest, error) {
	query, args, err := sq.Insert(maintenanceTable).
		Columns("equipment_id", "title", "description", "priority", "status",
			"assigned_to", "requester_name", "due_date", "estimated_cost", "actual_cost",
			"is_recurring", "frequency").
		Values(req.EquipmentID, req.Title, req.Description, req.Priority, req.Status,
			req.AssignedTo, req.RequesterName, req.DueDate, req.EstimatedCost, req.ActualCost,
			req.IsRecurring, req.Frequency).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.storage.QueryRow(ctx, query, args...).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *MaintenanceRepository) UpdateRequest(ctx context.Context, id uint64, req entities.MaintenanceRequest) error {
	query, args, err := sq.Update(maintenanceTable).
		Set("equipment_id", req.EquipmentID).
		Set("title", req.Title).
		Set("description", req.Description).
		Set("priority", req.Priority).
		Set("status", req.Status).
		Set("assigned_to", req.AssignedTo).
		Set("requester_name", req.RequesterName).
		Set("due_date", req.DueDate).
		Set("estimated_cost", req.EstimatedCost).
		Set("actual_cost", req.ActualCost).
		Set("is_recurring", req.IsRecurring).
		Set("frequency", req.Frequency).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateRequestStatus moves a card between board columns. Any valid
// status may follow any other; repeating the current status is a no-op
// apart from the updated_at bump.
func (r *MaintenanceRepository) UpdateRequestStatus(ctx context.Context, id uint64, status string) error {
	query, args, err := sq.Update(maintenanceTable).
		Set("status", status).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MaintenanceRepository) DeleteRequest(ctx context.Context, id uint64) error {
	query, args, err := sq.Delete(maintenanceTable).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
