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

const equipmentTable = "equipment"

var equipmentFields = []string{
	"id", "name", "category", "location", "status",
	"purchase_date", "warranty_expiry", "notes", "created_at", "updated_at",
}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, e entities.Equipment) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, e entities.Equipment) error
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func equipmentConditions(b sq.SelectBuilder, filter types.Filter) sq.SelectBuilder {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		b = b.Where(sq.Or{
			sq.Expr("name ILIKE ?", pattern),
			sq.Expr("location ILIKE ?", pattern),
		})
	}
	if category, ok := filter.Filter["category"]; ok {
		b = b.Where(sq.Eq{"category": category})
	}
	if status, ok := filter.Filter["status"]; ok {
		b = b.Where(sq.Eq{"status": status})
	}
	return b
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	countBuilder := equipmentConditions(sq.Select("COUNT(*)").From(equipmentTable), filter)
	countSQL, countArgs, err := countBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	b := equipmentConditions(sq.Select(equipmentFields...).From(equipmentTable), filter).
		OrderBy("created_at DESC")
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]entities.Equipment, 0)
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Category, &e.Location, &e.Status,
			&e.PurchaseDate, &e.WarrantyExpiry, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		items = append(items, e)
	}
	return items, total, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query, args, err := sq.Select(equipmentFields...).
		From(equipmentTable).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var e entities.Equipment
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&e.ID, &e.Name, &e.Category, &e.Location, &e.Status,
		&e.PurchaseDate, &e.WarrantyExpiry, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, e entities.Equipment) (*entities.Equipment, error) {
	query, args, err := sq.Insert(equipmentTable).
		Columns("name", "category", "location", "status", "purchase_date", "warranty_expiry", "notes").
		Values(e.Name, e.Category, e.Location, e.Status, e.PurchaseDate, e.WarrantyExpiry, e.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.storage.QueryRow(ctx, query, args...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateEquipment replaces every mutable field; optional fields not
// present in the payload arrive here as NULL and are stored as NULL.
func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, e entities.Equipment) error {
	query, args, err := sq.Update(equipmentTable).
		Set("name", e.Name).
		Set("category", e.Category).
		Set("location", e.Location).
		Set("status", e.Status).
		Set("purchase_date", e.PurchaseDate).
		Set("warranty_expiry", e.WarrantyExpiry).
		Set("notes", e.Notes).
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

// DeleteEquipment removes the record only. Maintenance history keeps
// its equipment_id; the reference is allowed to dangle.
func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	query, args, err := sq.Delete(equipmentTable).
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
