package warehouses

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridian-erp/meridian/internal/masterdata/shared"
)

type Repository interface {
	List(ctx context.Context, filters shared.ListFilters) ([]Warehouse, int, error)
	Summary(ctx context.Context) (Summary, error)
	Get(ctx context.Context, id int64) (Warehouse, error)
	Create(ctx context.Context, warehouse Warehouse) (Warehouse, error)
	Update(ctx context.Context, id int64, warehouse Warehouse) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const selectColumns = `id, code, name, location, capacity, is_active, created_at, updated_at`

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]Warehouse, int, error) {
	query := `SELECT ` + selectColumns + ` FROM warehouses WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if filters.Search != "" {
		argCount++
		query += ` AND (name ILIKE $` + strconv.Itoa(argCount) + ` OR code ILIKE $` + strconv.Itoa(argCount) + ` OR location ILIKE $` + strconv.Itoa(argCount) + `)`
		args = append(args, "%"+filters.Search+"%")
	}

	countQuery := `SELECT COUNT(*) FROM warehouses WHERE 1=1`
	countArgs := []interface{}{}
	if filters.Search != "" {
		countArgs = append(countArgs, "%"+filters.Search+"%")
		countQuery += ` AND (name ILIKE $1 OR code ILIKE $1 OR location ILIKE $1)`
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dir := "ASC"
	if filters.SortDir == shared.SortDesc {
		dir = "DESC"
	}
	switch filters.SortBy {
	case "code":
		query += " ORDER BY code " + dir
	case "capacity":
		query += " ORDER BY capacity " + dir
	default:
		query += " ORDER BY name " + dir
	}

	if filters.Limit > 0 {
		argCount++
		query += ` LIMIT $` + strconv.Itoa(argCount)
		args = append(args, filters.Limit)

		argCount++
		query += ` OFFSET $` + strconv.Itoa(argCount)
		args = append(args, filters.Offset(total))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var warehouses []Warehouse
	for rows.Next() {
		var w Warehouse
		if err := rows.Scan(&w.ID, &w.Code, &w.Name, &w.Location, &w.Capacity, &w.IsActive, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, 0, err
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, total, rows.Err()
}

func (r *repository) Summary(ctx context.Context) (Summary, error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active), COALESCE(SUM(capacity), 0) FROM warehouses`
	var s Summary
	err := r.db.QueryRow(ctx, query).Scan(&s.Total, &s.Active, &s.TotalCapacity)
	return s, err
}

func (r *repository) Get(ctx context.Context, id int64) (Warehouse, error) {
	var w Warehouse
	err := r.db.QueryRow(ctx, `SELECT `+selectColumns+` FROM warehouses WHERE id = $1`, id).
		Scan(&w.ID, &w.Code, &w.Name, &w.Location, &w.Capacity, &w.IsActive, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Warehouse{}, shared.ErrNotFound
	}
	return w, err
}

func (r *repository) Create(ctx context.Context, warehouse Warehouse) (Warehouse, error) {
	query := `INSERT INTO warehouses (code, name, location, capacity, is_active, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	err := r.db.QueryRow(ctx, query, warehouse.Code, warehouse.Name, warehouse.Location, warehouse.Capacity, warehouse.IsActive, now, now).Scan(&warehouse.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Warehouse{}, shared.ErrDuplicate
		}
		return Warehouse{}, err
	}
	warehouse.CreatedAt = now
	warehouse.UpdatedAt = now
	return warehouse, nil
}

func (r *repository) Update(ctx context.Context, id int64, warehouse Warehouse) error {
	query := `UPDATE warehouses SET code = $1, name = $2, location = $3, capacity = $4, is_active = $5, updated_at = $6 WHERE id = $7`
	tag, err := r.db.Exec(ctx, query, warehouse.Code, warehouse.Name, warehouse.Location, warehouse.Capacity, warehouse.IsActive, time.Now(), id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shared.ErrDuplicate
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
