package products

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
	List(ctx context.Context, filters shared.ListFilters) ([]Product, int, error)
	Summary(ctx context.Context) (Summary, error)
	Get(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, product Product) (Product, error)
	Update(ctx context.Context, id int64, product Product) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const selectColumns = `id, sku, name, category, unit_price, vat_rate, is_active, created_at, updated_at`

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]Product, int, error) {
	query := `SELECT ` + selectColumns + ` FROM products WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if filters.Search != "" {
		argCount++
		query += ` AND (name ILIKE $` + strconv.Itoa(argCount) + ` OR sku ILIKE $` + strconv.Itoa(argCount) + ` OR category ILIKE $` + strconv.Itoa(argCount) + `)`
		args = append(args, "%"+filters.Search+"%")
	}

	countQuery := `SELECT COUNT(*) FROM products WHERE 1=1`
	countArgs := []interface{}{}
	if filters.Search != "" {
		countArgs = append(countArgs, "%"+filters.Search+"%")
		countQuery += ` AND (name ILIKE $1 OR sku ILIKE $1 OR category ILIKE $1)`
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
	case "sku":
		query += " ORDER BY sku " + dir
	case "unit_price":
		query += " ORDER BY unit_price " + dir
	case "category":
		query += " ORDER BY category " + dir
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

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Category, &p.UnitPrice, &p.VATRate, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *repository) Summary(ctx context.Context) (Summary, error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active), COALESCE(AVG(unit_price), 0), COUNT(DISTINCT category) FROM products`
	var s Summary
	err := r.db.QueryRow(ctx, query).Scan(&s.Total, &s.Active, &s.AvgPrice, &s.Categories)
	return s, err
}

func (r *repository) Get(ctx context.Context, id int64) (Product, error) {
	var p Product
	err := r.db.QueryRow(ctx, `SELECT `+selectColumns+` FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.SKU, &p.Name, &p.Category, &p.UnitPrice, &p.VATRate, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, shared.ErrNotFound
	}
	return p, err
}

func (r *repository) Create(ctx context.Context, product Product) (Product, error) {
	query := `INSERT INTO products (sku, name, category, unit_price, vat_rate, is_active, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	err := r.db.QueryRow(ctx, query, product.SKU, product.Name, product.Category, product.UnitPrice, product.VATRate, product.IsActive, now, now).Scan(&product.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Product{}, shared.ErrDuplicate
		}
		return Product{}, err
	}
	product.CreatedAt = now
	product.UpdatedAt = now
	return product, nil
}

func (r *repository) Update(ctx context.Context, id int64, product Product) error {
	query := `UPDATE products SET sku = $1, name = $2, category = $3, unit_price = $4, vat_rate = $5, is_active = $6, updated_at = $7 WHERE id = $8`
	tag, err := r.db.Exec(ctx, query, product.SKU, product.Name, product.Category, product.UnitPrice, product.VATRate, product.IsActive, time.Now(), id)
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
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
