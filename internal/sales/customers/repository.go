package customers

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
	List(ctx context.Context, filters shared.ListFilters) ([]Customer, int, error)
	Summary(ctx context.Context) (Summary, error)
	Get(ctx context.Context, id int64) (Customer, error)
	Create(ctx context.Context, customer Customer) (Customer, error)
	Update(ctx context.Context, id int64, customer Customer) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const selectColumns = `id, code, name, email, phone, address, credit_limit, is_active, created_at, updated_at`

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]Customer, int, error) {
	query := `SELECT ` + selectColumns + ` FROM customers WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if filters.Search != "" {
		argCount++
		query += ` AND (name ILIKE $` + strconv.Itoa(argCount) + ` OR code ILIKE $` + strconv.Itoa(argCount) + ` OR email ILIKE $` + strconv.Itoa(argCount) + ` OR phone ILIKE $` + strconv.Itoa(argCount) + `)`
		args = append(args, "%"+filters.Search+"%")
	}

	countQuery := `SELECT COUNT(*) FROM customers WHERE 1=1`
	countArgs := []interface{}{}
	if filters.Search != "" {
		countArgs = append(countArgs, "%"+filters.Search+"%")
		countQuery += ` AND (name ILIKE $1 OR code ILIKE $1 OR email ILIKE $1 OR phone ILIKE $1)`
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
	case "credit_limit":
		query += " ORDER BY credit_limit " + dir
	case "created_at":
		query += " ORDER BY created_at " + dir
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

	var customers []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreditLimit, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
	}
	return customers, total, rows.Err()
}

func (r *repository) Summary(ctx context.Context) (Summary, error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active), COALESCE(SUM(credit_limit), 0) FROM customers`
	var s Summary
	err := r.db.QueryRow(ctx, query).Scan(&s.Total, &s.Active, &s.TotalCredit)
	return s, err
}

func (r *repository) Get(ctx context.Context, id int64) (Customer, error) {
	var c Customer
	err := r.db.QueryRow(ctx, `SELECT `+selectColumns+` FROM customers WHERE id = $1`, id).
		Scan(&c.ID, &c.Code, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreditLimit, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Customer{}, shared.ErrNotFound
	}
	return c, err
}

func (r *repository) Create(ctx context.Context, customer Customer) (Customer, error) {
	query := `INSERT INTO customers (code, name, email, phone, address, credit_limit, is_active, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	err := r.db.QueryRow(ctx, query, customer.Code, customer.Name, customer.Email, customer.Phone, customer.Address, customer.CreditLimit, customer.IsActive, now, now).Scan(&customer.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Customer{}, shared.ErrDuplicate
		}
		return Customer{}, err
	}
	customer.CreatedAt = now
	customer.UpdatedAt = now
	return customer, nil
}

func (r *repository) Update(ctx context.Context, id int64, customer Customer) error {
	query := `UPDATE customers SET code = $1, name = $2, email = $3, phone = $4, address = $5, credit_limit = $6, is_active = $7, updated_at = $8 WHERE id = $9`
	tag, err := r.db.Exec(ctx, query, customer.Code, customer.Name, customer.Email, customer.Phone, customer.Address, customer.CreditLimit, customer.IsActive, time.Now(), id)
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
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
