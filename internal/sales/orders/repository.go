package orders

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridian-erp/meridian/internal/masterdata/shared"
	"github.com/meridian-erp/meridian/internal/platform/db"
)

type Repository interface {
	List(ctx context.Context, filters shared.ListFilters) ([]Order, int, error)
	Summary(ctx context.Context) (Summary, error)
	Get(ctx context.Context, id int64) (Order, error)
	Create(ctx context.Context, order Order) (Order, error)
	UpdateStatus(ctx context.Context, id int64, status OrderStatus) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

const headerColumns = `o.id, o.number, o.customer_id, c.name, o.status, o.order_date, o.net_total, o.tax_total, o.grand_total, o.created_at, o.updated_at`

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]Order, int, error) {
	query := `SELECT ` + headerColumns + ` FROM sales_orders o JOIN customers c ON c.id = o.customer_id WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if filters.Search != "" {
		argCount++
		query += ` AND (o.number ILIKE $` + strconv.Itoa(argCount) + ` OR c.name ILIKE $` + strconv.Itoa(argCount) + ` OR o.status::text ILIKE $` + strconv.Itoa(argCount) + `)`
		args = append(args, "%"+filters.Search+"%")
	}

	countQuery := `SELECT COUNT(*) FROM sales_orders o JOIN customers c ON c.id = o.customer_id WHERE 1=1`
	countArgs := []interface{}{}
	if filters.Search != "" {
		countArgs = append(countArgs, "%"+filters.Search+"%")
		countQuery += ` AND (o.number ILIKE $1 OR c.name ILIKE $1 OR o.status::text ILIKE $1)`
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dir := "DESC"
	if filters.SortDir == shared.SortAsc {
		dir = "ASC"
	}
	switch filters.SortBy {
	case "number":
		query += " ORDER BY o.number " + dir
	case "grand_total":
		query += " ORDER BY o.grand_total " + dir
	default:
		query += " ORDER BY o.order_date " + dir
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

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.Number, &o.CustomerID, &o.CustomerName, &o.Status, &o.OrderDate, &o.NetTotal, &o.TaxTotal, &o.GrandTotal, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}

func (r *repository) Summary(ctx context.Context) (Summary, error) {
	query := `SELECT COUNT(*),
		COUNT(*) FILTER (WHERE status = 'draft'),
		COUNT(*) FILTER (WHERE status = 'confirmed'),
		COUNT(*) FILTER (WHERE status = 'shipped'),
		COUNT(*) FILTER (WHERE status = 'cancelled'),
		COALESCE(SUM(grand_total) FILTER (WHERE status <> 'cancelled'), 0)
		FROM sales_orders`
	var s Summary
	err := r.db.QueryRow(ctx, query).Scan(&s.Total, &s.Draft, &s.Confirmed, &s.Shipped, &s.Cancelled, &s.GrandTotal)
	return s, err
}

func (r *repository) Get(ctx context.Context, id int64) (Order, error) {
	var o Order
	err := r.db.QueryRow(ctx, `SELECT `+headerColumns+` FROM sales_orders o JOIN customers c ON c.id = o.customer_id WHERE o.id = $1`, id).
		Scan(&o.ID, &o.Number, &o.CustomerID, &o.CustomerName, &o.Status, &o.OrderDate, &o.NetTotal, &o.TaxTotal, &o.GrandTotal, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, shared.ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}

	lines, err := r.db.Query(ctx, `SELECT id, order_id, product_id, description, quantity, unit_price, discount_percent, tax_percent, line_total FROM sales_order_lines WHERE order_id = $1 ORDER BY id`, id)
	if err != nil {
		return Order{}, err
	}
	defer lines.Close()
	for lines.Next() {
		var l OrderLine
		if err := lines.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Description, &l.Quantity, &l.UnitPrice, &l.DiscountPercent, &l.TaxPercent, &l.LineTotal); err != nil {
			return Order{}, err
		}
		o.Lines = append(o.Lines, l)
	}
	return o, lines.Err()
}

// Create writes the order header and its lines in one transaction.
func (r *repository) Create(ctx context.Context, order Order) (Order, error) {
	now := time.Now()
	err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO sales_orders (number, customer_id, status, order_date, net_total, tax_total, grand_total, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
			order.Number, order.CustomerID, order.Status, order.OrderDate, order.NetTotal, order.TaxTotal, order.GrandTotal, now, now).Scan(&order.ID)
		if err != nil {
			return err
		}
		for i := range order.Lines {
			line := &order.Lines[i]
			line.OrderID = order.ID
			err := tx.QueryRow(ctx,
				`INSERT INTO sales_order_lines (order_id, product_id, description, quantity, unit_price, discount_percent, tax_percent, line_total)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
				line.OrderID, line.ProductID, line.Description, line.Quantity, line.UnitPrice, line.DiscountPercent, line.TaxPercent, line.LineTotal).Scan(&line.ID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Order{}, err
	}
	order.CreatedAt = now
	order.UpdatedAt = now
	return order, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status OrderStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE sales_orders SET status = $1, updated_at = $2 WHERE id = $3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM sales_order_lines WHERE order_id = $1`, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM sales_orders WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}
