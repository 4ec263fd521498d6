package inventory

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
	List(ctx context.Context, filters shared.ListFilters) ([]StockLevel, int, error)
	Summary(ctx context.Context) (Summary, error)
	Adjust(ctx context.Context, adj Adjustment) (StockLevel, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

const selectColumns = `s.id, s.product_id, p.sku, p.name, s.warehouse_id, w.name, s.quantity, s.reorder_point, p.unit_price, s.updated_at`

const fromClause = ` FROM stock_levels s JOIN products p ON p.id = s.product_id JOIN warehouses w ON w.id = s.warehouse_id`

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]StockLevel, int, error) {
	query := `SELECT ` + selectColumns + fromClause + ` WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if filters.Search != "" {
		argCount++
		query += ` AND (p.name ILIKE $` + strconv.Itoa(argCount) + ` OR p.sku ILIKE $` + strconv.Itoa(argCount) + ` OR w.name ILIKE $` + strconv.Itoa(argCount) + `)`
		args = append(args, "%"+filters.Search+"%")
	}
	if filters.WarehouseID != nil {
		argCount++
		query += ` AND s.warehouse_id = $` + strconv.Itoa(argCount)
		args = append(args, *filters.WarehouseID)
	}

	countQuery := `SELECT COUNT(*)` + fromClause + ` WHERE 1=1`
	countArgs := []interface{}{}
	countCount := 0
	if filters.Search != "" {
		countCount++
		countQuery += ` AND (p.name ILIKE $` + strconv.Itoa(countCount) + ` OR p.sku ILIKE $` + strconv.Itoa(countCount) + ` OR w.name ILIKE $` + strconv.Itoa(countCount) + `)`
		countArgs = append(countArgs, "%"+filters.Search+"%")
	}
	if filters.WarehouseID != nil {
		countCount++
		countQuery += ` AND s.warehouse_id = $` + strconv.Itoa(countCount)
		countArgs = append(countArgs, *filters.WarehouseID)
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
	case "quantity":
		query += " ORDER BY s.quantity " + dir
	case "warehouse":
		query += " ORDER BY w.name " + dir
	default:
		query += " ORDER BY p.name " + dir
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

	var levels []StockLevel
	for rows.Next() {
		var s StockLevel
		if err := rows.Scan(&s.ID, &s.ProductID, &s.ProductSKU, &s.ProductName, &s.WarehouseID, &s.WarehouseName, &s.Quantity, &s.ReorderPoint, &s.UnitPrice, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		levels = append(levels, s)
	}
	return levels, total, rows.Err()
}

func (r *repository) Summary(ctx context.Context) (Summary, error) {
	query := `SELECT COUNT(*),
		COALESCE(SUM(s.quantity), 0),
		COALESCE(SUM(s.quantity * p.unit_price), 0),
		COUNT(*) FILTER (WHERE s.quantity <= s.reorder_point)` + fromClause
	var s Summary
	err := r.db.QueryRow(ctx, query).Scan(&s.Items, &s.TotalQty, &s.TotalValue, &s.LowStock)
	return s, err
}

// Adjust applies a delta to a stock row, creating it when missing, and
// records the movement in the same transaction.
func (r *repository) Adjust(ctx context.Context, adj Adjustment) (StockLevel, error) {
	var out StockLevel
	err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		now := time.Now()
		err := tx.QueryRow(ctx,
			`INSERT INTO stock_levels (product_id, warehouse_id, quantity, reorder_point, updated_at)
			 VALUES ($1, $2, $3, 0, $4)
			 ON CONFLICT (product_id, warehouse_id)
			 DO UPDATE SET quantity = stock_levels.quantity + $3, updated_at = $4
			 RETURNING id, product_id, warehouse_id, quantity, reorder_point, updated_at`,
			adj.ProductID, adj.WarehouseID, adj.Delta, now).
			Scan(&out.ID, &out.ProductID, &out.WarehouseID, &out.Quantity, &out.ReorderPoint, &out.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return shared.ErrNotFound
			}
			return err
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO stock_movements (product_id, warehouse_id, delta, reason, created_at) VALUES ($1, $2, $3, $4, $5)`,
			adj.ProductID, adj.WarehouseID, adj.Delta, adj.Reason, now)
		return err
	})
	if err != nil {
		return StockLevel{}, err
	}
	return out, nil
}
