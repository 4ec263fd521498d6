package invoicing

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridian-erp/meridian/internal/masterdata/shared"
	"github.com/meridian-erp/meridian/internal/platform/db"
)

type Repository interface {
	List(ctx context.Context, filters shared.ListFilters) ([]Invoice, int, error)
	GetByID(ctx context.Context, id int64) (Invoice, error)
	Create(ctx context.Context, inv Invoice) (Invoice, error)
	UpdateStatus(ctx context.Context, id int64, status InvoiceStatus) (Invoice, error)
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context) (Summary, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

const headerColumns = `i.id, i.number, i.customer_id, c.name, i.issue_date, i.due_date, i.status, i.currency, i.notes, i.bank_name, i.bank_iban, i.bank_bic, i.net_total, i.vat_total, i.grand_total, i.created_at, i.updated_at`

const fromClause = ` FROM invoices i JOIN customers c ON c.id = i.customer_id`

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]Invoice, int, error) {
	query := `SELECT ` + headerColumns + fromClause + ` WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if filters.Search != "" {
		argCount++
		query += ` AND (i.number ILIKE $` + strconv.Itoa(argCount) + ` OR c.name ILIKE $` + strconv.Itoa(argCount) + `)`
		args = append(args, "%"+filters.Search+"%")
	}

	countQuery := `SELECT COUNT(*)` + fromClause + ` WHERE 1=1`
	countArgs := []interface{}{}
	if filters.Search != "" {
		countQuery += ` AND (i.number ILIKE $1 OR c.name ILIKE $1)`
		countArgs = append(countArgs, "%"+filters.Search+"%")
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
	case "number":
		query += " ORDER BY i.number " + dir
	case "customer":
		query += " ORDER BY c.name " + dir
	case "due_date":
		query += " ORDER BY i.due_date " + dir
	case "grand_total":
		query += " ORDER BY i.grand_total " + dir
	default:
		query += " ORDER BY i.issue_date " + dir + ", i.id " + dir
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

	var invoices []Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, total, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id int64) (Invoice, error) {
	row := r.db.QueryRow(ctx, `SELECT `+headerColumns+fromClause+` WHERE i.id = $1`, id)
	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Invoice{}, shared.ErrNotFound
		}
		return Invoice{}, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, invoice_id, description, quantity, unit_price, vat_rate, line_net, line_vat
		 FROM invoice_lines WHERE invoice_id = $1 ORDER BY id`, id)
	if err != nil {
		return Invoice{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line LineItem
		if err := rows.Scan(&line.ID, &line.InvoiceID, &line.Description, &line.Quantity, &line.UnitPrice, &line.VATRate, &line.LineNet, &line.LineVAT); err != nil {
			return Invoice{}, err
		}
		inv.Lines = append(inv.Lines, line)
	}
	return inv, rows.Err()
}

// Create writes the header and its lines in one transaction so a partial
// invoice can never be observed.
func (r *repository) Create(ctx context.Context, inv Invoice) (Invoice, error) {
	err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		now := time.Now()
		err := tx.QueryRow(ctx,
			`INSERT INTO invoices (number, customer_id, issue_date, due_date, status, currency, notes, bank_name, bank_iban, bank_bic, net_total, vat_total, grand_total, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
			 RETURNING id, created_at, updated_at`,
			inv.Number, inv.CustomerID, inv.IssueDate, inv.DueDate, inv.Status, inv.Currency, inv.Notes,
			inv.BankName, inv.BankIBAN, inv.BankBIC, inv.NetTotal, inv.VATTotal, inv.GrandTotal, now).
			Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return shared.ErrDuplicate
			}
			return err
		}

		for i := range inv.Lines {
			line := &inv.Lines[i]
			line.InvoiceID = inv.ID
			err := tx.QueryRow(ctx,
				`INSERT INTO invoice_lines (invoice_id, description, quantity, unit_price, vat_rate, line_net, line_vat)
				 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
				line.InvoiceID, line.Description, line.Quantity, line.UnitPrice, line.VATRate, line.LineNet, line.LineVAT).
				Scan(&line.ID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Invoice{}, err
	}
	return inv, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status InvoiceStatus) (Invoice, error) {
	_, err := r.db.Exec(ctx,
		`UPDATE invoices SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	if err != nil {
		return Invoice{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Summary(ctx context.Context) (Summary, error) {
	query := `SELECT COUNT(*),
		COUNT(*) FILTER (WHERE status = 'draft'),
		COUNT(*) FILTER (WHERE status = 'issued'),
		COUNT(*) FILTER (WHERE status = 'paid'),
		COALESCE(SUM(grand_total) FILTER (WHERE status = 'issued'), 0)
		FROM invoices`
	var s Summary
	err := r.db.QueryRow(ctx, query).Scan(&s.Total, &s.Draft, &s.Issued, &s.Paid, &s.Outstanding)
	return s, err
}

func scanInvoice(row pgx.Row) (Invoice, error) {
	var inv Invoice
	err := row.Scan(&inv.ID, &inv.Number, &inv.CustomerID, &inv.CustomerName, &inv.IssueDate, &inv.DueDate,
		&inv.Status, &inv.Currency, &inv.Notes, &inv.BankName, &inv.BankIBAN, &inv.BankBIC,
		&inv.NetTotal, &inv.VATTotal, &inv.GrandTotal, &inv.CreatedAt, &inv.UpdatedAt)
	return inv, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
