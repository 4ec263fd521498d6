package users

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
	List(ctx context.Context, filters shared.ListFilters) ([]User, int, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, user User, passwordHash string, roleIDs []int64) (User, error)
	Update(ctx context.Context, user User, roleIDs []int64) (User, error)
	Summary(ctx context.Context) (Summary, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]User, int, error) {
	query := `SELECT id, email, name, is_active, created_at, updated_at FROM users WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if filters.Search != "" {
		argCount++
		query += ` AND (name ILIKE $` + strconv.Itoa(argCount) + ` OR email ILIKE $` + strconv.Itoa(argCount) + `)`
		args = append(args, "%"+filters.Search+"%")
	}

	countQuery := `SELECT COUNT(*) FROM users WHERE 1=1`
	countArgs := []interface{}{}
	if filters.Search != "" {
		countQuery += ` AND (name ILIKE $1 OR email ILIKE $1)`
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
	case "email":
		query += " ORDER BY email " + dir
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

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range users {
		roles, err := r.roleNames(ctx, users[i].ID)
		if err != nil {
			return nil, 0, err
		}
		users[i].Roles = roles
	}
	return users, total, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (User, error) {
	var u User
	err := r.db.QueryRow(ctx,
		`SELECT id, email, name, is_active, created_at, updated_at FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Email, &u.Name, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, shared.ErrNotFound
		}
		return User{}, err
	}
	u.Roles, err = r.roleNames(ctx, u.ID)
	return u, err
}

func (r *repository) Create(ctx context.Context, user User, passwordHash string, roleIDs []int64) (User, error) {
	err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		now := time.Now()
		err := tx.QueryRow(ctx,
			`INSERT INTO users (email, name, password_hash, is_active, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $5) RETURNING id, created_at, updated_at`,
			user.Email, user.Name, passwordHash, user.IsActive, now).
			Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return shared.ErrDuplicate
			}
			return err
		}
		return assignRoles(ctx, tx, user.ID, roleIDs)
	})
	if err != nil {
		return User{}, err
	}
	return r.GetByID(ctx, user.ID)
}

func (r *repository) Update(ctx context.Context, user User, roleIDs []int64) (User, error) {
	err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE users SET name = $1, is_active = $2, updated_at = $3 WHERE id = $4`,
			user.Name, user.IsActive, time.Now(), user.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return shared.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, user.ID); err != nil {
			return err
		}
		return assignRoles(ctx, tx, user.ID, roleIDs)
	})
	if err != nil {
		return User{}, err
	}
	return r.GetByID(ctx, user.ID)
}

func (r *repository) Summary(ctx context.Context) (Summary, error) {
	var s Summary
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active), COUNT(*) FILTER (WHERE NOT is_active) FROM users`).
		Scan(&s.Total, &s.Active, &s.Inactive)
	return s, err
}

func (r *repository) roleNames(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT r.name FROM roles r JOIN user_roles ur ON ur.role_id = r.id WHERE ur.user_id = $1 ORDER BY r.name`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func assignRoles(ctx context.Context, tx pgx.Tx, userID int64, roleIDs []int64) error {
	for _, roleID := range roleIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			userID, roleID); err != nil {
			return err
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
