package roles

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridian-erp/meridian/internal/masterdata/shared"
	"github.com/meridian-erp/meridian/internal/platform/db"
)

type Repository interface {
	List(ctx context.Context) ([]Role, error)
	GetByID(ctx context.Context, id int64) (Role, error)
	Create(ctx context.Context, role Role) (Role, error)
	Update(ctx context.Context, role Role) (Role, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) List(ctx context.Context) ([]Role, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, created_at, updated_at FROM roles ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []Role
	for rows.Next() {
		var role Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range roles {
		perms, err := r.permissionCodes(ctx, roles[i].ID)
		if err != nil {
			return nil, err
		}
		roles[i].Permissions = perms
	}
	return roles, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (Role, error) {
	var role Role
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description, created_at, updated_at FROM roles WHERE id = $1`, id).
		Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Role{}, shared.ErrNotFound
		}
		return Role{}, err
	}
	role.Permissions, err = r.permissionCodes(ctx, role.ID)
	return role, err
}

func (r *repository) Create(ctx context.Context, role Role) (Role, error) {
	err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		now := time.Now()
		err := tx.QueryRow(ctx,
			`INSERT INTO roles (name, description, created_at, updated_at) VALUES ($1, $2, $3, $3)
			 RETURNING id, created_at, updated_at`,
			role.Name, role.Description, now).
			Scan(&role.ID, &role.CreatedAt, &role.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return shared.ErrDuplicate
			}
			return err
		}
		return setPermissions(ctx, tx, role.ID, role.Permissions)
	})
	if err != nil {
		return Role{}, err
	}
	return r.GetByID(ctx, role.ID)
}

func (r *repository) Update(ctx context.Context, role Role) (Role, error) {
	err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE roles SET name = $1, description = $2, updated_at = $3 WHERE id = $4`,
			role.Name, role.Description, time.Now(), role.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return shared.ErrDuplicate
			}
			return err
		}
		if tag.RowsAffected() == 0 {
			return shared.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1`, role.ID); err != nil {
			return err
		}
		return setPermissions(ctx, tx, role.ID, role.Permissions)
	})
	if err != nil {
		return Role{}, err
	}
	return r.GetByID(ctx, role.ID)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) permissionCodes(ctx context.Context, roleID int64) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.code FROM permissions p JOIN role_permissions rp ON rp.permission_id = p.id
		 WHERE rp.role_id = $1 ORDER BY p.code`, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

func setPermissions(ctx context.Context, tx pgx.Tx, roleID int64, codes []string) error {
	for _, code := range codes {
		tag, err := tx.Exec(ctx,
			`INSERT INTO role_permissions (role_id, permission_id)
			 SELECT $1, id FROM permissions WHERE code = $2
			 ON CONFLICT DO NOTHING`, roleID, code)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return shared.ErrValidation
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
