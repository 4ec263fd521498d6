package rbac

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Service resolves effective permissions for users.
type Service struct {
	db *pgxpool.Pool
}

// NewService constructs a Service backed by the provided pool.
func NewService(db *pgxpool.Pool) *Service {
	return &Service{db: db}
}

// EffectivePermissions returns the union of permissions granted through the
// user's roles.
func (s *Service) EffectivePermissions(ctx context.Context, userID int64) ([]string, error) {
	query := `
		SELECT DISTINCT p.code
		FROM permissions p
		JOIN role_permissions rp ON rp.permission_id = p.id
		JOIN user_roles ur ON ur.role_id = rp.role_id
		WHERE ur.user_id = $1
		ORDER BY p.code`
	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var perms []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		perms = append(perms, code)
	}
	return perms, rows.Err()
}
