package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/meridian-erp/meridian/internal/shared"
)

// Service wraps authentication business rules.
type Service struct {
	repo     Repository
	sessions *shared.SessionManager
}

func NewService(repo Repository, sessions *shared.SessionManager) *Service {
	return &Service{repo: repo, sessions: sessions}
}

// Login validates credentials and issues a bearer session. Inactive
// accounts fail the same way bad credentials do.
func (s *Service) Login(ctx context.Context, email, password string) (*shared.Session, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, shared.ErrInvalidCredentials
	}

	roles, err := s.repo.RoleNames(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return s.sessions.Issue(ctx, user.ID, user.Email, roles)
}

// Logout revokes the bearer session.
func (s *Service) Logout(ctx context.Context, sess *shared.Session) error {
	if sess == nil {
		return nil
	}
	return s.sessions.Revoke(ctx, sess.Token)
}
