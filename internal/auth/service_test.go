package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/meridian-erp/meridian/internal/shared"
)

type fakeRepo struct {
	user  *User
	roles []string
}

func (f *fakeRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	if f.user == nil || f.user.Email != email {
		return nil, shared.ErrNotFound
	}
	return f.user, nil
}

func (f *fakeRepo) RoleNames(ctx context.Context, userID int64) ([]string, error) {
	return f.roles, nil
}

func newTestService(t *testing.T, repo Repository) (*Service, *shared.SessionManager) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	sessions := shared.NewSessionManager(client, time.Hour)
	return NewService(repo, sessions), sessions
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLoginIssuesSession(t *testing.T) {
	repo := &fakeRepo{
		user:  &User{ID: 42, Email: "ops@example.com", PasswordHash: hash(t, "correct horse"), IsActive: true},
		roles: []string{"admin"},
	}
	svc, _ := newTestService(t, repo)

	sess, err := svc.Login(context.Background(), "ops@example.com", "correct horse")
	require.NoError(t, err)
	require.Equal(t, int64(42), sess.UserID)
	require.Equal(t, []string{"admin"}, sess.Roles)
	require.NotEmpty(t, sess.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &fakeRepo{
		user: &User{ID: 1, Email: "ops@example.com", PasswordHash: hash(t, "correct horse"), IsActive: true},
	}
	svc, _ := newTestService(t, repo)

	_, err := svc.Login(context.Background(), "ops@example.com", "wrong")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	repo := &fakeRepo{
		user: &User{ID: 1, Email: "ops@example.com", PasswordHash: hash(t, "correct horse"), IsActive: false},
	}
	svc, _ := newTestService(t, repo)

	_, err := svc.Login(context.Background(), "ops@example.com", "correct horse")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t, &fakeRepo{})
	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestLogoutRevokesToken(t *testing.T) {
	repo := &fakeRepo{
		user: &User{ID: 1, Email: "ops@example.com", PasswordHash: hash(t, "correct horse"), IsActive: true},
	}
	svc, _ := newTestService(t, repo)

	sess, err := svc.Login(context.Background(), "ops@example.com", "correct horse")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(context.Background(), sess))
	require.NoError(t, svc.Logout(context.Background(), nil))
}
