package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"resort-admin/internal/data/entity"
	"resort-admin/internal/data/repository"
	"resort-admin/internal/dto/request"
	"resort-admin/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAdminRepo struct {
	repository.AdminRepository
	admins  []*entity.Admin
	touched []uuid.UUID
}

func (f *fakeAdminRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Admin, error) {
	for _, a := range f.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepo) FindByLogin(_ context.Context, login string) (*entity.Admin, error) {
	for _, a := range f.admins {
		if a.Username == login || a.Email == login {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepo) TouchLastLogin(_ context.Context, id uuid.UUID, _ time.Time) error {
	f.touched = append(f.touched, id)
	return nil
}

type fakeSessionRepo struct {
	repository.SessionRepository
	sessions map[uuid.UUID]*entity.Session
}

func (f *fakeSessionRepo) Create(_ context.Context, s *entity.Session) error {
	f.sessions[s.Token] = s
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token uuid.UUID) (*entity.Session, error) {
	s, ok := f.sessions[token]
	if !ok || s.RevokedAt != nil || !s.ExpiresAt.After(fixedNow) {
		return nil, nil
	}
	return s, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token uuid.UUID) error {
	s, ok := f.sessions[token]
	if !ok || s.RevokedAt != nil {
		return fmt.Errorf("session %s: %w", token, repository.ErrNotFound)
	}
	at := fixedNow
	s.RevokedAt = &at
	return nil
}

func newTestAuthService(t *testing.T) (*authService, *fakeAdminRepo, *fakeSessionRepo) {
	t.Helper()
	hash, err := utils.HashPassword("resort123")
	require.NoError(t, err)

	admins := &fakeAdminRepo{admins: []*entity.Admin{
		{Base: entity.NewBase(fixedNow), Username: "admin", Email: "admin@resort.test", PasswordHash: hash, IsActive: true},
		{Base: entity.NewBase(fixedNow), Username: "former", Email: "former@resort.test", PasswordHash: hash},
	}}
	sessions := &fakeSessionRepo{sessions: map[uuid.UUID]*entity.Session{}}

	svc := &authService{
		repo:   &repository.Repository{Admin: admins, Session: sessions},
		config: &utils.Config{Auth: utils.AuthConfig{Enabled: true, SessionExpiryHours: 12}},
		log:    zap.NewNop(),
		now:    func() time.Time { return fixedNow },
	}
	return svc, admins, sessions
}

func TestAuthService_LoginCreatesSession(t *testing.T) {
	svc, admins, _ := newTestAuthService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &request.LoginRequest{Username: "admin@resort.test", Password: "resort123"}, "curl/8", "10.0.0.2")
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Username)
	assert.Equal(t, fixedNow.Add(12*time.Hour), resp.ExpiresAt)
	assert.Equal(t, []uuid.UUID{admins.admins[0].ID}, admins.touched)

	adminID, err := svc.ValidateSession(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admins.admins[0].ID, adminID)

	require.NoError(t, svc.Logout(ctx, resp.Token))
	_, err = svc.ValidateSession(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, svc.Logout(ctx, resp.Token), ErrUnauthorized)
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc, _, sessions := newTestAuthService(t)

	tests := []struct {
		name string
		req  request.LoginRequest
		want error
	}{
		{"wrong password", request.LoginRequest{Username: "admin", Password: "wrong-password"}, ErrUnauthorized},
		{"unknown admin", request.LoginRequest{Username: "ghost", Password: "resort123"}, ErrUnauthorized},
		{"inactive admin", request.LoginRequest{Username: "former", Password: "resort123"}, ErrUnauthorized},
		{"short password", request.LoginRequest{Username: "admin", Password: "abc"}, ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &tt.req, "", "")
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Empty(t, sessions.sessions)
}

func TestAuthService_ValidateSessionRejectsMalformedToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.ValidateSession(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthService_Check(t *testing.T) {
	ok := NewHealthService(stubPinger{}, "resort-admin", zap.NewNop()).Check(context.Background())
	assert.Equal(t, "ok", ok.Status)
	assert.Equal(t, "connected", ok.Database)

	down := NewHealthService(stubPinger{err: context.DeadlineExceeded}, "resort-admin", zap.NewNop()).Check(context.Background())
	assert.Equal(t, "degraded", down.Status)
	assert.Equal(t, "unreachable", down.Database)
	assert.Equal(t, "resort-admin", down.Service)
}
