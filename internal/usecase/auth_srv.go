package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resort-admin/internal/data/entity"
	"resort-admin/internal/data/repository"
	"resort-admin/internal/dto/request"
	"resort-admin/internal/dto/response"
	"resort-admin/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest, userAgent, ip string) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, adminID uuid.UUID) (*response.AdminResponse, error)

	// ValidateSession resolves a bearer token to the admin that owns it.
	ValidateSession(ctx context.Context, token string) (uuid.UUID, error)
}

type authService struct {
	repo   *repository.Repository // grouping adminRepo & sessionRepo
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
		now:    time.Now,
	}
}

var errInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthorized)

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, userAgent, ip string) (*response.AuthResponse, error) {
	// 1. Validate
	if err := validate(req); err != nil {
		s.log.Warn("Login validation failed", zap.Error(err))
		return nil, err
	}

	// 2. Find admin by username or email
	admin, err := s.repo.Admin.FindByLogin(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find admin", zap.Error(err), zap.String("identifier", req.Username))
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if admin == nil {
		s.log.Warn("Admin not found for login", zap.String("identifier", req.Username))
		return nil, errInvalidCredentials
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, admin.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("admin_id", admin.ID.String()))
		return nil, errInvalidCredentials
	}

	// 4. Check if admin is active
	if !admin.IsActive {
		s.log.Warn("Inactive admin tried to login", zap.String("admin_id", admin.ID.String()))
		return nil, fmt.Errorf("%w: account is deactivated", ErrUnauthorized)
	}

	// 5. Create session
	session, err := s.createSession(ctx, admin.ID, userAgent, ip)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("admin_id", admin.ID.String()))
		return nil, fmt.Errorf("create session: %w", err)
	}

	if err := s.repo.Admin.TouchLastLogin(ctx, admin.ID, session.CreatedAt); err != nil {
		s.log.Warn("Failed to record last login", zap.Error(err), zap.String("admin_id", admin.ID.String()))
	}

	s.log.Info("Admin logged in",
		zap.String("admin_id", admin.ID.String()),
		zap.String("username", admin.Username))

	resp := response.AuthToResponse(admin, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return fmt.Errorf("%w: invalid token format", ErrUnauthorized)
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: session not found", ErrUnauthorized)
		}
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.Info("Admin logged out")
	return nil
}

func (s *authService) Me(ctx context.Context, adminID uuid.UUID) (*response.AdminResponse, error) {
	admin, err := s.repo.Admin.FindByID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if admin == nil {
		return nil, notFound("admin")
	}

	resp := response.AdminToResponse(admin)
	return &resp, nil
}

func (s *authService) ValidateSession(ctx context.Context, token string) (uuid.UUID, error) {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid token format", ErrUnauthorized)
	}

	session, err := s.repo.Session.FindValidSession(ctx, tokenUUID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil {
		return uuid.Nil, fmt.Errorf("%w: invalid or expired session", ErrUnauthorized)
	}

	return session.AdminID, nil
}

// ==================== HELPER METHODS ====================

func (s *authService) createSession(ctx context.Context, adminID uuid.UUID, userAgent, ip string) (*entity.Session, error) {
	now := s.now()
	hours := s.config.Auth.SessionExpiryHours
	if hours <= 0 {
		hours = 24
	}

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		AdminID:   adminID,
		Token:     uuid.New(),
		UserAgent: utils.StringPtr(userAgent),
		IPAddress: utils.StringPtr(ip),
		ExpiresAt: now.Add(time.Duration(hours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
