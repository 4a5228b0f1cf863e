package usecase

import (
	"context"
	"fmt"
	"time"

	"resort-admin/internal/data/entity"
	"resort-admin/internal/data/repository"
	"resort-admin/internal/dto/request"
	"resort-admin/internal/dto/response"
	"resort-admin/pkg/database"
	"resort-admin/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BlockedDateService interface {
	GetBlockedDates(ctx context.Context) ([]response.BlockedDateResponse, error)
	BlockDates(ctx context.Context, req *request.BlockDatesRequest) (*response.BlockDatesResponse, error)
	UpdateReason(ctx context.Context, blockedDateID string, req *request.UpdateBlockedDateRequest) error
	DeleteBlockedDate(ctx context.Context, blockedDateID string) error
	UnblockDate(ctx context.Context, date string) error
}

type blockedDateService struct {
	repo *repository.Repository
	db   database.TxBeginner
	log  *zap.Logger
	now  func() time.Time
}

func NewBlockedDateService(repo *repository.Repository, db database.TxBeginner, log *zap.Logger) BlockedDateService {
	return &blockedDateService{
		repo: repo,
		db:   db,
		log:  log.With(zap.String("service", "blocked_date")),
		now:  time.Now,
	}
}

func (s *blockedDateService) GetBlockedDates(ctx context.Context) ([]response.BlockedDateResponse, error) {
	dates, err := s.repo.BlockedDate.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get blocked dates", zap.Error(err))
		return nil, fmt.Errorf("get blocked dates: %w", err)
	}

	data := make([]response.BlockedDateResponse, 0, len(dates))
	for _, d := range dates {
		data = append(data, response.BlockedDateToResponse(d))
	}
	return data, nil
}

func (s *blockedDateService) BlockDates(ctx context.Context, req *request.BlockDatesRequest) (*response.BlockDatesResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Block dates validation failed", zap.Error(err))
		return nil, err
	}

	// parse everything before opening the transaction
	days := make([]time.Time, 0, len(req.Dates))
	seen := make(map[time.Time]struct{}, len(req.Dates))
	for _, raw := range req.Dates {
		day, err := utils.ParseDate(raw)
		if err != nil {
			return nil, invalid("invalid date %q", raw)
		}
		day = entity.DateOnly(day)
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}

	resp := &response.BlockDatesResponse{Inserted: []string{}, Duplicates: []string{}}
	now := s.now()

	err := database.WithTx(ctx, s.db, func(tx pgx.Tx) error {
		for _, day := range days {
			inserted, err := s.repo.BlockedDate.CreateTx(ctx, tx, &entity.BlockedDate{
				BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
				Date:       day,
				Reason:     req.Reason,
			})
			if err != nil {
				return err
			}
			if inserted {
				resp.Inserted = append(resp.Inserted, day.Format(utils.DateLayout))
			} else {
				resp.Duplicates = append(resp.Duplicates, day.Format(utils.DateLayout))
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error("Failed to block dates", zap.Error(err))
		return nil, fmt.Errorf("%w: block dates", ErrTransaction)
	}

	s.log.Info("Dates blocked",
		zap.Int("inserted", len(resp.Inserted)),
		zap.Int("duplicates", len(resp.Duplicates)),
	)
	return resp, nil
}

func (s *blockedDateService) UpdateReason(ctx context.Context, blockedDateID string, req *request.UpdateBlockedDateRequest) error {
	if err := validate(req); err != nil {
		return err
	}

	id, err := parseID(blockedDateID, "blocked date")
	if err != nil {
		return err
	}

	if err := s.repo.BlockedDate.UpdateReason(ctx, id, req.Reason); err != nil {
		return fmt.Errorf("update blocked date: %w", err)
	}

	s.log.Info("Blocked date updated", zap.String("blocked_date_id", id.String()))
	return nil
}

func (s *blockedDateService) DeleteBlockedDate(ctx context.Context, blockedDateID string) error {
	id, err := parseID(blockedDateID, "blocked date")
	if err != nil {
		return err
	}

	if err := s.repo.BlockedDate.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete blocked date: %w", err)
	}

	s.log.Info("Blocked date deleted", zap.String("blocked_date_id", id.String()))
	return nil
}

func (s *blockedDateService) UnblockDate(ctx context.Context, date string) error {
	day, err := utils.ParseDate(date)
	if err != nil {
		return invalid("invalid date %q", date)
	}

	if err := s.repo.BlockedDate.DeleteByDate(ctx, entity.DateOnly(day)); err != nil {
		return fmt.Errorf("unblock date: %w", err)
	}

	s.log.Info("Date unblocked", zap.String("date", date))
	return nil
}
