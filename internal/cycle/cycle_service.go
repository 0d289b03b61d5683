package cycle

import (
	"context"
	"errors"
	"time"

	cycleerrors "github.com/sahil00000001/Employee-Appraisal-System/internal/cycle/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=cycle_service.go -destination=mock/cycle_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCycleRequest) (CycleResponse, error)
	GetAll(ctx context.Context) ([]CycleResponse, error)
	Update(ctx context.Context, id string, req UpdateCycleRequest) (CycleResponse, error)
	GetActive(ctx context.Context) (*CycleResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("cycle.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cycle.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateCycleRequest) (CycleResponse, error) {
	s.logger.Debug("create cycle requested",
		zap.String("name", req.Name),
		zap.Int("year", req.Year),
		zap.Bool("is_active", req.IsActive),
	)

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return CycleResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return CycleResponse{}, err
	}
	if startDate.After(endDate) {
		return CycleResponse{}, cycleerrors.ErrInvalidDateRange
	}

	c := &AppraisalCycle{
		ID:        uuid.New(),
		Name:      req.Name,
		Year:      req.Year,
		StartDate: startDate,
		EndDate:   endDate,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("create cycle persist failed", zap.Error(err))
		return CycleResponse{}, err
	}

	if req.IsActive {
		if err := s.repo.Activate(ctx, c.ID.String()); err != nil {
			s.logger.Error("activate new cycle failed", zap.String("cycle_id", c.ID.String()), zap.Error(err))
			return CycleResponse{}, err
		}
		c.IsActive = true
	}

	s.logger.Info("create cycle success",
		zap.String("cycle_id", c.ID.String()),
		zap.Bool("is_active", c.IsActive),
	)
	return ToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context) ([]CycleResponse, error) {
	cycles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]CycleResponse, len(cycles))
	for i, c := range cycles {
		resp[i] = ToResponse(c)
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCycleRequest) (CycleResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CycleResponse{}, cycleerrors.ErrInvalidCycleID
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CycleResponse{}, cycleerrors.ErrCycleNotFound
		}
		return CycleResponse{}, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Year != nil {
		c.Year = *req.Year
	}
	if req.StartDate != nil {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			return CycleResponse{}, err
		}
		c.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			return CycleResponse{}, err
		}
		c.EndDate = endDate
	}
	if c.StartDate.After(c.EndDate) {
		return CycleResponse{}, cycleerrors.ErrInvalidDateRange
	}

	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Error("update cycle persist failed", zap.String("cycle_id", id), zap.Error(err))
		return CycleResponse{}, err
	}

	// Activation runs after the field update so the atomic flag flip is the last
	// word on which cycle is active.
	if req.IsActive != nil {
		if *req.IsActive && !c.IsActive {
			if err := s.repo.Activate(ctx, id); err != nil {
				s.logger.Error("activate cycle failed", zap.String("cycle_id", id), zap.Error(err))
				return CycleResponse{}, err
			}
			c.IsActive = true
		} else if !*req.IsActive && c.IsActive {
			c.IsActive = false
			if err := s.repo.Update(ctx, c); err != nil {
				return CycleResponse{}, err
			}
		}
	}

	s.logger.Info("update cycle success",
		zap.String("cycle_id", id),
		zap.Bool("is_active", c.IsActive),
	)
	return ToResponse(*c), nil
}

func (s *service) GetActive(ctx context.Context) (*CycleResponse, error) {
	c, err := s.repo.FindActive(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := ToResponse(*c)
	return &resp, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, cycleerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func ToResponse(c AppraisalCycle) CycleResponse {
	return CycleResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Year:      c.Year,
		StartDate: c.StartDate.Format("2006-01-02"),
		EndDate:   c.EndDate.Format("2006-01-02"),
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
