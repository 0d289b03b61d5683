package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	employeeerrors "github.com/sahil00000001/Employee-Appraisal-System/internal/employee/errors"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/events"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/messaging/kafka"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetDirectory(ctx context.Context) ([]EmployeeResponse, error)
	GetByUserID(ctx context.Context, userID string) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outbox,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)

	managerID, err := s.resolveReference(ctx, req.ManagerID, employeeerrors.ErrManagerNotFound)
	if err != nil {
		return EmployeeResponse{}, err
	}
	leadID, err := s.resolveReference(ctx, req.LeadID, employeeerrors.ErrLeadNotFound)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl := &Employee{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		Designation:  req.Designation,
		Department:   req.Department,
		ProjectName:  req.ProjectName,
		ManagerID:    managerID,
		LeadID:       leadID,
		ProfileImage: req.ProfileImage,
	}

	// A freshly created employee can never reference itself, but incoming
	// ids are caller supplied so the check stays.
	if (managerID != nil && *managerID == empl.ID) || (leadID != nil && *leadID == empl.ID) {
		return EmployeeResponse{}, employeeerrors.ErrSelfReference
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			Name:       empl.Name,
			Email:      empl.Email,
			Role:       empl.Role,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return ToResponse(*empl), nil
}

func (s *service) GetDirectory(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get directory requested")
	empls, err := s.repo.FindAllWithRelations(ctx)
	if err != nil {
		s.logger.Error("get directory failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(empls), nil
}

func (s *service) GetByUserID(ctx context.Context, userID string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrNotLinkedToUser
		}
		s.logger.Error("get employee by user id failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	return ToResponse(*empl), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return ToResponse(*empl), nil
}

func (s *service) resolveReference(ctx context.Context, id string, notFound error) (*uuid.UUID, error) {
	if id == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, err
	}
	return &parsed, nil
}

func ToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           empl.ID.String(),
		Name:         empl.Name,
		Email:        empl.Email,
		Role:         empl.Role,
		Designation:  empl.Designation,
		Department:   empl.Department,
		ProjectName:  empl.ProjectName,
		ProfileImage: empl.ProfileImage,
		CreatedAt:    empl.CreatedAt.Format(time.RFC3339),
		ManagerID:    uuidToString(empl.ManagerID),
		LeadID:       uuidToString(empl.LeadID),
		UserID:       uuidToString(empl.UserID),
	}
	if empl.Manager != nil {
		resp.Manager = ToSummary(empl.Manager)
	}
	if empl.Lead != nil {
		resp.Lead = ToSummary(empl.Lead)
	}
	return resp
}

func ToSummary(empl *Employee) *EmployeeSummary {
	return &EmployeeSummary{
		ID:          empl.ID.String(),
		Name:        empl.Name,
		Email:       empl.Email,
		Role:        empl.Role,
		Designation: empl.Designation,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = ToResponse(e)
	}
	return res
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
