package kam

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/cycle"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/employee"
	employeeerrors "github.com/sahil00000001/Employee-Appraisal-System/internal/employee/errors"
	kamerrors "github.com/sahil00000001/Employee-Appraisal-System/internal/kam/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=kam_service.go -destination=mock/kam_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, userID string) (*KamResponse, error)
	Upsert(ctx context.Context, userID string, req UpsertKamRequest) (KamResponse, error)
}

type service struct {
	repo      Repository
	employees employee.Repository
	cycles    cycle.Repository
	logger    *zap.Logger
}

func NewService(repo Repository, employees employee.Repository, cycles cycle.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("kam.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kam.service")
	}
	return &service{repo: repo, employees: employees, cycles: cycles, logger: l}
}

// Get returns the form for the active cycle, or nil when nothing has been
// saved yet.
func (s *service) Get(ctx context.Context, userID string) (*KamResponse, error) {
	empl, activeCycle, err := s.resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	kam, err := s.repo.FindByEmployeeAndCycle(ctx, empl.ID.String(), activeCycle.ID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("kam lookup failed", zap.Error(err))
		return nil, err
	}

	resp := ToResponse(*kam)
	return &resp, nil
}

func (s *service) Upsert(ctx context.Context, userID string, req UpsertKamRequest) (KamResponse, error) {
	if allBlank(req) {
		return KamResponse{}, kamerrors.ErrEmptyForm
	}

	empl, activeCycle, err := s.resolve(ctx, userID)
	if err != nil {
		return KamResponse{}, err
	}

	now := time.Now().UTC()
	kam := &KnowAboutMe{
		ID:                      uuid.New(),
		EmployeeID:              empl.ID,
		AppraisalCycleID:        activeCycle.ID,
		ProjectContributions:    req.ProjectContributions,
		RoleAndResponsibilities: req.RoleAndResponsibilities,
		KeyAchievements:         req.KeyAchievements,
		Learnings:               req.Learnings,
		Certifications:          req.Certifications,
		TechnologiesWorkedOn:    req.TechnologiesWorkedOn,
		Mentorship:              req.Mentorship,
		VolunteeringActivities:  req.VolunteeringActivities,
		LeadershipRoles:         req.LeadershipRoles,
		TeamBuildingActivities:  req.TeamBuildingActivities,
		ProblemsSolved:          req.ProblemsSolved,
		Strengths:               req.Strengths,
		ExtraEfforts:            req.ExtraEfforts,
		Improvements:            req.Improvements,
		UpdatedAt:               now,
	}

	if err := s.repo.Upsert(ctx, kam); err != nil {
		s.logger.Error("kam upsert failed", zap.Error(err))
		return KamResponse{}, err
	}

	stored, err := s.repo.FindByEmployeeAndCycle(ctx, empl.ID.String(), activeCycle.ID.String())
	if err != nil {
		return KamResponse{}, err
	}

	s.logger.Info("kam saved",
		zap.String("employee_id", empl.ID.String()),
		zap.String("cycle_id", activeCycle.ID.String()),
	)

	return ToResponse(*stored), nil
}

func (s *service) resolve(ctx context.Context, userID string) (*employee.Employee, *cycle.AppraisalCycle, error) {
	empl, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, employeeerrors.ErrNotLinkedToUser
		}
		return nil, nil, err
	}

	activeCycle, err := cycle.ActiveCycle(ctx, s.cycles)
	if err != nil {
		return nil, nil, err
	}

	return empl, activeCycle, nil
}

func allBlank(req UpsertKamRequest) bool {
	fields := []string{
		req.ProjectContributions,
		req.RoleAndResponsibilities,
		req.KeyAchievements,
		req.Learnings,
		req.Certifications,
		req.TechnologiesWorkedOn,
		req.Mentorship,
		req.VolunteeringActivities,
		req.LeadershipRoles,
		req.TeamBuildingActivities,
		req.ProblemsSolved,
		req.Strengths,
		req.ExtraEfforts,
		req.Improvements,
	}
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func ToResponse(kam KnowAboutMe) KamResponse {
	return KamResponse{
		ID:                      kam.ID.String(),
		EmployeeID:              kam.EmployeeID.String(),
		AppraisalCycleID:        kam.AppraisalCycleID.String(),
		ProjectContributions:    kam.ProjectContributions,
		RoleAndResponsibilities: kam.RoleAndResponsibilities,
		KeyAchievements:         kam.KeyAchievements,
		Learnings:               kam.Learnings,
		Certifications:          kam.Certifications,
		TechnologiesWorkedOn:    kam.TechnologiesWorkedOn,
		Mentorship:              kam.Mentorship,
		VolunteeringActivities:  kam.VolunteeringActivities,
		LeadershipRoles:         kam.LeadershipRoles,
		TeamBuildingActivities:  kam.TeamBuildingActivities,
		ProblemsSolved:          kam.ProblemsSolved,
		Strengths:               kam.Strengths,
		ExtraEfforts:            kam.ExtraEfforts,
		Improvements:            kam.Improvements,
		CreatedAt:               kam.CreatedAt.Format(time.RFC3339),
		UpdatedAt:               kam.UpdatedAt.Format(time.RFC3339),
	}
}
