package rbac

import (
	"context"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

// RoleLookup resolves the role string for an employee. Injected so this
// package does not depend on the employee package.
type RoleLookup func(ctx context.Context, userID string) (string, error)

type Service interface {
	EnforceForUser(ctx context.Context, userID, resource, action string) (bool, error)
}

type service struct {
	enforcer   *casbin.Enforcer
	lookupRole RoleLookup
	logger     *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, lookupRole RoleLookup, logger *zap.Logger) Service {
	return &service{
		enforcer:   enforcer,
		lookupRole: lookupRole,
		logger:     logger.Named("rbac_service"),
	}
}

func (s *service) EnforceForUser(ctx context.Context, userID, resource, action string) (bool, error) {
	role, err := s.lookupRole(ctx, userID)
	if err != nil {
		s.logger.Warn("role lookup failed", zap.String("user_id", userID), zap.Error(err))
		return false, err
	}

	allowed, err := s.enforcer.Enforce(role, resource, action)
	if err != nil {
		s.logger.Error("enforce failed",
			zap.String("role", role),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err))
		return false, err
	}

	if !allowed {
		s.logger.Debug("access denied",
			zap.String("user_id", userID),
			zap.String("role", role),
			zap.String("resource", resource),
			zap.String("action", action))
	}

	return allowed, nil
}
