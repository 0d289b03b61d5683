package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records operational milestones (startup, shutdown) outside the
// request path.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
