package services

import (
	"go.uber.org/zap"

	"ledger/internal/logger"
)

// auditService writes security-relevant events to the structured log.
// Events are not persisted.
type auditService struct {
	log *zap.SugaredLogger
}

// NewAuditService creates a new AuditServicer writing to log. A nil log
// uses the global logger.
func NewAuditService(log *zap.SugaredLogger) AuditServicer {
	if log == nil {
		log = logger.Get()
	}
	return &auditService{log: log.Named("audit")}
}

// Log records an audit event. It never fails the calling operation.
func (s *auditService) Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{}) {
	fields := []interface{}{
		"user_id", userID,
		"action", action,
		"resource_type", resourceType,
		"resource_id", resourceID,
		"ip_address", ipAddress,
	}
	if len(changes) > 0 {
		fields = append(fields, "changes", changes)
	}
	s.log.Infow("audit", fields...)
}
