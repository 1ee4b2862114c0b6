package services

import (
	"context"

	"github.com/Toyowa5296/poliform/internal/db/repositories"
	"github.com/Toyowa5296/poliform/internal/logging"
	"github.com/Toyowa5296/poliform/internal/metrics"
	models "github.com/Toyowa5296/poliform/internal/models/gorm"
)

// EventLogService writes error events to the logs table. Writes are best
// effort: a failed write is only logged locally and never propagates to the
// operation that produced the event. Anonymous events are recorded with a
// NULL user id rather than dropped.
type EventLogService struct {
	repo       *repositories.LogRepository
	metricsReg *metrics.MetricsRegistry
}

func NewEventLogService(repo *repositories.LogRepository, metricsReg *metrics.MetricsRegistry) *EventLogService {
	return &EventLogService{repo: repo, metricsReg: metricsReg}
}

// RecordError persists one error event. userID may be empty for anonymous
// paths.
func (s *EventLogService) RecordError(ctx context.Context, userID, message, context_ string, metadata map[string]interface{}) {
	entry := &models.LogEntry{
		Level:    "error",
		Message:  message,
		Context:  context_,
		Metadata: metadata,
	}
	if userID != "" {
		entry.UserID = &userID
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		logging.Warn("Error log write failed", "context", context_, "error", err.Error())
		if s.metricsReg != nil {
			s.metricsReg.ErrorLogWritesTotal.WithLabelValues("failed").Inc()
		}
		return
	}
	if s.metricsReg != nil {
		s.metricsReg.ErrorLogWritesTotal.WithLabelValues("ok").Inc()
	}
}
