package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/idea_board_app/internal/apperrors"
	"github.com/SscSPs/idea_board_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	now func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Now returns the current time from the configured clock.
func (s *BaseService) Now() time.Time {
	if s.now == nil {
		return time.Now().UTC()
	}
	return s.now()
}

// requireCaller rejects calls that arrive without a resolved identity.
func (s *BaseService) requireCaller(ctx context.Context, callerID string) error {
	if callerID == "" {
		s.LogDebug(ctx, "Rejected call without caller identity")
		return apperrors.ErrUnauthenticated
	}
	return nil
}

// ServiceOption configures the shared BaseService of a service.
type ServiceOption func(*BaseService)

// WithClock replaces the wall clock used for timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.now = now
	}
}
