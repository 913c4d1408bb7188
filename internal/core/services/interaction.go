package services

import (
	"context"

	portssvc "github.com/costbook/costbook_app/internal/core/ports/services"
	"github.com/costbook/costbook_app/internal/middleware"
)

// AutoConfirm approves every confirmation request. The HTTP boundary
// collects the operator's confirmation before a destructive request is
// sent, so the server-side capability defaults to approval.
type AutoConfirm struct{}

var _ portssvc.Confirmer = AutoConfirm{}

func (AutoConfirm) Confirm(ctx context.Context, message string) bool {
	return true
}

// LogNotifier surfaces operator messages through the structured log.
type LogNotifier struct{}

var _ portssvc.Notifier = LogNotifier{}

func (LogNotifier) Notify(ctx context.Context, message string) {
	middleware.GetLoggerFromCtx(ctx).Info(message)
}
