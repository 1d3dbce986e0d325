package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "erpgate/internal/delivery/context"
	"erpgate/internal/domain/service"
)

// publishAudit emits an audit event. Publishing failures are logged and never
// fail the operation that produced the event.
func publishAudit(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.AuditEvent) {
	if publisher == nil {
		return
	}

	event.OccurredAt = time.Now()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := publisher.PublishAuditEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish audit event",
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}
