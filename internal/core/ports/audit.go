package ports

import (
	"context"

	"taskify/internal/core/domain"
)

type AuditPublisher interface {
	PublishTaskEvent(ctx context.Context, event domain.TaskEvent) error
}
