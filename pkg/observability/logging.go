package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/riveting/pkg/domain"
)

// LogHooks returns lifecycle hooks that write one debug record per event.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnMutation: func(ctx context.Context, e *domain.MutationEvent) {
			logger.DebugContext(ctx, "mutation committed",
				"store", e.Store,
				"kind", e.Kind,
				"version", e.Version,
				"task_id", e.TaskID,
				"duration", e.Duration,
			)
		},
		OnTaskDropped: func(ctx context.Context, e *domain.TaskEvent) {
			logger.DebugContext(ctx, "task dropped",
				"store", e.Store,
				"task_id", e.TaskID,
				"reason", e.Reason,
			)
		},
		OnSubscription: func(ctx context.Context, e *domain.SubscriptionEvent) {
			logger.DebugContext(ctx, "subscription changed",
				"store", e.Store,
				"attached", e.Attached,
				"subscribers", e.Subscribers,
			)
		},
	}
}
