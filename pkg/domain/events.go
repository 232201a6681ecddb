package domain

import (
	"context"
	"time"
)

// MutationKind tells how a mutation was applied.
type MutationKind string

const (
	MutationSync  MutationKind = "sync"
	MutationAsync MutationKind = "async"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Store     string    `json:"store"` // Name given to the store, empty if unnamed
}

// MutationEvent is raised once a new domain value has been committed.
type MutationEvent struct {
	EventBase
	Kind     MutationKind  `json:"kind"`
	TaskID   uint64        `json:"task_id,omitempty"`
	Version  uint64        `json:"version"`
	Duration time.Duration `json:"duration"` // Time spent inside the update closure
}

// EmitEvent is raised after an emission was queued to every subscriber.
type EmitEvent struct {
	EventBase
	Version     uint64 `json:"version"`
	Subscribers int    `json:"subscribers"`
}

// TaskEvent describes an async mutation that ended without committing.
type TaskEvent struct {
	EventBase
	TaskID uint64 `json:"task_id"`
	Reason string `json:"reason"` // "canceled" or "closed"
}

// SubscriptionEvent is raised when a subscriber attaches or detaches.
type SubscriptionEvent struct {
	EventBase
	Attached    bool `json:"attached"`
	Subscribers int  `json:"subscribers"`
}

// LifecycleHooks defines callbacks for store observability.
// Hooks run synchronously on the mutating goroutine and must not call back
// into the store.
type LifecycleHooks struct {
	OnMutation     func(context.Context, *MutationEvent)
	OnEmit         func(context.Context, *EmitEvent)
	OnTaskDropped  func(context.Context, *TaskEvent)
	OnSubscription func(context.Context, *SubscriptionEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnMutation: func(ctx context.Context, e *MutationEvent) {
			if h.OnMutation != nil {
				h.OnMutation(ctx, e)
			}
			if other.OnMutation != nil {
				other.OnMutation(ctx, e)
			}
		},
		OnEmit: func(ctx context.Context, e *EmitEvent) {
			if h.OnEmit != nil {
				h.OnEmit(ctx, e)
			}
			if other.OnEmit != nil {
				other.OnEmit(ctx, e)
			}
		},
		OnTaskDropped: func(ctx context.Context, e *TaskEvent) {
			if h.OnTaskDropped != nil {
				h.OnTaskDropped(ctx, e)
			}
			if other.OnTaskDropped != nil {
				other.OnTaskDropped(ctx, e)
			}
		},
		OnSubscription: func(ctx context.Context, e *SubscriptionEvent) {
			if h.OnSubscription != nil {
				h.OnSubscription(ctx, e)
			}
			if other.OnSubscription != nil {
				other.OnSubscription(ctx, e)
			}
		},
	}
}
