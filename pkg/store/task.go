package store

import (
	"context"
	"sync"
)

// TaskState is the lifecycle phase of an async mutation.
type TaskState int

const (
	TaskPending TaskState = iota
	TaskCommitted
	TaskCanceled
)

func (s TaskState) String() string {
	switch s {
	case TaskPending:
		return "pending"
	case TaskCommitted:
		return "committed"
	case TaskCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

const (
	reasonCanceled = "canceled"
	reasonClosed   = "closed"
)

// Task is a handle to an async mutation started by Store.UpdateAsync.
type Task struct {
	id     uint64
	cancel context.CancelFunc
	done   chan struct{}

	// lock is the owning store's mutex; it guards state and reason.
	lock   sync.Locker
	state  TaskState
	reason string
}

func newTask(id uint64, lock sync.Locker, cancel context.CancelFunc) *Task {
	return &Task{
		id:     id,
		cancel: cancel,
		done:   make(chan struct{}),
		lock:   lock,
	}
}

// ID returns the task's store-unique identifier.
func (t *Task) ID() uint64 {
	return t.id
}

// Cancel prevents the task from committing.
// It returns true if the task was still pending, false if it had already
// committed or been canceled. Once Cancel returns true no emission from this
// task can ever be observed.
func (t *Task) Cancel() bool {
	t.lock.Lock()
	if t.state != TaskPending {
		t.lock.Unlock()
		return false
	}
	t.state = TaskCanceled
	t.reason = reasonCanceled
	t.lock.Unlock()

	t.cancel()
	return true
}

// State returns the current lifecycle phase.
func (t *Task) State() TaskState {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.state
}

// Committed reports whether the task's result was emitted.
func (t *Task) Committed() bool {
	return t.State() == TaskCommitted
}

// Done is closed once the update closure has returned and the task has
// either committed or been dropped.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task is done or ctx ends.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
