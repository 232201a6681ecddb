package store

import "sync"

// Intents tracks the in-flight Task of each logical intent, so that
// starting a new attempt cancels the previous one.
// Safe for concurrent use.
type Intents struct {
	mu    sync.Mutex
	tasks map[string]*Task
}

// NewIntents creates an empty intent registry.
func NewIntents() *Intents {
	return &Intents{
		tasks: make(map[string]*Task),
	}
}

// Start cancels the intent's current task, if any, and then calls start to
// begin the replacement. Both happen under the registry lock, so two
// concurrent Starts for the same intent leave exactly one task running.
func (i *Intents) Start(intent string, start func() *Task) *Task {
	i.mu.Lock()
	defer i.mu.Unlock()

	if prev, ok := i.tasks[intent]; ok {
		prev.Cancel()
	}
	t := start()
	if t == nil {
		delete(i.tasks, intent)
		return nil
	}
	i.tasks[intent] = t
	return t
}

// Current returns the intent's most recent task, or nil.
func (i *Intents) Current(intent string) *Task {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.tasks[intent]
}

// Cancel cancels the intent's task. It reports whether a pending task was
// stopped before committing.
func (i *Intents) Cancel(intent string) bool {
	i.mu.Lock()
	t, ok := i.tasks[intent]
	delete(i.tasks, intent)
	i.mu.Unlock()

	if !ok {
		return false
	}
	return t.Cancel()
}

// CancelAll cancels every tracked task.
func (i *Intents) CancelAll() {
	i.mu.Lock()
	tasks := i.tasks
	i.tasks = make(map[string]*Task)
	i.mu.Unlock()

	for _, t := range tasks {
		t.Cancel()
	}
}
