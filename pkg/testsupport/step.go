package testsupport

import "time"

// Step is one entry of a scripted sequence: either an action to send or a
// pause before the next step.
type Step[A any] struct {
	action A
	wait   time.Duration
	isWait bool
}

// Send returns a step that sends action.
func Send[A any](action A) Step[A] {
	return Step[A]{action: action}
}

// Wait returns a step that pauses for d.
func Wait[A any](d time.Duration) Step[A] {
	return Step[A]{wait: d, isWait: true}
}

// IsWait reports whether the step is a pause.
func (s Step[A]) IsWait() bool { return s.isWait }

// Action returns the step's action; only meaningful if !IsWait().
func (s Step[A]) Action() A { return s.action }

// Duration returns the pause length; only meaningful if IsWait().
func (s Step[A]) Duration() time.Duration { return s.wait }

// Sequence builds a script from steps and/or bare actions. Anything that
// is not a Step[A] must be an A and becomes Send(a).
func Sequence[A any](items ...any) []Step[A] {
	steps := make([]Step[A], 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case Step[A]:
			steps = append(steps, v)
		case []Step[A]:
			steps = append(steps, v...)
		case A:
			steps = append(steps, Send(v))
		default:
			panic("testsupport: Sequence item is neither a step nor an action")
		}
	}
	return steps
}

// Actions turns plain actions into a script with no waits.
func Actions[A any](actions ...A) []Step[A] {
	steps := make([]Step[A], len(actions))
	for i, a := range actions {
		steps[i] = Send(a)
	}
	return steps
}
