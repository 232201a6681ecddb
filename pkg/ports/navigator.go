package ports

// Screen is anything a Navigator can show. Rendering is up to the Navigator.
type Screen interface {
	Title() string
}

// Navigator performs the actual presentation of screens.
// Implementations are expected to run on the UI loop.
type Navigator interface {
	// Push shows screen on top of the current navigation stack.
	Push(screen Screen, animated bool)

	// Present shows screen modally in front of the current one.
	Present(screen Screen, animated bool)

	// Dismiss removes the currently presented screen.
	Dismiss(animated bool)

	// Pop removes the top screen of the navigation stack.
	Pop(animated bool)
}

// NavigationRouter turns feature-level navigation events into Navigator
// calls.
type NavigationRouter[E any] interface {
	Navigate(event E)
}
