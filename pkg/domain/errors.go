package domain

import "errors"

// ErrStreamEnded is returned by a subscription once its store has been closed
// and every queued emission has been delivered.
var ErrStreamEnded = errors.New("domain stream ended")

// ErrStoreClosed is reported when a mutation is attempted on a closed store.
var ErrStoreClosed = errors.New("store closed")
