package events

import "errors"

// ErrListenerPanic wraps the value recovered from a panicking listener.
var ErrListenerPanic = errors.New("event listener panicked")
