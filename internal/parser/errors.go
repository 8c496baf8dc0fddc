package parser

import "errors"

var (
	// ErrDisconnect is returned by JSON.Push when the server announces the
	// end of the thread.
	ErrDisconnect = errors.New("server sent disconnect")

	errMissingAttribute = errors.New("missing attribute")
)
