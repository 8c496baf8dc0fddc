// Package liveerr classifies failures raised by the comment engine.
//
// Every transport, decode and posting failure is wrapped in an *Error at the
// boundary where it happens. Callers match on Kind, never on concrete type.
package liveerr

import (
	"context"
	"errors"
	"fmt"
)

// Kind is the closed set of failure classes.
type Kind int

const (
	Unknown Kind = iota
	OffAir
	LiveNotFound
	Disconnect
	Network
	ConnectionClosed
	Protocol
	PostRejected
	NotReady
	Cancelled
	Collect
)

var kindNames = map[Kind]string{
	Unknown:          "unknown",
	OffAir:           "off air",
	LiveNotFound:     "live not found",
	Disconnect:       "disconnected",
	Network:          "network",
	ConnectionClosed: "connection closed",
	Protocol:         "protocol format",
	PostRejected:     "post rejected",
	NotReady:         "not ready",
	Cancelled:        "cancelled",
	Collect:          "collect",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a classified failure with an optional server code and cause.
type Error struct {
	Kind Kind
	Code string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Code != "" {
		msg += " (" + e.Code + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// New classifies err as kind.
func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// WithCode classifies a server-issued code.
func WithCode(kind Kind, code string) *Error {
	return &Error{Kind: kind, Code: code}
}

// Errorf is New with a formatted cause.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the outermost classification in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// CodeOf returns the server code of the outermost classified error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether err is classified as kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// FromIO classifies an I/O failure by origin: when ctx is already done the
// failure is a local cancellation, otherwise it is classified as fallback.
// Errors that already carry a classification are returned unchanged.
func FromIO(ctx context.Context, err error, fallback Kind) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != Unknown {
		return err
	}
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return New(Cancelled, err)
	}
	return New(fallback, err)
}

// IsOffAir reports whether err means the broadcast is not live right now.
func IsOffAir(err error) bool {
	switch KindOf(err) {
	case OffAir, LiveNotFound, Disconnect:
		return true
	}
	return false
}
