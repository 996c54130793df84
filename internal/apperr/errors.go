// Package apperr defines the user-facing failure taxonomy of the
// dashboard. Only required-tier failures become apperr values;
// best-effort endpoint failures are absorbed by the loader and never
// reach this layer.
package apperr

import "errors"

type Kind uint8

const (
	// KindAuthRequired: the API rejected the session. The user has to
	// sign in again; no dashboard is shown.
	KindAuthRequired Kind = iota + 1
	// KindUnavailable: a required endpoint failed for any non-auth
	// reason. The dashboard is withheld and a retry offered.
	KindUnavailable
)

type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

func AuthRequired(opts ...Option) *Error {
	return newErr(KindAuthRequired, "authentication required", opts)
}

func Unavailable(opts ...Option) *Error {
	return newErr(KindUnavailable, "dashboard data unavailable", opts)
}

func newErr(kind Kind, msg string, opts []Option) *Error {
	e := &Error{Kind: kind, Message: msg}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type Option func(*Error)

func WithMessage(msg string) Option { return func(e *Error) { e.Message = msg } }
func WithCause(err error) Option    { return func(e *Error) { e.Cause = err } }

func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

func IsAuthRequired(err error) bool {
	e := As(err)
	return e != nil && e.Kind == KindAuthRequired
}

// UserMessage maps an error to the text shown on the error screen.
func UserMessage(err error) string {
	e := As(err)
	if e == nil {
		return "Something went wrong. Press r to retry."
	}
	switch e.Kind {
	case KindAuthRequired:
		return "Please sign in to view your dashboard (brio login)."
	default:
		return "Couldn't load your dashboard. Press r to retry."
	}
}
