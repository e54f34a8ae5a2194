package domain

import (
	"errors"
	"fmt"
)

var (
	ErrStateNotFound     = errors.New("state file not found")
	ErrStateUnavailable  = errors.New("state file unavailable")
	ErrStatePersist      = errors.New("could not write state file")
	ErrStateLocked       = errors.New("state file is locked by another process")
	ErrGrammarUnreadable = errors.New("grammar file could not be read")
	ErrNoNotifications   = errors.New("no notifications")
)

// Kind is the closed set of failure categories surfaced to the operator.
type Kind int

const (
	KindUnknown Kind = iota
	KindRegistrationFailed
	KindLoginFailed
	KindStateUnavailable
	KindStatePersistFailed
	KindStateLocked
	KindGrammarUnreadable
	KindSessionInvalid
	KindRequestFailed
)

func (k Kind) String() string {
	switch k {
	case KindRegistrationFailed:
		return "registration_failed"
	case KindLoginFailed:
		return "login_failed"
	case KindStateUnavailable:
		return "state_unavailable"
	case KindStatePersistFailed:
		return "state_persist_failed"
	case KindStateLocked:
		return "state_locked"
	case KindGrammarUnreadable:
		return "grammar_unreadable"
	case KindSessionInvalid:
		return "session_invalid"
	case KindRequestFailed:
		return "request_failed"
	default:
		return "unknown"
	}
}

// Error tags an underlying failure with its Kind.
type Error struct {
	Kind Kind
	Err  error
}

func NewError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind attached to err, or KindUnknown.
func KindOf(err error) Kind {
	var kindErr *Error
	if errors.As(err, &kindErr) {
		return kindErr.Kind
	}
	return KindUnknown
}
