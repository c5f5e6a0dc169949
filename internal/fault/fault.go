// Package fault classifies errors by origin so that boundaries (CLI exit
// codes, dashboard messages) can branch on a closed set of kinds instead of
// matching message text.
package fault

import (
	"errors"
	"fmt"
)

// Kind identifies where an error originated.
type Kind int

const (
	KindUnknown Kind = iota
	// KindCredential covers a missing or invalid service-account secret or API key.
	KindCredential
	// KindRemoteNotFound covers an inaccessible remote resource, such as a
	// spreadsheet id that does not resolve.
	KindRemoteNotFound
	// KindTransport covers network and subprocess launch failures.
	KindTransport
	// KindMalformedData covers undecodable payloads, such as a corrupt snapshot file.
	KindMalformedData
	// KindUserInput covers invalid operator input, such as a blank question.
	KindUserInput
)

func (k Kind) String() string {
	switch k {
	case KindCredential:
		return "credential"
	case KindRemoteNotFound:
		return "remote-not-found"
	case KindTransport:
		return "transport"
	case KindMalformedData:
		return "malformed-data"
	case KindUserInput:
		return "user-input"
	default:
		return "unknown"
	}
}

// Error carries a Kind alongside the wrapped cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error from a format string.
func New(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Wrap classifies an existing error. A nil err returns nil.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// KindOf reports the kind of the first classified error in err's chain,
// or KindUnknown when none is found.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}
