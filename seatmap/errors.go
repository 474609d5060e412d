package seatmap

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindMalformedAddress
	KindLayoutUnavailable
	KindUnrecognizedId
	KindRowNotFound
	KindSeatNotFound
)

func (k Kind) String() string {
	switch k {
	case KindMalformedAddress:
		return "MalformedAddress"
	case KindLayoutUnavailable:
		return "LayoutUnavailable"
	case KindUnrecognizedId:
		return "UnrecognizedId"
	case KindRowNotFound:
		return "RowNotFound"
	case KindSeatNotFound:
		return "SeatNotFound"
	default:
		return "Unknown"
	}
}

// Error is the single error type of the package. Sentinels below match any
// Error of the same kind through errors.Is.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

var (
	ErrMalformedAddress  = &Error{Kind: KindMalformedAddress}
	ErrLayoutUnavailable = &Error{Kind: KindLayoutUnavailable}
	ErrUnrecognizedId    = &Error{Kind: KindUnrecognizedId}
	ErrRowNotFound       = &Error{Kind: KindRowNotFound}
	ErrSeatNotFound      = &Error{Kind: KindSeatNotFound}
)

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
