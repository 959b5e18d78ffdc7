package hledgerprices

import (
	"errors"
	"fmt"
)

// Kind classifies the failure modes of the tool. None of them is recoverable:
// the CLI layer reports the error and exits with a non-zero status.
type Kind int

const (
	// KindConfig is a configuration problem, typically a missing API key.
	KindConfig Kind = iota + 1
	// KindAPI is a transport failure, an undecodable payload, or an error
	// reported by the market data API itself.
	KindAPI
	// KindFile is an open, read or write failure on the journal file.
	KindFile
	// KindFormat is a journal line that violates the price directive shape.
	KindFormat
	// KindInternal flags a condition the tool considers impossible. The CLI
	// layer asks for a bug report when it sees one.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindAPI:
		return "api"
	case KindFile:
		return "file"
	case KindFormat:
		return "format"
	case KindInternal:
		return "internal"
	}
	return "unknown"
}

// Error is an error carrying its Kind along the usual message and cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// E returns a new *Error of the given kind wrapping err (err may be nil).
func E(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the Kind carried by err. Errors that carry no kind are
// treated as internal: the tool does not produce them on purpose.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
