// Package apperrors provides the error type shared by every layer of the service. An Error is a
// message attached to a parent error kind, so errors.Is(err, kind) holds for every error derived
// from kind through New, Msg or Err.
package apperrors

import (
	"errors"
	"strings"
)

// Error is an application error that carries an HTTP status and can be refined into child errors.
type Error interface {
	error
	// New returns a child error with its own message. The child inherits the status code.
	New(msg string) Error
	// Msg returns an error of the same kind with a more specific message.
	Msg(msg string) Error
	// Err returns an error of the same kind that wraps the given causes.
	Err(err ...error) Error
	// MsgErr is Msg and Err combined.
	MsgErr(msg string, err ...error) Error
	// SetStatusCode sets the HTTP status reported for this error and its children.
	SetStatusCode(code int) Error
	// SetExpandError controls whether ErrorAll includes the wrapped causes.
	SetExpandError(expand bool) Error
	StatusCode() int
	// ErrorAll returns the message suitable for API responses.
	ErrorAll() string
	Unwrap() []error
}

type appError struct {
	msg        string
	parent     *appError
	causes     []error
	statusCode int
	expand     bool
	expandSet  bool
}

var _ Error = (*appError)(nil)

// New creates a root error kind.
func New(msg string) Error {
	return &appError{msg: msg}
}

func (e *appError) Error() string {
	if len(e.causes) == 0 {
		return e.msg
	}
	var b strings.Builder
	b.WriteString(e.msg)
	for _, c := range e.causes {
		if c == nil {
			continue
		}
		b.WriteString(": ")
		b.WriteString(c.Error())
	}
	return b.String()
}

func (e *appError) Unwrap() []error {
	var errs []error
	if e.parent != nil {
		errs = append(errs, e.parent)
	}
	for _, c := range e.causes {
		if c != nil {
			errs = append(errs, c)
		}
	}
	return errs
}

func (e *appError) New(msg string) Error {
	return &appError{msg: msg, parent: e}
}

func (e *appError) Msg(msg string) Error {
	return &appError{msg: msg, parent: e}
}

func (e *appError) Err(err ...error) Error {
	return &appError{msg: e.msg, parent: e, causes: err}
}

func (e *appError) MsgErr(msg string, err ...error) Error {
	return &appError{msg: msg, parent: e, causes: err}
}

func (e *appError) SetStatusCode(code int) Error {
	e.statusCode = code
	return e
}

func (e *appError) SetExpandError(expand bool) Error {
	e.expand = expand
	e.expandSet = true
	return e
}

func (e *appError) StatusCode() int {
	for p := e; p != nil; p = p.parent {
		if p.statusCode != 0 {
			return p.statusCode
		}
	}
	return 0
}

func (e *appError) expandError() bool {
	for p := e; p != nil; p = p.parent {
		if p.expandSet {
			return p.expand
		}
	}
	return false
}

func (e *appError) ErrorAll() string {
	if e.expandError() {
		return e.Error()
	}
	// causes of unexpanded errors are internal and never leave the service
	return e.msg
}

// As returns the first apperrors.Error found in err's chain.
func As(err error) (Error, bool) {
	var ae *appError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
