package lisp

import (
	"errors"
	"fmt"
)

// Errno is an error code
type Errno int

// Posible Errno values
const (
	ErrnoPanic Errno = iota
	ErrnoArity
	ErrnoType
	ErrnoEmptyList
	ErrnoUnbound
	ErrnoNotFunc
	ErrnoDivZero
	ErrnoOverflow
	ErrnoBadNum
	ErrnoIndex
	ErrnoBadSyntax
	ErrnoDomain
)

var errnoStrings = []string{
	ErrnoPanic:     "PANIC",
	ErrnoArity:     "arity",
	ErrnoType:      "type",
	ErrnoEmptyList: "empty list",
	ErrnoUnbound:   "unbound symbol",
	ErrnoNotFunc:   "not a function",
	ErrnoDivZero:   "division by zero",
	ErrnoOverflow:  "overflow",
	ErrnoBadNum:    "bad number",
	ErrnoIndex:     "index",
	ErrnoBadSyntax: "bad syntax",
	ErrnoDomain:    "domain",
}

func (n Errno) String() string {
	if n < 0 || int(n) >= len(errnoStrings) {
		return errnoStrings[ErrnoPanic]
	}
	return errnoStrings[n]
}

// Errorf returns an LError value with code n and a formatted message.
func (n Errno) Errorf(format string, v ...interface{}) *LVal {
	return Error(&ErrorVal{
		Errno: n,
		Msg:   fmt.Sprintf(format, v...),
	})
}

// ErrorVal is the error carried by LError values created by the
// interpreter.  Only Msg is visible when the value is printed.
type ErrorVal struct {
	Errno Errno
	Msg   string
}

// Error implements the error interface.
func (e *ErrorVal) Error() string {
	return e.Msg
}

// GoError returns the error carried by v or nil if v is not an LError.
func GoError(v *LVal) error {
	if v == nil || v.Type != LError {
		return nil
	}
	if v.Err == nil {
		return errors.New("unknown error")
	}
	return v.Err
}

// ErrnoOf returns the error code of v.  ErrnoOf returns false if v is not an
// LError.  LError values which were not created with an Errno have code
// ErrnoPanic.
func ErrnoOf(v *LVal) (Errno, bool) {
	err := GoError(v)
	if err == nil {
		return 0, false
	}
	var lerr *ErrorVal
	if errors.As(err, &lerr) {
		return lerr.Errno, true
	}
	return ErrnoPanic, true
}
