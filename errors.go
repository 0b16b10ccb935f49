// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"errors"
	"fmt"
)

// ErrorCode classifies the ways a parse can fail.
// An ErrorCode other than OK satisfies the error interface, so a specific
// failure can be checked with errors.Is:
//
//	if errors.Is(err, jvalue.RootNotSingular) { ... }
type ErrorCode byte

// Constants defining the valid ErrorCode values.
const (
	OK                   ErrorCode = iota // no error
	ExpectValue                           // input is empty or all whitespace
	InvalidValue                          // malformed literal or number, or unexpected input
	RootNotSingular                       // extra input after the root value
	NumberTooLarge                        // number magnitude overflows a float64
	MissingQuotationMark                  // string has no closing quotation mark
	InvalidStringEscape                   // unknown escape sequence in a string
	InvalidStringChar                     // unescaped control character in a string
)

var codeStr = [...]string{
	OK:                   "ok",
	ExpectValue:          "expected a value",
	InvalidValue:         "invalid value",
	RootNotSingular:      "root not singular",
	NumberTooLarge:       "number too large",
	MissingQuotationMark: "missing quotation mark",
	InvalidStringEscape:  "invalid string escape",
	InvalidStringChar:    "invalid string character",
}

func (c ErrorCode) String() string {
	if int(c) >= len(codeStr) {
		return fmt.Sprintf("ErrorCode(%d)", c)
	}
	return codeStr[c]
}

// Error satisfies the error interface.
func (c ErrorCode) Error() string { return c.String() }

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Code     ErrorCode // the kind of failure, not OK
	Offset   int       // byte offset where the failure was detected
	Location LineCol   // line and column of Offset
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %v", s.Location, s.Code)
}

// Unwrap supports error wrapping. It returns the ErrorCode of s.
func (s *SyntaxError) Unwrap() error { return s.Code }

// CodeOf reports the ErrorCode of err, and whether err is a parse error.
// It returns (OK, true) if err == nil, and the code of a *SyntaxError or
// ErrorCode found in the chain of err. For any other error, such as a read
// error from ParseFrom, it returns (OK, false).
func CodeOf(err error) (ErrorCode, bool) {
	if err == nil {
		return OK, true
	}
	var code ErrorCode
	if errors.As(err, &code) {
		return code, true
	}
	return OK, false
}
