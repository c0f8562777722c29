// Package derrors provides coded domain errors for the fiscal validators.
//
// Every public operation reports failures through an enumerated Code rather
// than ad-hoc error strings, so callers (library consumers, CLI) can
// distinguish "invalid input" outcomes from programming errors without
// inspecting messages. Codes are stable identifiers; messages are for humans.
package derrors

import (
	"errors"
	"fmt"
)

// Code identifies a class of validation or generation failure.
type Code string

// Validation codes. These are expected, recoverable outcomes: the input did
// not satisfy a format, checksum, or business rule.
const (
	CodeCFInvalidFormat         Code = "tax_id_cf_invalid_format"
	CodeCFCannotDecodeBirthdate Code = "tax_id_cf_cannot_decode_birthdate"
	CodeCFUnderage              Code = "tax_id_cf_underage"
	CodePIvaInvalidLength       Code = "tax_id_piva_invalid_length"
	CodePIvaInvalidCheckDigit   Code = "tax_id_piva_invalid_check_digit"
)

// Generation attribute codes: the supplied identity attributes cannot be
// encoded into a Codice Fiscale.
const (
	CodeGenInvalidSurname        Code = "cf_gen_invalid_surname"
	CodeGenInvalidName           Code = "cf_gen_invalid_name"
	CodeGenInvalidGender         Code = "cf_gen_invalid_gender"
	CodeGenInvalidBirthPlaceCode Code = "cf_gen_invalid_birth_place_code"
)

// String returns the wire representation of the code.
func (c Code) String() string {
	return string(c)
}

// Error is a domain error carrying a Code. Construct via New, Newf, or Wrap.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a domain error with the given code and message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf creates a domain error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates an underlying error with a domain code. The cause remains
// reachable through errors.Unwrap.
func Wrap(err error, code Code, message string) error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the domain code from err, or "" when err carries none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Is delegates to errors.Is; kept so call sites depend on one errors API.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
