package errors

import (
	"errors"
	"fmt"
)

// Code is the stable machine-readable kind of an API failure. Codes are
// surfaced to clients in the GraphQL error extensions, so values must not
// change.
type Code string

const (
	CodeEmptyField            Code = "EMPTY_FIELD"
	CodeDuplicateEmail        Code = "DUPLICATE_EMAIL"
	CodeNotFound              Code = "NOT_FOUND"
	CodeMissingHeader         Code = "MISSING_HEADER"
	CodeMalformedScheme       Code = "MALFORMED_SCHEME"
	CodeInvalidOrExpiredToken Code = "INVALID_OR_EXPIRED_TOKEN"
	CodeStoreUnavailable      Code = "STORE_UNAVAILABLE"
)

// Coder is implemented by every error type in this package.
type Coder interface {
	ErrorCode() Code
}

// CodeOf returns the Code carried by err, or the empty string if err does
// not originate from this package.
func CodeOf(err error) Code {
	var c Coder
	if errors.As(err, &c) {
		return c.ErrorCode()
	}
	return ""
}

// EmptyFieldError reports an input field that is blank after trimming.
type EmptyFieldError struct {
	Field string
}

// NewEmptyFieldError creates a new empty field error for the named field
func NewEmptyFieldError(field string) *EmptyFieldError {
	return &EmptyFieldError{Field: field}
}

// Error implements the error interface
func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}

// ErrorCode implements Coder
func (e *EmptyFieldError) ErrorCode() Code { return CodeEmptyField }

// Extensions returns the GraphQL error extensions for this error
func (e *EmptyFieldError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code":  string(CodeEmptyField),
		"field": e.Field,
	}
}

// DuplicateEmailError reports a signup attempt with an email that is
// already registered.
type DuplicateEmailError struct {
	Email string
}

// NewDuplicateEmailError creates a new duplicate email error
func NewDuplicateEmailError(email string) *DuplicateEmailError {
	return &DuplicateEmailError{Email: email}
}

// Error implements the error interface
func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("email %s is already registered", e.Email)
}

// ErrorCode implements Coder
func (e *DuplicateEmailError) ErrorCode() Code { return CodeDuplicateEmail }

// Extensions returns the GraphQL error extensions for this error
func (e *DuplicateEmailError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": string(CodeDuplicateEmail)}
}

// NotFoundError reports an operation addressing an id that does not exist.
// Malformed ids are reported the same way: the store treats them as absent
// rather than failing.
type NotFoundError struct {
	Resource string
	ID       string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: id=%s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// ErrorCode implements Coder
func (e *NotFoundError) ErrorCode() Code { return CodeNotFound }

// Extensions returns the GraphQL error extensions for this error
func (e *NotFoundError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": string(CodeNotFound)}
}

// AuthError reports a failed bearer-token check. The three kinds stay
// distinct so callers can tell a missing header from a bad scheme from a
// bad or expired token.
type AuthError struct {
	Code    Code
	Message string
	Err     error
}

// NewMissingHeaderError reports an absent Authorization header
func NewMissingHeaderError() *AuthError {
	return &AuthError{
		Code:    CodeMissingHeader,
		Message: "authorization header is missing",
	}
}

// NewMalformedSchemeError reports an Authorization header that is not of
// the form "Bearer <token>"
func NewMalformedSchemeError() *AuthError {
	return &AuthError{
		Code:    CodeMalformedScheme,
		Message: "authorization header must be of the form: Bearer <token>",
	}
}

// NewInvalidTokenError reports a token whose signature or expiry check
// failed
func NewInvalidTokenError(err error) *AuthError {
	return &AuthError{
		Code:    CodeInvalidOrExpiredToken,
		Message: "token is invalid or expired",
		Err:     err,
	}
}

// Error implements the error interface
func (e *AuthError) Error() string { return e.Message }

// Unwrap returns the wrapped error
func (e *AuthError) Unwrap() error { return e.Err }

// ErrorCode implements Coder
func (e *AuthError) ErrorCode() Code { return e.Code }

// Extensions returns the GraphQL error extensions for this error
func (e *AuthError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": string(e.Code)}
}

// StoreError reports a persistence failure that is not a not-found
// condition. The wrapped cause is for server-side logs; clients only see
// the generic message.
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError creates a new store error for the named operation
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return fmt.Sprintf("store unavailable: %s", e.Op)
}

// Unwrap returns the wrapped error
func (e *StoreError) Unwrap() error { return e.Err }

// ErrorCode implements Coder
func (e *StoreError) ErrorCode() Code { return CodeStoreUnavailable }

// Extensions returns the GraphQL error extensions for this error
func (e *StoreError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": string(CodeStoreUnavailable)}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
