package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies the failure of a service operation.
type ErrorKind int

const (
	// KindInternal is a storage or otherwise unexpected fault.
	KindInternal ErrorKind = iota
	// KindInvalidIdentifier means an id is not a valid ObjectID.
	KindInvalidIdentifier
	// KindInvalidField means a request field failed validation.
	KindInvalidField
	// KindNotFound means no document matched the id.
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidIdentifier:
		return "invalid_identifier"
	case KindInvalidField:
		return "invalid_field"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is the error returned by every service operation. Message is safe to
// show to clients; Err holds the cause and is only meant for logs.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, or KindInternal if err is not an *Error.
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}

// MessageOf returns the client-safe message of err.
func MessageOf(err error) string {
	var svcErr *Error
	if errors.As(err, &svcErr) && svcErr.Kind != KindInternal {
		return svcErr.Message
	}
	return msgInternal
}

const msgInternal = "Internal server error"

func invalidIdentifier(resource string) *Error {
	return &Error{Kind: KindInvalidIdentifier, Message: fmt.Sprintf("Invalid %s ID", resource)}
}

func invalidField(message string, cause error) *Error {
	return &Error{Kind: KindInvalidField, Message: message, Err: cause}
}

func notFound(resource string, cause error) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", capitalize(resource)), Err: cause}
}

func internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: msgInternal, Err: cause}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
