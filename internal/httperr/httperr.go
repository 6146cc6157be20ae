// Package httperr defines the tagged error type every failure site
// constructs explicitly. The terminal error handler only needs the status
// and message; Kind exists so callers can branch without string matching.
package httperr

import "github.com/gofiber/fiber/v2"

type Kind string

const (
	KindValidation Kind = "validation"
	KindAuth       Kind = "auth"
	KindNotFound   Kind = "not_found"
	KindInternal   Kind = "internal"
)

type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Status: fiber.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindAuth, Status: fiber.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindAuth, Status: fiber.StatusForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Status: fiber.StatusNotFound, Message: message}
}

func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Status: fiber.StatusInternalServerError, Message: message}
}
