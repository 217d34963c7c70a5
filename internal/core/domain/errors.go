package domain

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a failed submission so callers can map it to a
// distinct message and status code.
type ErrorKind string

const (
	KindValidation        ErrorKind = "validation"
	KindNotFound          ErrorKind = "not_found"
	KindInsufficientStock ErrorKind = "insufficient_stock"
	KindConflict          ErrorKind = "conflict"
	KindUnavailable       ErrorKind = "unavailable"
)

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Kind       ErrorKind
	Message    string
	Available  int // observed stock, set for KindInsufficientStock
	Violations []Violation
}

func (e *Error) Error() string { return e.Message }

func NewNotFound(productID string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("product %s not found", productID)}
}

func NewInsufficientStock(available int) *Error {
	return &Error{
		Kind:      KindInsufficientStock,
		Message:   fmt.Sprintf("insufficient stock, available: %d", available),
		Available: available,
	}
}

func NewValidation(violations []Violation) *Error {
	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	return &Error{
		Kind:       KindValidation,
		Message:    "invalid request: " + strings.Join(fields, ", "),
		Violations: violations,
	}
}

func NewConflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func NewUnavailable(msg string) *Error {
	return &Error{Kind: KindUnavailable, Message: msg}
}
