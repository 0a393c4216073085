package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("access denied")
)

type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every problem found in an input so a form can
// show them all at once.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Add(field, message string) {
	e.Issues = append(e.Issues, Issue{Field: field, Message: message})
}

// Err returns nil when no issues were recorded.
func (e *ValidationError) Err() error {
	if len(e.Issues) == 0 {
		return nil
	}
	return e
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Issues: []Issue{{Field: field, Message: message}}}
}

// StockError names the part whose stock could not cover an order line.
type StockError struct {
	PartNumber string
	Available  int
	Requested  int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("not enough stock for %s: available %d, requested %d", e.PartNumber, e.Available, e.Requested)
}

func (e *StockError) Unwrap() error {
	return ErrInsufficientStock
}
