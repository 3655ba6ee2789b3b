package invsheet

import (
	"errors"
	"fmt"
)

// ErrEmptyInventory indicates an export was requested with no items.
var ErrEmptyInventory = errors.New("no items to export")

// ErrTooFewRows indicates the imported spreadsheet lacks a header row
// plus at least one data row.
var ErrTooFewRows = errors.New("spreadsheet must contain a header row and at least one data row")

// OperationError wraps a lower-level failure (file I/O, codec, image
// handling) that aborted an export or import.
type OperationError struct {
	Op  string // "export" or "import"
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewOperationError creates a new OperationError.
func NewOperationError(op string, err error) *OperationError {
	return &OperationError{Op: op, Err: err}
}
