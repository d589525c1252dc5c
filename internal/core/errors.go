package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyBatch is returned when an uploaded payload is not a parsable
// spreadsheet or contains no data rows.
var ErrEmptyBatch = errors.New("file is empty or invalid format")

// ErrDuplicateInStore is returned when a batch collides with an email that
// already exists in the store. The whole batch is rolled back.
var ErrDuplicateInStore = errors.New("one or more emails already exist in the database")

// FieldValidationError carries the per-field messages for a single-record
// create or update that failed validation. No write occurs.
type FieldValidationError struct {
	Errors []string `json:"errors"`
}

func (e *FieldValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

// RowErrors lists the validation messages for one spreadsheet row. Row is
// the displayed Excel row number (data index + 2, accounting for the header
// and 1-based display).
type RowErrors struct {
	Row    int      `json:"row"`
	Errors []string `json:"errors"`
}

// BatchValidationError is returned when any row of a batch fails field
// validation. It carries every failing row; nothing is persisted.
type BatchValidationError struct {
	Rows []RowErrors `json:"rows"`
}

func (e *BatchValidationError) Error() string {
	return fmt.Sprintf("validation errors in %d row(s)", len(e.Rows))
}

// DuplicateRow identifies a row whose email repeats an earlier row in the
// same file. The first occurrence is not flagged, later ones are.
type DuplicateRow struct {
	Row   int    `json:"row"`
	Email string `json:"email"`
}

// DuplicateInFileError is returned when a batch contains repeated emails.
// Nothing is persisted.
type DuplicateInFileError struct {
	Rows []DuplicateRow `json:"rows"`
}

func (e *DuplicateInFileError) Error() string {
	return fmt.Sprintf("duplicate emails in %d row(s)", len(e.Rows))
}
