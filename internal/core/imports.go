package core

import (
	"bytes"
	"context"
	"errors"

	"github.com/Harshit-gupta-45107/User-Management/internal/logging"
	"github.com/Harshit-gupta-45107/User-Management/internal/models"
	"github.com/Harshit-gupta-45107/User-Management/internal/storage"
	"github.com/Harshit-gupta-45107/User-Management/internal/validate"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ImportBatch runs the bulk import pipeline over an uploaded .xlsx payload:
// parse, validate every row, reject intra-file duplicate emails, then persist
// the whole batch in one transaction. The batch is all-or-nothing at every
// stage; on success the number of inserted rows is returned.
//
// Failure modes, in order of detection:
//   - ErrEmptyBatch: payload is not a spreadsheet or has no data rows
//   - *BatchValidationError: one or more rows failed field validation
//   - *DuplicateInFileError: an email repeats an earlier row in the file
//   - ErrDuplicateInStore: an email already exists in the store
func (s *Service) ImportBatch(ctx context.Context, data []byte) (int, error) {
	logger := logging.FromContext(ctx).With("import_id", uuid.NewString())

	dataRows, idx, err := parseSheet(data)
	if err != nil {
		logger.Info("import rejected", "reason", err)
		return 0, err
	}
	logger.Info("import parsed", "rows", len(dataRows))

	candidates := make([]validate.Candidate, len(dataRows))
	var rowErrs []RowErrors
	for i, row := range dataRows {
		c := validate.Normalize(validate.Candidate{
			FirstName:   idx.cell(row, "First Name"),
			LastName:    idx.cell(row, "Last Name"),
			Email:       idx.cell(row, "Email"),
			PhoneNumber: idx.cell(row, "Phone Number"),
			PANNumber:   idx.cell(row, "PAN Number"),
		})
		candidates[i] = c

		if errs := validate.Check(c); len(errs) > 0 {
			// Displayed as the Excel row: 1-based, plus the header row.
			rowErrs = append(rowErrs, RowErrors{Row: i + 2, Errors: errs})
		}
	}
	if len(rowErrs) > 0 {
		logger.Info("import failed validation", "bad_rows", len(rowErrs))
		return 0, &BatchValidationError{Rows: rowErrs}
	}

	if dups := findDuplicateEmails(candidates); len(dups) > 0 {
		logger.Info("import has duplicate emails in file", "rows", len(dups))
		return 0, &DuplicateInFileError{Rows: dups}
	}

	users := make([]models.User, len(candidates))
	for i, c := range candidates {
		users[i] = candidateToUser(c)
	}
	if err := s.store.InsertUsersBatch(ctx, users); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			logger.Info("import collided with stored email")
			return 0, ErrDuplicateInStore
		}
		logger.Error("import insert failed", "error", err)
		return 0, err
	}

	logger.Info("import complete", "inserted", len(users))
	return len(users), nil
}

// parseSheet decodes the payload and returns the data rows of the first
// worksheet plus the header index. Unparsable payloads and sheets without
// data rows both collapse into ErrEmptyBatch.
func parseSheet(data []byte) ([][]string, headerIndex, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, ErrEmptyBatch
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ErrEmptyBatch
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil || len(rows) < 2 {
		return nil, nil, ErrEmptyBatch
	}

	return rows[1:], makeHeaderIndex(rows[0]), nil
}

// findDuplicateEmails flags every row whose email repeats one seen earlier
// in the batch. The first occurrence is kept, later ones are reported.
func findDuplicateEmails(candidates []validate.Candidate) []DuplicateRow {
	seen := make(map[string]bool, len(candidates))
	var dups []DuplicateRow
	for i, c := range candidates {
		if seen[c.Email] {
			dups = append(dups, DuplicateRow{Row: i + 2, Email: c.Email})
			continue
		}
		seen[c.Email] = true
	}
	return dups
}
