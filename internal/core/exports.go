package core

import (
	"context"
	"fmt"

	"github.com/Harshit-gupta-45107/User-Management/internal/models"
	"github.com/xuri/excelize/v2"
)

// GenerateTemplate serializes the current users into an .xlsx workbook in
// the exact shape ImportBatch consumes. An empty store yields the header
// plus one blank data row so the download is still a usable template.
func (s *Service) GenerateTemplate(ctx context.Context) ([]byte, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	rows := [][]string{sheetColumns}
	if len(users) == 0 {
		rows = append(rows, []string{"", "", "", "", ""})
	}
	for _, u := range users {
		rows = append(rows, userRow(u))
	}

	return writeSheet(rows)
}

// SampleTemplate builds a one-row example workbook for illustration.
func SampleTemplate() ([]byte, error) {
	return writeSheet([][]string{
		sheetColumns,
		{"John", "Doe", "john.doe@example.com", "9876543210", "ABCDE1234F"},
	})
}

func userRow(u models.User) []string {
	return []string{u.FirstName, u.LastName, u.Email, u.PhoneNumber, u.PANNumber}
}

// writeSheet renders rows into a single-worksheet workbook. Every cell is
// written as a string so phone numbers keep their leading digits.
func writeSheet(rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
