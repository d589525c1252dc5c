package core

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Harshit-gupta-45107/User-Management/internal/storage/storagetest"
	"github.com/xuri/excelize/v2"
)

// readWorkbook decodes xlsx bytes back into rows for assertions.
func readWorkbook(t *testing.T, data []byte) [][]string {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Users" {
		t.Fatalf("sheets = %v, want [Users]", sheets)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	return rows
}

func TestGenerateTemplate_EmptyStore(t *testing.T) {
	svc := NewService(storagetest.New())

	data, err := svc.GenerateTemplate(context.Background())
	if err != nil {
		t.Fatalf("GenerateTemplate() error = %v", err)
	}

	rows := readWorkbook(t, data)
	if len(rows) < 1 {
		t.Fatal("template has no rows")
	}
	if !reflect.DeepEqual(rows[0], header()) {
		t.Errorf("header = %v, want %v", rows[0], header())
	}
	// The blank data row may come back with trailing cells trimmed; it must
	// not contain any value.
	if len(rows) > 1 {
		for _, cell := range rows[1] {
			if cell != "" {
				t.Errorf("blank row contains %q", cell)
			}
		}
	}
}

func TestGenerateTemplate_ListsUsersNewestFirst(t *testing.T) {
	store := storagetest.New()
	svc := NewService(store)

	mustCreate(t, svc, "First", "User", "first@example.com", "1111111111", "AAAAA1111A")
	mustCreate(t, svc, "Second", "User", "second@example.com", "2222222222", "BBBBB2222B")

	data, err := svc.GenerateTemplate(context.Background())
	if err != nil {
		t.Fatalf("GenerateTemplate() error = %v", err)
	}

	rows := readWorkbook(t, data)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[1][2] != "second@example.com" {
		t.Errorf("first data row email = %q, want the newest user", rows[1][2])
	}
	if rows[2][2] != "first@example.com" {
		t.Errorf("second data row email = %q, want the oldest user", rows[2][2])
	}
}

// The template of a non-empty store re-imports as a store-level duplicate,
// proving export and import agree on the column shape.
func TestGenerateTemplate_RoundTrip(t *testing.T) {
	store := storagetest.New()
	svc := NewService(store)

	mustCreate(t, svc, "John", "Doe", "john@example.com", "9876543210", "ABCDE1234F")

	data, err := svc.GenerateTemplate(context.Background())
	if err != nil {
		t.Fatalf("GenerateTemplate() error = %v", err)
	}

	_, err = svc.ImportBatch(context.Background(), data)
	if !errors.Is(err, ErrDuplicateInStore) {
		t.Fatalf("re-import error = %v, want ErrDuplicateInStore", err)
	}
	if store.Count() != 1 {
		t.Errorf("store has %d users after round trip, want 1", store.Count())
	}
}

func TestSampleTemplate(t *testing.T) {
	data, err := SampleTemplate()
	if err != nil {
		t.Fatalf("SampleTemplate() error = %v", err)
	}

	rows := readWorkbook(t, data)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + example", len(rows))
	}
	if !reflect.DeepEqual(rows[0], header()) {
		t.Errorf("header = %v, want %v", rows[0], header())
	}
	want := []string{"John", "Doe", "john.doe@example.com", "9876543210", "ABCDE1234F"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Errorf("example row = %v, want %v", rows[1], want)
	}
}

// A sample template imports cleanly into an empty store.
func TestSampleTemplate_Importable(t *testing.T) {
	store := storagetest.New()
	svc := NewService(store)

	data, err := SampleTemplate()
	if err != nil {
		t.Fatalf("SampleTemplate() error = %v", err)
	}

	count, err := svc.ImportBatch(context.Background(), data)
	if err != nil {
		t.Fatalf("ImportBatch(sample) error = %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}
