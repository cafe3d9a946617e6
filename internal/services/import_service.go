package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
)

// ImportReport summarizes one bulk-import run. Imported counts rows that
// reached the store; Skipped counts rows dropped by per-row validation.
// Skipped rows are not reported individually.
type ImportReport struct {
	BatchID  uuid.UUID
	Imported int
	Skipped  int
}

// ImportService bulk-loads garments from a comma-delimited text source.
type ImportService struct {
	inventory *InventoryService
}

// NewImportService creates a new ImportService.
func NewImportService(inventory *InventoryService) *ImportService {
	return &ImportService{
		inventory: inventory,
	}
}

// ImportCSV reads the file at path (no header row, fields in order name,
// size, color, style, quantity) and adds each valid row to the store.
//
// The whole source is parsed up front: if it cannot be opened or read,
// ErrImportSource is returned and no partial import is attempted. Rows that
// fail per-row validation — a field count other than five, a quantity that is
// not a plain run of decimal digits, or a field that trims to empty — are
// silently skipped. Rows are added one at a time with no batch atomicity, so
// a storage fault partway through leaves previously added rows persisted; the
// report then carries the count imported so far alongside the error.
func (s *ImportService) ImportCSV(path string) (ImportReport, error) {
	report := ImportReport{BatchID: uuid.New()}

	file, err := os.Open(path)
	if err != nil {
		return report, fmt.Errorf("%w: %w", ErrImportSource, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return report, fmt.Errorf("%w: %w", ErrImportSource, err)
	}

	for _, row := range rows {
		if len(row) != 5 {
			report.Skipped++
			continue
		}
		// A sign or surrounding whitespace disqualifies the quantity, so
		// "-1" and " 3" are both skipped.
		if !isDigits(row[4]) {
			report.Skipped++
			continue
		}
		quantity, err := strconv.Atoi(row[4])
		if err != nil {
			report.Skipped++
			continue
		}
		if _, err := s.inventory.Add(row[0], row[1], row[2], row[3], quantity); err != nil {
			if errors.Is(err, ErrValidation) {
				report.Skipped++
				continue
			}
			return report, err
		}
		report.Imported++
	}
	return report, nil
}

// isDigits reports whether s is a non-empty run of ASCII decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
