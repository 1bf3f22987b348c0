package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook writes rows to a new xlsx file under a temp directory and
// returns its path. Row i of rows lands on sheet row i+1, so callers supply
// the leading title row themselves when they need headers on row 2.
func WriteWorkbook(t testing.TB, name string, rows [][]any) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	doc := excelize.NewFile()
	sheet := doc.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName: %v", err)
		}
		if err := doc.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	if err := doc.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if err := doc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return path
}
