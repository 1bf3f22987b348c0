// Package importer drives a bulk spreadsheet import: it applies a committed
// column mapping to every data row, normalizes values, and accumulates
// successes and per-row diagnostics without aborting the batch on a bad row.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"prodbook/internal/colmap"
	"prodbook/internal/dateparse"
	"prodbook/internal/ledger"
	"prodbook/internal/logging"
)

// HeaderRow is the 1-based row holding column headers in an uploaded
// workbook. Data begins on the row after it.
const HeaderRow = 2

// Report summarizes one import run: how many rows inserted and the ordered
// per-row warnings. Warnings never abort the batch; only a file-level failure
// does, surfaced as an error from Run.
type Report struct {
	BatchID  string
	Imported int
	Warnings []string
}

// Importer reads foreign workbooks into the ledger.
type Importer struct {
	store  *ledger.Store
	logger *slog.Logger
}

// New constructs an Importer. A nil logger disables logging.
func New(store *ledger.Store, logger *slog.Logger) *Importer {
	return &Importer{
		store:  store,
		logger: logging.NewComponentLogger(logger, "importer"),
	}
}

// ReadHeaders opens the workbook's active sheet and returns the header row
// with blank cells filtered out, preserving original order.
func ReadHeaders(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := activeRows(f, nil)
	if err != nil {
		return nil, err
	}
	return headerCells(rows)
}

// Run imports every data row of the workbook using the committed mapping.
// The whole batch commits once after the last row, so a late row skip never
// rolls back earlier inserts.
func (imp *Importer) Run(ctx context.Context, path string, mapping colmap.Mapping) (Report, error) {
	report := Report{BatchID: uuid.NewString()}
	logger := imp.logger.With(logging.String(logging.FieldBatchID, report.BatchID))

	if err := mapping.Validate(); err != nil {
		return report, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return report, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := activeRows(f, &sheet)
	if err != nil {
		return report, err
	}
	if _, err := headerCells(rows); err != nil {
		return report, err
	}

	indexes := columnIndexes(rows[HeaderRow-1], mapping)

	batch, err := imp.store.BeginImport(ctx)
	if err != nil {
		return report, err
	}
	defer func() { _ = batch.Rollback() }()

	logger.Info("import started", logging.String(logging.FieldPath, path))

	for r := HeaderRow; r < len(rows); r++ {
		rowNum := r + 1
		row := rows[r]

		entry, warnings := buildEntry(f, sheet, row, rowNum, indexes)
		report.Warnings = append(report.Warnings, warnings...)
		for _, w := range warnings {
			logger.Warn(w, logging.Int(logging.FieldRow, rowNum))
		}
		if entry == nil {
			continue
		}

		if _, err := batch.Insert(ctx, *entry); err != nil {
			warning := fmt.Sprintf("Row %d: %v. Skipping row.", rowNum, err)
			report.Warnings = append(report.Warnings, warning)
			logger.Warn(warning, logging.Int(logging.FieldRow, rowNum))
			continue
		}
		report.Imported++
	}

	if err := batch.Commit(); err != nil {
		return report, err
	}

	logger.Info("import finished",
		logging.Int(logging.FieldCount, report.Imported),
		logging.Int("warnings", len(report.Warnings)),
	)
	return report, nil
}

// buildEntry coerces one data row into an entry. A nil entry means the row is
// skipped; the returned warnings apply either way.
func buildEntry(f *excelize.File, sheet string, row []string, rowNum int, indexes map[colmap.Field]int) (*ledger.Entry, []string) {
	var warnings []string

	cell := func(field colmap.Field) string {
		idx, ok := indexes[field]
		if !ok || idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	entry := ledger.Entry{
		Article:   cell(colmap.FieldArticle),
		Card:      cell(colmap.FieldCard),
		Color:     cell(colmap.FieldColor),
		Size:      cell(colmap.FieldSize),
		Qty:       cell(colmap.FieldQty),
		Component: cell(colmap.FieldComponent),
		PrintOpt:  ledger.PrintNo,
	}

	if raw := cell(colmap.FieldPrint); raw != "" {
		entry.PrintOpt, warnings = coercePrint(raw, rowNum, warnings)
	}

	dateIdx, ok := indexes[colmap.FieldDate]
	if !ok {
		dateIdx = -1
	}
	rawDate := typedCell(f, sheet, row, rowNum, dateIdx)
	date, err := dateparse.Normalize(rawDate)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("Row %d: %v. Using today's date.", rowNum, err))
	}
	entry.Date = date

	if entry.Article == "" {
		warnings = append(warnings, fmt.Sprintf("Row %d: missing required Article value. Skipping row.", rowNum))
		return nil, warnings
	}
	return &entry, warnings
}

func coercePrint(raw string, rowNum int, warnings []string) (string, []string) {
	value := cases.Title(language.English).String(strings.ToLower(raw))
	if value != ledger.PrintYes && value != ledger.PrintNo {
		warnings = append(warnings, fmt.Sprintf("Row %d: invalid Print value %q. Using %q.", rowNum, raw, ledger.PrintNo))
		return ledger.PrintNo, warnings
	}
	return value, warnings
}

// typedCell recovers the raw cell value with enough type information for date
// normalization: numeric cells surface as float64 (Excel date serials), text
// cells as strings, empty or out-of-range cells as nil.
func typedCell(f *excelize.File, sheet string, row []string, rowNum, idx int) any {
	if idx < 0 || idx >= len(row) {
		return nil
	}
	raw := strings.TrimSpace(row[idx])
	if raw == "" {
		return nil
	}

	cellName, err := excelize.CoordinatesToCellName(idx+1, rowNum)
	if err != nil {
		return raw
	}
	cellType, err := f.GetCellType(sheet, cellName)
	if err != nil {
		return raw
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeDate:
		return raw
	default:
		// Plain numeric cells carry no explicit type attribute.
		if serial, err := strconv.ParseFloat(raw, 64); err == nil {
			return serial
		}
		return raw
	}
}

// columnIndexes resolves each mapped field to a zero-based column index, or
// -1 when the field is unmapped or its header vanished. Blank headers are
// skipped; the first occurrence of a duplicate header wins.
func columnIndexes(headerRow []string, mapping colmap.Mapping) map[colmap.Field]int {
	headerToIndex := make(map[string]int, len(headerRow))
	for i, header := range headerRow {
		header = strings.TrimSpace(header)
		if header == "" {
			continue
		}
		if _, ok := headerToIndex[header]; !ok {
			headerToIndex[header] = i
		}
	}

	indexes := make(map[colmap.Field]int, len(mapping))
	for field, header := range mapping {
		if header == colmap.NotMapped {
			indexes[field] = -1
			continue
		}
		idx, ok := headerToIndex[header]
		if !ok {
			idx = -1
		}
		indexes[field] = idx
	}
	return indexes
}

func activeRows(f *excelize.File, sheetOut *string) ([][]string, error) {
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no active sheet")
	}
	if sheetOut != nil {
		*sheetOut = sheet
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < HeaderRow {
		return nil, fmt.Errorf("sheet %q has no header row (expected headers on row %d)", sheet, HeaderRow)
	}
	return rows, nil
}

func headerCells(rows [][]string) ([]string, error) {
	var headers []string
	for _, cell := range rows[HeaderRow-1] {
		cell = strings.TrimSpace(cell)
		if cell != "" {
			headers = append(headers, cell)
		}
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("no headers found on row %d", HeaderRow)
	}
	return headers, nil
}
