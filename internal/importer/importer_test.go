package importer_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"prodbook/internal/colmap"
	"prodbook/internal/dateparse"
	"prodbook/internal/importer"
	"prodbook/internal/ledger"
	"prodbook/internal/logging"
	"prodbook/internal/testsupport"
)

func fullWorkbook(t *testing.T, dataRows [][]any) string {
	t.Helper()
	rows := [][]any{
		{"Production upload"},
		{"Article No", "Card Ref", "Colour", "Size", "Order Quantity", "Component", "Printed", "Delivery Date"},
	}
	rows = append(rows, dataRows...)
	return testsupport.WriteWorkbook(t, "upload.xlsx", rows)
}

func fullMapping() colmap.Mapping {
	return colmap.Mapping{
		colmap.FieldArticle:   "Article No",
		colmap.FieldCard:      "Card Ref",
		colmap.FieldColor:     "Colour",
		colmap.FieldSize:      "Size",
		colmap.FieldQty:       "Order Quantity",
		colmap.FieldComponent: "Component",
		colmap.FieldPrint:     "Printed",
		colmap.FieldDate:      "Delivery Date",
	}
}

func TestReadHeadersFiltersBlanks(t *testing.T) {
	path := testsupport.WriteWorkbook(t, "headers.xlsx", [][]any{
		{"title"},
		{"Article", "", "Date", "  "},
	})

	headers, err := importer.ReadHeaders(path)
	if err != nil {
		t.Fatalf("ReadHeaders: %v", err)
	}
	if len(headers) != 2 || headers[0] != "Article" || headers[1] != "Date" {
		t.Fatalf("unexpected headers: %v", headers)
	}
}

func TestReadHeadersMissingHeaderRow(t *testing.T) {
	path := testsupport.WriteWorkbook(t, "short.xlsx", [][]any{
		{"title only"},
	})
	if _, err := importer.ReadHeaders(path); err == nil {
		t.Fatal("expected error for workbook without a header row")
	}
}

func TestRunImportsDataRows(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	path := fullWorkbook(t, [][]any{
		{"ART-1", "CARD-1", "Navy", "M", "120", "Front panel", "yes", "2026-03-14"},
		{"ART-2", "CARD-2", "Black", "L", "80", "Back panel", "No", "14/03/2026"},
	})

	report, err := importer.New(store, logging.NewNop()).Run(context.Background(), path, fullMapping())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Imported != 2 {
		t.Fatalf("expected 2 imports, got %d (warnings %v)", report.Imported, report.Warnings)
	}
	if len(report.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", report.Warnings)
	}
	if report.BatchID == "" {
		t.Fatal("expected a batch id")
	}

	entries, err := store.Search(context.Background(), ledger.Criteria{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	first := entries[0]
	if first.Article != "ART-1" || first.Qty != "120" || first.PrintOpt != ledger.PrintYes {
		t.Fatalf("first entry mismatch: %+v", first)
	}
	if first.Date != "2026-03-14" || entries[1].Date != "2026-03-14" {
		t.Fatalf("dates not normalized: %q, %q", first.Date, entries[1].Date)
	}
}

func TestRunCollectsDiagnosticsWithoutAborting(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	path := fullWorkbook(t, [][]any{
		{"ART-1", "CARD-1", "Navy", "M", "120", "Front panel", "Yes", "sometime"},
		{"", "CARD-2", "Black", "L", "80", "Back panel", "No", "2026-03-14"},
		{"ART-3", "CARD-3", "White", "S", "40", "Sleeve", "Yes", "2026-03-15"},
	})

	report, err := importer.New(store, logging.NewNop()).Run(context.Background(), path, fullMapping())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Imported != 2 {
		t.Fatalf("expected 2 imports, got %d (warnings %v)", report.Imported, report.Warnings)
	}
	if len(report.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", report.Warnings)
	}
	if !strings.HasPrefix(report.Warnings[0], "Row 3:") || !strings.Contains(report.Warnings[0], "Using today's date") {
		t.Fatalf("unexpected date warning: %q", report.Warnings[0])
	}
	if !strings.HasPrefix(report.Warnings[1], "Row 4:") || !strings.Contains(report.Warnings[1], "missing required Article") {
		t.Fatalf("unexpected skip warning: %q", report.Warnings[1])
	}

	entries, err := store.Search(context.Background(), ledger.Criteria{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	today := time.Now().Format(dateparse.Layout)
	if entries[0].Article != "ART-1" || entries[0].Date != today {
		t.Fatalf("fallback row mismatch: %+v", entries[0])
	}
	if entries[1].Article != "ART-3" || entries[1].Date != "2026-03-15" {
		t.Fatalf("clean row mismatch: %+v", entries[1])
	}
}

func TestRunNativeDateCells(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	path := fullWorkbook(t, [][]any{
		{"ART-1", "CARD-1", "Navy", "M", "120", "Front panel", "No",
			time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)},
	})

	report, err := importer.New(store, logging.NewNop()).Run(context.Background(), path, fullMapping())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Imported != 1 || len(report.Warnings) != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}

	entries, err := store.Search(context.Background(), ledger.Criteria{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if entries[0].Date != "2026-03-14" {
		t.Fatalf("native date cell not normalized: %q", entries[0].Date)
	}
}

func TestRunUnmappedFieldsUseDefaults(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	path := fullWorkbook(t, [][]any{
		{"ART-1", "CARD-1", "Navy", "M", "120", "Front panel", "Yes", "2026-03-14"},
	})

	mapping := colmap.Mapping{colmap.FieldArticle: "Article No"}
	report, err := importer.New(store, logging.NewNop()).Run(context.Background(), path, mapping)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Imported != 1 || len(report.Warnings) != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}

	entries, err := store.Search(context.Background(), ledger.Criteria{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	got := entries[0]
	if got.Card != "" || got.Qty != "" || got.PrintOpt != ledger.PrintNo {
		t.Fatalf("unmapped fields not defaulted: %+v", got)
	}
	if got.Date != time.Now().Format(dateparse.Layout) {
		t.Fatalf("unmapped date should default to today, got %q", got.Date)
	}
}

func TestRunInvalidPrintFallsBackToNo(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	path := fullWorkbook(t, [][]any{
		{"ART-1", "CARD-1", "Navy", "M", "120", "Front panel", "maybe", "2026-03-14"},
		{"ART-2", "CARD-2", "Black", "L", "80", "Back panel", "YES", "2026-03-14"},
	})

	report, err := importer.New(store, logging.NewNop()).Run(context.Background(), path, fullMapping())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Imported != 2 {
		t.Fatalf("expected 2 imports, got %d", report.Imported)
	}
	if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], `invalid Print value "maybe"`) {
		t.Fatalf("unexpected warnings: %v", report.Warnings)
	}

	entries, err := store.Search(context.Background(), ledger.Criteria{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if entries[0].PrintOpt != ledger.PrintNo || entries[1].PrintOpt != ledger.PrintYes {
		t.Fatalf("print coercion mismatch: %q, %q", entries[0].PrintOpt, entries[1].PrintOpt)
	}
}

func TestRunRejectsMappingWithoutArticle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	path := fullWorkbook(t, nil)

	_, err := importer.New(store, logging.NewNop()).Run(context.Background(), path, colmap.Mapping{})
	if err == nil {
		t.Fatal("expected validation error for mapping without Article")
	}
}

func TestSuggestDrivesEndToEndImport(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	path := testsupport.WriteWorkbook(t, "suggest.xlsx", [][]any{
		{"title"},
		{"Article", "Quantity Ordered", "Print?", "Ship Date"},
		{"ART-9", "300", "no", "2026-04-01"},
	})

	headers, err := importer.ReadHeaders(path)
	if err != nil {
		t.Fatalf("ReadHeaders: %v", err)
	}
	mapping := colmap.Suggest(headers)
	if mapping[colmap.FieldQty] != "Quantity Ordered" || mapping[colmap.FieldDate] != "Ship Date" {
		t.Fatalf("heuristics missed: %v", mapping)
	}

	report, err := importer.New(store, logging.NewNop()).Run(context.Background(), path, mapping)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Imported != 1 || len(report.Warnings) != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}

	entries, err := store.Search(context.Background(), ledger.Criteria{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	got := entries[0]
	if got.Article != "ART-9" || got.Qty != "300" || got.PrintOpt != ledger.PrintNo || got.Date != "2026-04-01" {
		t.Fatalf("suggested import mismatch: %+v", got)
	}
}
