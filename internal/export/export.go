// Package export renders a filtered result set into a spreadsheet workbook
// and a paginated PDF document.
//
// Both exporters consume entries in the order the ledger returned them and
// share one fixed column order, so a given criteria set produces identical
// content on screen, in the workbook, and in the document.
package export

import "prodbook/internal/ledger"

// Headers is the fixed, human-readable export column order. The internal id
// is deliberately excluded, consistent with the declared header row.
var Headers = []string{"Article", "Card", "Color", "Size", "Qty", "Component", "Print", "Date"}

// Row projects an entry into the shared column order.
func Row(e ledger.Entry) []string {
	return []string{e.Article, e.Card, e.Color, e.Size, e.Qty, e.Component, e.PrintOpt, e.Date}
}
