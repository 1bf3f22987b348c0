package ledger

import (
	"fmt"
	"strings"

	"prodbook/internal/dateparse"
)

// PrintAll is the Criteria.PrintOpt sentinel that imposes no print constraint.
const PrintAll = "All"

// Criteria is a sparse filter over entries. Empty fields impose no
// constraint. Article and Card match anywhere in the stored text; matching is
// case-insensitive for ASCII (SQLite LIKE), and identical across the table
// view, the xlsx export, and the PDF export. Date bounds are inclusive and
// compare canonical date strings, which orders chronologically.
type Criteria struct {
	Article   string
	Card      string
	PrintOpt  string
	StartDate string
	EndDate   string
}

// Sanitize validates the date bounds. An invalid bound is dropped from the
// returned criteria with a user-facing warning; the query then proceeds
// without that bound rather than failing the whole operation.
func (c Criteria) Sanitize() (Criteria, []string) {
	var warnings []string

	c.Article = strings.TrimSpace(c.Article)
	c.Card = strings.TrimSpace(c.Card)
	c.PrintOpt = strings.TrimSpace(c.PrintOpt)

	if bound := strings.TrimSpace(c.StartDate); bound != "" && !dateparse.IsCanonical(bound) {
		warnings = append(warnings, fmt.Sprintf("invalid start date %q ignored, use YYYY-MM-DD", bound))
		c.StartDate = ""
	} else {
		c.StartDate = bound
	}
	if bound := strings.TrimSpace(c.EndDate); bound != "" && !dateparse.IsCanonical(bound) {
		warnings = append(warnings, fmt.Sprintf("invalid end date %q ignored, use YYYY-MM-DD", bound))
		c.EndDate = ""
	} else {
		c.EndDate = bound
	}

	return c, warnings
}

// whereClause builds the predicate conjunction for the present fields only.
func (c Criteria) whereClause() (string, []any) {
	var (
		clauses []string
		args    []any
	)

	if c.Article != "" {
		clauses = append(clauses, "article LIKE ?")
		args = append(args, "%"+c.Article+"%")
	}
	if c.Card != "" {
		clauses = append(clauses, "card LIKE ?")
		args = append(args, "%"+c.Card+"%")
	}
	if c.PrintOpt != "" && !strings.EqualFold(c.PrintOpt, PrintAll) {
		clauses = append(clauses, "print_opt = ?")
		args = append(args, c.PrintOpt)
	}
	if c.StartDate != "" {
		clauses = append(clauses, "date >= ?")
		args = append(args, c.StartDate)
	}
	if c.EndDate != "" {
		clauses = append(clauses, "date <= ?")
		args = append(args, c.EndDate)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
