// Package ledger persists production entries in SQLite and owns the filter
// semantics shared by the table view and both exporters.
//
// The Store manages the database connection, idempotent schema creation, CRUD
// operations, and criteria-driven queries. Criteria sanitization lives here so
// every consumer of a filtered result set applies exactly the same predicate
// and ordering.
//
// Treat this package as the single source of truth for entry semantics; when
// you add new fields, update schema.sql and the column list together.
package ledger
