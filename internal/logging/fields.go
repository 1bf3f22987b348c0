package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEntryID is the standardized structured logging key for entry identifiers.
	FieldEntryID = "entry_id"
	// FieldBatchID is the standardized structured logging key for import batch identifiers.
	FieldBatchID = "batch_id"
	// FieldRow is the standardized structured logging key for 1-based spreadsheet row numbers.
	FieldRow = "row"
	// FieldPath is the standardized structured logging key for file paths.
	FieldPath = "path"
	// FieldCount is the standardized structured logging key for result counts.
	FieldCount = "count"
)
