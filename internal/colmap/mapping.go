// Package colmap proposes and validates mappings from foreign spreadsheet
// columns to internal entry fields.
//
// A Mapping is ephemeral: it is suggested from the header row, adjusted by the
// user, validated, and then consumed by one import run. Only the Article field
// is mandatory; every other field may stay unmapped, in which case the
// importer applies field-specific defaults.
package colmap

import (
	"fmt"
	"strings"
)

// Field identifies an internal entry field an external column can map to.
type Field string

const (
	FieldArticle   Field = "Article"
	FieldCard      Field = "Card"
	FieldColor     Field = "Color"
	FieldSize      Field = "Size"
	FieldQty       Field = "Qty"
	FieldComponent Field = "Component"
	FieldPrint     Field = "Print"
	FieldDate      Field = "Date"
)

// Fields lists every mappable field in display order.
var Fields = []Field{
	FieldArticle,
	FieldCard,
	FieldColor,
	FieldSize,
	FieldQty,
	FieldComponent,
	FieldPrint,
	FieldDate,
}

// substring heuristics applied when no exact header match exists.
var fieldHints = map[Field]string{
	FieldQty:   "quant",
	FieldPrint: "print",
	FieldDate:  "date",
}

// NotMapped is the sentinel header value for an unmapped field.
const NotMapped = ""

// Mapping associates each internal field with a foreign column header, or
// NotMapped when the field has no source column.
type Mapping map[Field]string

// ParseField resolves a user-supplied field name case-insensitively.
func ParseField(name string) (Field, error) {
	for _, field := range Fields {
		if strings.EqualFold(name, string(field)) {
			return field, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", name)
}

// Suggest proposes a best-guess mapping for the given headers. Every field
// defaults to NotMapped, then an exact case-insensitive header match is
// tried; fields with a substring hint fall back to the first header
// containing it, scanning headers in their original order. Blank headers
// never match.
func Suggest(headers []string) Mapping {
	mapping := make(Mapping, len(Fields))
	for _, field := range Fields {
		mapping[field] = NotMapped

		for _, header := range headers {
			if header != "" && strings.EqualFold(header, string(field)) {
				mapping[field] = header
				break
			}
		}
		if mapping[field] != NotMapped {
			continue
		}

		hint, ok := fieldHints[field]
		if !ok {
			continue
		}
		for _, header := range headers {
			if header != "" && strings.Contains(strings.ToLower(header), hint) {
				mapping[field] = header
				break
			}
		}
	}
	return mapping
}

// Set overrides the mapping for a field. The header must be one of the
// sheet's headers or empty to unmap the field.
func (m Mapping) Set(field Field, header string, headers []string) error {
	if header == NotMapped {
		m[field] = NotMapped
		return nil
	}
	for _, h := range headers {
		if h == header {
			m[field] = header
			return nil
		}
	}
	return fmt.Errorf("field %s: no column named %q in the sheet", field, header)
}

// Validate rejects the mapping when a mandatory field has no resolved column.
// Optional fields carry no constraint.
func (m Mapping) Validate() error {
	if m[FieldArticle] == NotMapped {
		return fmt.Errorf("field %s is required but not mapped", FieldArticle)
	}
	return nil
}
