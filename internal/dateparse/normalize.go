// Package dateparse converts heterogeneous spreadsheet date representations
// into one canonical calendar-date string.
//
// The fallback ladder in Normalize is contractual: foreign spreadsheets encode
// dates as native values, Excel serial numbers, ISO-8601 timestamps, and
// several slash formats that are ambiguous with each other, so the priority
// order decides which reading wins. Do not reorder the rules.
package dateparse

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Layout is the canonical calendar-date format.
const Layout = "2006-01-02"

// stringLayouts are tried in priority order for plain text values. The order
// matters: "01/02/2024" is January 2nd because the US form is tried first.
// Each slash form has a non-padded variant right after it so "3/5/2024" keeps
// the same month-first reading as its padded spelling.
var stringLayouts = []string{
	Layout,
	"01/02/2006",
	"1/2/2006",
	"02/01/2006",
	"2/1/2006",
	"2006/01/02",
	"2006/1/2",
}

// IsCanonical reports whether s is a valid canonical date.
func IsCanonical(s string) bool {
	_, err := time.Parse(Layout, s)
	return err == nil
}

// Normalize converts a raw cell value of unknown type to a canonical date.
//
// Rules, first applicable wins: nil or blank text yields today with no error;
// a native time.Time formats directly, discarding time-of-day; a number is
// read as an Excel date serial; text containing a T separator with a Z or
// offset marker parses as ISO-8601; other text walks stringLayouts; anything
// else falls back to today.
//
// The returned string is always a valid canonical date. A non-nil error means
// the fallback to today's date fired for a reason the caller should surface
// as a warning; the value is still usable.
func Normalize(raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return today(), nil
	case time.Time:
		return v.Format(Layout), nil
	case float64:
		return fromSerial(v)
	case int:
		return fromSerial(float64(v))
	case int64:
		return fromSerial(float64(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return today(), nil
		}
		if strings.Contains(s, "T") && (strings.Contains(s, "Z") || strings.Contains(s, "+")) {
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				return today(), fmt.Errorf("unrecognized date string %q", s)
			}
			return t.Format(Layout), nil
		}
		for _, layout := range stringLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format(Layout), nil
			}
		}
		return today(), fmt.Errorf("unrecognized date string %q", s)
	default:
		return today(), fmt.Errorf("unrecognized date value of type %T", raw)
	}
}

func fromSerial(serial float64) (string, error) {
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return today(), fmt.Errorf("cannot convert numeric date %v", serial)
	}
	return t.Format(Layout), nil
}

func today() string {
	return time.Now().Format(Layout)
}
