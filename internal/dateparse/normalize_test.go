package dateparse_test

import (
	"strings"
	"testing"
	"time"

	"prodbook/internal/dateparse"
)

// todayRange captures today's date before and after an operation so tests do
// not flake across midnight.
func todayRange(t *testing.T, fn func() string) (string, bool) {
	t.Helper()
	before := time.Now().Format(dateparse.Layout)
	got := fn()
	after := time.Now().Format(dateparse.Layout)
	return got, got == before || got == after
}

func TestNormalizeCanonicalIsIdempotent(t *testing.T) {
	got, err := dateparse.Normalize("2024-03-05")
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if got != "2024-03-05" {
		t.Fatalf("expected 2024-03-05, got %q", got)
	}
}

func TestNormalizeNilYieldsTodayWithoutWarning(t *testing.T) {
	var err error
	got, ok := todayRange(t, func() string {
		var value string
		value, err = dateparse.Normalize(nil)
		return value
	})
	if err != nil {
		t.Fatalf("expected no warning for nil, got %v", err)
	}
	if !ok {
		t.Fatalf("expected today's date, got %q", got)
	}
}

func TestNormalizeBlankStringYieldsTodayWithoutWarning(t *testing.T) {
	got, err := dateparse.Normalize("   ")
	if err != nil {
		t.Fatalf("expected no warning for blank text, got %v", err)
	}
	if !dateparse.IsCanonical(got) {
		t.Fatalf("expected canonical date, got %q", got)
	}
}

func TestNormalizeNativeTimeDiscardsTimeOfDay(t *testing.T) {
	got, err := dateparse.Normalize(time.Date(2023, 10, 27, 18, 45, 12, 0, time.UTC))
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if got != "2023-10-27" {
		t.Fatalf("expected 2023-10-27, got %q", got)
	}
}

func TestNormalizeExcelSerial(t *testing.T) {
	// 45291 is 2023-12-31 in the 1900 date system.
	got, err := dateparse.Normalize(float64(45291))
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if got != "2023-12-31" {
		t.Fatalf("expected 2023-12-31, got %q", got)
	}
}

func TestNormalizeNegativeSerialFallsBack(t *testing.T) {
	got, err := dateparse.Normalize(float64(-5))
	if err == nil {
		t.Fatal("expected warning for invalid serial")
	}
	if !dateparse.IsCanonical(got) {
		t.Fatalf("expected canonical fallback date, got %q", got)
	}
}

func TestNormalizeISOTimestamp(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2023-10-27T10:00:00Z", "2023-10-27"},
		{"2023-10-27T23:30:00+05:00", "2023-10-27"},
	}
	for _, tc := range cases {
		got, err := dateparse.Normalize(tc.in)
		if err != nil {
			t.Fatalf("Normalize(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeStringFormatPriority(t *testing.T) {
	// Ambiguous by design: the US form wins before the day-first form is tried.
	got, err := dateparse.Normalize("01/02/2024")
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if got != "2024-01-02" {
		t.Fatalf("expected 2024-01-02 (month first), got %q", got)
	}

	// Day-first only applies once month-first parsing is impossible.
	got, err = dateparse.Normalize("25/12/2024")
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if got != "2024-12-25" {
		t.Fatalf("expected 2024-12-25, got %q", got)
	}

	got, err = dateparse.Normalize("2024/06/30")
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if got != "2024-06-30" {
		t.Fatalf("expected 2024-06-30, got %q", got)
	}
}

func TestNormalizeNonPaddedSlashDates(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		// Non-padded text keeps the same month-first priority as the padded form.
		{"3/5/2024", "2024-03-05"},
		{"3/15/2024", "2024-03-15"},
		{"15/3/2024", "2024-03-15"},
		{"2024/6/3", "2024-06-03"},
	}
	for _, tc := range cases {
		got, err := dateparse.Normalize(tc.in)
		if err != nil {
			t.Fatalf("Normalize(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeUnparseableStringWarnsWithRawValue(t *testing.T) {
	got, err := dateparse.Normalize("not-a-date")
	if err == nil {
		t.Fatal("expected warning for unparseable string")
	}
	if !strings.Contains(err.Error(), "not-a-date") {
		t.Fatalf("warning should reference the raw value, got %v", err)
	}
	if !dateparse.IsCanonical(got) {
		t.Fatalf("expected canonical fallback date, got %q", got)
	}
}

func TestNormalizeUnknownTypeWarns(t *testing.T) {
	got, err := dateparse.Normalize(struct{}{})
	if err == nil {
		t.Fatal("expected warning for unknown type")
	}
	if !dateparse.IsCanonical(got) {
		t.Fatalf("expected canonical fallback date, got %q", got)
	}
}

func TestIsCanonical(t *testing.T) {
	if !dateparse.IsCanonical("2024-01-31") {
		t.Fatal("expected 2024-01-31 to be canonical")
	}
	for _, bad := range []string{"2024-13-01", "01/02/2024", "yesterday", ""} {
		if dateparse.IsCanonical(bad) {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}
