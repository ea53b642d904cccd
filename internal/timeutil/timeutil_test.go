package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestParseEventTimeAcceptsRFC3339(t *testing.T) {
	parsed, err := ParseEventTime("2024-06-14T23:30:00Z")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if parsed.Hour() != 23 || parsed.Minute() != 30 {
		t.Fatalf("unexpected time %v", parsed)
	}
}

func TestParseEventTimeAcceptsSecondsLessFeedFormat(t *testing.T) {
	parsed, err := ParseEventTime("2024-09-08T17:00Z")
	if err != nil {
		t.Fatalf("expected feed format to parse, got %v", err)
	}
	if parsed.Year() != 2024 || parsed.Month() != time.September || parsed.Day() != 8 {
		t.Fatalf("unexpected date %v", parsed)
	}
}

func TestParseEventTimeRejectsGarbage(t *testing.T) {
	if _, err := ParseEventTime("not-a-date"); err == nil {
		t.Fatal("expected error for unparsable timestamp")
	}
	if _, err := ParseEventTime(""); err == nil {
		t.Fatal("expected error for empty timestamp")
	}
}

func TestFormatDisplayDateTime(t *testing.T) {
	loc := time.FixedZone("EDT", -4*60*60)
	value := time.Date(2024, 6, 14, 19, 30, 0, 0, loc)
	if got := FormatDisplayDateTime(value); got != "Fri, Jun 14 at 07:30 PM" {
		t.Fatalf("unexpected display datetime %q", got)
	}
	if got := FormatDisplayDate(value); got != "Fri, Jun 14" {
		t.Fatalf("unexpected display date %q", got)
	}
}

func TestDateWindow(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	if got := DateWindow(now, 30, 60); got != "20240516-20240814" {
		t.Fatalf("unexpected window %q", got)
	}
	if got := DateWindow(now, 0, 0); got != "20240615-20240615" {
		t.Fatalf("unexpected zero window %q", got)
	}
}
