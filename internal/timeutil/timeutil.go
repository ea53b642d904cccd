package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Display layouts for the dashboard (weekday/month abbreviations, 12-hour clock).
const (
	DisplayDateLayout     = "Mon, Jan 02"
	DisplayDateTimeLayout = "Mon, Jan 02 at 03:04 PM"
)

// compactDateLayout is the scoreboard provider's date-window format (YYYYMMDD).
const compactDateLayout = "20060102"

// eventTimeLayouts lists the timestamp shapes the scoreboard feed ships.
// The feed usually omits seconds ("2024-09-08T17:00Z"), so RFC3339 alone
// is not enough.
var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseEventTime parses a scoreboard event timestamp, tolerating the feed's
// seconds-less variant alongside full RFC3339.
func ParseEventTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range eventTimeLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// FormatDisplayDate renders a date for the forecast table, e.g. "Fri, Jun 14".
func FormatDisplayDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}

// FormatDisplayDateTime renders a game time, e.g. "Fri, Jun 14 at 07:30 PM".
func FormatDisplayDateTime(t time.Time) string {
	return t.Format(DisplayDateTimeLayout)
}

// DateWindow builds the scoreboard provider's YYYYMMDD-YYYYMMDD range string
// spanning pastDays back to futureDays forward from now.
func DateWindow(now time.Time, pastDays, futureDays int) string {
	start := now.AddDate(0, 0, -pastDays)
	end := now.AddDate(0, 0, futureDays)
	return fmt.Sprintf("%s-%s", start.Format(compactDateLayout), end.Format(compactDateLayout))
}
