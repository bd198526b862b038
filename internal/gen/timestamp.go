package gen

import "time"

const timestampLayout = "2006-01-02T15:04:05"

// Timestamp returns a past local timestamp: now minus daysBack days, shifted
// back a further random 0-23 hours, formatted as YYYY-MM-DDTHH:MM:SS.
// The reference time is injected so tests can pin the output window.
func Timestamp(now time.Time, daysBack int, src *Source) string {
	offset := time.Duration(daysBack)*24*time.Hour + time.Duration(src.IntBetween(0, 23))*time.Hour
	return now.Add(-offset).Format(timestampLayout)
}
