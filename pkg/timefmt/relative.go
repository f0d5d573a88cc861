package timefmt

import (
	"fmt"
	"time"
)

// Relative formatea t respecto a now como lo muestra el feed de actividad:
// "Never", "Just now", "N minutes ago", "N hours ago", "N days ago"; a partir de 7 días, la fecha (YYYY-MM-DD).
func Relative(t *time.Time, now time.Time) string {
	if t == nil || t.IsZero() {
		return "Never"
	}
	diff := now.Sub(*t)
	sec := int(diff / time.Second)
	min := sec / 60
	hour := min / 60
	day := hour / 24

	switch {
	case sec < 60:
		return "Just now"
	case min < 60:
		return plural(min, "minute")
	case hour < 24:
		return plural(hour, "hour")
	case day < 7:
		return plural(day, "day")
	}
	return t.Format("2006-01-02")
}

func plural(n int, unit string) string {
	if n != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}
