package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CompactDayKey converts a "YYYY-MM-DD" date value to a zero-padded
// "MM-DD" day key. Inputs that do not split into at least three
// hyphen-separated parts (including the empty string) yield ok=false.
func CompactDayKey(dateValue string) (string, bool) {
	parts := strings.Split(dateValue, "-")
	if len(parts) < 3 {
		return "", false
	}
	return fmt.Sprintf("%s-%s", pad2(parts[1]), pad2(parts[2])), true
}

func pad2(s string) string {
	if n, err := strconv.Atoi(s); err == nil {
		return fmt.Sprintf("%02d", n)
	}
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// Today returns the current local date as "YYYY-MM-DD".
func Today() string {
	return time.Now().Format("2006-01-02")
}

// TodayKey returns the day key for the current local date.
func TodayKey() string {
	key, _ := CompactDayKey(Today())
	return key
}

// DefaultToToday returns value unchanged when non-empty, otherwise
// today's date. Used to default date flags and inputs.
func DefaultToToday(value string) string {
	if value != "" {
		return value
	}
	return Today()
}
