package utils

import (
	"regexp"
	"time"
)

var ymdPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// IsYMD reports whether s is a real calendar date in YYYY-MM-DD form.
func IsYMD(s string) bool {
	if !ymdPattern.MatchString(s) {
		return false
	}
	_, err := time.ParseInLocation("2006-01-02", s, time.Local)
	return err == nil
}

// TodayYMD returns the current local calendar date as YYYY-MM-DD. Due dates
// are compared as local calendar days, never through a UTC timestamp, so a
// document due "today" stays due today right up to local midnight.
func TodayYMD() string {
	return time.Now().Format("2006-01-02")
}

// YMDBefore reports whether date a falls strictly before date b. Both must be
// YYYY-MM-DD strings; the fixed-width form makes lexicographic order equal to
// calendar order.
func YMDBefore(a, b string) bool {
	return a < b
}
