package analysis

import (
	"regexp"
	"time"
)

var filenameTimestamp = regexp.MustCompile(`(?i)_(\d{14})\.RTCM3$`)

// ParseFilename extracts the session start time embedded in an input
// filename's "_YYYYMMDDHHMMSS.RTCM3" suffix (§6.1), case-insensitive.
// ok is false when the suffix is absent; callers then fall back to the
// Sunday=0 GLONASS day anchor and leave timestamp-derived fields empty.
func ParseFilename(name string) (startTime time.Time, ok bool) {
	m := filenameTimestamp.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("20060102150405", m[1], time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// GPSDayOfWeek converts t to the GPS day-of-week anchor used by the
// GLONASS time normalizer, Sunday = 0.
func GPSDayOfWeek(t time.Time) int {
	return int(t.Weekday())
}
