// Package rtcmtime normalizes the time references used by the different
// RTCM3 message families into a single monotone GPS week-seconds (GWS) key.
package rtcmtime

const (
	// glonassUTCOffsetMs is the Moscow-UTC offset baked into GLONASS
	// epoch timestamps.
	glonassUTCOffsetMs = 10800000
	msPerDay           = 86400000
	secPerDay          = 86400

	// leapSeconds is the fixed GPS-UTC leap second offset, current
	// through the era this analyzer covers (see design notes).
	leapSeconds = 18

	// noonThreshold anchors GLONASS day-wrap detection at local noon,
	// away from the boundary itself to tolerate jitter.
	noonThreshold = 43200
)

// GPSEpochMsToGWS converts GPS/Galileo/BeiDou millisecond-into-week
// timestamps to integer GPS week-seconds by truncating division.
func GPSEpochMsToGWS(epochMs int64) int {
	return int(epochMs / 1000)
}

// GlonassEpochMsToGWS converts a GLONASS Moscow-daily-millisecond
// timestamp to the common GPS week-seconds key, given the GPS
// day-of-week anchor (Sunday = 0) and the number of GLONASS day wraps
// observed so far in the stream.
func GlonassEpochMsToGWS(epochMs int64, gpsDayOfWeek, gloDayCount int) int {
	utcMs := epochMs - glonassUTCOffsetMs
	if utcMs < 0 {
		utcMs += msPerDay
	}
	utcSecOfDay := utcMs / 1000
	return (gpsDayOfWeek+gloDayCount)*secPerDay + int(utcSecOfDay) + leapSeconds
}

// DayWrapDetector tracks the raw seconds-of-day sequence of a GLONASS
// stream's DF034/DF004-style epoch field and counts day boundaries
// crossed, using a noon-anchored heuristic robust to small jitter near
// midnight. It compares the raw epoch_ms/1000 value, not the
// Moscow-UTC-offset-corrected value GlonassEpochMsToGWS derives from it:
// the wrap is a property of the wire counter's own rollover, independent
// of the offset applied afterward to land on a GPS-relative second.
type DayWrapDetector struct {
	dayCount  int
	havePrev  bool
	prevRawSD int64
}

// NewDayWrapDetector returns a detector initialized to zero wraps with
// no prior observation.
func NewDayWrapDetector() *DayWrapDetector {
	return &DayWrapDetector{}
}

// Observe feeds the next GLONASS epoch millisecond value and returns the
// current day-wrap count after accounting for it.
func (d *DayWrapDetector) Observe(epochMs int64) int {
	rawSoD := (epochMs / 1000) % secPerDay

	if d.havePrev && d.prevRawSD > noonThreshold && rawSoD < noonThreshold {
		d.dayCount++
	}
	d.prevRawSD = rawSoD
	d.havePrev = true
	return d.dayCount
}

// DayCount returns the number of day wraps observed so far.
func (d *DayWrapDetector) DayCount() int {
	return d.dayCount
}
