package analysis

import (
	"log"

	"github.com/de-bkg/basecheck/pkg/rtcmtime"
)

// Context owns all mutable state for a single file parse: the result
// being accumulated, the cycle-slip lock-time history, and the GLONASS
// day-wrap state (§5). It is never shared across parses; independent
// files get independent Contexts.
type Context struct {
	Result *ParseResult

	slips      *cycleSlipDetector
	glonassDay *rtcmtime.DayWrapDetector

	// GPSDayOfWeek anchors the GLONASS time base, Sunday = 0. Derived
	// from the input filename (§6.1); defaults to 0 when absent.
	GPSDayOfWeek int

	// Logger is the destination of the Context's logf output. Defaults to
	// the standard logger if nil. The processors skip malformed frames
	// and dropped fields without logging them.
	Logger *log.Logger
}

// NewContext returns a Context ready to receive messages via Dispatch.
func NewContext(gpsDayOfWeek int) *Context {
	return &Context{
		Result:       newParseResult(),
		slips:        newCycleSlipDetector(),
		glonassDay:   rtcmtime.NewDayWrapDetector(),
		GPSDayOfWeek: gpsDayOfWeek,
	}
}

func (c *Context) logf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// recordObservation appends obs to the bucket for epochGWS, consults the
// cycle-slip detector, and bumps the epoch's slip counter on a hit.
func (c *Context) recordObservation(epochGWS int, obs CellObservation) {
	e := c.Result.epoch(epochGWS)
	if c.slips.Observe(obs.PRN, obs.Signal, obs.LockTime) {
		e.CycleSlips++
	}
	e.Observations = append(e.Observations, obs)
}

// glonassGWS runs epochMs through the day-wrap detector and returns the
// common GPS week-seconds key.
func (c *Context) glonassGWS(epochMs int64) int {
	dayCount := c.glonassDay.Observe(epochMs)
	return rtcmtime.GlonassEpochMsToGWS(epochMs, c.GPSDayOfWeek, dayCount)
}
