// Package analysis implements the RTCM3 health-analytics core: frame
// dispatch, per-message-family observation processors, cycle-slip
// detection, position collection, and the per-epoch aggregation and
// statistics that feed the reporters in pkg/report.
package analysis

import (
	"sort"

	"github.com/de-bkg/basecheck/pkg/gnss"
)

// CellObservation is one (satellite, signal) measurement in one epoch.
// It is immutable once appended to an EpochData.
type CellObservation struct {
	PRN      string  // constellation-prefixed satellite id, e.g. "G17", "R04"
	Signal   string  // opaque signal tag, e.g. "L1", "L2", or an MSM cell signal label
	CN0      float64 // carrier-to-noise density, dB-Hz, always > 0
	LockTime int64   // lock-time indicator, non-negative
}

// System returns the observation's constellation, derived from the PRN prefix.
func (o CellObservation) System() gnss.System {
	return gnss.SystemFromPRNPrefix(o.PRN)
}

// EpochData is the set of observations collected under a single GPS
// week-seconds key. All observations within one EpochData share that key;
// a (PRN, signal) pair may recur if the source stream duplicates it.
type EpochData struct {
	EpochGWS     int
	Observations []CellObservation
	CycleSlips   int
}

// PositionReport is one antenna reference-point measurement taken from a
// 1005 or 1006 station-coordinate message.
type PositionReport struct {
	StationID     string
	EcefX         float64
	EcefY         float64
	EcefZ         float64
	AntennaHeight *float64 // present only for message 1006
}

// ParseResult is the complete output of one file pass.
type ParseResult struct {
	Epochs        map[int]*EpochData
	Positions     []PositionReport
	MessageCounts map[string]int
	TotalMessages int
}

// newParseResult returns an empty result ready to be populated by a parse.
func newParseResult() *ParseResult {
	return &ParseResult{
		Epochs:        map[int]*EpochData{},
		MessageCounts: map[string]int{},
	}
}

// epoch returns the EpochData bucket for gws, creating it on first use.
func (r *ParseResult) epoch(gws int) *EpochData {
	e, ok := r.Epochs[gws]
	if !ok {
		e = &EpochData{EpochGWS: gws}
		r.Epochs[gws] = e
	}
	return e
}

// SortedEpochKeys returns the epoch GWS keys of r in ascending order.
func (r *ParseResult) SortedEpochKeys() []int {
	keys := make([]int, 0, len(r.Epochs))
	for k := range r.Epochs {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
