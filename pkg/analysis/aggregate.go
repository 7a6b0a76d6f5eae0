package analysis

import (
	"math"
	"time"
)

const lowSNRThresholdDBHz = 35.0

// EpochRow is one materialized row of the per-epoch tabular record (§4.8).
type EpochRow struct {
	EpochGWS     int
	Timestamp    string // empty when it cannot be derived (§4.8)
	GPSSats      int
	GLONASSSats  int
	GalileoSats  int
	BeiDouSats   int
	TotalSats    int
	MeanSNR      float64
	MinSNR       float64
	LowSNRCount  int
	CycleSlips   int
}

// Gap is a detected discontinuity between two consecutive epoch keys.
type Gap struct {
	StartGWS    int
	EndGWS      int
	DurationSec int
}

// EpochRows materializes one EpochRow per epoch in ascending GWS order.
func EpochRows(result *ParseResult, fileDate *time.Time, gpsDayOfWeek int) []EpochRow {
	keys := result.SortedEpochKeys()
	rows := make([]EpochRow, 0, len(keys))
	for _, gws := range keys {
		rows = append(rows, epochRow(result.Epochs[gws], fileDate, gpsDayOfWeek))
	}
	return rows
}

func epochRow(e *EpochData, fileDate *time.Time, gpsDayOfWeek int) EpochRow {
	satsBySystem := map[string]map[string]struct{}{"G": {}, "R": {}, "E": {}, "C": {}}

	var sum, min float64
	haveMin := false
	lowCount := 0

	for _, o := range e.Observations {
		prefix := ""
		if o.PRN != "" {
			prefix = o.PRN[:1]
		}
		if set, ok := satsBySystem[prefix]; ok {
			set[o.PRN] = struct{}{}
		}

		if o.CN0 > 0 {
			sum += o.CN0
			if !haveMin || o.CN0 < min {
				min = o.CN0
				haveMin = true
			}
			if o.CN0 < lowSNRThresholdDBHz {
				lowCount++
			}
		}
	}

	var mean float64
	if n := countCN0Positive(e); n > 0 {
		mean = round1(sum / float64(n))
	}
	if !haveMin {
		min = 0.0
	}

	gps, glo, gal, bds := len(satsBySystem["G"]), len(satsBySystem["R"]), len(satsBySystem["E"]), len(satsBySystem["C"])

	return EpochRow{
		EpochGWS:    e.EpochGWS,
		Timestamp:   gwsToTimestamp(e.EpochGWS, fileDate, gpsDayOfWeek),
		GPSSats:     gps,
		GLONASSSats: glo,
		GalileoSats: gal,
		BeiDouSats:  bds,
		TotalSats:   gps + glo + gal + bds,
		MeanSNR:     mean,
		MinSNR:      round1(min),
		LowSNRCount: lowCount,
		CycleSlips:  e.CycleSlips,
	}
}

func countCN0Positive(e *EpochData) int {
	n := 0
	for _, o := range e.Observations {
		if o.CN0 > 0 {
			n++
		}
	}
	return n
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// EpochTime converts an epoch's GWS key to a wall-clock UTC time given
// the file's session-start date (§4.8). ok is false when fileDate is
// absent or the arithmetic cannot be represented in a valid calendar year.
func EpochTime(gws int, fileDate *time.Time, gpsDayOfWeek int) (t time.Time, ok bool) {
	if fileDate == nil {
		return time.Time{}, false
	}
	base := time.Date(fileDate.Year(), fileDate.Month(), fileDate.Day(), 0, 0, 0, 0, time.UTC)
	offsetSec := gws - gpsDayOfWeek*86400 - 18
	t = base.Add(time.Duration(offsetSec) * time.Second)
	if t.Year() < 1 || t.Year() > 9999 {
		return time.Time{}, false
	}
	return t, true
}

// gwsToTimestamp renders EpochTime in RFC3339 for the CSV column,
// returning an empty string when it cannot be derived.
func gwsToTimestamp(gws int, fileDate *time.Time, gpsDayOfWeek int) string {
	t, ok := EpochTime(gws, fileDate, gpsDayOfWeek)
	if !ok {
		return ""
	}
	return t.Format(time.RFC3339)
}

// DetectGaps scans ascending epoch keys and emits a Gap for every
// consecutive pair whose GWS difference exceeds 2 seconds (§4.8).
func DetectGaps(result *ParseResult) []Gap {
	keys := result.SortedEpochKeys()
	if len(keys) < 2 {
		return nil
	}
	var gaps []Gap
	for i := 1; i < len(keys); i++ {
		diff := keys[i] - keys[i-1]
		if diff > 2 {
			gaps = append(gaps, Gap{StartGWS: keys[i-1], EndGWS: keys[i], DurationSec: diff})
		}
	}
	return gaps
}
