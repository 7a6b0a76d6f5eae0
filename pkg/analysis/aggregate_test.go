package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func resultWithEpochs(keys ...int) *ParseResult {
	r := newParseResult()
	for _, k := range keys {
		r.epoch(k)
	}
	return r
}

// S6: gap detection.
func TestDetectGaps(t *testing.T) {
	r := resultWithEpochs(10, 11, 12, 20, 21)
	gaps := DetectGaps(r)
	assert.Equal(t, []Gap{{StartGWS: 12, EndGWS: 20, DurationSec: 8}}, gaps)
}

// Invariant 5: gap iff diff > 2.
func TestDetectGaps_NoGapWhenWithinThreshold(t *testing.T) {
	r := resultWithEpochs(1, 2, 3)
	assert.Empty(t, DetectGaps(r))

	r2 := resultWithEpochs(1, 3) // diff == 2, not a gap
	assert.Empty(t, DetectGaps(r2))

	r3 := resultWithEpochs(1, 4) // diff == 3, a gap
	assert.Len(t, DetectGaps(r3), 1)
}

func TestDetectGaps_FewerThanTwoKeys(t *testing.T) {
	assert.Empty(t, DetectGaps(resultWithEpochs()))
	assert.Empty(t, DetectGaps(resultWithEpochs(5)))
}

// Invariant 2 & 3: ascending order and sat-count sum.
func TestEpochRows_AscendingAndSatCountSum(t *testing.T) {
	ctx := NewContext(0)
	ctx.recordObservation(200, CellObservation{PRN: "G1", Signal: "L1", CN0: 40})
	ctx.recordObservation(100, CellObservation{PRN: "R1", Signal: "L1", CN0: 30})
	ctx.recordObservation(100, CellObservation{PRN: "E1", Signal: "L1", CN0: 50})

	rows := EpochRows(ctx.Result, nil, 0)
	assert.Len(t, rows, 2)
	assert.Less(t, rows[0].EpochGWS, rows[1].EpochGWS)
	for _, row := range rows {
		assert.Equal(t, row.GPSSats+row.GLONASSSats+row.GalileoSats+row.BeiDouSats, row.TotalSats)
	}
}

func TestEpochRows_EmptyTimestampWithoutFileDate(t *testing.T) {
	ctx := NewContext(0)
	ctx.recordObservation(100, CellObservation{PRN: "G1", Signal: "L1", CN0: 40})
	rows := EpochRows(ctx.Result, nil, 0)
	assert.Equal(t, "", rows[0].Timestamp)
}

func TestEpochRows_TimestampDerivedFromFileDate(t *testing.T) {
	ctx := NewContext(0)
	ctx.recordObservation(18, CellObservation{PRN: "G1", Signal: "L1", CN0: 40})
	date := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC) // a Sunday
	rows := EpochRows(ctx.Result, &date, 0)
	assert.NotEmpty(t, rows[0].Timestamp)

	tm, ok := EpochTime(18, &date, 0)
	assert.True(t, ok)
	assert.Equal(t, date, tm)
}

func TestLowSNRCount(t *testing.T) {
	ctx := NewContext(0)
	ctx.recordObservation(1, CellObservation{PRN: "G1", Signal: "L1", CN0: 20})
	ctx.recordObservation(1, CellObservation{PRN: "G2", Signal: "L1", CN0: 40})
	rows := EpochRows(ctx.Result, nil, 0)
	assert.Equal(t, 1, rows[0].LowSNRCount)
}
