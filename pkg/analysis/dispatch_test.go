package analysis

import (
	"testing"

	"github.com/de-bkg/basecheck/pkg/decoder"
	"github.com/stretchr/testify/assert"
)

// S1: MSM7 GPS minimal.
func TestDispatch_MSM7GPSMinimal(t *testing.T) {
	msg := decoder.NewFixtureMessage("1077").
		WithField("DF004", decoder.IntField(3600000)).
		WithNCell(1).
		WithIndexedField("CELLPRN", 1, decoder.IntField(5)).
		WithIndexedField("CELLSIG", 1, decoder.StringField("1C")).
		WithIndexedField("DF408", 1, decoder.FloatField(45)).
		WithIndexedField("DF407", 1, decoder.IntField(500))

	ctx := NewContext(0)
	ctx.Dispatch(msg)

	assert.Equal(t, 1, ctx.Result.TotalMessages)
	assert.Len(t, ctx.Result.Epochs, 1)
	e, ok := ctx.Result.Epochs[3600]
	assert.True(t, ok)
	assert.Len(t, e.Observations, 1)
	assert.Equal(t, "G5", e.Observations[0].PRN)
	assert.Equal(t, 45.0, e.Observations[0].CN0)

	rows := EpochRows(ctx.Result, nil, 0)
	assert.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].TotalSats)
	assert.Equal(t, 45.0, rows[0].MeanSNR)
}

// S2: legacy GPS cycle slip.
func TestDispatch_LegacyGPSCycleSlip(t *testing.T) {
	msg1 := decoder.NewFixtureMessage("1004").
		WithField("DF004", decoder.IntField(1000000)).
		WithField("DF006", decoder.IntField(1)).
		WithIndexedField("DF009", 1, decoder.IntField(12)).
		WithIndexedField("DF015", 1, decoder.FloatField(40)).
		WithIndexedField("DF013", 1, decoder.IntField(100))

	msg2 := decoder.NewFixtureMessage("1004").
		WithField("DF004", decoder.IntField(1001000)).
		WithField("DF006", decoder.IntField(1)).
		WithIndexedField("DF009", 1, decoder.IntField(12)).
		WithIndexedField("DF015", 1, decoder.FloatField(40)).
		WithIndexedField("DF013", 1, decoder.IntField(1))

	ctx := NewContext(0)
	ctx.Dispatch(msg1)
	ctx.Dispatch(msg2)

	e1 := ctx.Result.Epochs[1000]
	e2 := ctx.Result.Epochs[1001]
	assert.Equal(t, 0, e1.CycleSlips)
	assert.Equal(t, 1, e2.CycleSlips)
}

// S3: GLONASS day wrap, GWS keys strictly monotonic.
func TestDispatch_GlonassDayWrap(t *testing.T) {
	msgFor := func(epochMs int64) decoder.Message {
		return decoder.NewFixtureMessage("1012").
			WithField("DF034", decoder.IntField(epochMs)).
			WithField("DF035", decoder.IntField(1)).
			WithIndexedField("DF038", 1, decoder.IntField(4)).
			WithIndexedField("DF045", 1, decoder.FloatField(42)).
			WithIndexedField("DF043", 1, decoder.IntField(50))
	}

	ctx := NewContext(0)
	ctx.Dispatch(msgFor(80000000))
	ctx.Dispatch(msgFor(85000000))
	ctx.Dispatch(msgFor(4000000))

	keys := ctx.Result.SortedEpochKeys()
	assert.Len(t, keys, 3)
	assert.Less(t, keys[0], keys[1])
	assert.Less(t, keys[1], keys[2])
}

func TestDispatch_OtherMessageCountedOnly(t *testing.T) {
	ctx := NewContext(0)
	ctx.Dispatch(decoder.NewFixtureMessage("1230"))
	assert.Equal(t, 1, ctx.Result.TotalMessages)
	assert.Empty(t, ctx.Result.Epochs)
	assert.Equal(t, 1, ctx.Result.MessageCounts["1230"])
}

func TestDispatch_NilMessageIsNoOp(t *testing.T) {
	ctx := NewContext(0)
	ctx.Dispatch(nil)
	assert.Equal(t, 0, ctx.Result.TotalMessages)
}

// Invariant 1: every observation has cn0 > 0.
func TestInvariant_AllObservationsPositiveCN0(t *testing.T) {
	ctx := NewContext(0)
	msg := decoder.NewFixtureMessage("1077").
		WithField("DF004", decoder.IntField(0)).
		WithNCell(2).
		WithIndexedField("CELLPRN", 1, decoder.IntField(1)).
		WithIndexedField("DF408", 1, decoder.FloatField(30)).
		WithIndexedField("CELLPRN", 2, decoder.IntField(2)).
		WithIndexedField("DF408", 2, decoder.FloatField(0)) // dropped: cn0 <= 0

	ctx.Dispatch(msg)
	for _, e := range ctx.Result.Epochs {
		for _, o := range e.Observations {
			assert.Greater(t, o.CN0, 0.0)
		}
	}
	assert.Len(t, ctx.Result.Epochs[0].Observations, 1)
}
