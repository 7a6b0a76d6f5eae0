package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/de-bkg/basecheck/pkg/analysis"
	"github.com/de-bkg/basecheck/pkg/decoder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSampleResult(t *testing.T) *analysis.ParseResult {
	t.Helper()
	msg := decoder.NewFixtureMessage("1077").
		WithField("DF004", decoder.IntField(3600000)).
		WithNCell(1).
		WithIndexedField("CELLPRN", 1, decoder.IntField(5)).
		WithIndexedField("CELLSIG", 1, decoder.StringField("1C")).
		WithIndexedField("DF408", 1, decoder.FloatField(45)).
		WithIndexedField("DF407", 1, decoder.IntField(500))
	ctx := analysis.NewContext(0)
	ctx.Dispatch(msg)
	ctx.Dispatch(decoder.NewFixtureMessage("1005").
		WithField("DF003", decoder.StringField("STN1")).
		WithField("DF025", decoder.FloatField(6378137)).
		WithField("DF026", decoder.FloatField(0)).
		WithField("DF027", decoder.FloatField(0)))
	return ctx.Result
}

func TestWriteCSV(t *testing.T) {
	result := buildSampleResult(t)
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, result, nil, 0))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2) // header + one row
	assert.Contains(t, lines[0], "epoch_time_gws")
	assert.Contains(t, lines[1], "3600")
}

func TestWriteCSV_EmptyResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, &analysis.ParseResult{Epochs: map[int]*analysis.EpochData{}}, nil, 0))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1) // header only
}

func TestWriteCompact_NoEpochs(t *testing.T) {
	var buf bytes.Buffer
	WriteCompact(&buf, "empty.RTCM3", &analysis.ParseResult{Epochs: map[int]*analysis.EpochData{}}, nil, 0)
	assert.Contains(t, buf.String(), "no epochs parsed")
}

func TestWriteCompact_HasPositionAndSNR(t *testing.T) {
	result := buildSampleResult(t)
	var buf bytes.Buffer
	WriteCompact(&buf, "base.RTCM3", result, nil, 0)
	out := buf.String()
	assert.Contains(t, out, "position:")
	assert.Contains(t, out, "SNR:")
	assert.Contains(t, out, "GPS")
}

func TestWriteDetail_Sections(t *testing.T) {
	result := buildSampleResult(t)
	var buf bytes.Buffer
	WriteDetail(&buf, "base.RTCM3", result, nil, 0)
	out := buf.String()
	assert.Contains(t, out, "message inventory")
	assert.Contains(t, out, "per-constellation satellite counts")
	assert.Contains(t, out, "top cycle-slip satellites")
}

func TestBuildStatusDocument(t *testing.T) {
	result := buildSampleResult(t)
	date := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 1, 4, 1, 0, 0, 0, time.UTC)
	doc := BuildStatusDocument("base.RTCM3", result, &date, 0, now)

	require.NoError(t, ValidateStatusDocument(doc))
	assert.Equal(t, "base.RTCM3", doc.File)
	require.NotNil(t, doc.Position)
	assert.Equal(t, "stable", doc.Position.Status)
	assert.InDelta(t, 0.0, doc.Position.PositionInit.LatDeg, 1e-6)

	b, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"file":"base.RTCM3"`)
}

func TestBuildStatusDocument_NoEpochs(t *testing.T) {
	doc := BuildStatusDocument("empty.RTCM3", &analysis.ParseResult{Epochs: map[int]*analysis.EpochData{}}, nil, 0, time.Now())
	require.NoError(t, ValidateStatusDocument(doc))
	assert.Nil(t, doc.Position)
	assert.Empty(t, doc.Outages)
}
