package report

import (
	"math"
	"time"

	"github.com/de-bkg/basecheck/pkg/analysis"
	"github.com/de-bkg/basecheck/pkg/geodesy"
	"github.com/go-playground/validator/v10"
)

const statusTimeLayout = "2006:01:02:15:04:05"

// GeoPoint is a geodetic fix as carried in the status document.
type GeoPoint struct {
	LatDeg     float64 `json:"lat_deg"`
	LonDeg     float64 `json:"lon_deg"`
	HeightHAEM float64 `json:"height_hae_m"`
}

// PositionStatus summarizes the base station's position stability.
type PositionStatus struct {
	Status        string   `json:"status" validate:"oneof=stable unstable"`
	SpreadM       float64  `json:"spread_m"`
	PositionInit  GeoPoint `json:"position_init"`
	PositionFinal GeoPoint `json:"position_final"`
}

// TimeSpan is the covered session window.
type TimeSpan struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	DurationSec int    `json:"duration_sec"`
}

// SatelliteRange is the min/max total satellite count across epochs.
type SatelliteRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Outage is one detected data gap.
type Outage struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// StatusDocument is the structured health report (§4.9, §6.3).
type StatusDocument struct {
	File         string          `json:"file" validate:"required"`
	GeneratedUTC string          `json:"generated_utc" validate:"required"`
	TimeSpan     TimeSpan        `json:"time_span"`
	Position     *PositionStatus `json:"position"`
	Satellites   SatelliteRange  `json:"satellites"`
	Outages      []Outage        `json:"outages"`
}

// BuildStatusDocument assembles the status document for result. now is
// the generation timestamp (injected so callers control it).
func BuildStatusDocument(fileLabel string, result *analysis.ParseResult, fileDate *time.Time, gpsDayOfWeek int, now time.Time) *StatusDocument {
	doc := &StatusDocument{
		File:         fileLabel,
		GeneratedUTC: now.UTC().Format(time.RFC3339),
		Outages:      []Outage{},
	}

	if len(result.Epochs) == 0 {
		return doc
	}

	span := computeTimeSpan(result, fileDate, gpsDayOfWeek)
	if span.ok {
		doc.TimeSpan = TimeSpan{
			Start:       span.start.Format(statusTimeLayout),
			End:         span.end.Format(statusTimeLayout),
			DurationSec: int(span.duration.Seconds()),
		}
	}

	for _, g := range analysis.DetectGaps(result) {
		start, okS := analysis.EpochTime(g.StartGWS, fileDate, gpsDayOfWeek)
		end, okE := analysis.EpochTime(g.EndGWS, fileDate, gpsDayOfWeek)
		if !okS || !okE {
			continue
		}
		doc.Outages = append(doc.Outages, Outage{Start: start.Format(statusTimeLayout), End: end.Format(statusTimeLayout)})
	}

	if stability, ok := analysis.AnalyzePositionStability(result.Positions); ok {
		status := "stable"
		if !stability.Stable {
			status = "unstable"
		}
		initLat, initLon, initH := geodeticOf(result.Positions[0])
		finalLat, finalLon, finalH := geodeticOf(result.Positions[len(result.Positions)-1])
		doc.Position = &PositionStatus{
			Status:        status,
			SpreadM:       round4(stability.SpreadM),
			PositionInit:  GeoPoint{round8(initLat), round8(initLon), round2(initH)},
			PositionFinal: GeoPoint{round8(finalLat), round8(finalLon), round2(finalH)},
		}
	}

	rows := analysis.EpochRows(result, fileDate, gpsDayOfWeek)
	sats := analysis.TotalSatStats(rows)
	doc.Satellites = SatelliteRange{Min: sats.Min, Max: sats.Max}

	return doc
}

// ValidateStatusDocument checks doc against its struct tags before it is
// serialized, matching pkg/site's "clean leniently, validate before
// commit" pattern.
func ValidateStatusDocument(doc *StatusDocument) error {
	return validator.New().Struct(doc)
}

func geodeticOf(p analysis.PositionReport) (latDeg, lonDeg, heightM float64) {
	return geodesy.ECEFToGeodetic(p.EcefX, p.EcefY, p.EcefZ)
}

func round8(v float64) float64 { return roundN(v, 8) }
func round4(v float64) float64 { return roundN(v, 4) }
func round2(v float64) float64 { return roundN(v, 2) }

func roundN(v float64, n int) float64 {
	scale := math.Pow(10, float64(n))
	return math.Round(v*scale) / scale
}
