package analysis

import (
	"math"

	"github.com/de-bkg/basecheck/pkg/decoder"
)

// processPosition appends a PositionReport from a 1005/1006
// station-coordinate message (§4.7). Antenna height (DF028) is only read
// for 1006.
func (c *Context) processPosition(msg decoder.Message, hasHeight bool) {
	x, okX := msg.Field("DF025").Float()
	y, okY := msg.Field("DF026").Float()
	z, okZ := msg.Field("DF027").Float()
	if !okX || !okY || !okZ {
		return
	}

	report := PositionReport{
		StationID: msg.Field("DF003").String(),
		EcefX:     x,
		EcefY:     y,
		EcefZ:     z,
	}
	if hasHeight {
		if h, ok := msg.Field("DF028").Float(); ok {
			report.AntennaHeight = &h
		}
	}
	c.Result.Positions = append(c.Result.Positions, report)
}

// roundedCoord is an exact key-tuple of three coordinates scaled to
// 1e-4 m resolution, used for rounding-based deduplication instead of
// floating-point equality on the raw doubles (§9 redesign note).
type roundedCoord struct {
	x, y, z int64
}

func roundTo4(v float64) int64 {
	return int64(math.Round(v * 1e4))
}

func roundCoord(p PositionReport) roundedCoord {
	return roundedCoord{roundTo4(p.EcefX), roundTo4(p.EcefY), roundTo4(p.EcefZ)}
}

// StabilityReport summarizes the base station's antenna-position
// stability across its reported fixes (§4.8).
type StabilityReport struct {
	Stable        bool
	UniqueCount   int
	SpreadM       float64
	JumpIndex     int     // valid only when !Stable
	JumpDistanceM float64 // valid only when !Stable
	First         PositionReport
}

// AnalyzePositionStability uses every report as given (processPosition
// already rejects messages with a missing coordinate, so none are dropped
// here), deduplicates by rounding each axis to 4 decimal places, and reports
// whether the station held a single position. ok is false when no valid
// report remains.
func AnalyzePositionStability(reports []PositionReport) (report StabilityReport, ok bool) {
	if len(reports) == 0 {
		return StabilityReport{}, false
	}

	unique := map[roundedCoord]struct{}{}
	for _, p := range reports {
		unique[roundCoord(p)] = struct{}{}
	}

	first := reports[0]
	var maxDX, maxDY, maxDZ, minX, minY, minZ, maxX, maxY, maxZ float64
	minX, maxX = first.EcefX, first.EcefX
	minY, maxY = first.EcefY, first.EcefY
	minZ, maxZ = first.EcefZ, first.EcefZ
	for _, p := range reports {
		minX, maxX = math.Min(minX, p.EcefX), math.Max(maxX, p.EcefX)
		minY, maxY = math.Min(minY, p.EcefY), math.Max(maxY, p.EcefY)
		minZ, maxZ = math.Min(minZ, p.EcefZ), math.Max(maxZ, p.EcefZ)
	}
	maxDX, maxDY, maxDZ = maxX-minX, maxY-minY, maxZ-minZ
	spread := math.Sqrt(maxDX*maxDX + maxDY*maxDY + maxDZ*maxDZ)

	report = StabilityReport{
		Stable:      len(unique) == 1,
		UniqueCount: len(unique),
		SpreadM:     spread,
		First:       first,
	}

	if !report.Stable {
		firstKey := roundCoord(first)
		for i, p := range reports {
			if roundCoord(p) != firstKey {
				report.JumpIndex = i
				report.JumpDistanceM = distance(first, p)
				break
			}
		}
	}

	return report, true
}

func distance(a, b PositionReport) float64 {
	dx, dy, dz := a.EcefX-b.EcefX, a.EcefY-b.EcefY, a.EcefZ-b.EcefZ
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
