package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	"github.com/de-bkg/basecheck/pkg/analysis"
	"github.com/de-bkg/basecheck/pkg/geodesy"
)

// timeSpan is the first and last derivable epoch timestamps and the
// covered duration, used by both text reports.
type timeSpan struct {
	start, end time.Time
	ok         bool
	duration   time.Duration
}

func computeTimeSpan(result *analysis.ParseResult, fileDate *time.Time, gpsDayOfWeek int) timeSpan {
	keys := result.SortedEpochKeys()
	if len(keys) == 0 {
		return timeSpan{}
	}
	start, okStart := analysis.EpochTime(keys[0], fileDate, gpsDayOfWeek)
	end, okEnd := analysis.EpochTime(keys[len(keys)-1], fileDate, gpsDayOfWeek)
	if !okStart || !okEnd {
		return timeSpan{}
	}
	return timeSpan{start: start, end: end, ok: true, duration: end.Sub(start)}
}

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// positionSummary holds the geodetic form of a stability analysis,
// following §4.9's lat/lon sign-letter and HAE convention.
type positionSummary struct {
	ok       bool
	stable   bool
	latDeg   float64
	lonDeg   float64
	heightM  float64
	spreadM  float64
}

func computePositionSummary(result *analysis.ParseResult) positionSummary {
	stability, ok := analysis.AnalyzePositionStability(result.Positions)
	if !ok {
		return positionSummary{}
	}
	lat, lon, h := geodesy.ECEFToGeodetic(stability.First.EcefX, stability.First.EcefY, stability.First.EcefZ)
	return positionSummary{ok: true, stable: stability.Stable, latDeg: lat, lonDeg: lon, heightM: h, spreadM: stability.SpreadM}
}

func formatLat(latDeg float64) string {
	hemi := "N"
	if latDeg < 0 {
		hemi = "S"
	}
	return fmt.Sprintf("%.6f%s", math.Abs(latDeg), hemi)
}

func formatLon(lonDeg float64) string {
	hemi := "E"
	if lonDeg < 0 {
		hemi = "W"
	}
	return fmt.Sprintf("%.6f%s", math.Abs(lonDeg), hemi)
}

// completenessPercent estimates data completeness as the fraction of the
// observed time span not lost to gaps, assuming a nominally 1 Hz stream.
func completenessPercent(result *analysis.ParseResult, span timeSpan, gaps []analysis.Gap) float64 {
	if !span.ok || span.duration <= 0 {
		return 100.0
	}
	lostSec := 0
	for _, g := range gaps {
		lostSec += g.DurationSec
	}
	pct := 100 * (1 - float64(lostSec)/span.duration.Seconds())
	if pct < 0 {
		pct = 0
	}
	return math.Round(pct*10) / 10
}

// WriteCompact renders the ~20-line compact text summary (§4.9).
func WriteCompact(w io.Writer, fileLabel string, result *analysis.ParseResult, fileDate *time.Time, gpsDayOfWeek int) {
	fmt.Fprintf(w, "RTCM3 base station health report: %s\n", fileLabel)

	if len(result.Epochs) == 0 {
		fmt.Fprintln(w, "no epochs parsed")
		return
	}

	rows := analysis.EpochRows(result, fileDate, gpsDayOfWeek)
	span := computeTimeSpan(result, fileDate, gpsDayOfWeek)
	gaps := analysis.DetectGaps(result)
	pos := computePositionSummary(result)
	cs := analysis.ConstellationStats(rows)
	sats := analysis.TotalSatStats(rows)
	snr := analysis.SNRStats(rows)

	if span.ok {
		fmt.Fprintf(w, "time span: %s - %s (%s)\n", span.start.Format("15:04:05"), span.end.Format("15:04:05"), formatDuration(span.duration))
	} else {
		fmt.Fprintln(w, "time span: unknown")
	}

	if pos.ok {
		fmt.Fprintf(w, "position: %s %s, %.2f m HAE\n", formatLat(pos.latDeg), formatLon(pos.lonDeg), pos.heightM)
		verdict := "STABLE"
		if !pos.stable {
			verdict = "UNSTABLE"
		}
		fmt.Fprintf(w, "position stability: %s (spread %.4f m)\n", verdict, pos.spreadM)
	} else {
		fmt.Fprintln(w, "position: no station-coordinate messages")
	}

	fmt.Fprintf(w, "satellites: mean %.1f, min %d\n", sats.Mean, sats.Min)
	for _, name := range []string{"GPS", "GLONASS", "Galileo", "BeiDou"} {
		c := cs[name]
		if c.Mean >= 0.5 {
			fmt.Fprintf(w, "  %-8s mean %.1f\n", name, c.Mean)
		}
	}

	fmt.Fprintf(w, "SNR: mean %.1f dB-Hz, min %.1f dB-Hz\n", snr.Mean, snr.Min)
	fmt.Fprintf(w, "cycle slips: %d (%d satellites affected)\n", analysis.TotalCycleSlips(result), analysis.AffectedSatelliteCount(result))
	fmt.Fprintf(w, "completeness: %.1f%% (%d gaps)\n", completenessPercent(result, span, gaps), len(gaps))
}

// WriteDetail renders the full detail text report (§4.9).
func WriteDetail(w io.Writer, fileLabel string, result *analysis.ParseResult, fileDate *time.Time, gpsDayOfWeek int) {
	fmt.Fprintf(w, "RTCM3 base station detail report: %s\n", fileLabel)

	if len(result.Epochs) == 0 {
		fmt.Fprintln(w, "no epochs parsed")
		return
	}

	rows := analysis.EpochRows(result, fileDate, gpsDayOfWeek)

	fmt.Fprintln(w, "\nmessage inventory:")
	types := make([]string, 0, len(result.MessageCounts))
	for t := range result.MessageCounts {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintf(w, "  %-6s %d\n", t, result.MessageCounts[t])
	}
	fmt.Fprintf(w, "  total  %d\n", result.TotalMessages)

	fmt.Fprintln(w, "\nper-constellation satellite counts (mean/min/max):")
	cs := analysis.ConstellationStats(rows)
	for _, name := range []string{"GPS", "GLONASS", "Galileo", "BeiDou"} {
		c := cs[name]
		fmt.Fprintf(w, "  %-8s %.1f / %d / %d\n", name, c.Mean, c.Min, c.Max)
	}

	fmt.Fprintf(w, "\nlow-coverage epochs (< 5 sats): %d\n", analysis.LowCoverageEpochCount(rows))

	fmt.Fprintln(w, "\npersistently low-SNR satellites (mean C/N0 < 35 dB-Hz):")
	for _, s := range analysis.SatelliteSNRMeans(result) {
		if s.MeanCN0 < 35 {
			fmt.Fprintf(w, "  %-4s %.1f dB-Hz\n", s.PRN, s.MeanCN0)
		}
	}

	gaps := analysis.DetectGaps(result)
	fmt.Fprintf(w, "\ngaps (%d):\n", len(gaps))
	for _, g := range gaps {
		startT, okS := analysis.EpochTime(g.StartGWS, fileDate, gpsDayOfWeek)
		endT, okE := analysis.EpochTime(g.EndGWS, fileDate, gpsDayOfWeek)
		if okS && okE {
			fmt.Fprintf(w, "  %s - %s (%ds)\n", startT.Format("15:04:05"), endT.Format("15:04:05"), g.DurationSec)
		} else {
			fmt.Fprintf(w, "  gws %d - %d (%ds)\n", g.StartGWS, g.EndGWS, g.DurationSec)
		}
	}

	fmt.Fprintln(w, "\ntop cycle-slip satellites:")
	for _, s := range analysis.TopCycleSlipSatellites(result, 10) {
		fmt.Fprintf(w, "  %-4s %d slip(s)\n", s.PRN, s.Samples)
	}
}
