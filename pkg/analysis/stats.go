package analysis

import "sort"

// SatelliteSNR accumulates the mean C/N0 of one satellite across all
// epochs it appeared in, used by the detail reporter to flag
// persistently low-SNR satellites (§4.9).
type SatelliteSNR struct {
	PRN     string
	MeanCN0 float64
	Samples int
}

// SatelliteSNRMeans returns, for every PRN observed anywhere in result,
// its mean C/N0 across all epochs (C/N0 > 0 samples only).
func SatelliteSNRMeans(result *ParseResult) []SatelliteSNR {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, e := range result.Epochs {
		for _, o := range e.Observations {
			if o.CN0 <= 0 {
				continue
			}
			sums[o.PRN] += o.CN0
			counts[o.PRN]++
		}
	}
	out := make([]SatelliteSNR, 0, len(sums))
	for prn, sum := range sums {
		out = append(out, SatelliteSNR{PRN: prn, MeanCN0: round1(sum / float64(counts[prn])), Samples: counts[prn]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PRN < out[j].PRN })
	return out
}

// ConstellationCounts summarizes mean/min/max unique-satellite counts
// for one constellation across all epoch rows.
type ConstellationCounts struct {
	Mean float64
	Min  int
	Max  int
}

// ConstellationStats computes ConstellationCounts for each of the four
// tracked constellations from a set of already materialized EpochRows.
func ConstellationStats(rows []EpochRow) map[string]ConstellationCounts {
	extract := map[string]func(EpochRow) int{
		"GPS":     func(r EpochRow) int { return r.GPSSats },
		"GLONASS": func(r EpochRow) int { return r.GLONASSSats },
		"Galileo": func(r EpochRow) int { return r.GalileoSats },
		"BeiDou":  func(r EpochRow) int { return r.BeiDouSats },
	}
	out := make(map[string]ConstellationCounts, len(extract))
	for name, get := range extract {
		if len(rows) == 0 {
			out[name] = ConstellationCounts{}
			continue
		}
		sum, min, max := 0, get(rows[0]), get(rows[0])
		for _, r := range rows {
			v := get(r)
			sum += v
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		out[name] = ConstellationCounts{Mean: round1(float64(sum) / float64(len(rows))), Min: min, Max: max}
	}
	return out
}

// SatSummary summarizes total-satellite counts across epoch rows.
type SatSummary struct {
	Mean float64
	Min  int
	Max  int
}

// TotalSatStats computes mean/min/max total satellite counts across rows.
func TotalSatStats(rows []EpochRow) SatSummary {
	if len(rows) == 0 {
		return SatSummary{}
	}
	sum, min, max := 0, rows[0].TotalSats, rows[0].TotalSats
	for _, r := range rows {
		sum += r.TotalSats
		if r.TotalSats < min {
			min = r.TotalSats
		}
		if r.TotalSats > max {
			max = r.TotalSats
		}
	}
	return SatSummary{Mean: round1(float64(sum) / float64(len(rows))), Min: min, Max: max}
}

// SNRSummary summarizes mean/min SNR across epoch rows, weighted by
// epoch (each row's own mean/min contributes equally).
type SNRSummary struct {
	Mean float64
	Min  float64
}

// SNRStats computes mean-of-means and overall-min SNR across rows.
func SNRStats(rows []EpochRow) SNRSummary {
	if len(rows) == 0 {
		return SNRSummary{}
	}
	sum := 0.0
	min := rows[0].MinSNR
	haveMin := false
	for _, r := range rows {
		sum += r.MeanSNR
		if r.MinSNR > 0 && (!haveMin || r.MinSNR < min) {
			min = r.MinSNR
			haveMin = true
		}
	}
	if !haveMin {
		min = 0
	}
	return SNRSummary{Mean: round1(sum / float64(len(rows))), Min: round1(min)}
}

// LowCoverageEpochCount returns the number of rows with fewer than 5
// total satellites (§4.9).
func LowCoverageEpochCount(rows []EpochRow) int {
	n := 0
	for _, r := range rows {
		if r.TotalSats < 5 {
			n++
		}
	}
	return n
}

// CycleSlipCounts returns, for every PRN that appeared in at least one
// slip-flagged epoch, the sum of the slip counters of the slip-flagged
// epochs it appeared in. Because EpochData counts slips per epoch (not
// per satellite), this attributes each epoch's slip count to every
// satellite observed in that epoch — the best per-satellite signal
// available without per-observation slip tagging.
func CycleSlipCounts(result *ParseResult) map[string]int {
	counts := map[string]int{}
	for _, e := range result.Epochs {
		if e.CycleSlips == 0 {
			continue
		}
		seen := map[string]struct{}{}
		for _, o := range e.Observations {
			if _, ok := seen[o.PRN]; ok {
				continue
			}
			seen[o.PRN] = struct{}{}
			counts[o.PRN] += e.CycleSlips
		}
	}
	return counts
}

// TopCycleSlipSatellites returns up to n PRNs with the highest
// cycle-slip counts, descending, ties broken by PRN.
func TopCycleSlipSatellites(result *ParseResult, n int) []SatelliteSNR {
	counts := CycleSlipCounts(result)
	type entry struct {
		prn   string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for prn, c := range counts {
		entries = append(entries, entry{prn, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].prn < entries[j].prn
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	out := make([]SatelliteSNR, len(entries))
	for i, e := range entries {
		out[i] = SatelliteSNR{PRN: e.prn, Samples: e.count}
	}
	return out
}

// AffectedSatelliteCount returns the number of distinct PRNs observed in
// at least one epoch with a recorded cycle slip. Slips are counted per
// epoch, so a satellite that shares an epoch with a slipping one is
// counted even if its own lock did not reset.
func AffectedSatelliteCount(result *ParseResult) int {
	return len(CycleSlipCounts(result))
}

// TotalCycleSlips sums the per-epoch cycle-slip counters across result.
func TotalCycleSlips(result *ParseResult) int {
	total := 0
	for _, e := range result.Epochs {
		total += e.CycleSlips
	}
	return total
}
