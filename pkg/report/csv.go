// Package report renders a parsed RTCM3 health analysis as CSV rows,
// compact and detailed text summaries, and a structured status document
// (§4.9). Every function here is a pure function of an
// *analysis.ParseResult: none of them touch the filesystem.
package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/de-bkg/basecheck/pkg/analysis"
)

var csvHeader = []string{
	"epoch_time_gws", "timestamp", "gps_sats", "glonass_sats", "galileo_sats",
	"beidou_sats", "total_sats", "mean_snr", "min_snr", "low_snr_count", "cycle_slips",
}

// WriteCSV writes the per-epoch tabular record to w in ascending epoch
// order (§4.9).
func WriteCSV(w io.Writer, result *analysis.ParseResult, fileDate *time.Time, gpsDayOfWeek int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range analysis.EpochRows(result, fileDate, gpsDayOfWeek) {
		record := []string{
			strconv.Itoa(row.EpochGWS),
			row.Timestamp,
			strconv.Itoa(row.GPSSats),
			strconv.Itoa(row.GLONASSSats),
			strconv.Itoa(row.GalileoSats),
			strconv.Itoa(row.BeiDouSats),
			strconv.Itoa(row.TotalSats),
			strconv.FormatFloat(row.MeanSNR, 'f', 1, 64),
			strconv.FormatFloat(row.MinSNR, 'f', 1, 64),
			strconv.Itoa(row.LowSNRCount),
			strconv.Itoa(row.CycleSlips),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
