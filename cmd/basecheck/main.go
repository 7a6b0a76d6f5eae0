// Command basecheck analyzes an RTCM3 base-station log and writes a
// per-epoch CSV and a text or structured health report.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/de-bkg/basecheck/pkg/analysis"
	"github.com/de-bkg/basecheck/pkg/decoder"
	"github.com/de-bkg/basecheck/pkg/report"
	"github.com/de-bkg/basecheck/pkg/sourcefile"
	"github.com/mholt/archiver/v3"
	"github.com/urfave/cli/v2"
)

// newIterator opens an RTCM3 decoder.Iterator over the file at path. The
// bit-level RTCM3 frame decoder is a supplied external service (§6.2) —
// out of scope for this repository — so production deployments replace
// this variable with an adapter over their decoder of choice before
// calling run. Left unset, basecheck reports a clear configuration error
// rather than silently producing an empty analysis.
var newIterator func(path string) (decoder.Iterator, error)

func main() {
	app := &cli.App{
		Version:   "v0.1.0",
		Compiled:  time.Now(),
		HelpName:  "basecheck",
		Usage:     "offline health analyzer for RTCM3 base-station logs",
		ArgsUsage: "<input.RTCM3>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "csv", Usage: "CSV output path (default: reports/<stem>_summary.csv)"},
			&cli.BoolFlag{Name: "status", Usage: "also write <stem>.status.json alongside the input"},
			&cli.StringFlag{Name: "mode", Value: "compact", Usage: "text report mode: compact or detail"},
			&cli.BoolFlag{Name: "gzip-reports", Usage: "gzip-compress the written CSV and status document"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("basecheck: exactly one input file required", 1)
	}
	input := c.Args().Get(0)

	resolved, err := sourcefile.Resolve(input, filepath.Dir(input))
	if err != nil {
		return cli.Exit(fmt.Sprintf("basecheck: %v", err), 1)
	}

	if newIterator == nil {
		return cli.Exit("basecheck: no RTCM3 decoder configured (see cmd/basecheck.newIterator)", 1)
	}
	it, err := newIterator(resolved)
	if err != nil {
		return cli.Exit(fmt.Sprintf("basecheck: open decoder: %v", err), 1)
	}

	stem := strings.TrimSuffix(filepath.Base(resolved), filepath.Ext(resolved))
	var fileDate *time.Time
	gpsDayOfWeek := 0
	if t, ok := analysis.ParseFilename(filepath.Base(resolved)); ok {
		fileDate = &t
		gpsDayOfWeek = analysis.GPSDayOfWeek(t)
	}

	result, err := analysis.Parse(it, gpsDayOfWeek)
	if err != nil {
		return cli.Exit(fmt.Sprintf("basecheck: %v", err), 1)
	}

	csvPath := c.String("csv")
	if csvPath == "" {
		exeDir := filepath.Dir(os.Args[0])
		csvPath = filepath.Join(exeDir, "reports", stem+"_summary.csv")
	}
	if err := writeCSVFile(csvPath, result, fileDate, gpsDayOfWeek, c.Bool("gzip-reports")); err != nil {
		return cli.Exit(fmt.Sprintf("basecheck: write csv: %v", err), 1)
	}

	switch c.String("mode") {
	case "detail":
		report.WriteDetail(os.Stdout, filepath.Base(input), result, fileDate, gpsDayOfWeek)
	default:
		report.WriteCompact(os.Stdout, filepath.Base(input), result, fileDate, gpsDayOfWeek)
	}

	if c.Bool("status") {
		statusPath := filepath.Join(filepath.Dir(input), stem+".status.json")
		if err := writeStatusFile(statusPath, filepath.Base(input), result, fileDate, gpsDayOfWeek, c.Bool("gzip-reports")); err != nil {
			return cli.Exit(fmt.Sprintf("basecheck: write status: %v", err), 1)
		}
	}

	return nil
}

func writeCSVFile(path string, result *analysis.ParseResult, fileDate *time.Time, gpsDayOfWeek int, gzipIt bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteCSV(f, result, fileDate, gpsDayOfWeek); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if gzipIt {
		return archiver.CompressFile(path, path+".gz")
	}
	return nil
}

func writeStatusFile(path, label string, result *analysis.ParseResult, fileDate *time.Time, gpsDayOfWeek int, gzipIt bool) error {
	doc := report.BuildStatusDocument(label, result, fileDate, gpsDayOfWeek, time.Now())
	if err := report.ValidateStatusDocument(doc); err != nil {
		return fmt.Errorf("validate status document: %w", err)
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return err
	}
	if gzipIt {
		return archiver.CompressFile(path, path+".gz")
	}
	return nil
}
