package analysis

import "errors"

// Sentinel errors for the core's error kinds (§7). Only ErrInputNotFound
// is returned by anything in this module (sourcefile.Resolve wraps it);
// malformed frames, absent fields and unrepresentable timestamps are
// absorbed by the processors and aggregators without an error value.
var (
	// ErrInputNotFound means the input path is not a regular file. Fatal.
	ErrInputNotFound = errors.New("analysis: input file not found")

	// ErrEmptyResult names the zero-epochs outcome. Not an error condition,
	// and nothing here returns it: Parse returns the empty result with a
	// nil error, and the reporters check len(result.Epochs) == 0 to emit
	// their "no epochs" report.
	ErrEmptyResult = errors.New("analysis: no epochs parsed")
)
