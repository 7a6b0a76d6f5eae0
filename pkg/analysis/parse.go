package analysis

import "github.com/de-bkg/basecheck/pkg/decoder"

// Parse drains it, dispatching every decoded message into a fresh
// Context anchored at gpsDayOfWeek (Sunday = 0 when the input filename
// carried no timestamp, §6.1). It returns the accumulated ParseResult.
//
// Malformed frames and absent fields are absorbed by the processors
// (§7); the only error Parse itself returns is a propagated I/O-level
// failure from the iterator. Zero messages or zero epochs is not an
// error — callers check len(result.Epochs) == 0 and branch to the
// reporters' "no epochs" path.
func Parse(it decoder.Iterator, gpsDayOfWeek int) (*ParseResult, error) {
	ctx := NewContext(gpsDayOfWeek)
	for it.Next() {
		ctx.Dispatch(it.Message())
	}
	if err := it.Err(); err != nil {
		return ctx.Result, err
	}
	return ctx.Result, nil
}
