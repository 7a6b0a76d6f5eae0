package analysis

import "strconv"

// formatPRN prefixes a numeric satellite/slot number with its
// constellation letter, e.g. prefix "G", n 5 -> "G5". Used by the MSM
// processor, whose CELLPRN fields carry the bare satellite number (§4.4).
func formatPRN(prefix string, n int64) string {
	return prefix + strconv.FormatInt(n, 10)
}

// formatPRN2d is the legacy processors' PRN format, zero-padded to two
// digits, e.g. prefix "G", n 5 -> "G05" (§4.5).
func formatPRN2d(prefix string, n int64) string {
	s := strconv.FormatInt(n, 10)
	if n >= 0 && n < 10 {
		s = "0" + s
	}
	return prefix + s
}
