package analysis

import (
	"github.com/de-bkg/basecheck/pkg/decoder"
	"github.com/de-bkg/basecheck/pkg/gnss"
	"github.com/de-bkg/basecheck/pkg/rtcmtime"
)

// processMSM7 extracts CellObservations from an MSM7 message (1077,
// 1087, 1097, 1127) for the given constellation (§4.4). It reads DF004
// (GPS ms-into-week), NCell, and the indexed CELLPRN/CELLSIG/DF408/DF407
// cell fields.
func (c *Context) processMSM7(msg decoder.Message, sys gnss.System) {
	epochMsField := msg.Field("DF004")
	epochMs, ok := epochMsField.Int()
	if !ok {
		return // FieldAbsent: abort this message
	}

	nCell := msg.NCell()
	if nCell == 0 {
		return
	}

	epochGWS := rtcmtime.GPSEpochMsToGWS(epochMs)
	prefix := sys.Abbr()

	for i := 1; i <= nCell; i++ {
		prnField := msg.IndexedField("CELLPRN", i)
		cn0Field := msg.IndexedField("DF408", i)
		if !prnField.Present() || !cn0Field.Present() {
			continue
		}
		cn0, ok := cn0Field.Float()
		if !ok || cn0 <= 0 {
			continue
		}

		var prn string
		if prnField.IsNumeric() {
			n, _ := prnField.Int()
			prn = formatPRN(prefix, n)
		} else {
			prn = prnField.String()
		}

		signal := msg.IndexedField("CELLSIG", i).String()

		lockTime, _ := msg.IndexedField("DF407", i).Int() // defaults to 0 when absent

		c.recordObservation(epochGWS, CellObservation{
			PRN:      prn,
			Signal:   signal,
			CN0:      cn0,
			LockTime: lockTime,
		})
	}
}
