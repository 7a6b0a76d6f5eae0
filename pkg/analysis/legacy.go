package analysis

import (
	"github.com/de-bkg/basecheck/pkg/decoder"
	"github.com/de-bkg/basecheck/pkg/rtcmtime"
)

// processLegacyGPS extracts CellObservations from a legacy GPS RTK
// observable message (1001-1004). L2 fields are read only for 1003/1004
// (§4.5).
func (c *Context) processLegacyGPS(msg decoder.Message, hasL2 bool) {
	epochMs, ok := msg.Field("DF004").Int()
	if !ok {
		return
	}
	nSat, ok := msg.Field("DF006").Int()
	if !ok || nSat == 0 {
		return
	}
	epochGWS := rtcmtime.GPSEpochMsToGWS(epochMs)

	for i := 1; i <= int(nSat); i++ {
		slot, ok := msg.IndexedField("DF009", i).Int()
		if !ok {
			continue
		}
		prn := formatPRN2d("G", slot)

		c.emitBandObservation(epochGWS, prn, "L1", msg.IndexedField("DF015", i), msg.IndexedField("DF013", i))
		if hasL2 {
			c.emitBandObservation(epochGWS, prn, "L2", msg.IndexedField("DF020", i), msg.IndexedField("DF019", i))
		}
	}
}

// processLegacyGLONASS extracts CellObservations from a legacy GLONASS
// RTK observable message (1009-1012). L2 fields are read only for
// 1011/1012 (§4.5). The epoch time is Moscow ms-of-day and is fed
// through the day-wrap detector.
func (c *Context) processLegacyGLONASS(msg decoder.Message, hasL2 bool) {
	epochMs, ok := msg.Field("DF034").Int()
	if !ok {
		return
	}
	nSat, ok := msg.Field("DF035").Int()
	if !ok || nSat == 0 {
		return
	}
	epochGWS := c.glonassGWS(epochMs)

	for i := 1; i <= int(nSat); i++ {
		slot, ok := msg.IndexedField("DF038", i).Int()
		if !ok {
			continue
		}
		prn := formatPRN2d("R", slot)

		c.emitBandObservation(epochGWS, prn, "L1", msg.IndexedField("DF045", i), msg.IndexedField("DF043", i))
		if hasL2 {
			c.emitBandObservation(epochGWS, prn, "L2", msg.IndexedField("DF050", i), msg.IndexedField("DF049", i))
		}
	}
}

// emitBandObservation records one band's observation for prn when the
// C/N0 field is present and positive, applying cycle-slip detection
// independently per band.
func (c *Context) emitBandObservation(epochGWS int, prn, signal string, cn0Field, lockField decoder.Field) {
	cn0, ok := cn0Field.Float()
	if !ok || cn0 <= 0 {
		return
	}
	lockTime, _ := lockField.Int()
	c.recordObservation(epochGWS, CellObservation{PRN: prn, Signal: signal, CN0: cn0, LockTime: lockTime})
}
