package analysis

import (
	"strconv"

	"github.com/de-bkg/basecheck/pkg/decoder"
	"github.com/de-bkg/basecheck/pkg/gnss"
)

// messageType is a closed tagged variant of the message types this
// analyzer understands, with a catch-all "other" arm. Dispatch is a
// single switch over this variant rather than open-ended string
// comparison (§9 redesign note).
type messageType int

const (
	mtOther messageType = iota
	mtMSM7GPS
	mtMSM7GLONASS
	mtMSM7Galileo
	mtMSM7BeiDou
	mtLegacyGPS1001
	mtLegacyGPS1002
	mtLegacyGPS1003
	mtLegacyGPS1004
	mtLegacyGLONASS1009
	mtLegacyGLONASS1010
	mtLegacyGLONASS1011
	mtLegacyGLONASS1012
	mtStation1005
	mtStation1006
)

func classify(identity string) messageType {
	code, err := strconv.Atoi(identity)
	if err != nil {
		return mtOther
	}
	switch code {
	case 1077:
		return mtMSM7GPS
	case 1087:
		return mtMSM7GLONASS
	case 1097:
		return mtMSM7Galileo
	case 1127:
		return mtMSM7BeiDou
	case 1001:
		return mtLegacyGPS1001
	case 1002:
		return mtLegacyGPS1002
	case 1003:
		return mtLegacyGPS1003
	case 1004:
		return mtLegacyGPS1004
	case 1009:
		return mtLegacyGLONASS1009
	case 1010:
		return mtLegacyGLONASS1010
	case 1011:
		return mtLegacyGLONASS1011
	case 1012:
		return mtLegacyGLONASS1012
	case 1005:
		return mtStation1005
	case 1006:
		return mtStation1006
	default:
		return mtOther
	}
}

// Dispatch routes a decoded message to its processor by numeric message
// type (§4.3). Every message increments TotalMessages and its per-type
// counter regardless of further processing; a nil message (decoder
// skipped a malformed frame, §6.2) is a no-op.
func (c *Context) Dispatch(msg decoder.Message) {
	if msg == nil {
		return
	}

	identity := msg.Identity()
	c.Result.TotalMessages++
	c.Result.MessageCounts[identity]++

	switch classify(identity) {
	case mtMSM7GPS:
		c.processMSM7(msg, gnss.SysGPS)
	case mtMSM7GLONASS:
		c.processMSM7(msg, gnss.SysGLO)
	case mtMSM7Galileo:
		c.processMSM7(msg, gnss.SysGAL)
	case mtMSM7BeiDou:
		c.processMSM7(msg, gnss.SysBDS)
	case mtLegacyGPS1001, mtLegacyGPS1002:
		c.processLegacyGPS(msg, false)
	case mtLegacyGPS1003, mtLegacyGPS1004:
		c.processLegacyGPS(msg, true)
	case mtLegacyGLONASS1009, mtLegacyGLONASS1010:
		c.processLegacyGLONASS(msg, false)
	case mtLegacyGLONASS1011, mtLegacyGLONASS1012:
		c.processLegacyGLONASS(msg, true)
	case mtStation1005:
		c.processPosition(msg, false)
	case mtStation1006:
		c.processPosition(msg, true)
	default:
		// counted only
	}
}
