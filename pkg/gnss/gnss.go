// Package gnss contains common constants and type definitions shared by
// the RTCM3 analysis pipeline.
package gnss

import "strings"

// System is a satellite constellation.
type System int

// Constellations observable in the message families this analyzer decodes.
const (
	SysUnknown System = iota
	SysGPS
	SysGLO
	SysGAL
	SysBDS
)

func (sys System) String() string {
	return [...]string{"UNKNOWN", "GPS", "GLONASS", "Galileo", "BeiDou"}[sys]
}

// Abbr returns the constellation's single-letter PRN prefix, e.g. "G" for GPS.
func (sys System) Abbr() string {
	return [...]string{"", "G", "R", "E", "C"}[sys]
}

// SystemFromPRNPrefix maps a PRN's leading letter (as produced by the
// observation processors, e.g. "G17", "R04") back to its System. It
// returns SysUnknown for any prefix outside the four tracked constellations.
func SystemFromPRNPrefix(prn string) System {
	if prn == "" {
		return SysUnknown
	}
	switch prn[0] {
	case 'G', 'g':
		return SysGPS
	case 'R', 'r':
		return SysGLO
	case 'E', 'e':
		return SysGAL
	case 'C', 'c':
		return SysBDS
	default:
		return SysUnknown
	}
}

// Systems specifies a list of satellite systems.
type Systems []System

// String returns the contained systems joined GPS+GLONASS+...
func (syss Systems) String() string {
	str := make([]string, 0, len(syss))
	for _, sys := range syss {
		str = append(str, sys.String())
	}
	return strings.Join(str, "+")
}
