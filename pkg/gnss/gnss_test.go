package gnss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystem_Abbr(t *testing.T) {
	assert.Equal(t, "G", SysGPS.Abbr())
	assert.Equal(t, "R", SysGLO.Abbr())
	assert.Equal(t, "E", SysGAL.Abbr())
	assert.Equal(t, "C", SysBDS.Abbr())
}

func TestSystemFromPRNPrefix(t *testing.T) {
	tests := []struct {
		prn  string
		want System
	}{
		{"G17", SysGPS},
		{"R04", SysGLO},
		{"E11", SysGAL},
		{"C23", SysBDS},
		{"X01", SysUnknown},
		{"", SysUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SystemFromPRNPrefix(tt.prn), tt.prn)
	}
}

func TestSystems_String(t *testing.T) {
	syss := Systems{SysGPS, SysGLO, SysGAL, SysBDS}
	assert.Equal(t, "GPS+GLONASS+Galileo+BeiDou", syss.String())
}
