package geodesy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// geodeticToECEF is the direct-formula inverse used only to check that
// ECEFToGeodetic round-trips; it is not part of the analyzer's API.
func geodeticToECEF(latDeg, lonDeg, heightM float64) (x, y, z float64) {
	lat := latDeg * math.Pi / 180
	lon := lonDeg * math.Pi / 180
	sinLat, cosLat := math.Sin(lat), math.Cos(lat)
	n := semiMajorAxis / math.Sqrt(1-eccSquared*sinLat*sinLat)
	x = (n + heightM) * cosLat * math.Cos(lon)
	y = (n + heightM) * cosLat * math.Sin(lon)
	z = (n*(1-eccSquared) + heightM) * sinLat
	return
}

func TestECEFToGeodetic_Equator(t *testing.T) {
	lat, lon, h := ECEFToGeodetic(semiMajorAxis, 0, 0)
	assert.InDelta(t, 0.0, lat, 1e-6)
	assert.InDelta(t, 0.0, lon, 1e-6)
	assert.InDelta(t, 0.0, h, 1e-6)
}

func TestECEFToGeodetic_RoundTrip(t *testing.T) {
	cases := [][3]float64{
		{1234567.1234, 2345678.2345, 3456789.3456},
		{6378137, 0, 0},
		{0, 6378137, 0},
		{-2694880.0, -4293030.0, 3857100.0},
	}
	for _, c := range cases {
		lat, lon, h := ECEFToGeodetic(c[0], c[1], c[2])
		x, y, z := geodeticToECEF(lat, lon, h)
		assert.InDelta(t, c[0], x, 1e-6)
		assert.InDelta(t, c[1], y, 1e-6)
		assert.InDelta(t, c[2], z, 1e-6)
	}
}

func TestECEFToGeodetic_Polar(t *testing.T) {
	lat, _, h := ECEFToGeodetic(0, 0, semiMinorAxis)
	assert.InDelta(t, 90.0, lat, 1e-6)
	assert.InDelta(t, 0.0, h, 1e-6)
}
