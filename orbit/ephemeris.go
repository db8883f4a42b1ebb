package orbit

import (
	"fmt"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"
)

// Ephemeris propagates a spacecraft from a two-line element set using
// SGP4 and answers ECEF position queries.
type Ephemeris struct {
	sat satellite.Satellite
}

// NewEphemerisFromTLE parses the two TLE lines and returns an
// Ephemeris. Propagation uses the WGS72 gravity model, matching the
// convention of published TLEs.
func NewEphemerisFromTLE(line1, line2 string) (*Ephemeris, error) {
	if len(line1) < 69 || len(line2) < 69 {
		return nil, fmt.Errorf("orbit: TLE lines must be at least 69 characters (got %d and %d)",
			len(line1), len(line2))
	}
	sat := satellite.TLEToSat(line1, line2, satellite.GravityWGS72)
	return &Ephemeris{sat: sat}, nil
}

// PositionECEF returns the spacecraft's ECEF position in kilometres at
// the given time (interpreted in UTC).
func (e *Ephemeris) PositionECEF(t time.Time) Vec3 {
	t = t.UTC()
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	posECI, _ := satellite.Propagate(e.sat, year, int(month), day, hour, min, sec)
	jd := satellite.JDay(year, int(month), day, hour, min, sec)
	gmst := satellite.ThetaG_JD(jd)
	posECEF := satellite.ECIToECEF(posECI, gmst)

	return Vec3{X: posECEF.X, Y: posECEF.Y, Z: posECEF.Z}
}

// RangeRateKmPerS estimates the range rate toward the observer at time
// t by central difference over a short interval. Positive means the
// spacecraft is receding.
func (e *Ephemeris) RangeRateKmPerS(observer Vec3, t time.Time) float64 {
	const dt = time.Second
	before := SlantRangeKm(observer, e.PositionECEF(t.Add(-dt)))
	after := SlantRangeKm(observer, e.PositionECEF(t.Add(dt)))
	return (after - before) / (2 * dt.Seconds())
}
