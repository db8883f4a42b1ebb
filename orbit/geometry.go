// Package orbit turns the static link equations into time-varying
// geometry: SGP4 ephemerides from TLEs, slant range and elevation
// between a ground station and a spacecraft, and pass prediction.
package orbit

import "math"

// EarthRadiusKm is the mean Earth radius used for the simple spherical
// geometry in this package (kilometres).
const EarthRadiusKm = 6371.0

// Vec3 is an ECEF position in kilometres.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Norm returns the Euclidean norm of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// DistanceTo returns the straight-line distance between two points.
func (v Vec3) DistanceTo(other Vec3) float64 {
	return v.Sub(other).Norm()
}

// SlantRangeKm returns the straight-line distance in kilometres from a
// ground station to a spacecraft, both ECEF.
func SlantRangeKm(ground, sc Vec3) float64 {
	return ground.DistanceTo(sc)
}

// ElevationDegrees returns the elevation angle of the target as seen
// from the observer, in degrees. 0 is the geometric horizon, 90 is
// overhead.
func ElevationDegrees(observer, target Vec3) float64 {
	v := target.Sub(observer)
	vNorm := v.Norm()
	if vNorm == 0 {
		return 90
	}

	r := observer.Norm()
	if r == 0 {
		return 90
	}
	zenith := Vec3{X: observer.X / r, Y: observer.Y / r, Z: observer.Z / r}

	cosGamma := v.Dot(zenith) / vNorm
	if cosGamma > 1 {
		cosGamma = 1
	} else if cosGamma < -1 {
		cosGamma = -1
	}
	gammaDeg := math.Acos(cosGamma) * 180.0 / math.Pi

	return 90.0 - gammaDeg
}

// HasLineOfSight checks whether the straight segment between p1 and p2
// clears the Earth sphere. All positions are ECEF in kilometres.
func HasLineOfSight(p1, p2 Vec3) bool {
	v := p2.Sub(p1)
	a := v.Dot(v)
	if a == 0 {
		// Same point: outside the Earth means clear.
		return p1.Dot(p1) > EarthRadiusKm*EarthRadiusKm
	}

	// Closest point on the segment to the Earth's centre.
	t := -p1.Dot(v) / a
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest := Vec3{
		X: p1.X + v.X*t,
		Y: p1.Y + v.Y*t,
		Z: p1.Z + v.Z*t,
	}
	return closest.Dot(closest) > EarthRadiusKm*EarthRadiusKm
}

// GroundStationECEF returns the ECEF position in kilometres of a point
// on a spherical Earth at the given geodetic coordinates. Good enough
// for link geometry; not a WGS84 transform.
func GroundStationECEF(latDeg, lonDeg, altM float64) Vec3 {
	lat := latDeg * math.Pi / 180
	lon := lonDeg * math.Pi / 180
	r := EarthRadiusKm + altM/1000
	return Vec3{
		X: r * math.Cos(lat) * math.Cos(lon),
		Y: r * math.Cos(lat) * math.Sin(lon),
		Z: r * math.Sin(lat),
	}
}
