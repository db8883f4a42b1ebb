package units

import "fmt"

const (
	speedOfLightMPerS = 299792458.0
	auM               = 149597870700.0
	daySeconds        = 86400.0
)

// Distance is stored internally in metres.
type Distance struct {
	m float64
}

// DistanceFromM constructs a Distance from metres.
func DistanceFromM(m float64) Distance { return Distance{m: m} }

// DistanceFromKm constructs a Distance from kilometres.
func DistanceFromKm(km float64) Distance { return Distance{m: km * 1000} }

// DistanceFromCm constructs a Distance from centimetres.
func DistanceFromCm(cm float64) Distance { return Distance{m: cm / 100} }

// DistanceFromMm constructs a Distance from millimetres.
func DistanceFromMm(mm float64) Distance { return Distance{m: mm / 1000} }

// DistanceFromAU constructs a Distance from astronomical units
// (the IAU 2012 Earth-Sun distance of 149,597,870,700 m).
func DistanceFromAU(au float64) Distance { return Distance{m: au * auM} }

// M returns the distance in metres.
func (d Distance) M() float64 { return d.m }

// Km returns the distance in kilometres.
func (d Distance) Km() float64 { return d.m / 1000 }

// Cm returns the distance in centimetres.
func (d Distance) Cm() float64 { return d.m * 100 }

// Mm returns the distance in millimetres.
func (d Distance) Mm() float64 { return d.m * 1000 }

// AU returns the distance in astronomical units.
func (d Distance) AU() float64 { return d.m / auM }

// LightSeconds returns the light travel time over this distance in seconds.
func (d Distance) LightSeconds() float64 { return d.m / speedOfLightMPerS }

func (d Distance) String() string {
	return fmt.Sprintf("%.6g m", d.m)
}
