package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Angle is stored internally in radians.
type Angle struct {
	rad float64
}

// AngleFromRadians constructs an Angle from radians.
func AngleFromRadians(rad float64) Angle { return Angle{rad: rad} }

// AngleFromDegrees constructs an Angle from decimal degrees.
func AngleFromDegrees(deg float64) Angle {
	return Angle{rad: deg * math.Pi / 180}
}

// AngleFromDMS constructs an Angle from degrees, minutes and seconds.
// Only the sign of deg is significant; minutes and seconds take the
// same sign as deg.
func AngleFromDMS(deg, minutes, seconds float64) Angle {
	return AngleFromDegrees(deg +
		math.Copysign(minutes, deg)/60 +
		math.Copysign(seconds, deg)/3600)
}

var dmsSeparators = strings.NewReplacer(
	"°", " ", "deg", " ", "d", " ",
	"'", " ", "m", " ",
	`"`, " ", "s", " ",
	":", " ",
)

// ParseDMS parses a sexagesimal angle string such as `12° 3' 4.5"`,
// "12d 3m 4.5s" or "-1:2:3". Minutes and seconds may be omitted and
// take the sign of the degrees field.
func ParseDMS(s string) (Angle, error) {
	fields := strings.Fields(dmsSeparators.Replace(s))
	if len(fields) == 0 || len(fields) > 3 {
		return Angle{}, fmt.Errorf("parsing angle %q: want 1 to 3 sexagesimal fields, got %d", s, len(fields))
	}
	var parts [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Angle{}, fmt.Errorf("parsing angle %q: %w", s, err)
		}
		if i > 0 && (v < 0 || v >= 60) {
			return Angle{}, fmt.Errorf("parsing angle %q: field %q outside [0, 60)", s, f)
		}
		parts[i] = v
	}
	return AngleFromDMS(parts[0], parts[1], parts[2]), nil
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return a.rad }

// Degrees returns the angle in decimal degrees.
func (a Angle) Degrees() float64 { return a.rad * 180 / math.Pi }

// Arcminutes returns the angle in arcminutes.
func (a Angle) Arcminutes() float64 { return a.Degrees() * 60 }

// Arcseconds returns the angle in arcseconds.
func (a Angle) Arcseconds() float64 { return a.Degrees() * 3600 }

// Mas returns the angle in milliarcseconds.
func (a Angle) Mas() float64 { return a.Degrees() * 3600000 }

// DMS decomposes the angle into sign (+1 or -1), whole degrees, minutes
// and seconds. All components other than the sign are non-negative.
func (a Angle) DMS() (sign, deg, minutes, seconds float64) {
	sign = 1
	v := a.Degrees()
	if math.Signbit(v) {
		sign = -1
		v = -v
	}
	minutesTotal, seconds := math.Floor(v*3600/60), math.Mod(v*3600, 60)
	deg, minutes = math.Floor(minutesTotal/60), math.Mod(minutesTotal, 60)
	return sign, deg, minutes, seconds
}

func (a Angle) String() string {
	sign, d, m, s := a.DMS()
	prefix := ""
	if sign < 0 {
		prefix = "-"
	}
	return fmt.Sprintf("%s%02.0fdeg %02.0f' %04.1f\"", prefix, d, m, s)
}
