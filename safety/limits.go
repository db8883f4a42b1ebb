// Package safety evaluates transmit RF exposure compliance for
// parabolic reflector antennas against the FCC OET Bulletin 65 maximum
// permissible exposure limits ("Evaluating Compliance with FCC
// Guidelines for Human Exposure to Radiofrequency Electromagnetic
// Fields", 1997).
package safety

import "fmt"

// Limits holds the OET-65 exposure limits for one frequency. Power
// density is in mW/cm^2, the E field in V/m and the H field in A/m.
// Above 300 MHz only power density limits are defined and
// HasFieldLimits is false.
type Limits struct {
	// Occupational / controlled exposure (6 minute averaging).
	OccupationalS float64
	OccupationalE float64
	OccupationalH float64

	// General population / uncontrolled exposure (30 minute averaging).
	GeneralS float64
	GeneralE float64
	GeneralH float64

	HasFieldLimits bool
}

// LimitsForFrequency returns the exposure limits that apply at the
// given transmit frequency in MHz. The OET-65 tables cover 0.3 MHz to
// 100 GHz.
func LimitsForFrequency(freqMHz float64) (Limits, error) {
	if freqMHz < 0.3 || freqMHz >= 100000 {
		return Limits{}, fmt.Errorf("safety: frequency %.3f MHz outside the OET-65 tables (0.3 MHz to 100 GHz)", freqMHz)
	}

	l := Limits{
		OccupationalS:  100.0,
		OccupationalE:  614.0,
		OccupationalH:  1.63,
		GeneralS:       100.0,
		GeneralE:       614.0,
		GeneralH:       1.63,
		HasFieldLimits: true,
	}

	switch {
	case freqMHz < 30.0:
		if freqMHz >= 1.34 {
			l.GeneralS = 180.0 / (freqMHz * freqMHz)
			l.GeneralE = 824.0 / freqMHz
			l.GeneralH = 2.19 / freqMHz
		}
		if freqMHz >= 3.0 {
			l.OccupationalS = 900.0 / (freqMHz * freqMHz)
			l.OccupationalE = 1842.0 / freqMHz
			l.OccupationalH = 4.89 / freqMHz
		}
	case freqMHz < 300.0:
		l.OccupationalS = 1.0
		l.OccupationalE = 61.4
		l.OccupationalH = 0.163
		l.GeneralS = 0.2
		l.GeneralE = 27.5
		l.GeneralH = 0.073
	case freqMHz < 1500.0:
		l.OccupationalS = freqMHz / 300.0
		l.GeneralS = freqMHz / 1500.0
		l.OccupationalE, l.OccupationalH = 0, 0
		l.GeneralE, l.GeneralH = 0, 0
		l.HasFieldLimits = false
	default: // 1500 MHz .. 100 GHz
		l.OccupationalS = 5.0
		l.GeneralS = 1.0
		l.OccupationalE, l.OccupationalH = 0, 0
		l.GeneralE, l.GeneralH = 0, 0
		l.HasFieldLimits = false
	}

	return l, nil
}
