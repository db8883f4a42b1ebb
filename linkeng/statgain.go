package linkeng

import (
	"fmt"
	"math"
)

// StatgainDB returns the off-axis gain in dBi predicted by the NTIA
// "statgain" high-gain radiation pattern model (NTIA TM-12-489) for an
// antenna with boresight gain gmaxDB >= 10 dBi, at phiDeg degrees off
// the main beam axis.
func StatgainDB(gmaxDB, phiDeg float64) (float64, error) {
	if gmaxDB < 10 {
		return 0, fmt.Errorf("statgain: model requires G_max >= 10 dBi, got %.2f", gmaxDB)
	}
	if phiDeg < 0 || phiDeg > 180 {
		return 0, fmt.Errorf("statgain: off-axis angle must be in [0,180] degrees, got %.2f", phiDeg)
	}

	gLin10 := math.Pow(10, gmaxDB/10)
	gLin20 := math.Pow(10, gmaxDB/20)

	phiM := 50 * math.Sqrt(0.25*gmaxDB+7) / gLin20
	phiR1 := 27.466 * math.Pow(10, -0.3*gmaxDB/10)
	phiR2 := 250 / gLin20
	phiB := 48.0
	phiB3 := 131.8257 * math.Pow(10, -gmaxDB/50)

	mainLobe := func() float64 { return gmaxDB - 4e-4*gLin10*phiDeg*phiDeg }

	switch {
	case gmaxDB >= 48:
		switch {
		case phiDeg <= phiM:
			return mainLobe(), nil
		case phiDeg <= phiR1:
			return 0.75*gmaxDB - 7, nil
		case phiDeg <= phiB:
			return 29 - 25*math.Log10(phiDeg), nil
		default:
			return -13, nil
		}
	case gmaxDB >= 22:
		switch {
		case phiDeg <= phiM:
			return mainLobe(), nil
		case phiDeg <= phiR2:
			return 0.75*gmaxDB - 7, nil
		case phiDeg <= phiB:
			return 53 - gmaxDB/2 - 25*math.Log10(phiDeg), nil
		default:
			return 11 - gmaxDB/2, nil
		}
	default: // 10 <= gmaxDB < 22
		switch {
		case phiDeg <= phiM:
			return mainLobe(), nil
		case phiDeg <= phiR2:
			return 0.75*gmaxDB - 7, nil
		case phiDeg <= phiB3:
			return 53 - gmaxDB/2 - 25*math.Log10(phiDeg), nil
		default:
			return 0, nil
		}
	}
}
