package linkeng

import "math"

// WavelengthM returns the wavelength in metres for a frequency in hertz.
func WavelengthM(freqHz float64) float64 {
	return SpeedOfLight / freqHz
}

// FreeSpacePathLossDB returns the free-space loss in dB for a straight
// line path of rangeM metres at freqHz hertz:
//
//	FSL = (4*pi*d*f/c)^2
func FreeSpacePathLossDB(rangeM, freqHz float64) float64 {
	ratio := 4 * math.Pi * rangeM * freqHz / SpeedOfLight
	return LinToDB(ratio * ratio)
}

// AtmosphericLossDB is a rough estimate of tropospheric loss in dB as a
// function of the ground antenna elevation angle in degrees. It is the
// simplest usable model: loss grows as the path flattens toward the
// horizon. Elevation must be positive.
func AtmosphericLossDB(elevationDeg float64) float64 {
	return LinToDB(1 + 1/elevationDeg)
}

// PowerReceivedDBW returns the power at the distant end of a free-space
// path in dBW, given transmit power (dBW), transmit and receive antenna
// gains (dBi), frequency (Hz) and range (m).
func PowerReceivedDBW(txPowerDBW, txGainDBi, rxGainDBi, freqHz, rangeM float64) float64 {
	return txPowerDBW + txGainDBi - FreeSpacePathLossDB(rangeM, freqHz) + rxGainDBi
}

// EIRP returns the effective isotropic radiated power in the same linear
// unit as powerW, given an antenna gain in dB.
func EIRP(gainDB, powerW float64) float64 {
	return DBToLin(gainDB) * powerW
}

// OffNadirAngleDeg returns the angle between the spacecraft's nadir
// vector and the direction to a ground station, in degrees, for a
// ground antenna elevation angle (degrees) and spacecraft / ground
// station altitudes in metres.
func OffNadirAngleDeg(elevationDeg, scAltM, gsAltM float64) float64 {
	gsPart := (gsAltM + EarthRadiusM) * math.Sin((elevationDeg+90.0)*math.Pi/180.0)
	return math.Asin(gsPart/(scAltM+EarthRadiusM)) * 180.0 / math.Pi
}

// PolarizationLossDB estimates polarization mismatch loss in dB for an
// off-boresight angle in radians. Small-angle polynomial fit; only
// meaningful close to boresight.
func PolarizationLossDB(offBoresightRad float64) float64 {
	x2 := offBoresightRad * offBoresightRad
	return 1.389e-8*x2*x2 - 3.389e-4*x2 - 2.286e-7
}

// DopplerShiftHz returns the carrier Doppler shift in hertz for a
// carrier at freqHz and a range rate in metres per second. Positive
// range rate (receding) produces a negative shift.
func DopplerShiftHz(freqHz, rangeRateMPerS float64) float64 {
	return -freqHz * rangeRateMPerS / SpeedOfLight
}
