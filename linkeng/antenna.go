package linkeng

import "math"

// ParabolicGainDB returns the boresight gain in dBi of a prime-focus
// parabolic antenna:
//
//	G = eta * (pi*D/lambda)^2
//
// eta is the aperture efficiency as a decimal fraction, diameterM and
// wavelengthM are in metres.
func ParabolicGainDB(eta, diameterM, wavelengthM float64) float64 {
	r := math.Pi * diameterM / wavelengthM
	return LinToDB(eta * r * r)
}

// EffectiveApertureM2 returns the antenna effective aperture in square
// metres for a dish of the given diameter (m) and aperture efficiency.
func EffectiveApertureM2(diameterM, eta float64) float64 {
	return eta * 0.25 * math.Pi * diameterM * diameterM
}

// BeamwidthDeg estimates the full beamwidth in degrees from an antenna
// gain in dB, via the ideal-aperture relation G = 16/theta^2.
func BeamwidthDeg(gainDB float64) float64 {
	g := DBToLin(gainDB)
	return math.Sqrt(16/g) * 180.0 / math.Pi
}

// HalfPowerBeamwidthDeg returns the 3 dB beamwidth in degrees for a
// parabolic reflector. The constant 70 degrees is a rough approximation
// (Orfanidis eq. 16.3.11).
func HalfPowerBeamwidthDeg(wavelengthM, diameterM float64) float64 {
	return 70 * wavelengthM / diameterM
}

// AntennaTemperatureK estimates the antenna noise temperature in kelvin
// by splitting the pattern into a main beam at the sky temperature and
// ground/horizon back lobes at ambient. eta is the main-beam efficiency
// as a decimal fraction.
func AntennaTemperatureK(eta, skyTempK, ambientTempK float64) float64 {
	mainBeam := skyTempK * eta
	groundLobe := ambientTempK * (1 - eta) / 2
	horizonLobe := ambientTempK / 2 * (1 - eta) / 2
	return mainBeam + groundLobe + horizonLobe
}

// PointingLossDB returns the gain reduction in dB for a pointing offset
// of errDeg degrees on an antenna with the given half-power beamwidth
// in degrees, using the standard quadratic approximation
//
//	L = 12 * (err/HPBW)^2
func PointingLossDB(errDeg, hpbwDeg float64) float64 {
	r := errDeg / hpbwDeg
	return 12 * r * r
}
