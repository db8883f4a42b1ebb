package linkeng

import "math"

// NoisePowerDBW returns the average thermal noise power in dBW for a
// system noise temperature in kelvin and a bandwidth in hertz:
//
//	N = k*T*B
func NoisePowerDBW(tempK, bandwidthHz float64) float64 {
	return LinToDB(Boltzmann * tempK * bandwidthHz)
}

// NoiseFigureToTemperatureK converts a noise figure in dB to an
// equivalent noise temperature in kelvin, relative to refK (normally
// ReferenceTemperatureK).
func NoiseFigureToTemperatureK(nfDB, refK float64) float64 {
	return refK * (DBToLin(nfDB) - 1)
}

// TemperatureToNoiseFigureDB converts a noise temperature in kelvin to
// a noise figure in dB relative to refK.
func TemperatureToNoiseFigureDB(tempK, refK float64) float64 {
	return LinToDB(tempK/refK + 1)
}

// GOverTDB returns the receiving system figure of merit G/T in dB/K for
// an antenna gain in dBi and a system noise temperature in kelvin.
func GOverTDB(gainDBi, sysTempK float64) float64 {
	return gainDBi - LinToDB(sysTempK)
}

// SEFDJansky returns the system equivalent flux density in janskys for
// an effective aperture in square metres and a system noise temperature
// in kelvin.
func SEFDJansky(effApertureM2, sysTempK float64) float64 {
	return 1e26 * 2 * Boltzmann * sysTempK / effApertureM2
}

// RadiometerSNR estimates the signal-to-noise ratio of an observation of
// a source of fluxJy janskys with a system of the given SEFD, after
// integrating for onTimeS seconds over bandwidthHz hertz.
func RadiometerSNR(fluxJy, sefdJy, onTimeS, bandwidthHz float64) float64 {
	return fluxJy * math.Sqrt(onTimeS*bandwidthHz) / sefdJy
}
