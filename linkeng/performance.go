package linkeng

import "math"

// CarrierToNoiseDensityDBHz returns the carrier-to-noise-density ratio
// C/No in dB-Hz:
//
//	C/No = EIRP - L + G/T - 10*log10(k)
//
// eirpDBW is the transmitter EIRP in dBW, lossDB the total path losses
// in dB, and gotDBK the receiving system G/T in dB/K.
func CarrierToNoiseDensityDBHz(eirpDBW, lossDB, gotDBK float64) float64 {
	return eirpDBW - lossDB + gotDBK - BoltzmannDBW
}

// UplinkCNoDBHz returns the uplink C/No in dB-Hz for a ground station
// EIRP (dBW), total uplink losses (dB) and spacecraft G/T (dB/K).
func UplinkCNoDBHz(gsEIRPDBW, uplinkLossDB, scGoTDBK float64) float64 {
	return CarrierToNoiseDensityDBHz(gsEIRPDBW, uplinkLossDB, scGoTDBK)
}

// DownlinkCNoDBHz returns the downlink C/No in dB-Hz for a spacecraft
// EIRP (dBW), total downlink losses (dB) and ground station G/T (dB/K).
func DownlinkCNoDBHz(scEIRPDBW, downlinkLossDB, gsGoTDBK float64) float64 {
	return CarrierToNoiseDensityDBHz(scEIRPDBW, downlinkLossDB, gsGoTDBK)
}

// ModulationLossDB returns the carrier suppression loss in dB for a
// subcarrier with the given modulation index:
//
//	L = 10*log10(2*J1(mi)^2)
//
// where J1 is the first-order Bessel function of the first kind. The
// result is negative for small indices.
func ModulationLossDB(modIndex float64) float64 {
	j := math.J1(modIndex)
	return LinToDB(2 * j * j)
}

// TelemetryEbNoDB returns the energy-per-bit to noise density ratio of
// a telemetry stream in dB, from the stream C/No (dB-Hz), the service
// modulation loss as produced by ModulationLossDB (negative dB, added
// as a power factor) and the data rate loss 10*log10(bit rate) in dB.
func TelemetryEbNoDB(cnoDBHz, modLossDB, dataRateLossDB float64) float64 {
	return cnoDBHz + modLossDB - dataRateLossDB
}

// BitErrorRate returns the bit error probability for a coherent BPSK
// style waveform at the given Eb/No in dB:
//
//	BER = 0.5*erfc(sqrt(Eb/No))
func BitErrorRate(ebnoDB float64) float64 {
	ebno := DBToLin(ebnoDB)
	return 0.5 * math.Erfc(math.Sqrt(ebno))
}
