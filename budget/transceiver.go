// Package budget evaluates link budgets between ground stations and
// spacecraft: C/No, Eb/No, bit error rate and margin, plus a catalog
// and JSON scenario loader for the terminals involved.
package budget

import (
	"github.com/signalsfoundry/link-engineering/linkeng"
)

// FrequencyBand represents a simple [min,max] GHz band.
type FrequencyBand struct {
	MinGHz float64 `json:"MinGHz"`
	MaxGHz float64 `json:"MaxGHz"`
}

// MidGHz returns the band centre frequency.
func (b FrequencyBand) MidGHz() float64 {
	return (b.MinGHz + b.MaxGHz) / 2
}

// Transceiver describes the RF characteristics of one end of a link.
type Transceiver struct {
	ID   string `json:"ID"`
	Name string `json:"Name"`

	Band FrequencyBand `json:"Band"`

	// Transmit side.
	TxPowerDBW float64 `json:"TxPowerDBw,omitempty"`
	TxGainDBi  float64 `json:"GainTxDBi,omitempty"`
	// LineLossDB covers feed and waveguide losses between the power
	// amplifier and the antenna.
	LineLossDB float64 `json:"LineLossDB,omitempty"`
	// ModulationIndex of the subcarrier; 0 means no subcarrier loss.
	ModulationIndex float64 `json:"ModulationIndex,omitempty"`

	// Receive side.
	RxGainDBi float64 `json:"GainRxDBi,omitempty"`
	// NoiseFigureDB declares the receive system noise figure in dB. A
	// pointer distinguishes unset (nil) from an explicit 0.
	NoiseFigureDB *float64 `json:"SystemNoiseFigureDB,omitempty"`
	// SystemNoiseTempK, when positive, overrides NoiseFigureDB as the
	// receive system noise temperature.
	SystemNoiseTempK float64 `json:"SystemNoiseTempK,omitempty"`

	// Antenna geometry, used for half-power beamwidth and pointing
	// loss when set.
	AntennaDiameterM  float64 `json:"AntennaDiameterM,omitempty"`
	AntennaEfficiency float64 `json:"AntennaEfficiency,omitempty"`
	PointingErrorDeg  float64 `json:"PointingErrorDeg,omitempty"`
}

// IsCompatible returns true if the frequency bands overlap at all.
func (t *Transceiver) IsCompatible(other *Transceiver) bool {
	return !(t.Band.MaxGHz < other.Band.MinGHz || t.Band.MinGHz > other.Band.MaxGHz)
}

// ReceiveSystemTempK resolves the receive system noise temperature:
// the explicit temperature when set, else the noise figure converted
// at the 290 K reference, else the reference temperature itself.
func (t *Transceiver) ReceiveSystemTempK() float64 {
	if t.SystemNoiseTempK > 0 {
		return t.SystemNoiseTempK
	}
	if t.NoiseFigureDB != nil {
		return linkeng.NoiseFigureToTemperatureK(*t.NoiseFigureDB, linkeng.ReferenceTemperatureK)
	}
	return linkeng.ReferenceTemperatureK
}

// GOverTDBK returns the receiving figure of merit in dB/K.
func (t *Transceiver) GOverTDBK() float64 {
	return linkeng.GOverTDB(t.RxGainDBi, t.ReceiveSystemTempK())
}

// EIRPDBW returns the transmit EIRP in dBW after line losses.
func (t *Transceiver) EIRPDBW() float64 {
	return t.TxPowerDBW + t.TxGainDBi - t.LineLossDB
}
