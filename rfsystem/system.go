package rfsystem

import (
	"fmt"

	"github.com/signalsfoundry/link-engineering/linkeng"
	"github.com/signalsfoundry/link-engineering/units"
)

// System ties a parabolic antenna to its receive chain so the usual
// station-level quantities (gain, G/T, SEFD) fall out directly.
type System struct {
	Name string

	Diameter   units.Distance
	Efficiency float64
	Frequency  units.Frequency

	// SkyTempK and AmbientTempK feed the antenna temperature estimate.
	SkyTempK     float64
	AmbientTempK float64

	Chain Chain
}

// NewSystem validates the antenna parameters and returns a System ready
// for devices to be appended to its Chain.
func NewSystem(name string, diameter units.Distance, efficiency float64, freq units.Frequency) (*System, error) {
	if diameter.M() <= 0 {
		return nil, fmt.Errorf("system %q: diameter must be positive, got %v", name, diameter)
	}
	if efficiency <= 0 || efficiency > 1 {
		return nil, fmt.Errorf("system %q: efficiency must be in (0,1], got %v", name, efficiency)
	}
	if freq.Hz() <= 0 {
		return nil, fmt.Errorf("system %q: frequency must be positive, got %v", name, freq)
	}
	return &System{
		Name:         name,
		Diameter:     diameter,
		Efficiency:   efficiency,
		Frequency:    freq,
		SkyTempK:     10,
		AmbientTempK: linkeng.ReferenceTemperatureK,
	}, nil
}

// GainDB returns the antenna boresight gain in dBi.
func (s *System) GainDB() float64 {
	return linkeng.ParabolicGainDB(s.Efficiency, s.Diameter.M(), s.Frequency.Wavelength().M())
}

// EffectiveApertureM2 returns the antenna effective aperture in m^2.
func (s *System) EffectiveApertureM2() float64 {
	return linkeng.EffectiveApertureM2(s.Diameter.M(), s.Efficiency)
}

// AntennaTemperatureK estimates the antenna noise temperature.
func (s *System) AntennaTemperatureK() float64 {
	return linkeng.AntennaTemperatureK(s.Efficiency, s.SkyTempK, s.AmbientTempK)
}

// SystemTemperatureK returns antenna plus cascade noise temperature.
func (s *System) SystemTemperatureK() (float64, error) {
	return s.Chain.SystemTemperatureK(s.AntennaTemperatureK())
}

// GOverTDB returns the station figure of merit in dB/K.
func (s *System) GOverTDB() (float64, error) {
	tsys, err := s.SystemTemperatureK()
	if err != nil {
		return 0, err
	}
	return linkeng.GOverTDB(s.GainDB(), tsys), nil
}

// SEFDJansky returns the system equivalent flux density in janskys.
func (s *System) SEFDJansky() (float64, error) {
	tsys, err := s.SystemTemperatureK()
	if err != nil {
		return 0, err
	}
	return linkeng.SEFDJansky(s.EffectiveApertureM2(), tsys), nil
}
