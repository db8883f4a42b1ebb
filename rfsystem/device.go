// Package rfsystem models receive chains: individual devices with gain
// and noise contributions, cascades of devices, and complete antenna
// systems with their figure of merit.
package rfsystem

import (
	"fmt"

	"github.com/signalsfoundry/link-engineering/linkeng"
)

// Device describes one element of an antenna system: an LNA, a run of
// waveguide, a downconverter. Gain is in dB (negative for lossy
// elements); the noise contribution is held both as an equivalent
// temperature in kelvin and as a noise figure in dB.
type Device struct {
	Name          string
	GainDB        float64
	TemperatureK  float64
	NoiseFigureDB float64
}

// NewDeviceFromTemperature builds a Device from an equivalent noise
// temperature in kelvin, deriving its noise figure.
func NewDeviceFromTemperature(name string, gainDB, tempK float64) (Device, error) {
	if tempK < 0 {
		return Device{}, fmt.Errorf("device %q: noise temperature must be >= 0 K, got %v", name, tempK)
	}
	return Device{
		Name:          name,
		GainDB:        gainDB,
		TemperatureK:  tempK,
		NoiseFigureDB: linkeng.TemperatureToNoiseFigureDB(tempK, linkeng.ReferenceTemperatureK),
	}, nil
}

// NewDeviceFromNoiseFigure builds a Device from a noise figure in dB,
// deriving its equivalent noise temperature.
func NewDeviceFromNoiseFigure(name string, gainDB, nfDB float64) (Device, error) {
	if nfDB < 0 {
		return Device{}, fmt.Errorf("device %q: noise figure must be >= 0 dB, got %v", name, nfDB)
	}
	return Device{
		Name:          name,
		GainDB:        gainDB,
		TemperatureK:  linkeng.NoiseFigureToTemperatureK(nfDB, linkeng.ReferenceTemperatureK),
		NoiseFigureDB: nfDB,
	}, nil
}

func (d Device) String() string {
	return fmt.Sprintf("Device:\t%s\n\tGain:\t%gdB\n\tT:\t%gK\n\tNF:\t%gdB",
		d.Name, d.GainDB, d.TemperatureK, d.NoiseFigureDB)
}
