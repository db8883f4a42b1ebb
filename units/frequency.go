package units

import "fmt"

// Frequency is stored internally in hertz.
type Frequency struct {
	hz float64
}

// FrequencyFromHz constructs a Frequency from hertz.
func FrequencyFromHz(hz float64) Frequency { return Frequency{hz: hz} }

// FrequencyFromKHz constructs a Frequency from kilohertz.
func FrequencyFromKHz(khz float64) Frequency { return Frequency{hz: khz * 1e3} }

// FrequencyFromMHz constructs a Frequency from megahertz.
func FrequencyFromMHz(mhz float64) Frequency { return Frequency{hz: mhz * 1e6} }

// FrequencyFromGHz constructs a Frequency from gigahertz.
func FrequencyFromGHz(ghz float64) Frequency { return Frequency{hz: ghz * 1e9} }

// Hz returns the frequency in hertz.
func (f Frequency) Hz() float64 { return f.hz }

// KHz returns the frequency in kilohertz.
func (f Frequency) KHz() float64 { return f.hz / 1e3 }

// MHz returns the frequency in megahertz.
func (f Frequency) MHz() float64 { return f.hz / 1e6 }

// GHz returns the frequency in gigahertz.
func (f Frequency) GHz() float64 { return f.hz / 1e9 }

// Wavelength returns the free-space wavelength for this frequency.
func (f Frequency) Wavelength() Distance {
	return DistanceFromM(speedOfLightMPerS / f.hz)
}

func (f Frequency) String() string {
	return fmt.Sprintf("%.6g GHz", f.GHz())
}
