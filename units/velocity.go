package units

import "fmt"

// Velocity is stored internally in metres per second.
type Velocity struct {
	mps float64
}

// VelocityFromMPerS constructs a Velocity from metres per second.
func VelocityFromMPerS(mps float64) Velocity { return Velocity{mps: mps} }

// VelocityFromKmPerS constructs a Velocity from kilometres per second.
func VelocityFromKmPerS(kmps float64) Velocity { return Velocity{mps: kmps * 1000} }

// VelocityFromAUPerDay constructs a Velocity from astronomical units per day.
func VelocityFromAUPerDay(aupd float64) Velocity {
	return Velocity{mps: aupd * auM / daySeconds}
}

// MPerS returns the velocity in metres per second.
func (v Velocity) MPerS() float64 { return v.mps }

// KmPerS returns the velocity in kilometres per second.
func (v Velocity) KmPerS() float64 { return v.mps / 1000 }

// AUPerDay returns the velocity in astronomical units per day.
func (v Velocity) AUPerDay() float64 { return v.mps * daySeconds / auM }

func (v Velocity) String() string {
	return fmt.Sprintf("%.6g m/s", v.mps)
}
