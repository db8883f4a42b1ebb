package orbit

import (
	"fmt"
	"time"
)

// Sample is the link geometry between a ground station and a
// spacecraft at one instant.
type Sample struct {
	Time            time.Time
	RangeKm         float64
	ElevationDeg    float64
	RangeRateKmPerS float64
	// Visible means the spacecraft is above the predictor's minimum
	// elevation with line of sight.
	Visible bool
}

// Window is a contiguous interval during which the spacecraft is
// visible from the station.
type Window struct {
	Start           time.Time
	End             time.Time
	MaxElevationDeg float64
}

// Predictor samples passes of a spacecraft over a ground station.
type Predictor struct {
	// MinElevationDeg is the visibility cutoff. Typical ground
	// stations track no lower than 5-10 degrees.
	MinElevationDeg float64
	// Interval is the sampling step.
	Interval time.Duration
}

// NewPredictor returns a Predictor with conservative defaults.
func NewPredictor() *Predictor {
	return &Predictor{
		MinElevationDeg: 10.0,
		Interval:        30 * time.Second,
	}
}

// Samples steps from start to end (inclusive) computing the geometry
// for each instant.
func (p *Predictor) Samples(eph *Ephemeris, ground Vec3, start, end time.Time) ([]Sample, error) {
	if eph == nil {
		return nil, fmt.Errorf("orbit: nil ephemeris")
	}
	if end.Before(start) {
		return nil, fmt.Errorf("orbit: end %v before start %v", end, start)
	}
	interval := p.Interval
	if interval <= 0 {
		interval = 30 * time.Second
	}

	var samples []Sample
	for t := start; !t.After(end); t = t.Add(interval) {
		pos := eph.PositionECEF(t)
		s := Sample{
			Time:            t,
			RangeKm:         SlantRangeKm(ground, pos),
			ElevationDeg:    ElevationDegrees(ground, pos),
			RangeRateKmPerS: eph.RangeRateKmPerS(ground, t),
		}
		s.Visible = s.ElevationDeg >= p.MinElevationDeg && HasLineOfSight(ground, pos)
		samples = append(samples, s)
	}
	return samples, nil
}

// Windows folds a sample series into contact windows. A window opens on
// the first visible sample and closes on the first invisible one; a
// window still open at the final sample closes there.
func Windows(samples []Sample) []Window {
	var windows []Window
	var open bool
	var current Window

	for _, s := range samples {
		switch {
		case s.Visible && !open:
			open = true
			current = Window{Start: s.Time, End: s.Time, MaxElevationDeg: s.ElevationDeg}
		case s.Visible:
			current.End = s.Time
			if s.ElevationDeg > current.MaxElevationDeg {
				current.MaxElevationDeg = s.ElevationDeg
			}
		case open:
			open = false
			windows = append(windows, current)
		}
	}
	if open {
		windows = append(windows, current)
	}
	return windows
}
