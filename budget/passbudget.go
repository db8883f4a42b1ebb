package budget

import (
	"fmt"
	"time"

	"github.com/signalsfoundry/link-engineering/orbit"
)

// Direction says which way the link under evaluation runs.
type Direction string

const (
	Uplink   Direction = "uplink"
	Downlink Direction = "downlink"
)

// PassPoint pairs one geometry sample with its evaluated budget. The
// Result is nil while the spacecraft is not visible.
type PassPoint struct {
	orbit.Sample
	Result *Result
}

// PassRequest describes a budget evaluated across a pass.
type PassRequest struct {
	Station    *Station
	Spacecraft *Spacecraft
	Direction  Direction

	// Service parameters applied to every visible sample.
	FreqGHz        float64
	DataRateBps    float64
	RequiredEbNoDB float64

	Start time.Time
	End   time.Time
	// Interval is the sampling step; 0 uses the predictor default.
	Interval time.Duration
}

// EvaluatePass propagates the spacecraft across the requested span and
// evaluates the link budget at every visible sample.
func EvaluatePass(c *Catalog, req PassRequest) ([]PassPoint, error) {
	if req.Station == nil || req.Spacecraft == nil {
		return nil, fmt.Errorf("budget: pass needs a station and a spacecraft")
	}

	gsTrx := c.GetTransceiver(req.Station.TransceiverID)
	scTrx := c.GetTransceiver(req.Spacecraft.TransceiverID)
	if gsTrx == nil || scTrx == nil {
		return nil, fmt.Errorf("budget: both terminals need transceivers in the catalog")
	}

	tx, rx := gsTrx, scTrx
	if req.Direction == Downlink {
		tx, rx = scTrx, gsTrx
	}

	eph, err := orbit.NewEphemerisFromTLE(req.Spacecraft.TLE1, req.Spacecraft.TLE2)
	if err != nil {
		return nil, fmt.Errorf("budget: spacecraft %q: %w", req.Spacecraft.ID, err)
	}

	ground := orbit.GroundStationECEF(req.Station.LatDeg, req.Station.LonDeg, req.Station.AltM)

	pred := orbit.NewPredictor()
	if req.Station.MinElevationDeg > 0 {
		pred.MinElevationDeg = req.Station.MinElevationDeg
	}
	if req.Interval > 0 {
		pred.Interval = req.Interval
	}

	samples, err := pred.Samples(eph, ground, req.Start, req.End)
	if err != nil {
		return nil, err
	}

	points := make([]PassPoint, 0, len(samples))
	for _, s := range samples {
		p := PassPoint{Sample: s}
		if s.Visible {
			r, err := Evaluate(tx, rx, LinkPath{
				RangeKm:        s.RangeKm,
				ElevationDeg:   s.ElevationDeg,
				FreqGHz:        req.FreqGHz,
				DataRateBps:    req.DataRateBps,
				RequiredEbNoDB: req.RequiredEbNoDB,
			})
			if err != nil {
				return nil, fmt.Errorf("budget: at %v: %w", s.Time, err)
			}
			p.Result = r
		}
		points = append(points, p)
	}
	return points, nil
}
