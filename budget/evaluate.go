package budget

import (
	"fmt"
	"math"

	"github.com/signalsfoundry/link-engineering/linkeng"
)

// Quality buckets a link budget result for at-a-glance reporting.
type Quality string

const (
	QualityUnknown   Quality = "UNKNOWN"
	QualityDown      Quality = "DOWN"
	QualityPoor      Quality = "POOR"
	QualityFair      Quality = "FAIR"
	QualityGood      Quality = "GOOD"
	QualityExcellent Quality = "EXCELLENT"
)

// LinkPath carries the geometry and service parameters of one
// evaluation: where the spacecraft is and what the link must carry.
type LinkPath struct {
	// RangeKm is the slant range in kilometres.
	RangeKm float64
	// ElevationDeg is the ground antenna elevation; values <= 0 skip
	// the atmospheric loss term (e.g. space-to-space links).
	ElevationDeg float64
	// FreqGHz pins the carrier; 0 uses the transmitter's band centre.
	FreqGHz float64
	// BandwidthHz enables the C/N output in the receiver bandwidth.
	BandwidthHz float64
	// DataRateBps enables the Eb/No, BER and margin outputs.
	DataRateBps float64
	// RequiredEbNoDB is the demodulator threshold the margin is
	// measured against.
	RequiredEbNoDB float64
}

// Result is a fully evaluated link budget.
type Result struct {
	FreqGHz float64 `json:"FreqGHz"`

	FSPLdB            float64 `json:"FSPLdB"`
	AtmosphericLossDB float64 `json:"AtmosphericLossDB"`
	PointingLossDB    float64 `json:"PointingLossDB"`
	ModulationLossDB  float64 `json:"ModulationLossDB"`
	TotalLossDB       float64 `json:"TotalLossDB"`

	EIRPDBW   float64 `json:"EIRPDBW"`
	GOverTDBK float64 `json:"GOverTDBK"`
	CNoDBHz   float64 `json:"CNoDBHz"`

	// CNdB is only meaningful when the path carried a bandwidth.
	CNdB float64 `json:"CNdB,omitempty"`

	// Eb/No, BER and margin are only meaningful when the path carried
	// a data rate.
	EbNoDB   float64 `json:"EbNoDB,omitempty"`
	BER      float64 `json:"BER,omitempty"`
	MarginDB float64 `json:"MarginDB,omitempty"`

	Quality Quality `json:"Quality"`
}

// Evaluate runs a single link budget from tx to rx over the given
// path. For an uplink, tx is the ground station transceiver and rx the
// spacecraft's; for a downlink the roles swap.
func Evaluate(tx, rx *Transceiver, path LinkPath) (*Result, error) {
	if tx == nil || rx == nil {
		return nil, fmt.Errorf("budget: both transceivers are required")
	}
	if path.RangeKm <= 0 {
		return nil, fmt.Errorf("budget: range must be positive, got %v km", path.RangeKm)
	}
	if !tx.IsCompatible(rx) {
		return nil, fmt.Errorf("budget: bands do not overlap: %v and %v", tx.Band, rx.Band)
	}

	freqGHz := path.FreqGHz
	if freqGHz <= 0 {
		freqGHz = tx.Band.MidGHz()
	}
	if freqGHz <= 0 {
		return nil, fmt.Errorf("budget: no usable frequency: path and transmitter band are both empty")
	}
	freqHz := freqGHz * 1e9
	rangeM := path.RangeKm * 1000

	r := &Result{
		FreqGHz: freqGHz,
		FSPLdB:  linkeng.FreeSpacePathLossDB(rangeM, freqHz),
	}

	if path.ElevationDeg > 0 {
		r.AtmosphericLossDB = linkeng.AtmosphericLossDB(path.ElevationDeg)
	}
	r.PointingLossDB = pointingLossDB(tx, freqHz) + pointingLossDB(rx, freqHz)
	r.TotalLossDB = r.FSPLdB + r.AtmosphericLossDB + r.PointingLossDB

	r.EIRPDBW = tx.EIRPDBW()
	r.GOverTDBK = rx.GOverTDBK()
	r.CNoDBHz = linkeng.CarrierToNoiseDensityDBHz(r.EIRPDBW, r.TotalLossDB, r.GOverTDBK)

	if path.BandwidthHz > 0 {
		r.CNdB = r.CNoDBHz - linkeng.LinToDB(path.BandwidthHz)
	}

	if tx.ModulationIndex > 0 {
		r.ModulationLossDB = linkeng.ModulationLossDB(tx.ModulationIndex)
	}

	if path.DataRateBps > 0 {
		dataRateLossDB := linkeng.LinToDB(path.DataRateBps)
		r.EbNoDB = linkeng.TelemetryEbNoDB(r.CNoDBHz, r.ModulationLossDB, dataRateLossDB)
		r.BER = linkeng.BitErrorRate(r.EbNoDB)
		r.MarginDB = r.EbNoDB - path.RequiredEbNoDB
		r.Quality = classifyMargin(r.MarginDB)
	} else {
		r.Quality = QualityUnknown
	}

	return r, nil
}

// pointingLossDB derives the pointing loss for one terminal from its
// pointing error and half-power beamwidth. Terminals without antenna
// geometry contribute nothing.
func pointingLossDB(t *Transceiver, freqHz float64) float64 {
	if t.PointingErrorDeg <= 0 || t.AntennaDiameterM <= 0 {
		return 0
	}
	hpbw := linkeng.HalfPowerBeamwidthDeg(linkeng.WavelengthM(freqHz), t.AntennaDiameterM)
	if hpbw <= 0 {
		return 0
	}
	return linkeng.PointingLossDB(t.PointingErrorDeg, hpbw)
}

// classifyMargin buckets a link margin. Thresholds are deliberately
// soft: anything negative is down, 10 dB or better is excellent.
func classifyMargin(marginDB float64) Quality {
	switch {
	case math.IsNaN(marginDB) || marginDB < 0:
		return QualityDown
	case marginDB < 3:
		return QualityPoor
	case marginDB < 6:
		return QualityFair
	case marginDB < 10:
		return QualityGood
	default:
		return QualityExcellent
	}
}
