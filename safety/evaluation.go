package safety

import (
	"fmt"
	"math"

	"github.com/signalsfoundry/link-engineering/linkeng"
)

// DefaultEfficiency is the aperture efficiency assumed when the input
// does not specify one. 0.5-0.75 is typical for prime focus dishes.
const DefaultEfficiency = 0.53

// Input describes the transmit system under evaluation.
type Input struct {
	// DiameterM is the reflector diameter in metres.
	DiameterM float64
	// FreqMHz is the transmit frequency in MHz.
	FreqMHz float64
	// PowerW is the power fed to the antenna in watts.
	PowerW float64
	// Efficiency is the aperture efficiency; 0 selects DefaultEfficiency.
	Efficiency float64
}

// Verdict compares one region's power density against the limits.
type Verdict struct {
	// SmWcm2 is the region's power density in mW/cm^2.
	SmWcm2 float64
	// ExceedsOccupational and ExceedsGeneral flag limit violations.
	ExceedsOccupational bool
	ExceedsGeneral      bool
}

// Evaluation is the full OET-65 compliance picture for one antenna.
// Densities are in W/m^2, distances in metres; the Verdicts carry the
// mW/cm^2 values compared against the limits.
type Evaluation struct {
	Input  Input
	Limits Limits

	WavelengthM float64
	GainDBi     float64
	EIRPW       float64

	// SurfaceWm2 is the maximum density at the reflector surface (eq 11).
	SurfaceWm2 float64
	// NearFieldExtentM is the extent of the near-field region (eq 12).
	NearFieldExtentM float64
	// NearFieldWm2 is the on-axis near-field maximum density (eq 13).
	NearFieldWm2 float64
	// FarFieldOnsetM is the distance where the far field begins (eq 16).
	FarFieldOnsetM float64
	// FarFieldWm2 is the density at the far-field onset (eq 4).
	FarFieldWm2 float64
	// GroundWm2 is a rough off-axis ground-level estimate near the dish.
	GroundWm2 float64

	Surface   Verdict
	NearField Verdict
	FarField  Verdict
	Ground    Verdict
}

// Evaluate computes the OET-65 power-density picture for a parabolic
// transmit antenna and compares each region against the limits for the
// transmit frequency.
func Evaluate(in Input) (*Evaluation, error) {
	if in.DiameterM <= 0 {
		return nil, fmt.Errorf("safety: diameter must be positive, got %v m", in.DiameterM)
	}
	if in.PowerW <= 0 {
		return nil, fmt.Errorf("safety: power must be positive, got %v W", in.PowerW)
	}
	if in.Efficiency == 0 {
		in.Efficiency = DefaultEfficiency
	}
	if in.Efficiency < 0 || in.Efficiency > 1 {
		return nil, fmt.Errorf("safety: efficiency must be in (0,1], got %v", in.Efficiency)
	}

	limits, err := LimitsForFrequency(in.FreqMHz)
	if err != nil {
		return nil, err
	}

	wl := linkeng.WavelengthM(in.FreqMHz * 1e6)
	gain := linkeng.ParabolicGainDB(in.Efficiency, in.DiameterM, wl)
	eirp := linkeng.EIRP(gain, in.PowerW)

	d2 := in.DiameterM * in.DiameterM
	area := math.Pi * d2 / 4

	e := &Evaluation{
		Input:       in,
		Limits:      limits,
		WavelengthM: wl,
		GainDBi:     gain,
		EIRPW:       eirp,

		SurfaceWm2:       4 * in.PowerW / area,
		NearFieldExtentM: d2 / (4 * wl),
		NearFieldWm2:     16 * in.Efficiency * in.PowerW / (math.Pi * d2),
		FarFieldOnsetM:   0.6 * d2 / wl,
	}
	e.FarFieldWm2 = FarFieldDensityWm2(eirp, e.FarFieldOnsetM)
	e.GroundWm2 = e.NearFieldWm2 / 100

	e.Surface = limits.verdict(e.SurfaceWm2)
	e.NearField = limits.verdict(e.NearFieldWm2)
	e.FarField = limits.verdict(e.FarFieldWm2)
	e.Ground = limits.verdict(e.GroundWm2)

	return e, nil
}

// FarFieldDensityWm2 returns the far-field power density in W/m^2 at
// range rM metres for an EIRP in watts (OET-65 eq 4).
func FarFieldDensityWm2(eirpW, rM float64) float64 {
	return eirpW / (4 * math.Pi * rM * rM)
}

// WorstCaseDensityWm2 returns the worst-case density assuming 100%
// in-phase ground reflection (OET-65 eq 6).
func WorstCaseDensityWm2(eirpW, rM float64) float64 {
	return eirpW / (math.Pi * rM * rM)
}

// TransitionDensityWm2 returns the on-axis density at range rM in the
// transition region between near and far field (OET-65 eq 17).
func TransitionDensityWm2(nearFieldWm2, nearFieldExtentM, rM float64) float64 {
	return nearFieldWm2 * nearFieldExtentM / rM
}

// verdict converts a W/m^2 density to mW/cm^2 and compares it against
// both limit classes. 1 W/m^2 = 0.1 mW/cm^2.
func (l Limits) verdict(wm2 float64) Verdict {
	mwcm2 := wm2 / 10
	return Verdict{
		SmWcm2:              mwcm2,
		ExceedsOccupational: mwcm2 > l.OccupationalS,
		ExceedsGeneral:      mwcm2 > l.GeneralS,
	}
}
