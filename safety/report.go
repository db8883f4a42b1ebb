package safety

import (
	"fmt"
	"strings"
)

// Describe renders a verdict as "below" / "EXCEEDS" text against both
// limit classes.
func (v Verdict) Describe() string {
	occ := "below occupational"
	if v.ExceedsOccupational {
		occ = "EXCEEDS occupational"
	}
	gp := "below general population"
	if v.ExceedsGeneral {
		gp = "EXCEEDS general population"
	}
	return occ + " & " + gp
}

// Compliant reports whether every region is inside both limit classes.
func (e *Evaluation) Compliant() bool {
	for _, v := range []Verdict{e.Surface, e.NearField, e.FarField, e.Ground} {
		if v.ExceedsOccupational || v.ExceedsGeneral {
			return false
		}
	}
	return true
}

// Report renders a plain-text compliance report in the layout of the
// classic OET-65 worksheet.
func (e *Evaluation) Report() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Given:\t%g m\t%g MHz\t%g W\teta=%.2f\n",
		e.Input.DiameterM, e.Input.FreqMHz, e.Input.PowerW, e.Input.Efficiency)
	if e.Limits.HasFieldLimits {
		fmt.Fprintf(&b, "Occupational limits:\t%.3g V/m\t%.3g A/m\t%.3g mW/cm^2\t6 minutes\n",
			e.Limits.OccupationalE, e.Limits.OccupationalH, e.Limits.OccupationalS)
		fmt.Fprintf(&b, "General population:\t%.3g V/m\t%.3g A/m\t%.3g mW/cm^2\t30 minutes\n",
			e.Limits.GeneralE, e.Limits.GeneralH, e.Limits.GeneralS)
	} else {
		fmt.Fprintf(&b, "Occupational limits:\t--\t--\t%.3g mW/cm^2\t6 minutes\n", e.Limits.OccupationalS)
		fmt.Fprintf(&b, "General population:\t--\t--\t%.3g mW/cm^2\t30 minutes\n", e.Limits.GeneralS)
	}

	fmt.Fprintf(&b, "\nSurface power\t\t%.2f mW/cm^2\t%s\n", e.Surface.SmWcm2, e.Surface.Describe())
	fmt.Fprintf(&b, "On-axis:\n")
	fmt.Fprintf(&b, "\tNear-field max power\t%.2f mW/cm^2\t%s\n", e.NearField.SmWcm2, e.NearField.Describe())
	fmt.Fprintf(&b, "\tNear-field extent\t%.2f m\n", e.NearFieldExtentM)
	fmt.Fprintf(&b, "\tFar-field onset\t\t%.2f m\n", e.FarFieldOnsetM)
	fmt.Fprintf(&b, "\tFar-field max power\t%.2f mW/cm^2\t%s\n", e.FarField.SmWcm2, e.FarField.Describe())
	fmt.Fprintf(&b, "Off-axis:\n")
	fmt.Fprintf(&b, "\tGround level estimate\t%.4f mW/cm^2\t%s\n", e.Ground.SmWcm2, e.Ground.Describe())

	return b.String()
}
