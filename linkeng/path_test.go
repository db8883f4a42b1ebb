package linkeng

import (
	"math"
	"testing"
)

// approxEqual reports whether got is within tol of want, where tol is a
// relative tolerance against want (absolute when want is zero).
func approxEqual(got, want, tol float64) bool {
	if want == 0 {
		return math.Abs(got) <= tol
	}
	return math.Abs(got-want) <= tol*math.Abs(want)
}

func TestWavelengthM(t *testing.T) {
	wl := WavelengthM(6e9)
	if !approxEqual(wl, 0.049965, 0.001) {
		t.Errorf("WavelengthM(6 GHz) = %v, want ~0.05 m", wl)
	}
}

func TestFreeSpacePathLossDB(t *testing.T) {
	// 4,000,000 km at 40 MHz.
	fsl := FreeSpacePathLossDB(4e9, 4e7)
	if !approxEqual(fsl, 196.52, 0.01) {
		t.Errorf("FreeSpacePathLossDB = %v, want ~196.5 dB", fsl)
	}

	// A GEO-like slant range at C band.
	fsl = FreeSpacePathLossDB(38_000_000, 4e9)
	if !approxEqual(fsl, 196.07, 0.01) {
		t.Errorf("FreeSpacePathLossDB(GEO, 4 GHz) = %v, want ~196.1 dB", fsl)
	}
}

func TestPowerReceivedDBW(t *testing.T) {
	// 8 dBW transmit, 24 dBi and 44 dBi antennas, 4 GHz over 400,000 km.
	prx := PowerReceivedDBW(8, 24, 44, 4e9, 4e8)
	fsl := FreeSpacePathLossDB(4e8, 4e9)
	want := 8 + 24 + 44 - fsl
	if !approxEqual(prx, want, 1e-9) {
		t.Errorf("PowerReceivedDBW = %v, want %v", prx, want)
	}
	if !approxEqual(prx, -140.53, 0.01) {
		t.Errorf("PowerReceivedDBW = %v, want ~-140.5 dBW", prx)
	}
}

func TestEIRP(t *testing.T) {
	eirp := EIRP(15.0, 10)
	if !approxEqual(eirp, 316.2, 0.001) {
		t.Errorf("EIRP(15 dB, 10 W) = %v, want ~316.2 W", eirp)
	}
}

func TestAtmosphericLossDB(t *testing.T) {
	low := AtmosphericLossDB(5)
	high := AtmosphericLossDB(90)
	if low <= high {
		t.Errorf("atmospheric loss should grow toward the horizon: 5 deg=%v, 90 deg=%v", low, high)
	}
	if !approxEqual(high, LinToDB(1+1.0/90), 1e-12) {
		t.Errorf("AtmosphericLossDB(90) = %v", high)
	}
}

func TestOutOfDomainInputsPropagate(t *testing.T) {
	// The helpers follow the math package convention: no validation,
	// out-of-domain input yields Inf/NaN for the caller to reject.
	if got := WavelengthM(0); !math.IsInf(got, 1) {
		t.Errorf("WavelengthM(0) = %v, want +Inf", got)
	}
	if got := AtmosphericLossDB(0); !math.IsInf(got, 1) {
		t.Errorf("AtmosphericLossDB(0) = %v, want +Inf", got)
	}
	if got := ParabolicGainDB(0.6, 0, 0.03); !math.IsInf(got, -1) {
		t.Errorf("ParabolicGainDB(zero diameter) = %v, want -Inf", got)
	}
	if got := GOverTDB(40, 0); !math.IsInf(got, 1) {
		t.Errorf("GOverTDB(40, 0 K) = %v, want +Inf", got)
	}
}

func TestOffNadirAngleDeg(t *testing.T) {
	// Spacecraft directly overhead: elevation 90 deg means the ground
	// station sits on the nadir axis.
	got := OffNadirAngleDeg(90, 500_000, 0)
	if !approxEqual(got, 0, 1e-6) {
		t.Errorf("OffNadirAngleDeg(overhead) = %v, want 0", got)
	}

	// At the horizon the off-nadir angle approaches the Earth limb angle.
	limb := OffNadirAngleDeg(0, 500_000, 0)
	want := math.Asin(EarthRadiusM/(EarthRadiusM+500_000)) * 180 / math.Pi
	if !approxEqual(limb, want, 1e-9) {
		t.Errorf("OffNadirAngleDeg(horizon) = %v, want %v", limb, want)
	}
}

func TestDopplerShiftHz(t *testing.T) {
	// LEO pass: 7 km/s closing speed at S band.
	shift := DopplerShiftHz(2.2e9, -7000)
	if !approxEqual(shift, 2.2e9*7000/SpeedOfLight, 1e-9) {
		t.Errorf("DopplerShiftHz = %v", shift)
	}
	if shift <= 0 {
		t.Errorf("approaching spacecraft must shift the carrier up, got %v", shift)
	}
}
