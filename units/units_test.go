package units

import (
	"math"
	"testing"
)

func almost(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}

func TestFrequencyConversions(t *testing.T) {
	cases := []struct {
		name string
		f    Frequency
	}{
		{"from Hz", FrequencyFromHz(1000)},
		{"from KHz", FrequencyFromKHz(1.0)},
		{"from MHz", FrequencyFromMHz(0.001)},
		{"from GHz", FrequencyFromGHz(0.000001)},
	}
	for _, tc := range cases {
		if tc.f.Hz() != 1000.0 {
			t.Errorf("%s: Hz = %v, want 1000", tc.name, tc.f.Hz())
		}
		if tc.f.KHz() != 1.0 {
			t.Errorf("%s: KHz = %v, want 1", tc.name, tc.f.KHz())
		}
		if tc.f.MHz() != 0.001 {
			t.Errorf("%s: MHz = %v, want 0.001", tc.name, tc.f.MHz())
		}
		if tc.f.GHz() != 0.000001 {
			t.Errorf("%s: GHz = %v, want 1e-6", tc.name, tc.f.GHz())
		}
	}
}

func TestFrequencyWavelength(t *testing.T) {
	wl := FrequencyFromGHz(6).Wavelength()
	if !almost(wl.M(), 0.049965, 0.0001) {
		t.Errorf("wavelength of 6 GHz = %v m, want ~0.05 m", wl.M())
	}
}

func TestPowerConversions(t *testing.T) {
	p := PowerFromW(0.001)
	if p.MW() != 1.0 {
		t.Errorf("MW = %v, want 1", p.MW())
	}
	if !almost(p.DBm(), 0, 1e-9) {
		t.Errorf("DBm = %v, want 0", p.DBm())
	}
	if !almost(p.DBW(), -30, 1e-9) {
		t.Errorf("DBW = %v, want -30", p.DBW())
	}

	if got := PowerFromDBW(10).W(); !almost(got, 10, 1e-9) {
		t.Errorf("PowerFromDBW(10).W() = %v, want 10", got)
	}
	if got := PowerFromDBm(30).W(); !almost(got, 1, 1e-9) {
		t.Errorf("PowerFromDBm(30).W() = %v, want 1", got)
	}
	if got := PowerFromKW(2).W(); got != 2000 {
		t.Errorf("PowerFromKW(2).W() = %v, want 2000", got)
	}
}

func TestDistanceConversions(t *testing.T) {
	d := DistanceFromM(1000)
	if d.Km() != 1.0 {
		t.Errorf("Km = %v, want 1", d.Km())
	}
	if d.Cm() != 100000 {
		t.Errorf("Cm = %v, want 100000", d.Cm())
	}
	if d.Mm() != 1000000 {
		t.Errorf("Mm = %v, want 1e6", d.Mm())
	}

	au := DistanceFromAU(1)
	if au.M() != 149597870700.0 {
		t.Errorf("1 AU = %v m", au.M())
	}
	if !almost(au.LightSeconds(), 499.0, 0.01) {
		t.Errorf("1 AU = %v light seconds, want ~499", au.LightSeconds())
	}
}

func TestAngleConversions(t *testing.T) {
	a := AngleFromDegrees(180)
	if !almost(a.Radians(), math.Pi, 1e-12) {
		t.Errorf("180 deg = %v rad, want pi", a.Radians())
	}
	if got := AngleFromDegrees(1).Arcseconds(); !almost(got, 3600, 1e-9) {
		t.Errorf("1 deg = %v arcsec, want 3600", got)
	}
}

func TestAngleDMS(t *testing.T) {
	// 12.05125 deg = 12deg 03' 04.5".
	sign, d, m, s := AngleFromDegrees(12.05125).DMS()
	if sign != 1 || d != 12 || m != 3 || !almost(s, 4.5, 1e-6) {
		t.Errorf("DMS(12.05125) = (%v, %v, %v, %v)", sign, d, m, s)
	}

	sign, d, m, s = AngleFromDegrees(-12.05125).DMS()
	if sign != -1 || d != 12 || m != 3 || !almost(s, 4.5, 1e-6) {
		t.Errorf("DMS(-12.05125) = (%v, %v, %v, %v)", sign, d, m, s)
	}
}

func TestAngleFromDMS(t *testing.T) {
	// Sign carries from the degrees component to minutes and seconds.
	want := -1.034167
	for _, tc := range [][3]float64{{-1, 2, 3}, {-1, -2, 3}, {-1, -2, -3}} {
		got := AngleFromDMS(tc[0], tc[1], tc[2]).Degrees()
		if !almost(got, want, 1e-5) {
			t.Errorf("AngleFromDMS(%v) = %v, want %v", tc, got, want)
		}
	}
}

func TestParseDMS(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{`12° 3' 4.5"`, 12.05125},
		{"12d 3m 4.5s", 12.05125},
		{"12:3:4.5", 12.05125},
		{"-1:2:3", -1.034167},
		{"-1 2 3", -1.034167},
		{"12.5", 12.5},
		{"12 30", 12.5},
		{"-0 30 0", -0.5},
	}
	for _, tc := range cases {
		a, err := ParseDMS(tc.in)
		if err != nil {
			t.Errorf("ParseDMS(%q) failed: %v", tc.in, err)
			continue
		}
		if !almost(a.Degrees(), tc.want, 1e-5) {
			t.Errorf("ParseDMS(%q) = %v deg, want %v", tc.in, a.Degrees(), tc.want)
		}
	}

	for _, in := range []string{"", "twelve", "1 2 3 4", "1 61 0", "1 -2 3"} {
		if _, err := ParseDMS(in); err == nil {
			t.Errorf("ParseDMS(%q) should fail", in)
		}
	}
}

func TestVelocityConversions(t *testing.T) {
	v := VelocityFromKmPerS(7.5)
	if v.MPerS() != 7500 {
		t.Errorf("MPerS = %v, want 7500", v.MPerS())
	}
	back := VelocityFromAUPerDay(v.AUPerDay())
	if !almost(back.MPerS(), 7500, 1e-6) {
		t.Errorf("AU/day round trip = %v, want 7500", back.MPerS())
	}
}
