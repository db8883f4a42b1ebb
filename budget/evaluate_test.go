package budget

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func testTxTransceiver() *Transceiver {
	return &Transceiver{
		ID:         "gs-x",
		Name:       "Ground X-band TX",
		Band:       FrequencyBand{MinGHz: 8.0, MaxGHz: 8.8},
		TxPowerDBW: 10,
		TxGainDBi:  30,
		LineLossDB: 1,
	}
}

func testRxTransceiver() *Transceiver {
	return &Transceiver{
		ID:               "sc-x",
		Name:             "Spacecraft X-band RX",
		Band:             FrequencyBand{MinGHz: 8.0, MaxGHz: 8.8},
		RxGainDBi:        40,
		SystemNoiseTempK: 290,
	}
}

func TestEvaluateCarrierOnly(t *testing.T) {
	tx := testTxTransceiver()
	rx := testRxTransceiver()

	r, err := Evaluate(tx, rx, LinkPath{RangeKm: 2000})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if !approxEqual(r.FreqGHz, 8.4, 1e-9) {
		t.Errorf("expected mid-band 8.4 GHz, got %v", r.FreqGHz)
	}
	if !approxEqual(r.FSPLdB, 176.954, 0.01) {
		t.Errorf("FSPL at 2000 km, 8.4 GHz: got %v, want ~176.95", r.FSPLdB)
	}
	if r.AtmosphericLossDB != 0 {
		t.Errorf("no elevation given, atmospheric loss should be 0, got %v", r.AtmosphericLossDB)
	}
	if r.PointingLossDB != 0 {
		t.Errorf("no antenna geometry, pointing loss should be 0, got %v", r.PointingLossDB)
	}
	if !approxEqual(r.EIRPDBW, 39, 1e-9) {
		t.Errorf("EIRP: got %v, want 39", r.EIRPDBW)
	}
	if !approxEqual(r.GOverTDBK, 15.376, 0.01) {
		t.Errorf("G/T: got %v, want ~15.38", r.GOverTDBK)
	}
	if !approxEqual(r.CNoDBHz, 106.02, 0.02) {
		t.Errorf("C/No: got %v, want ~106.02", r.CNoDBHz)
	}
	if r.Quality != QualityUnknown {
		t.Errorf("no data rate, quality should be UNKNOWN, got %v", r.Quality)
	}
}

func TestEvaluateCarrierToNoiseInBandwidth(t *testing.T) {
	tx := testTxTransceiver()
	rx := testRxTransceiver()

	r, err := Evaluate(tx, rx, LinkPath{RangeKm: 2000, BandwidthHz: 1e6})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	// C/N is C/No less 60 dB for a 1 MHz bandwidth.
	if !approxEqual(r.CNdB, r.CNoDBHz-60, 1e-9) {
		t.Errorf("C/N: got %v, want %v", r.CNdB, r.CNoDBHz-60)
	}
}

func TestEvaluateWithDataRate(t *testing.T) {
	tx := testTxTransceiver()
	rx := testRxTransceiver()

	r, err := Evaluate(tx, rx, LinkPath{
		RangeKm:        2000,
		DataRateBps:    1e6,
		RequiredEbNoDB: 10,
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	// C/No ~106 dB-Hz minus 60 dB of data rate.
	if !approxEqual(r.EbNoDB, 46.02, 0.02) {
		t.Errorf("Eb/No: got %v, want ~46.02", r.EbNoDB)
	}
	if !approxEqual(r.MarginDB, 36.02, 0.02) {
		t.Errorf("margin: got %v, want ~36.02", r.MarginDB)
	}
	if r.BER > 1e-12 {
		t.Errorf("BER should be negligible at 46 dB Eb/No, got %v", r.BER)
	}
	if r.Quality != QualityExcellent {
		t.Errorf("quality: got %v, want EXCELLENT", r.Quality)
	}
}

func TestEvaluateAtmosphericAndPointingLoss(t *testing.T) {
	tx := testTxTransceiver()
	tx.AntennaDiameterM = 2
	tx.PointingErrorDeg = 0.3
	rx := testRxTransceiver()

	r, err := Evaluate(tx, rx, LinkPath{RangeKm: 2000, ElevationDeg: 30})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if !approxEqual(r.AtmosphericLossDB, 0.1424, 0.001) {
		t.Errorf("atmospheric loss at 30 deg: got %v, want ~0.142", r.AtmosphericLossDB)
	}
	// 2 m dish at 8.4 GHz has a ~1.25 deg HPBW; a 0.3 deg error costs
	// about 0.69 dB.
	if !approxEqual(r.PointingLossDB, 0.692, 0.005) {
		t.Errorf("pointing loss: got %v, want ~0.692", r.PointingLossDB)
	}
	want := r.FSPLdB + r.AtmosphericLossDB + r.PointingLossDB
	if !approxEqual(r.TotalLossDB, want, 1e-9) {
		t.Errorf("total loss %v does not sum its parts %v", r.TotalLossDB, want)
	}
}

func TestEvaluateBelowHorizonSkipsAtmosphericLoss(t *testing.T) {
	tx := testTxTransceiver()
	rx := testRxTransceiver()

	// Elevation at or below the horizon falls outside the atmospheric
	// model's domain; Evaluate leaves the term at zero rather than
	// letting an infinity into the budget.
	for _, elev := range []float64{0, -5} {
		r, err := Evaluate(tx, rx, LinkPath{RangeKm: 2000, ElevationDeg: elev})
		if err != nil {
			t.Fatalf("Evaluate at %v deg failed: %v", elev, err)
		}
		if r.AtmosphericLossDB != 0 {
			t.Errorf("elevation %v deg: atmospheric loss should be 0, got %v", elev, r.AtmosphericLossDB)
		}
		if math.IsInf(r.CNoDBHz, 0) || math.IsNaN(r.CNoDBHz) {
			t.Errorf("elevation %v deg: C/No should stay finite, got %v", elev, r.CNoDBHz)
		}
	}
}

func TestEvaluateModulationLoss(t *testing.T) {
	tx := testTxTransceiver()
	tx.ModulationIndex = 1.0
	rx := testRxTransceiver()

	r, err := Evaluate(tx, rx, LinkPath{RangeKm: 2000, DataRateBps: 1e3})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !approxEqual(r.ModulationLossDB, -4.12, 0.01) {
		t.Errorf("modulation loss at mi=1.0: got %v, want ~-4.12", r.ModulationLossDB)
	}
	wantEbNo := r.CNoDBHz + r.ModulationLossDB - 30
	if !approxEqual(r.EbNoDB, wantEbNo, 1e-9) {
		t.Errorf("Eb/No %v does not include the modulation loss (want %v)", r.EbNoDB, wantEbNo)
	}
}

func TestEvaluateRejectsBadInput(t *testing.T) {
	tx := testTxTransceiver()
	rx := testRxTransceiver()

	if _, err := Evaluate(nil, rx, LinkPath{RangeKm: 100}); err == nil {
		t.Error("expected error for nil transmitter")
	}
	if _, err := Evaluate(tx, rx, LinkPath{RangeKm: 0}); err == nil {
		t.Error("expected error for zero range")
	}
	if _, err := Evaluate(tx, rx, LinkPath{RangeKm: -5}); err == nil {
		t.Error("expected error for negative range")
	}

	uhf := testRxTransceiver()
	uhf.Band = FrequencyBand{MinGHz: 0.4, MaxGHz: 0.45}
	if _, err := Evaluate(tx, uhf, LinkPath{RangeKm: 100}); err == nil {
		t.Error("expected error for non-overlapping bands")
	}
}

func TestClassifyMargin(t *testing.T) {
	cases := []struct {
		marginDB float64
		want     Quality
	}{
		{-3, QualityDown},
		{0, QualityPoor},
		{2.9, QualityPoor},
		{3, QualityFair},
		{5.9, QualityFair},
		{6, QualityGood},
		{9.9, QualityGood},
		{10, QualityExcellent},
		{40, QualityExcellent},
		{math.NaN(), QualityDown},
	}
	for _, c := range cases {
		if got := classifyMargin(c.marginDB); got != c.want {
			t.Errorf("classifyMargin(%v) = %v, want %v", c.marginDB, got, c.want)
		}
	}
}

func TestReceiveSystemTempResolution(t *testing.T) {
	// Explicit temperature wins over the noise figure.
	nf := 3.0
	trx := &Transceiver{SystemNoiseTempK: 150, NoiseFigureDB: &nf}
	if got := trx.ReceiveSystemTempK(); !approxEqual(got, 150, 1e-9) {
		t.Errorf("explicit temperature should win, got %v", got)
	}

	// Noise figure converts at the 290 K reference: 3 dB is ~288.6 K.
	trx = &Transceiver{NoiseFigureDB: &nf}
	if got := trx.ReceiveSystemTempK(); !approxEqual(got, 288.6, 0.1) {
		t.Errorf("3 dB NF should give ~288.6 K, got %v", got)
	}

	// Nothing declared falls back to the reference temperature.
	trx = &Transceiver{}
	if got := trx.ReceiveSystemTempK(); !approxEqual(got, 290, 1e-9) {
		t.Errorf("default should be 290 K, got %v", got)
	}
}

func TestBandCompatibility(t *testing.T) {
	a := &Transceiver{Band: FrequencyBand{MinGHz: 8.0, MaxGHz: 8.8}}
	b := &Transceiver{Band: FrequencyBand{MinGHz: 8.4, MaxGHz: 9.0}}
	c := &Transceiver{Band: FrequencyBand{MinGHz: 2.0, MaxGHz: 2.3}}

	if !a.IsCompatible(b) {
		t.Error("overlapping bands should be compatible")
	}
	if a.IsCompatible(c) {
		t.Error("disjoint bands should not be compatible")
	}
	if !a.IsCompatible(a) {
		t.Error("a band overlaps itself")
	}
}
