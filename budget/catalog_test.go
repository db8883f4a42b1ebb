package budget

import "testing"

func TestCatalogAddAndGet(t *testing.T) {
	c := NewCatalog()

	trx := testTxTransceiver()
	if err := c.AddTransceiver(trx); err != nil {
		t.Fatalf("AddTransceiver failed: %v", err)
	}
	if got := c.GetTransceiver("gs-x"); got != trx {
		t.Error("GetTransceiver did not return the stored transceiver")
	}
	if got := c.GetTransceiver("missing"); got != nil {
		t.Error("GetTransceiver for unknown ID should return nil")
	}

	st := &Station{ID: "gs1", Name: "Svalbard", LatDeg: 78.23, LonDeg: 15.39, TransceiverID: "gs-x"}
	if err := c.AddStation(st); err != nil {
		t.Fatalf("AddStation failed: %v", err)
	}
	if got := c.GetStation("gs1"); got != st {
		t.Error("GetStation did not return the stored station")
	}

	sc := &Spacecraft{ID: "sat1", Name: "Demo", TLE1: "x", TLE2: "y", TransceiverID: "gs-x"}
	if err := c.AddSpacecraft(sc); err != nil {
		t.Fatalf("AddSpacecraft failed: %v", err)
	}
	if got := c.GetSpacecraft("sat1"); got != sc {
		t.Error("GetSpacecraft did not return the stored spacecraft")
	}

	nt, ns, nc := c.Counts()
	if nt != 1 || ns != 1 || nc != 1 {
		t.Errorf("Counts = (%d, %d, %d), want (1, 1, 1)", nt, ns, nc)
	}
}

func TestCatalogRejectsDuplicates(t *testing.T) {
	c := NewCatalog()
	if err := c.AddTransceiver(testTxTransceiver()); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := c.AddTransceiver(testTxTransceiver()); err == nil {
		t.Error("expected error for duplicate transceiver ID")
	}

	st := &Station{ID: "gs1", TransceiverID: "gs-x"}
	if err := c.AddStation(st); err != nil {
		t.Fatalf("first station add failed: %v", err)
	}
	if err := c.AddStation(&Station{ID: "gs1", TransceiverID: "gs-x"}); err == nil {
		t.Error("expected error for duplicate station ID")
	}
}

func TestCatalogRejectsMissingReferences(t *testing.T) {
	c := NewCatalog()

	if err := c.AddStation(&Station{ID: "gs1", TransceiverID: "nope"}); err == nil {
		t.Error("expected error for station referencing an unknown transceiver")
	}
	if err := c.AddSpacecraft(&Spacecraft{ID: "sat1", TransceiverID: "nope"}); err == nil {
		t.Error("expected error for spacecraft referencing an unknown transceiver")
	}
	if err := c.AddTransceiver(&Transceiver{}); err == nil {
		t.Error("expected error for transceiver without an ID")
	}
	if err := c.AddTransceiver(nil); err == nil {
		t.Error("expected error for nil transceiver")
	}
}
