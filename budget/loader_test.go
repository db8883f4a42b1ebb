package budget

import (
	"strings"
	"testing"
)

const scenarioDoc = `{
  "transceivers": [
    {
      "ID": "xband-gs",
      "Name": "Ground X-band",
      "Band": {"MinGHz": 8.0, "MaxGHz": 8.8},
      "TxPowerDBw": 13,
      "GainTxDBi": 45,
      "GainRxDBi": 47,
      "SystemNoiseTempK": 120
    },
    {
      "ID": "xband-sc",
      "Name": "Spacecraft X-band",
      "Band": {"MinGHz": 8.0, "MaxGHz": 8.8},
      "TxPowerDBw": 4,
      "GainTxDBi": 6,
      "GainRxDBi": 6,
      "SystemNoiseFigureDB": 2.5
    }
  ],
  "stations": [
    {
      "ID": "gs-svalbard",
      "Name": "Svalbard",
      "LatDeg": 78.23,
      "LonDeg": 15.39,
      "TransceiverID": "xband-gs",
      "MinElevationDeg": 5
    }
  ],
  "spacecraft": [
    {
      "ID": "sat-1",
      "Name": "Demo-1",
      "TLE1": "1 25544U 98067A   21275.59097222  .00000204  00000-0  10270-4 0  9990",
      "TLE2": "2 25544  51.6459 115.9059 0001817  61.3028  35.9198 15.49370953257760",
      "TransceiverID": "xband-sc"
    }
  ]
}`

func TestLoadScenario(t *testing.T) {
	c := NewCatalog()
	scn, err := LoadScenario(c, strings.NewReader(scenarioDoc))
	if err != nil {
		t.Fatalf("LoadScenario failed: %v", err)
	}

	if len(scn.TransceiverIDs) != 2 || len(scn.StationIDs) != 1 || len(scn.SpacecraftIDs) != 1 {
		t.Errorf("summary counts wrong: %+v", scn)
	}

	trx := c.GetTransceiver("xband-gs")
	if trx == nil {
		t.Fatal("xband-gs not loaded")
	}
	if trx.TxPowerDBW != 13 || trx.RxGainDBi != 47 {
		t.Errorf("transceiver fields not decoded: %+v", trx)
	}

	sc := c.GetTransceiver("xband-sc")
	if sc == nil || sc.NoiseFigureDB == nil || *sc.NoiseFigureDB != 2.5 {
		t.Errorf("noise figure should decode as a set pointer: %+v", sc)
	}

	st := c.GetStation("gs-svalbard")
	if st == nil || st.MinElevationDeg != 5 || st.TransceiverID != "xband-gs" {
		t.Errorf("station not decoded: %+v", st)
	}
	if c.GetSpacecraft("sat-1") == nil {
		t.Error("spacecraft not loaded")
	}
}

func TestLoadScenarioErrors(t *testing.T) {
	if _, err := LoadScenario(nil, strings.NewReader("{}")); err == nil {
		t.Error("expected error for nil catalog")
	}
	if _, err := LoadScenario(NewCatalog(), strings.NewReader("not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}

	// A station referencing a transceiver the document never declares.
	dangling := `{"stations": [{"ID": "gs1", "TransceiverID": "ghost"}]}`
	if _, err := LoadScenario(NewCatalog(), strings.NewReader(dangling)); err == nil {
		t.Error("expected error for dangling transceiver reference")
	}
}
