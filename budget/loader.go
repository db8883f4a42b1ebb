package budget

import (
	"encoding/json"
	"fmt"
	"io"
)

// Scenario is a small summary of what was loaded from JSON, mainly
// useful for logging from main().
type Scenario struct {
	TransceiverIDs []string
	StationIDs     []string
	SpacecraftIDs  []string
}

// scenarioJSON is the on-disk shape; kept unexported so it can evolve.
type scenarioJSON struct {
	Transceivers []*Transceiver `json:"transceivers"`
	Stations     []*Station     `json:"stations"`
	Spacecraft   []*Spacecraft  `json:"spacecraft"`
}

// LoadScenario reads a JSON scenario from r and populates the catalog.
// Transceivers load first so stations and spacecraft can reference
// them regardless of declaration order.
func LoadScenario(c *Catalog, r io.Reader) (*Scenario, error) {
	if c == nil {
		return nil, fmt.Errorf("LoadScenario: catalog is nil")
	}

	var payload scenarioJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("LoadScenario: decode failed: %w", err)
	}

	result := &Scenario{
		TransceiverIDs: make([]string, 0, len(payload.Transceivers)),
		StationIDs:     make([]string, 0, len(payload.Stations)),
		SpacecraftIDs:  make([]string, 0, len(payload.Spacecraft)),
	}

	for _, t := range payload.Transceivers {
		if err := c.AddTransceiver(t); err != nil {
			return nil, fmt.Errorf("LoadScenario: transceiver: %w", err)
		}
		result.TransceiverIDs = append(result.TransceiverIDs, t.ID)
	}
	for _, s := range payload.Stations {
		if err := c.AddStation(s); err != nil {
			return nil, fmt.Errorf("LoadScenario: station: %w", err)
		}
		result.StationIDs = append(result.StationIDs, s.ID)
	}
	for _, s := range payload.Spacecraft {
		if err := c.AddSpacecraft(s); err != nil {
			return nil, fmt.Errorf("LoadScenario: spacecraft: %w", err)
		}
		result.SpacecraftIDs = append(result.SpacecraftIDs, s.ID)
	}

	return result, nil
}
