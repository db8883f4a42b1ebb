package budget

import (
	"fmt"
	"sync"
)

// Station is a ground terminal at a fixed geodetic position.
type Station struct {
	ID   string `json:"ID"`
	Name string `json:"Name"`

	LatDeg float64 `json:"LatDeg"`
	LonDeg float64 `json:"LonDeg"`
	AltM   float64 `json:"AltM,omitempty"`

	TransceiverID string `json:"TransceiverID"`

	// MinElevationDeg is the station's tracking cutoff; 0 uses the
	// predictor default.
	MinElevationDeg float64 `json:"MinElevationDeg,omitempty"`
}

// Spacecraft is an orbiting terminal described by a TLE.
type Spacecraft struct {
	ID   string `json:"ID"`
	Name string `json:"Name"`

	TLE1 string `json:"TLE1"`
	TLE2 string `json:"TLE2"`

	TransceiverID string `json:"TransceiverID"`
}

// Catalog is an in-memory, thread-safe store for the terminals and
// transceiver models a scenario works with.
type Catalog struct {
	mu sync.RWMutex

	transceivers map[string]*Transceiver
	stations     map[string]*Station
	spacecraft   map[string]*Spacecraft
}

// NewCatalog constructs an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		transceivers: make(map[string]*Transceiver),
		stations:     make(map[string]*Station),
		spacecraft:   make(map[string]*Spacecraft),
	}
}

// AddTransceiver adds a transceiver model. It returns an error if the
// ID is empty or already exists.
func (c *Catalog) AddTransceiver(t *Transceiver) error {
	if t == nil || t.ID == "" {
		return fmt.Errorf("transceiver must have an ID")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.transceivers[t.ID]; exists {
		return fmt.Errorf("transceiver with ID %q already exists", t.ID)
	}
	c.transceivers[t.ID] = t
	return nil
}

// AddStation adds a ground station. The referenced transceiver must
// already be present.
func (c *Catalog) AddStation(s *Station) error {
	if s == nil || s.ID == "" {
		return fmt.Errorf("station must have an ID")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.stations[s.ID]; exists {
		return fmt.Errorf("station with ID %q already exists", s.ID)
	}
	if s.TransceiverID != "" {
		if _, ok := c.transceivers[s.TransceiverID]; !ok {
			return fmt.Errorf("transceiver with ID %q not found for station %q", s.TransceiverID, s.ID)
		}
	}
	c.stations[s.ID] = s
	return nil
}

// AddSpacecraft adds a spacecraft. The referenced transceiver must
// already be present.
func (c *Catalog) AddSpacecraft(s *Spacecraft) error {
	if s == nil || s.ID == "" {
		return fmt.Errorf("spacecraft must have an ID")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.spacecraft[s.ID]; exists {
		return fmt.Errorf("spacecraft with ID %q already exists", s.ID)
	}
	if s.TransceiverID != "" {
		if _, ok := c.transceivers[s.TransceiverID]; !ok {
			return fmt.Errorf("transceiver with ID %q not found for spacecraft %q", s.TransceiverID, s.ID)
		}
	}
	c.spacecraft[s.ID] = s
	return nil
}

// GetTransceiver returns the transceiver with the given ID, or nil.
func (c *Catalog) GetTransceiver(id string) *Transceiver {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.transceivers[id]
}

// GetStation returns the station with the given ID, or nil.
func (c *Catalog) GetStation(id string) *Station {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stations[id]
}

// GetSpacecraft returns the spacecraft with the given ID, or nil.
func (c *Catalog) GetSpacecraft(id string) *Spacecraft {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.spacecraft[id]
}

// Counts returns the number of transceivers, stations and spacecraft.
func (c *Catalog) Counts() (transceivers, stations, spacecraft int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.transceivers), len(c.stations), len(c.spacecraft)
}
