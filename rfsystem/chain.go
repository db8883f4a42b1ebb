package rfsystem

import (
	"fmt"

	"github.com/signalsfoundry/link-engineering/linkeng"
)

// Chain is an ordered cascade of devices, first element closest to the
// antenna feed.
type Chain struct {
	Devices []Device
}

// Append adds a device to the end of the chain and returns the chain
// for call chaining.
func (c *Chain) Append(d Device) *Chain {
	c.Devices = append(c.Devices, d)
	return c
}

// TotalGainDB returns the cascade's end-to-end gain in dB.
func (c *Chain) TotalGainDB() float64 {
	sum := 0.0
	for _, d := range c.Devices {
		sum += d.GainDB
	}
	return sum
}

// CascadeTemperatureK returns the equivalent noise temperature of the
// cascade referred to its input, per the Friis formula:
//
//	T = T1 + T2/g1 + T3/(g1*g2) + ...
//
// where the g are the preceding linear gains.
func (c *Chain) CascadeTemperatureK() (float64, error) {
	if len(c.Devices) == 0 {
		return 0, fmt.Errorf("chain: no devices")
	}
	temp := 0.0
	gain := 1.0
	for _, d := range c.Devices {
		temp += d.TemperatureK / gain
		gain *= linkeng.DBToLin(d.GainDB)
	}
	return temp, nil
}

// CascadeNoiseFigureDB returns the cascade noise figure in dB referred
// to the chain input.
func (c *Chain) CascadeNoiseFigureDB() (float64, error) {
	temp, err := c.CascadeTemperatureK()
	if err != nil {
		return 0, err
	}
	return linkeng.TemperatureToNoiseFigureDB(temp, linkeng.ReferenceTemperatureK), nil
}

// SystemTemperatureK returns the full system noise temperature: the
// antenna temperature plus the receive chain's cascade temperature.
func (c *Chain) SystemTemperatureK(antennaTempK float64) (float64, error) {
	temp, err := c.CascadeTemperatureK()
	if err != nil {
		return 0, err
	}
	return antennaTempK + temp, nil
}
