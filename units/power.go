package units

import (
	"fmt"
	"math"
)

// Power is stored internally in watts.
type Power struct {
	w float64
}

// PowerFromW constructs a Power from watts.
func PowerFromW(w float64) Power { return Power{w: w} }

// PowerFromKW constructs a Power from kilowatts.
func PowerFromKW(kw float64) Power { return Power{w: kw * 1000} }

// PowerFromMW constructs a Power from milliwatts.
func PowerFromMW(mw float64) Power { return Power{w: mw / 1000} }

// PowerFromDBW constructs a Power from decibel-watts.
func PowerFromDBW(dbw float64) Power {
	return Power{w: math.Pow(10, dbw/10)}
}

// PowerFromDBm constructs a Power from decibel-milliwatts.
func PowerFromDBm(dbm float64) Power {
	return Power{w: math.Pow(10, (dbm-30)/10)}
}

// W returns the power in watts.
func (p Power) W() float64 { return p.w }

// KW returns the power in kilowatts.
func (p Power) KW() float64 { return p.w / 1000 }

// MW returns the power in milliwatts.
func (p Power) MW() float64 { return p.w * 1000 }

// DBW returns the power in decibel-watts.
func (p Power) DBW() float64 { return 10 * math.Log10(p.w) }

// DBm returns the power in decibel-milliwatts.
func (p Power) DBm() float64 { return 10*math.Log10(p.w) + 30 }

func (p Power) String() string {
	return fmt.Sprintf("%.6g W", p.w)
}
