package linkeng

import "math"

// LinToDB converts a linear power ratio to decibels.
func LinToDB(value float64) float64 {
	return 10 * math.Log10(value)
}

// DBToLin converts decibels to a linear power ratio.
func DBToLin(db float64) float64 {
	return math.Pow(10, db/10)
}
