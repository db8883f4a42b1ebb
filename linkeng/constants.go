package linkeng

// Physical constants used throughout the package.
const (
	// SpeedOfLight is c in metres per second.
	SpeedOfLight = 299792458.0

	// Boltzmann is Boltzmann's constant k in joules per kelvin.
	Boltzmann = 1.380649e-23

	// BoltzmannDBW is Boltzmann's constant expressed in dBW/K/Hz, the
	// form used directly in dB-domain C/No budgets.
	BoltzmannDBW = -228.5991

	// EarthRadiusM is the Earth equatorial radius in metres.
	EarthRadiusM = 6378136.6

	// ReferenceTemperatureK is the standard noise reference temperature
	// (290 K) used for noise figure conversions.
	ReferenceTemperatureK = 290.0
)
