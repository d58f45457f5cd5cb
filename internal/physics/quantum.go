package physics

import "math"

// PlanckEnergy returns the photon energy E = h*f in joules for
// frequency f in Hz.
func PlanckEnergy(f float64) float64 {
	return Planck * f
}

// BoltzmannFactor returns exp(-E/(kB*T)), the relative occupation of a
// state of energy E at temperature T. Underflows to zero for E >> kB*T.
func BoltzmannFactor(e, t float64) float64 {
	return math.Exp(-e / (Boltzmann * t))
}

// ComptonWavelength returns h/(m*c) in meters for a particle of mass m.
func ComptonWavelength(m float64) float64 {
	return Planck / (m * C)
}

// DeBroglieWavelength returns h/(m*v) in meters for a particle of mass m
// moving at speed v.
func DeBroglieWavelength(m, v float64) float64 {
	return Planck / (m * v)
}

// HawkingTemperature returns the Hawking temperature of a black hole of
// initial mass m after evaporating for time t seconds. The mass at time t
// follows M(t) = (m^3 - 3*alpha*t)^(1/3) with alpha the Page evaporation
// constant; the temperature is then hbar*c^3/(8*pi*G*kB*M).
func HawkingTemperature(m, t float64) float64 {
	const alpha = Hbar * C * C * C * C / (15360 * math.Pi * G * G)
	mt := math.Cbrt(m*m*m - 3*alpha*t)
	return Hbar * C * C * C / (8 * math.Pi * G * Boltzmann * mt)
}
