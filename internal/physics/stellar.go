package physics

import "math"

// StellarLifetime returns the main-sequence lifetime in years of a star of
// mass m and luminosity lum, scaled from the 10 Gyr solar lifetime:
// 1e10 * (m/Msun) / (L/Lsun).
func StellarLifetime(m, lum float64) float64 {
	return 1e10 * (m / SolarMass) / (lum / SolarLuminosity)
}

// EffectiveTemperature returns the blackbody effective temperature
// (L / (4*pi*r^2*sigma))^(1/4) of a body with luminosity lum and radius r.
func EffectiveTemperature(lum, r float64) float64 {
	return math.Pow(lum/(4*math.Pi*r*r*StefanBoltzmann), 0.25)
}

// ChandrasekharLimit returns the mass m expressed as a fraction of the
// Chandrasekhar limit 1.456*(2/mue)^2 Msun for mean molecular weight per
// electron mue.
func ChandrasekharLimit(m, mue float64) float64 {
	limit := 1.456 * (2 / mue) * (2 / mue) * SolarMass
	return m / limit
}

// JeanMass returns the Jeans mass (5*kB*t/(G*mH))^(3/2) * (3/(4*pi*rho))^(1/2)
// for gas temperature t and density rho.
func JeanMass(t, rho float64) float64 {
	return math.Pow(5*Boltzmann*t/(G*HydrogenMass), 1.5) *
		math.Sqrt(3/(4*math.Pi*rho))
}

// VirialTheorem returns the virial kinetic energy m*v^2/2 of a bound
// system of mass m with velocity dispersion v.
func VirialTheorem(m, v float64) float64 {
	return 0.5 * m * v * v
}

// SpecificAngularMomentum returns G*m/v, the specific angular momentum of
// a circular orbit with speed v around mass m.
func SpecificAngularMomentum(m, v float64) float64 {
	return G * m / v
}

// EscapeVelocity returns sqrt(2*G*m/r) for a body of mass m and radius r.
func EscapeVelocity(m, r float64) float64 {
	return math.Sqrt(2 * G * m / r)
}

// EscapeFraction returns the fraction of ionizing photons escaping a source
// of mass m, modeled as exp(-m/Msun).
func EscapeFraction(m float64) float64 {
	return math.Exp(-m / SolarMass)
}

// RadiativePressure returns the radiation pressure 4*sigma*T^4/(3*c) of a
// photon gas at temperature t.
func RadiativePressure(t float64) float64 {
	t2 := t * t
	return 4 * StefanBoltzmann * t2 * t2 / (3 * C)
}
