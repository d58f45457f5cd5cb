package physics

import "math"

// Flat LCDM density parameters used by HubbleParameter.
const (
	omegaMatter = 0.3
	omegaLambda = 0.7
)

// HubbleParameter returns the Hubble parameter in s^-1 at the epoch seen by
// a source receding at speed v, H0 * sqrt(Om*(1+z)^3 + OL) with z = v/c.
func HubbleParameter(v float64) float64 {
	z1 := 1 + v/C
	return HubbleConstant * math.Sqrt(omegaMatter*z1*z1*z1+omegaLambda)
}

// HubbleLawVelocity returns the recession velocity H0*d for a comoving
// distance d in meters.
func HubbleLawVelocity(d float64) float64 {
	return HubbleConstant * d
}

// RedshiftVelocity returns the recession velocity c*z for redshift z.
func RedshiftVelocity(z float64) float64 {
	return C * z
}

// LuminosityDistance returns sqrt(L/(4*pi*F)), the distance at which a
// source of luminosity lum produces the observed flux.
func LuminosityDistance(lum, flux float64) float64 {
	return math.Sqrt(lum / (4 * math.Pi * flux))
}

// ParsecToLightyear converts a distance in parsecs to light years.
func ParsecToLightyear(d float64) float64 {
	return d * LightyearsPerParsec
}

// CriticalDensity returns the mean enclosed density 3m/(4*pi*r^3) against
// which gravitational collapse within radius r is judged.
func CriticalDensity(m, r float64) float64 {
	return 3 * m / (4 * math.Pi * r * r * r)
}

// BlackbodySpectrum returns the Planck spectral radiance
// (2*h*nu^3/c^2) / (exp(h*nu/(kB*t)) - 1) at frequency nu and
// temperature t. Underflows to zero deep in the Wien tail.
func BlackbodySpectrum(nu, t float64) float64 {
	return 2 * Planck * nu * nu * nu / (C * C) /
		math.Expm1(Planck*nu/(Boltzmann*t))
}

// VirialTemperature returns the virial temperature in kelvin of a halo of
// mass m, using the standard scaling 3.6e5 K at 1e12 Msun.
func VirialTemperature(m float64) float64 {
	return 3.6e5 * math.Pow(m/(1e12*SolarMass), 2.0/3.0)
}

// FluxDensity returns the flux lum/(4*pi*d^2) of a source of luminosity
// lum at the reference distance of 10 parsecs.
func FluxDensity(lum float64) float64 {
	const d = 10 * Parsec
	return lum / (4 * math.Pi * d * d)
}
