package physics

import "math"

// SchwarzschildRadius returns the Schwarzschild radius 2Gm/c^2 in meters
// for a body of mass m in kg.
func SchwarzschildRadius(m float64) float64 {
	return 2 * G * m / (C * C)
}

// GravitationalTimeDilation returns the quantity x as measured by a distant
// observer when x originates at radial coordinate x from a body of mass m:
// x * sqrt(1 - rs/x). At x equal to the Schwarzschild radius the result is
// exactly zero; inside it the result is NaN.
func GravitationalTimeDilation(m, x float64) float64 {
	return x * math.Sqrt(1-SchwarzschildRadius(m)/x)
}

// GravitationalRedshift returns the redshift z of a photon climbing out of
// the potential well of mass m from radial coordinate r:
// 1/sqrt(1 - rs/r) - 1.
func GravitationalRedshift(m, r float64) float64 {
	return 1/math.Sqrt(1-SchwarzschildRadius(m)/r) - 1
}

// LorentzFactor returns gamma = 1/sqrt(1 - v^2/c^2) for speed v in m/s.
// NaN for v > c.
func LorentzFactor(v float64) float64 {
	b := v / C
	return 1 / math.Sqrt(1-b*b)
}

// DopplerShift returns the relativistic Doppler factor
// sqrt((c+v)/(c-v)) for a source approaching at speed v.
func DopplerShift(v float64) float64 {
	return math.Sqrt((C + v) / (C - v))
}

// GravitationalWaveStrain returns the characteristic strain amplitude
// 2Gmv^2/(c^4 D) of a source of mass m moving at speed v, with the
// source placed at the reference distance D of one megaparsec.
func GravitationalWaveStrain(m, v float64) float64 {
	return 2 * G * m * v * v / (C * C * C * C * Megaparsec)
}

// GravitationalWaveFrequency returns the orbital gravitational-wave
// frequency v^3/(2*pi*G*m) of a binary with total mass m and orbital
// speed v.
func GravitationalWaveFrequency(m, v float64) float64 {
	return v * v * v / (2 * math.Pi * G * m)
}
