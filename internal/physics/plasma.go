package physics

import "math"

// interstellarField is the reference magnetic field strength in tesla used
// by LarmorRadius when no local field is measured.
const interstellarField = 1e-9

// LorentzForce returns q*v*B for a singly charged particle moving at speed
// v through magnetic field b.
func LorentzForce(v, b float64) float64 {
	return ElementaryCharge * v * b
}

// LarmorRadius returns the gyroradius m*v/(q*B) of a singly charged
// particle of mass m and speed v in the reference interstellar field.
func LarmorRadius(m, v float64) float64 {
	return m * v / (ElementaryCharge * interstellarField)
}

// MagnetopauseRadius returns the standoff scale (B^2/(2*mu0*p))^(1/6) for
// surface field b against dynamic pressure p.
func MagnetopauseRadius(b, p float64) float64 {
	return math.Pow(b*b/(2*Mu0*p), 1.0/6.0)
}
