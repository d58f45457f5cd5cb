package physics

import "math"

// RocheLimit returns the rigid-body Roche limit (9m/(4*pi*rho))^(1/3) for
// a primary of mass m and a satellite of density rho.
func RocheLimit(m, rho float64) float64 {
	return math.Cbrt(9 * m / (4 * math.Pi * rho))
}

// OrbitalPeriod returns 2*pi*sqrt(a^3/(G*m)) for semi-major axis a around
// central mass m.
func OrbitalPeriod(a, m float64) float64 {
	return 2 * math.Pi * math.Sqrt(a*a*a/(G*m))
}

// KeplerThirdLaw returns the semi-major axis (G*m*p^2/(4*pi^2))^(1/3)
// for orbital period p around central mass m.
func KeplerThirdLaw(p, m float64) float64 {
	return math.Cbrt(G * m * p * p / (4 * math.Pi * math.Pi))
}

// SynodicPeriod returns 1/|1/p1 - 1/p2| for two orbital periods.
// Infinite when the periods are equal.
func SynodicPeriod(p1, p2 float64) float64 {
	return 1 / math.Abs(1/p1-1/p2)
}

// DynamicalTime returns the free-fall time sqrt(3*pi/(16*G*rho)) of a
// region with mean density rho.
func DynamicalTime(rho float64) float64 {
	return math.Sqrt(3 * math.Pi / (16 * G * rho))
}

// MachNumber returns v divided by the reference sound speed.
func MachNumber(v float64) float64 {
	return v / SoundSpeedAir
}

// GravitationalBindingEnergy returns 3*G*m^2/(5*r), the binding energy of
// a uniform sphere of mass m and radius r.
func GravitationalBindingEnergy(m, r float64) float64 {
	return 3 * G * m * m / (5 * r)
}

// Torque returns force times lever arm.
func Torque(f, lever float64) float64 {
	return f * lever
}

// AngularMomentum returns m*v*r for a point mass on a circular path.
func AngularMomentum(m, v, r float64) float64 {
	return m * v * r
}
