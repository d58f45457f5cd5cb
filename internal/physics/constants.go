package physics

import "math"

// Physical constants, SI units unless noted otherwise.
const (
	// G is the Newtonian gravitational constant, m^3 kg^-1 s^-2.
	G = 6.67430e-11

	// C is the speed of light in vacuum, m/s.
	C = 299792458.0

	// Planck is the Planck constant, J s.
	Planck = 6.62607015e-34

	// Hbar is the reduced Planck constant, J s.
	Hbar = Planck / (2 * math.Pi)

	// Boltzmann is the Boltzmann constant, J/K.
	Boltzmann = 1.380649e-23

	// StefanBoltzmann is the Stefan-Boltzmann constant, W m^-2 K^-4.
	StefanBoltzmann = 5.670374419e-8

	// ElementaryCharge is the elementary charge, C.
	ElementaryCharge = 1.602176634e-19

	// HydrogenMass is the mass of a hydrogen atom, kg.
	HydrogenMass = 1.6735575e-27

	// Mu0 is the vacuum permeability, N A^-2.
	Mu0 = 4 * math.Pi * 1e-7

	// SolarMass is one solar mass, kg.
	SolarMass = 1.989e30

	// SolarLuminosity is the solar luminosity, W.
	SolarLuminosity = 3.828e26

	// Parsec is one parsec, m.
	Parsec = 3.0856775814913673e16

	// Megaparsec is one megaparsec, m.
	Megaparsec = Parsec * 1e6

	// LightyearsPerParsec converts parsecs to light years.
	LightyearsPerParsec = 3.26156

	// HubbleConstant is H0 = 70 km/s/Mpc expressed in s^-1.
	HubbleConstant = 70.0e3 / Megaparsec

	// SoundSpeedAir is the reference sound speed, m/s.
	SoundSpeedAir = 343.0
)
