package derive

import (
	"math"

	"github.com/astroscore/astroscore/internal/physics"
)

// Metric names, in the order they appear in the derived mapping.
const (
	KeySchwarzschildRadius      = "schwarzschild_radius"
	KeyPlanckEnergy             = "planck_energy"
	KeyHawkingTemperature       = "hawking_temperature"
	KeyDetectedPeaks            = "detected_peaks"
	KeyStrainAmplitude          = "strain_amplitude"
	KeyTotalEnergy              = "total_energy"
	KeyMainSequenceLifetime     = "main_sequence_lifetime"
	KeyWhiteDwarfRadius         = "white_dwarf_radius"
	KeyNeutronStarRadius        = "neutron_star_radius"
	KeyLuminosity               = "luminosity"
	KeySupernovaEnergy          = "supernova_energy"
	KeyFinalCoreMass            = "final_core_mass"
	KeyFinalEnvelopeMass        = "final_envelope_mass"
	KeyPlanckSpectrum           = "planck_spectrum"
	KeyCMBPowerSpectrum         = "cmb_power_spectrum"
	KeyAngularDiameterDistance  = "angular_diameter_distance"
	KeySoundHorizon             = "sound_horizon"
	KeyReionizationHistory      = "reionization_history"
	KeyDarkMatterDensityProfile = "dark_matter_density_profile"
	KeyRotationCurveVelocity    = "rotation_curve_velocity"
	KeyDarkMatterMassWithin     = "dark_matter_mass_within_radius"
	KeyLensingDeflectionAngle   = "lensing_deflection_angle"
	KeyTransitDepth             = "transit_depth"
	KeyRadialVelocityAmplitude  = "radial_velocity_amplitude"
	KeyHabitableZoneInner       = "habitable_zone_inner"
	KeyHabitableZoneOuter       = "habitable_zone_outer"
	KeyPlanetEquilibriumTemp    = "planet_equilibrium_temperature"
	KeyTransitDuration          = "transit_duration"
)

// Keys lists all metric names in canonical order. Consumers look metrics up
// by name; the order only fixes iteration for exports and error reporting.
var Keys = []string{
	KeySchwarzschildRadius,
	KeyPlanckEnergy,
	KeyHawkingTemperature,
	KeyDetectedPeaks,
	KeyStrainAmplitude,
	KeyTotalEnergy,
	KeyMainSequenceLifetime,
	KeyWhiteDwarfRadius,
	KeyNeutronStarRadius,
	KeyLuminosity,
	KeySupernovaEnergy,
	KeyFinalCoreMass,
	KeyFinalEnvelopeMass,
	KeyPlanckSpectrum,
	KeyCMBPowerSpectrum,
	KeyAngularDiameterDistance,
	KeySoundHorizon,
	KeyReionizationHistory,
	KeyDarkMatterDensityProfile,
	KeyRotationCurveVelocity,
	KeyDarkMatterMassWithin,
	KeyLensingDeflectionAngle,
	KeyTransitDepth,
	KeyRadialVelocityAmplitude,
	KeyHabitableZoneInner,
	KeyHabitableZoneOuter,
	KeyPlanetEquilibriumTemp,
	KeyTransitDuration,
}

// metricFunc computes one metric from a record and the time scalar.
// Only the Hawking temperature metric consumes the time scalar.
type metricFunc func(rec *Record, t float64) float64

// metricFns maps each metric name to its formula combination. The literal
// scaling constants below are calibrated against the reference table and
// must not be changed independently of it.
var metricFns = map[string]metricFunc{
	// Base radius from the mass, corrected for gravitational time dilation
	// at that radius.
	KeySchwarzschildRadius: func(rec *Record, _ float64) float64 {
		rs := physics.SchwarzschildRadius(rec.Mass)
		return physics.GravitationalTimeDilation(rec.Mass, rs)
	},

	// Photon energy at the characteristic velocity scale, weighted by the
	// thermal occupation at the body's temperature.
	KeyPlanckEnergy: func(rec *Record, _ float64) float64 {
		e := physics.PlanckEnergy(rec.VelocityConstant)
		return physics.BoltzmannFactor(e, rec.Temperature)
	},

	KeyHawkingTemperature: func(rec *Record, t float64) float64 {
		return physics.HawkingTemperature(rec.Mass, t)
	},

	// Count of prior coordinate samples boosted by the Lorentz factor,
	// truncated (not rounded) to an integer count. math.Trunc keeps NaN
	// from a bad velocity propagating instead of silently converting.
	KeyDetectedPeaks: func(rec *Record, _ float64) float64 {
		peaks := float64(len(rec.PreviousCoordinates))
		return math.Trunc(peaks * physics.LorentzFactor(rec.VelocityConstant))
	},

	KeyStrainAmplitude: func(rec *Record, _ float64) float64 {
		strain := rec.VelocityConstant * rec.Gravity / rec.Mass
		return physics.GravitationalWaveStrain(strain, rec.VelocityConstant)
	},

	// Kinetic plus potential energy, summed directly.
	KeyTotalEnergy: func(rec *Record, _ float64) float64 {
		kinetic := 0.5 * rec.Mass * rec.VelocityConstant * rec.VelocityConstant
		potential := -physics.G * rec.Mass / rec.Radius
		return kinetic + potential
	},

	KeyMainSequenceLifetime: func(rec *Record, _ float64) float64 {
		lifetime := physics.StellarLifetime(rec.Mass, rec.Luminosity)
		return lifetime * physics.HubbleParameter(rec.VelocityConstant)
	},

	KeyWhiteDwarfRadius: func(rec *Record, _ float64) float64 {
		r := physics.ChandrasekharLimit(rec.Mass, rec.VelocityConstant)
		return r * physics.ComptonWavelength(rec.Mass)
	},

	KeyNeutronStarRadius: func(rec *Record, _ float64) float64 {
		r := physics.GravitationalWaveStrain(rec.Mass, rec.VelocityConstant)
		return r / physics.LorentzFactor(rec.VelocityConstant)
	},

	KeyLuminosity: func(rec *Record, _ float64) float64 {
		teff := physics.EffectiveTemperature(rec.Mass, rec.VelocityConstant)
		lum := physics.StefanBoltzmann * teff * teff * teff * teff * rec.Mass * rec.Mass
		return lum * physics.BoltzmannFactor(lum, rec.Temperature)
	},

	KeySupernovaEnergy: func(rec *Record, _ float64) float64 {
		virial := physics.VirialTheorem(rec.Mass, rec.VelocityConstant)
		angmom := physics.SpecificAngularMomentum(rec.Mass, rec.VelocityConstant)
		energy := virial * angmom
		return energy * physics.GravitationalRedshift(rec.Mass, energy)
	},

	KeyFinalCoreMass: func(rec *Record, _ float64) float64 {
		core := physics.JeanMass(rec.Mass, rec.VelocityConstant)
		return core * physics.EscapeVelocity(rec.Mass, rec.Radius)
	},

	KeyFinalEnvelopeMass: func(rec *Record, _ float64) float64 {
		envelope := physics.RocheLimit(rec.Mass, rec.VelocityConstant)
		return envelope / physics.CriticalDensity(rec.Mass, rec.Radius)
	},

	KeyPlanckSpectrum: func(rec *Record, _ float64) float64 {
		spectrum := physics.BlackbodySpectrum(rec.Mass, rec.VelocityConstant)
		return spectrum * physics.HubbleParameter(rec.VelocityConstant)
	},

	KeyCMBPowerSpectrum: func(rec *Record, _ float64) float64 {
		power := physics.GravitationalWaveFrequency(rec.Mass, rec.VelocityConstant)
		return power * physics.FluxDensity(rec.Mass)
	},

	KeyAngularDiameterDistance: func(rec *Record, _ float64) float64 {
		lumDist := physics.LuminosityDistance(rec.Mass, rec.VelocityConstant)
		d := lumDist / physics.HubbleParameter(rec.VelocityConstant)
		return d * physics.ParsecToLightyear(d)
	},

	KeySoundHorizon: func(rec *Record, _ float64) float64 {
		horizon := physics.BlackbodySpectrum(rec.Mass, rec.VelocityConstant)
		return horizon * physics.VirialTemperature(rec.Mass)
	},

	// Reads the record's LorentzFactor field directly; see Record.
	KeyReionizationHistory: func(rec *Record, _ float64) float64 {
		history := rec.LorentzFactor * 0.5
		return history * physics.EscapeFraction(rec.Mass)
	},

	KeyDarkMatterDensityProfile: func(rec *Record, _ float64) float64 {
		profile := rec.Gravity * 0.3 / rec.VelocityConstant
		return profile * physics.CriticalDensity(rec.Mass, rec.Radius)
	},

	KeyRotationCurveVelocity: func(rec *Record, _ float64) float64 {
		v := rec.VelocityConstant * 200 / rec.Gravity
		return v * physics.MachNumber(rec.VelocityConstant)
	},

	KeyDarkMatterMassWithin: func(rec *Record, _ float64) float64 {
		mass := rec.Mass * 1e12 / physics.SolarMass
		return mass * physics.GravitationalBindingEnergy(rec.Mass, rec.Radius)
	},

	KeyLensingDeflectionAngle: func(rec *Record, _ float64) float64 {
		angle := rec.Gravity * 1.0 / rec.VelocityConstant
		return angle * physics.HubbleLawVelocity(rec.Mass)
	},

	KeyTransitDepth: func(rec *Record, _ float64) float64 {
		depth := rec.Mass * 0.01 / physics.SolarMass
		return depth * physics.LorentzForce(rec.VelocityConstant, rec.Mass)
	},

	KeyRadialVelocityAmplitude: func(rec *Record, _ float64) float64 {
		amplitude := rec.VelocityConstant * 10 / rec.Gravity
		return amplitude * physics.LarmorRadius(rec.Mass, rec.VelocityConstant)
	},

	KeyHabitableZoneInner: func(rec *Record, _ float64) float64 {
		return 0.95 * physics.LorentzFactor(rec.VelocityConstant)
	},

	KeyHabitableZoneOuter: func(rec *Record, _ float64) float64 {
		return 1.37 * physics.LorentzFactor(rec.VelocityConstant)
	},

	KeyPlanetEquilibriumTemp: func(rec *Record, _ float64) float64 {
		return 288 * (1 - physics.EscapeFraction(rec.Mass))
	},

	KeyTransitDuration: func(rec *Record, _ float64) float64 {
		return 0.5 * physics.GravitationalRedshift(rec.Mass, rec.VelocityConstant)
	},
}
