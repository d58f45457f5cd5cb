package score

// Defaults returns the calibrated built-in tables, one entry per derived
// metric. The values are calibration data, not first-principles physics;
// they pair with the literal scaling constants inside the derivation stage
// and must only change together with them.
func Defaults() Tables {
	return Tables{
		Reference: map[string]float64{
			"schwarzschild_radius":           1.0e-3,
			"planck_energy":                  2.0e-3,
			"hawking_temperature":            3.0e-3,
			"detected_peaks":                 10,
			"strain_amplitude":               1.0e-21,
			"total_energy":                   1.0e-6,
			"main_sequence_lifetime":         1.0e10,
			"white_dwarf_radius":             7000,
			"neutron_star_radius":            10,
			"luminosity":                     1.0,
			"supernova_energy":               1.0e44,
			"final_core_mass":                1.4,
			"final_envelope_mass":            0.1,
			"planck_spectrum":                1.0e-18,
			"cmb_power_spectrum":             1.0e-9,
			"angular_diameter_distance":      1.0e3,
			"sound_horizon":                  1.0e2,
			"reionization_history":           0.5,
			"dark_matter_density_profile":    0.3,
			"rotation_curve_velocity":        200,
			"dark_matter_mass_within_radius": 1.0e12,
			"lensing_deflection_angle":       1.0,
			"transit_depth":                  0.01,
			"radial_velocity_amplitude":      10,
			"habitable_zone_inner":           0.95,
			"habitable_zone_outer":           1.37,
			"planet_equilibrium_temperature": 288,
			"transit_duration":               0.5,
		},
		Weights: map[string]float64{
			"schwarzschild_radius":           1.0,
			"planck_energy":                  1.0,
			"hawking_temperature":            1.0,
			"detected_peaks":                 2.0,
			"strain_amplitude":               1.5,
			"total_energy":                   1.2,
			"main_sequence_lifetime":         2.0,
			"white_dwarf_radius":             1.0,
			"neutron_star_radius":            1.0,
			"luminosity":                     1.5,
			"supernova_energy":               2.5,
			"final_core_mass":                1.5,
			"final_envelope_mass":            1.5,
			"planck_spectrum":                1.0,
			"cmb_power_spectrum":             1.2,
			"angular_diameter_distance":      2.0,
			"sound_horizon":                  2.0,
			"reionization_history":           1.0,
			"dark_matter_density_profile":    1.0,
			"rotation_curve_velocity":        1.2,
			"dark_matter_mass_within_radius": 2.0,
			"lensing_deflection_angle":       1.0,
			"transit_depth":                  1.5,
			"radial_velocity_amplitude":      1.5,
			"habitable_zone_inner":           1.0,
			"habitable_zone_outer":           1.0,
			"planet_equilibrium_temperature": 1.0,
			"transit_duration":               1.5,
		},
	}
}
