package derive

// Coordinate is one previously observed sky position. Only the number of
// samples matters to derivation (the detected-peaks metric); the values are
// carried for callers that want them.
type Coordinate struct {
	RA  float64 `yaml:"ra"`
	Dec float64 `yaml:"dec"`
}

// Record holds the physical parameters of one observed body. It is
// read-only for the duration of a pipeline run and has no identity beyond
// value equality.
type Record struct {
	// Mass in kg.
	Mass float64 `yaml:"mass"`

	// VelocityConstant is the body's characteristic velocity in m/s.
	VelocityConstant float64 `yaml:"velocity_constant"`

	// Temperature in kelvin.
	Temperature float64 `yaml:"temperature"`

	// Radius in meters.
	Radius float64 `yaml:"radius"`

	// Gravity is the surface gravitational acceleration in m/s^2.
	Gravity float64 `yaml:"gravity"`

	// Luminosity in watts.
	Luminosity float64 `yaml:"luminosity"`

	// LorentzFactor is a caller-supplied gamma read directly by the
	// reionization-history metric. Every other metric derives gamma from
	// VelocityConstant instead; the reference table is calibrated against
	// this field being used as-is, so it is not replaced with the formula.
	LorentzFactor float64 `yaml:"lorentz_factor"`

	// PreviousCoordinates are earlier sky positions of the same body.
	PreviousCoordinates []Coordinate `yaml:"previous_coordinates"`
}
