package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides the random source for die faces.
// This allows us to inject different implementations for testing.
type Roller interface {
	// RollNumber returns a pseudo-random face value for a die with the
	// given upper bound. The value is in [1, max], or [0, max] when
	// canZero is set. A bound of zero or less is the degenerate die and
	// always yields 0.
	RollNumber(max int, canZero bool) (int, error)
}
