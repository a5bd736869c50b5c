package multigrid

import "errors"

var (
	// ErrEmptyLevel is returned when a level compacts to zero unknowns
	ErrEmptyLevel = errors.New("level has no unknowns")
	// ErrInvalidInput covers mismatched operator, mask, coordinate and lattice sizes
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoCoarsening is returned when the hierarchy exceeds the number of possible halvings
	ErrNoCoarsening = errors.New("coarsening did not reduce the problem")
)
