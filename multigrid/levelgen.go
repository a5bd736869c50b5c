package multigrid

import (
	"fmt"

	"github.com/notargets/levelgen/utils"
)

const (
	// DefaultCoarsestUnknowns stops coarsening once a level has this many unknowns or fewer
	DefaultCoarsestUnknowns = 4096
	// RestrictionWeight is the fixed agglomeration weight of every R entry, not renormalized on boundaries
	RestrictionWeight = 0.125
	// ProlongationWeight is the injection weight of every P entry
	ProlongationWeight = 1.0
	// GalerkinScale scales R*A*P when forming the coarse operator
	GalerkinScale = 0.5
	// maxLevels is a defensive bound: non-negative int coordinates collapse to a single
	// cell within 63 halvings, so a threshold >= 1 is always reached before it
	maxLevels = 64
)

/*
LevelGen builds restriction and prolongation operators, coloring patterns and coarse
operators. Per cell work is split over ParallelDegree goroutines, assembly into the
sparse builders is sequential.
*/
type LevelGen struct {
	ParallelDegree   int // Number of go routines for per cell work, 0 uses all CPUs
	CoarsestUnknowns int
	Verbose          bool
}

func NewLevelGen(ParallelDegree int, verbose bool) (lg *LevelGen) {
	lg = &LevelGen{
		ParallelDegree:   ParallelDegree,
		CoarsestUnknowns: DefaultCoarsestUnknowns,
		Verbose:          verbose,
	}
	return
}

func (lg *LevelGen) printf(format string, args ...interface{}) {
	if lg.Verbose {
		fmt.Printf(format, args...)
	}
}

func checkOperator(A utils.CSR, unknowns int) (err error) {
	if A.IsEmpty() {
		return fmt.Errorf("operator is not allocated: %w", ErrInvalidInput)
	}
	nr, nc := A.Dims()
	switch {
	case nr != nc:
		err = fmt.Errorf("operator must be square, have %d x %d: %w", nr, nc, ErrInvalidInput)
	case nr != unknowns:
		err = fmt.Errorf("operator dimension %d does not match %d unknowns: %w", nr, unknowns, ErrInvalidInput)
	}
	return
}
