package multigrid

import (
	"fmt"

	"github.com/notargets/levelgen/types"
	"github.com/notargets/levelgen/utils"
)

/*
Hierarchy is the ordered level list consumed by a multigrid solver, level 0 finest.
A[0] is the caller's operator and is shared, not copied. R[l] and P[l] transfer between
level l and l+1, so they hold TotalLevels-1 entries. Each level has a coloring pattern
and lattice extents. Coords is filled by the coordinate list driver, Masks by the
lattice driver.
*/
type Hierarchy struct {
	A           []utils.CSR
	R, P        []utils.CSR
	Patterns    [][]bool
	Dims        []types.Dims
	Coords      [][]types.Coord
	Masks       [][]byte
	TotalLevels int
}

func (h *Hierarchy) Unknowns(level int) int {
	nr, _ := h.A[level].Dims()
	return nr
}

func (lg *LevelGen) checkLimits(level int) (err error) {
	if lg.CoarsestUnknowns < 1 {
		return fmt.Errorf("coarsest unknowns must be positive, have %d: %w", lg.CoarsestUnknowns, ErrInvalidInput)
	}
	if level >= maxLevels {
		return fmt.Errorf("still above %d unknowns after %d levels: %w", lg.CoarsestUnknowns, level, ErrNoCoarsening)
	}
	return
}

/*
BuildHierarchy coarsens A0, whose DOFs are named by coords0 on a lattice of extents d,
until a level has CoarsestUnknowns or fewer unknowns. Each step builds R and P with
BuildSparseLevel and forms the next operator as 0.5*R*(A*P). Levels depend on each
other and are built in order. On error no hierarchy is returned.
*/
func (lg *LevelGen) BuildHierarchy(A0 utils.CSR, coords0 []types.Coord, d types.Dims) (h *Hierarchy, err error) {
	var (
		A        = A0
		coords   = coords0
		unknowns = len(coords0)
		level    int
	)
	lg.printf("building levels ...... \n")
	if unknowns == 0 {
		return nil, fmt.Errorf("level 0: %w", ErrEmptyLevel)
	}
	if !d.IsValid() {
		return nil, fmt.Errorf("lattice extents %v: %w", d, ErrInvalidInput)
	}
	if err = checkOperator(A0, unknowns); err != nil {
		return nil, err
	}
	h = &Hierarchy{
		A:      []utils.CSR{A0},
		Dims:   []types.Dims{d},
		Coords: [][]types.Coord{coords0},
	}
	for unknowns > lg.CoarsestUnknowns {
		if err = lg.checkLimits(level); err != nil {
			return nil, err
		}
		var lvl *SparseLevel
		if lvl, err = lg.BuildSparseLevel(A, coords); err != nil {
			return nil, fmt.Errorf("level %d: %w", level, err)
		}
		Ac := CoarseOperator(A, lvl.R, lvl.P)
		d = d.Coarsen()
		h.R = append(h.R, lvl.R)
		h.P = append(h.P, lvl.P)
		h.Patterns = append(h.Patterns, lvl.Pattern)
		h.A = append(h.A, Ac)
		h.Dims = append(h.Dims, d)
		h.Coords = append(h.Coords, lvl.Coords)
		lg.printf("level %d: %d unknowns -> %d unknowns, nnz(A) = %d\n",
			level, unknowns, len(lvl.Coords), Ac.NNZ())
		A, coords = Ac, lvl.Coords
		unknowns = len(coords)
		level++
	}
	h.Patterns = append(h.Patterns, lg.SparsePattern(coords))
	h.TotalLevels = len(h.A)
	lg.printf("build levels done\n")
	return
}

/*
BuildStructuredHierarchy is the lattice counterpart of BuildHierarchy: each step runs
BuildStructuredLevel on the current activity mask and threads the coarse mask and
extents into the next step.
*/
func (lg *LevelGen) BuildStructuredHierarchy(A0 utils.CSR, mask0 []byte, d types.Dims) (h *Hierarchy, err error) {
	var (
		A        = A0
		mask     = mask0
		table    utils.Index
		unknowns int
		level    int
	)
	lg.printf("building levels ...... \n")
	if !d.IsValid() || len(mask0) != d.Size() {
		return nil, fmt.Errorf("mask length %d does not match lattice %v: %w", len(mask0), d, ErrInvalidInput)
	}
	if table, unknowns, err = CompactMask(mask0); err != nil {
		return nil, fmt.Errorf("level 0: %w", err)
	}
	if err = checkOperator(A0, unknowns); err != nil {
		return nil, err
	}
	h = &Hierarchy{
		A:     []utils.CSR{A0},
		Dims:  []types.Dims{d},
		Masks: [][]byte{mask0},
	}
	for unknowns > lg.CoarsestUnknowns {
		if err = lg.checkLimits(level); err != nil {
			return nil, err
		}
		var lvl *StructuredLevel
		if lvl, err = lg.BuildStructuredLevel(A, mask, d); err != nil {
			return nil, fmt.Errorf("level %d: %w", level, err)
		}
		Ac := CoarseOperator(A, lvl.R, lvl.P)
		h.R = append(h.R, lvl.R)
		h.P = append(h.P, lvl.P)
		h.Patterns = append(h.Patterns, lvl.Pattern)
		h.A = append(h.A, Ac)
		h.Dims = append(h.Dims, lvl.Dims)
		h.Masks = append(h.Masks, lvl.Mask)
		lg.printf("level %d: %v %d unknowns -> %v %d unknowns, nnz(A) = %d\n",
			level, d, unknowns, lvl.Dims, lvl.Unknowns, Ac.NNZ())
		A, mask, d, table = Ac, lvl.Mask, lvl.Dims, lvl.IndexTable
		unknowns = lvl.Unknowns
		level++
	}
	h.Patterns = append(h.Patterns, lg.StructuredPattern(mask, table, d, unknowns))
	h.TotalLevels = len(h.A)
	lg.printf("build levels done\n")
	return
}

type LevelStats struct {
	Level    int
	Dims     types.Dims
	Unknowns int
	NNZ      int // Nonzeros of the level operator
	RNNZ     int // Nonzeros of the restriction to the next level, 0 on the coarsest
	PNNZ     int
}

// Stats reports per level sizes and the operator complexity sum(nnz(A_l)) / nnz(A_0)
func (h *Hierarchy) Stats() (stats []LevelStats, complexity float64) {
	var (
		total int
	)
	stats = make([]LevelStats, h.TotalLevels)
	for l := 0; l < h.TotalLevels; l++ {
		st := LevelStats{
			Level:    l,
			Dims:     h.Dims[l],
			Unknowns: h.Unknowns(l),
			NNZ:      h.A[l].NNZ(),
		}
		if l < len(h.R) {
			st.RNNZ, st.PNNZ = h.R[l].NNZ(), h.P[l].NNZ()
		}
		total += st.NNZ
		stats[l] = st
	}
	if h.TotalLevels > 0 && stats[0].NNZ > 0 {
		complexity = float64(total) / float64(stats[0].NNZ)
	}
	return
}

func (st LevelStats) String() string {
	return fmt.Sprintf("%3d %12v %10d %12d %12d %12d", st.Level, st.Dims, st.Unknowns, st.NNZ, st.RNNZ, st.PNNZ)
}
