package multigrid

import (
	"fmt"

	"github.com/notargets/levelgen/types"
	"github.com/notargets/levelgen/utils"
)

/*
CompactMask maps the active cells of a flattened activity mask onto contiguous DOF ids
with a running sum:

	table[0] = mask[0] - 1
	table[i] = table[i-1] + mask[i]

Active cell n gets id table[n]. Inactive cells hold the running value and must not be
read. The sum is order dependent and runs sequentially.
*/
func CompactMask(mask []byte) (table utils.Index, unknowns int, err error) {
	if len(mask) == 0 {
		err = fmt.Errorf("empty activity mask: %w", ErrEmptyLevel)
		return
	}
	table = utils.NewIndex(len(mask))
	for i, m := range mask {
		if m > 1 {
			err = fmt.Errorf("mask value %d at cell %d, must be 0 or 1: %w", m, i, ErrInvalidInput)
			return nil, 0, err
		}
		if i == 0 {
			table[0] = int(m) - 1
			continue
		}
		table[i] = table[i-1] + int(m)
	}
	unknowns = table.Last() + 1
	if unknowns <= 0 {
		err = fmt.Errorf("no active cells among %d: %w", len(mask), ErrEmptyLevel)
		return nil, 0, err
	}
	return
}

/*
CompactCoords halves every fine coordinate and assigns coarse ids in the order each
coarse coordinate is first seen while walking the fine list. The returned coarse list is
indexed by coarse id, fineToCoarse[f] is the coarse id of fine DOF f. The map is mutated
in order, so this runs on a single goroutine.
*/
func CompactCoords(fine []types.Coord) (coarse []types.Coord, fineToCoarse utils.Index, err error) {
	if len(fine) == 0 {
		err = fmt.Errorf("empty coordinate list: %w", ErrEmptyLevel)
		return
	}
	var (
		ids = make(map[types.Coord]int, len(fine)/4+1)
	)
	fineToCoarse = utils.NewIndex(len(fine))
	for f, c := range fine {
		if c.IsNegative() {
			err = fmt.Errorf("negative coordinate %v for DOF %d: %w", c, f, ErrInvalidInput)
			return nil, nil, err
		}
		cc := c.Coarsen()
		id, found := ids[cc]
		if !found {
			id = len(coarse)
			ids[cc] = id
			coarse = append(coarse, cc)
		}
		fineToCoarse[f] = id
	}
	return
}

// CoarsenMask marks a coarse cell active when any of the fine cells it covers is active
func (lg *LevelGen) CoarsenMask(mask []byte, d types.Dims) (coarseMask []byte) {
	var (
		cd = d.Coarsen()
	)
	coarseMask = make([]byte, cd.Size())
	utils.ParallelFor3D(lg.ParallelDegree, cd, func(i, j, k, index int) {
		for kk := 2 * k; kk < 2*k+2 && kk < d.Nk; kk++ {
			for jj := 2 * j; jj < 2*j+2 && jj < d.Nj; jj++ {
				for ii := 2 * i; ii < 2*i+2 && ii < d.Ni; ii++ {
					if mask[d.Index(ii, jj, kk)] == 1 {
						coarseMask[index] = 1
						return
					}
				}
			}
		}
	})
	return
}

// CoordsFromMask lists the active cells in flattened order, so list position equals DOF id
func CoordsFromMask(mask []byte, d types.Dims) (coords []types.Coord, err error) {
	if len(mask) != d.Size() {
		err = fmt.Errorf("mask length %d does not match lattice %v: %w", len(mask), d, ErrInvalidInput)
		return
	}
	for index, m := range mask {
		if m == 1 {
			coords = append(coords, d.Coord(index))
		}
	}
	return
}
