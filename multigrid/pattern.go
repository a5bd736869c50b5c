package multigrid

import (
	"github.com/notargets/levelgen/types"
	"github.com/notargets/levelgen/utils"
)

/*
StructuredPattern colors the active cells of a lattice level, true where i+j+k is even.
SparsePattern below colors the odd cells instead; consumers rely on each convention as is.
*/
func (lg *LevelGen) StructuredPattern(mask []byte, table utils.Index, d types.Dims,
	unknowns int) (pattern []bool) {
	pattern = make([]bool, unknowns)
	utils.ParallelFor3D(lg.ParallelDegree, d, func(i, j, k, index int) {
		if (i+j+k)%2 == 0 && mask[index] == 1 {
			pattern[table[index]] = true
		}
	})
	return
}

// SparsePattern colors each DOF of a coordinate list, true where i+j+k is odd
func (lg *LevelGen) SparsePattern(coords []types.Coord) (pattern []bool) {
	pattern = make([]bool, len(coords))
	utils.ParallelFor(lg.ParallelDegree, len(coords), func(i int) {
		pattern[i] = coords[i].Parity() == 1
	})
	return
}
