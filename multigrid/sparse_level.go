package multigrid

import (
	"fmt"

	"github.com/notargets/levelgen/types"
	"github.com/notargets/levelgen/utils"
)

// SparseLevel is one coarsening step of a level described by a coordinate list
type SparseLevel struct {
	R, P    utils.CSR     // R is coarse x fine, P is fine x coarse
	Pattern []bool        // Coloring of the fine level
	Coords  []types.Coord // Coarse coordinates, indexed by coarse DOF id
}

/*
BuildSparseLevel groups fine DOFs by halved coordinate. Coarse ids follow first
appearance in the fine list, and both builders are filled walking the fine DOFs in
that same order. Every fine DOF gets P = 1 and R = 1/8 regardless of how many fine
DOFs share its coarse DOF.
*/
func (lg *LevelGen) BuildSparseLevel(A utils.CSR, fine []types.Coord) (lvl *SparseLevel, err error) {
	var (
		coarse       []types.Coord
		fineToCoarse utils.Index
		nf           = len(fine)
	)
	if nf == 0 {
		err = fmt.Errorf("empty coordinate list: %w", ErrEmptyLevel)
		return
	}
	if err = checkOperator(A, nf); err != nil {
		return
	}
	if coarse, fineToCoarse, err = CompactCoords(fine); err != nil {
		return
	}
	nc := len(coarse)
	p := utils.NewDOK(nf, nc)
	for f := 0; f < nf; f++ {
		p.Set(f, fineToCoarse[f], ProlongationWeight)
	}
	r := utils.NewDOK(nc, nf)
	for f := 0; f < nf; f++ {
		r.Set(fineToCoarse[f], f, RestrictionWeight)
	}
	lvl = &SparseLevel{
		R:       r.ToCSR().SetReadOnly("R"),
		P:       p.ToCSR().SetReadOnly("P"),
		Pattern: lg.SparsePattern(fine),
		Coords:  coarse,
	}
	r.Clear()
	p.Clear()
	return
}
