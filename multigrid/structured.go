package multigrid

import (
	"fmt"

	"github.com/notargets/levelgen/types"
	"github.com/notargets/levelgen/utils"
)

// StructuredLevel is one coarsening step of a lattice level described by an activity mask
type StructuredLevel struct {
	R, P       utils.CSR   // R is coarse x fine, P is fine x coarse
	Pattern    []bool      // Coloring of the fine level
	Mask       []byte      // Coarse activity mask
	IndexTable utils.Index // Coarse cell -> coarse DOF id
	Dims       types.Dims  // Coarse lattice extents
	Unknowns   int         // Coarse unknown count
}

/*
BuildStructuredLevel agglomerates each 2x2x2 block of fine cells into one coarse cell.
Every (active fine, active coarse) pair gets R = 1/8 and P = 1. Blocks cut by the
lattice boundary or by inactive cells keep the 1/8 weight, so their R rows sum to less
than one.
*/
func (lg *LevelGen) BuildStructuredLevel(A utils.CSR, mask []byte, d types.Dims) (lvl *StructuredLevel, err error) {
	var (
		table          utils.Index
		unknowns       int
		cd             = d.Coarsen()
		coarseMask     []byte
		coarseTable    utils.Index
		coarseUnknowns int
	)
	if !d.IsValid() || len(mask) != d.Size() {
		err = fmt.Errorf("mask length %d does not match lattice %v: %w", len(mask), d, ErrInvalidInput)
		return
	}
	if table, unknowns, err = CompactMask(mask); err != nil {
		return
	}
	if err = checkOperator(A, unknowns); err != nil {
		return
	}
	coarseMask = lg.CoarsenMask(mask, d)
	if coarseTable, coarseUnknowns, err = CompactMask(coarseMask); err != nil {
		return
	}
	r := utils.NewDOK(coarseUnknowns, unknowns)
	p := utils.NewDOK(unknowns, coarseUnknowns)
	// Sequential, the builders take one writer
	for k := 0; k < cd.Nk; k++ {
		for j := 0; j < cd.Nj; j++ {
			for i := 0; i < cd.Ni; i++ {
				index := cd.Index(i, j, k)
				if coarseMask[index] != 1 {
					continue
				}
				ic := coarseTable[index]
				for kk := 0; kk <= 1; kk++ {
					for jj := 0; jj <= 1; jj++ {
						for ii := 0; ii <= 1; ii++ {
							iii, jjj, kkk := 2*i+ii, 2*j+jj, 2*k+kk
							if !d.Contains(iii, jjj, kkk) {
								continue
							}
							fineIndex := d.Index(iii, jjj, kkk)
							if mask[fineIndex] == 1 {
								r.Set(ic, table[fineIndex], RestrictionWeight)
								p.Set(table[fineIndex], ic, ProlongationWeight)
							}
						}
					}
				}
			}
		}
	}
	lvl = &StructuredLevel{
		R:          r.ToCSR().SetReadOnly("R"),
		P:          p.ToCSR().SetReadOnly("P"),
		Pattern:    lg.StructuredPattern(mask, table, d, unknowns),
		Mask:       coarseMask,
		IndexTable: coarseTable,
		Dims:       cd,
		Unknowns:   coarseUnknowns,
	}
	r.Clear()
	p.Clear()
	return
}
