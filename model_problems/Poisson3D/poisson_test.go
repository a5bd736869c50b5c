package Poisson3D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/levelgen/types"
)

func TestPoisson(t *testing.T) {
	{ // Box: interior rows sum to zero, boundary rows keep the Dirichlet surplus
		d := types.NewDims(4, 4, 4)
		p, err := NewProblem(BOX, d)
		require.NoError(t, err)
		assert.Equal(t, 64, p.Unknowns())
		nr, nc := p.A.Dims()
		assert.Equal(t, 64, nr)
		assert.Equal(t, 64, nc)
		sums := p.A.RowSums()
		assert.Equal(t, 0., sums[d.Index(1, 1, 1)])
		assert.Equal(t, 3., sums[d.Index(0, 0, 0)])
		assert.Equal(t, 1., sums[d.Index(1, 1, 0)])
		assert.Equal(t, 6., p.A.At(5, 5))
		assert.Equal(t, -1., p.A.At(d.Index(1, 1, 1), d.Index(1, 2, 1)))
		// 64 diagonal + 2 * (3 axes * 3 interfaces * 16 lines)
		assert.Equal(t, 64+2*3*3*16, p.A.NNZ())
		// Symmetric
		p.A.DoNonZero(func(i, j int, v float64) {
			assert.Equal(t, v, p.A.At(j, i))
		})
	}
	{ // Sphere: fewer unknowns, coordinates line up with compacted ids
		d := types.NewDims(8, 8, 8)
		p, err := NewProblem(SPHERE, d)
		require.NoError(t, err)
		assert.Less(t, p.Unknowns(), d.Size())
		assert.Greater(t, p.Unknowns(), 0)
		var active int
		for _, m := range p.Mask {
			active += int(m)
		}
		assert.Equal(t, active, p.Unknowns())
		for _, c := range p.Coords {
			assert.Equal(t, byte(1), p.Mask[d.CoordIndex(c)])
		}
		assert.Equal(t, byte(1), p.Mask[d.Index(4, 4, 4)])
		assert.Equal(t, byte(0), p.Mask[d.Index(0, 0, 0)])
	}
	{ // Domain names
		dt, err := NewDomainType("Sphere")
		assert.NoError(t, err)
		assert.Equal(t, SPHERE, dt)
		_, err = NewDomainType("torus")
		assert.Error(t, err)
		_, err = NewDomainType("")
		assert.Error(t, err)
	}
	{ // Mismatched mask
		_, err := Assemble(make([]byte, 3), types.NewDims(2, 2, 2))
		assert.Error(t, err)
		_, err = NewProblem(BOX, types.NewDims(0, 2, 2))
		assert.Error(t, err)
	}
}
