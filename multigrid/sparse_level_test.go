package multigrid

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/levelgen/types"
	"github.com/notargets/levelgen/utils"
)

func TestSparseLevel(t *testing.T) {
	lg := NewLevelGen(2, false)
	{
		fine := []types.Coord{{I: 0, J: 0, K: 0}, {I: 3, J: 0, K: 0}, {I: 1, J: 1, K: 0}, {I: 2, J: 1, K: 1}, {I: 5, J: 5, K: 5}}
		lvl, err := lg.BuildSparseLevel(identity(5), fine)
		require.NoError(t, err)
		assert.Equal(t, []types.Coord{{I: 0, J: 0, K: 0}, {I: 1, J: 0, K: 0}, {I: 2, J: 2, K: 2}}, lvl.Coords)
		nr, nc := lvl.R.Dims()
		assert.Equal(t, 3, nr)
		assert.Equal(t, 5, nc)
		for f, c := range []int{0, 1, 0, 1, 2} {
			assert.Equal(t, 1., lvl.P.At(f, c))
			assert.Equal(t, 0.125, lvl.R.At(c, f))
		}
		assert.Equal(t, []float64{0.25, 0.25, 0.125}, lvl.R.RowSums())
		assert.Equal(t, []bool{false, true, false, false, true}, lvl.Pattern)
		checkTransferPair(t, lvl.R, lvl.P)
	}
	{ // Coarse list holds each distinct halved coordinate once, in first seen order
		rnd := rand.New(rand.NewSource(3))
		d := types.NewDims(13, 9, 11)
		perm := rnd.Perm(d.Size())[:400]
		fine := make([]types.Coord, len(perm))
		for i, index := range perm {
			fine[i] = d.Coord(index)
		}
		lvl, err := lg.BuildSparseLevel(identity(len(fine)), fine)
		require.NoError(t, err)
		var (
			seen     = make(map[types.Coord]bool)
			expected []types.Coord
		)
		for _, c := range fine {
			if cc := c.Coarsen(); !seen[cc] {
				seen[cc] = true
				expected = append(expected, cc)
			}
		}
		assert.Equal(t, expected, lvl.Coords)
		checkTransferPair(t, lvl.R, lvl.P)
		for f, c := range fine {
			assert.Equal(t, c.Coarsen(), lvl.Coords[colOf(lvl.P, f)])
		}
	}
	{ // An empty list is a failure, not an empty coarse level
		_, err := lg.BuildSparseLevel(identity(1), nil)
		assert.True(t, errors.Is(err, ErrEmptyLevel))
		_, err = lg.BuildSparseLevel(identity(2), []types.Coord{{I: 0, J: 0, K: 0}})
		assert.True(t, errors.Is(err, ErrInvalidInput))
		_, err = lg.BuildSparseLevel(identity(1), []types.Coord{{I: -1, J: 0, K: 0}})
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}
}

// colOf returns the column of the single entry in row i
func colOf(P utils.CSR, i int) (col int) {
	raw := P.RawMatrix()
	return raw.Ind[raw.Indptr[i]]
}
