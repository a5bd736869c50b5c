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

func TestCompactMask(t *testing.T) {
	{
		table, unknowns, err := CompactMask([]byte{0, 1, 1, 0, 1})
		require.NoError(t, err)
		assert.Equal(t, utils.Index{-1, 0, 1, 1, 2}, table)
		assert.Equal(t, 3, unknowns)
	}
	{ // Random masks: non-decreasing, steps by one at each active cell
		rnd := rand.New(rand.NewSource(1))
		for trial := 0; trial < 50; trial++ {
			n := 1 + rnd.Intn(500)
			mask := make([]byte, n)
			for i := range mask {
				if rnd.Intn(3) == 0 {
					mask[i] = 1
				}
			}
			mask[rnd.Intn(n)] = 1
			var active int
			for _, m := range mask {
				active += int(m)
			}
			table, unknowns, err := CompactMask(mask)
			require.NoError(t, err)
			assert.Equal(t, active, unknowns)
			assert.Equal(t, active, table.Last()+1)
			for i := 1; i < n; i++ {
				assert.Equal(t, int(mask[i]), table[i]-table[i-1])
			}
		}
	}
	{ // No active cells is the empty level failure
		_, _, err := CompactMask(make([]byte, 8))
		assert.True(t, errors.Is(err, ErrEmptyLevel))
		_, _, err = CompactMask(nil)
		assert.True(t, errors.Is(err, ErrEmptyLevel))
	}
	{
		_, _, err := CompactMask([]byte{1, 2, 0})
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}
}

func TestCompactCoords(t *testing.T) {
	{ // First seen order
		fine := []types.Coord{{I: 0, J: 0, K: 0}, {I: 3, J: 0, K: 0}, {I: 1, J: 1, K: 0}, {I: 2, J: 1, K: 1}, {I: 5, J: 5, K: 5}}
		coarse, f2c, err := CompactCoords(fine)
		require.NoError(t, err)
		assert.Equal(t, []types.Coord{{I: 0, J: 0, K: 0}, {I: 1, J: 0, K: 0}, {I: 2, J: 2, K: 2}}, coarse)
		assert.Equal(t, utils.Index{0, 1, 0, 1, 2}, f2c)
	}
	{
		_, _, err := CompactCoords(nil)
		assert.True(t, errors.Is(err, ErrEmptyLevel))
		_, _, err = CompactCoords([]types.Coord{{I: 0, J: 0, K: 0}, {I: 0, J: -2, K: 1}})
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}
}

func TestCoarsenMask(t *testing.T) {
	{
		lg := NewLevelGen(1, false)
		cm := lg.CoarsenMask([]byte{0, 0, 1}, types.NewDims(3, 1, 1))
		assert.Equal(t, []byte{0, 1}, cm)
	}
	{ // Parallel result matches a sequential scan over fine cells
		d := types.NewDims(7, 6, 5)
		rnd := rand.New(rand.NewSource(2))
		mask := make([]byte, d.Size())
		for i := range mask {
			if rnd.Intn(10) == 0 {
				mask[i] = 1
			}
		}
		cd := d.Coarsen()
		expected := make([]byte, cd.Size())
		for index, m := range mask {
			if m == 1 {
				i, j, k := d.IJK(index)
				expected[cd.Index(i/2, j/2, k/2)] = 1
			}
		}
		for _, np := range []int{1, 3, 8, 0} {
			lg := NewLevelGen(np, false)
			assert.Equal(t, expected, lg.CoarsenMask(mask, d))
		}
	}
}

func TestCoordsFromMask(t *testing.T) {
	d := types.NewDims(2, 2, 1)
	coords, err := CoordsFromMask([]byte{1, 0, 0, 1}, d)
	require.NoError(t, err)
	assert.Equal(t, []types.Coord{{I: 0, J: 0, K: 0}, {I: 1, J: 1, K: 0}}, coords)
	_, err = CoordsFromMask([]byte{1}, d)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
