package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputParameters(t *testing.T) {
	{
		fileInput := []byte(`
Title: Sphere Test
Ni: 64
Nj: 48
Nk: 32
Domain: Sphere
Builder: Structured
CoarsestUnknowns: 512
Verbose: true
`)
		ip := NewInputParametersMG()
		require.NoError(t, ip.Parse(fileInput))
		assert.Equal(t, "Sphere Test", ip.Title)
		assert.Equal(t, 64, ip.Ni)
		assert.Equal(t, 48, ip.Nj)
		assert.Equal(t, 32, ip.Nk)
		assert.Equal(t, "Sphere", ip.Domain)
		assert.Equal(t, "Structured", ip.Builder)
		assert.Equal(t, 512, ip.CoarsestUnknowns)
		assert.Equal(t, 0, ip.ParallelDegree)
		assert.True(t, ip.Verbose)
		assert.NoError(t, ip.Validate())
		ip.Print()
	}
	{ // Defaults survive a partial file
		ip := NewInputParametersMG()
		require.NoError(t, ip.Parse([]byte("Ni: 8\n")))
		assert.Equal(t, 8, ip.Ni)
		assert.Equal(t, 32, ip.Nj)
		assert.Equal(t, 4096, ip.CoarsestUnknowns)
		assert.Equal(t, "Sparse", ip.Builder)
	}
	{
		ip := NewInputParametersMG()
		ip.Nk = 0
		assert.Error(t, ip.Validate())
		ip = NewInputParametersMG()
		ip.CoarsestUnknowns = 0
		assert.Error(t, ip.Validate())
		ip = NewInputParametersMG()
		ip.ParallelDegree = -2
		assert.Error(t, ip.Validate())
		assert.Error(t, ip.Parse([]byte("Ni: [1, 2")))
	}
}
