package types

import "fmt"

/*
Coord addresses a cell of a regular lattice, or names an explicit degree of freedom
on a sparse lattice. Components are non-negative.
*/
type Coord struct {
	I, J, K int
}

func NewCoord(i, j, k int) Coord { return Coord{i, j, k} }

// Coarsen returns the coordinate of the 2x2x2 block containing c on the next level
func (c Coord) Coarsen() Coord {
	return Coord{c.I / 2, c.J / 2, c.K / 2}
}

// Parity is (i+j+k) mod 2
func (c Coord) Parity() int {
	return (c.I + c.J + c.K) % 2
}

func (c Coord) IsNegative() bool {
	return c.I < 0 || c.J < 0 || c.K < 0
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.I, c.J, c.K)
}

/*
Dims holds the extents of a lattice. Cells are flattened with I varying fastest:

	index = i + ni*(j + nj*k)
*/
type Dims struct {
	Ni, Nj, Nk int
}

func NewDims(ni, nj, nk int) Dims { return Dims{ni, nj, nk} }

func (d Dims) Size() int { return d.Ni * d.Nj * d.Nk }

func (d Dims) Slice() int { return d.Ni * d.Nj }

// Coarsen returns the extents of the next level, ceil(n/2) on each axis
func (d Dims) Coarsen() Dims {
	return Dims{(d.Ni + 1) / 2, (d.Nj + 1) / 2, (d.Nk + 1) / 2}
}

func (d Dims) Index(i, j, k int) int {
	return i + d.Ni*(j+d.Nj*k)
}

func (d Dims) CoordIndex(c Coord) int {
	return d.Index(c.I, c.J, c.K)
}

func (d Dims) IJK(index int) (i, j, k int) {
	var (
		slice = d.Slice()
	)
	k = index / slice
	j = (index % slice) / d.Ni
	i = index % d.Ni
	return
}

func (d Dims) Coord(index int) Coord {
	i, j, k := d.IJK(index)
	return Coord{i, j, k}
}

func (d Dims) Contains(i, j, k int) bool {
	return i >= 0 && j >= 0 && k >= 0 && i < d.Ni && j < d.Nj && k < d.Nk
}

func (d Dims) IsValid() bool {
	return d.Ni > 0 && d.Nj > 0 && d.Nk > 0
}

func (d Dims) String() string {
	return fmt.Sprintf("%dx%dx%d", d.Ni, d.Nj, d.Nk)
}
