package Poisson3D

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/levelgen/multigrid"
	"github.com/notargets/levelgen/types"
	"github.com/notargets/levelgen/utils"
)

type DomainType uint

const (
	BOX DomainType = iota
	SPHERE
)

var (
	DomainNames = map[string]DomainType{
		"box":    BOX,
		"sphere": SPHERE,
	}
	DomainPrintNames = []string{"Box, all cells active", "Sphere inscribed in the lattice"}
)

func NewDomainType(label string) (dt DomainType, err error) {
	var (
		ok bool
	)
	if len(label) == 0 {
		err = fmt.Errorf("empty domain type, must be one of %v", DomainNames)
		return
	}
	label = strings.ToLower(label)
	if dt, ok = DomainNames[label]; !ok {
		err = fmt.Errorf("unable to use domain type named %s", label)
	}
	return
}

func (dt DomainType) Print() string {
	return DomainPrintNames[dt]
}

// NewBoxMask activates every cell of the lattice
func NewBoxMask(d types.Dims) (mask []byte) {
	mask = make([]byte, d.Size())
	for i := range mask {
		mask[i] = 1
	}
	return
}

// NewSphereMask activates the cells whose centers lie inside the largest inscribed sphere
func NewSphereMask(d types.Dims) (mask []byte) {
	var (
		ci, cj, ck = 0.5 * float64(d.Ni), 0.5 * float64(d.Nj), 0.5 * float64(d.Nk)
		radius     = 0.5 * math.Min(float64(d.Ni), math.Min(float64(d.Nj), float64(d.Nk)))
	)
	mask = make([]byte, d.Size())
	for index := range mask {
		i, j, k := d.IJK(index)
		x, y, z := float64(i)+0.5-ci, float64(j)+0.5-cj, float64(k)+0.5-ck
		if x*x+y*y+z*z <= radius*radius {
			mask[index] = 1
		}
	}
	return
}

func NewMask(dt DomainType, d types.Dims) []byte {
	switch dt {
	case SPHERE:
		return NewSphereMask(d)
	default:
		return NewBoxMask(d)
	}
}

/*
Assemble builds the 7 point pressure Poisson operator on the active cells: 6 on the
diagonal and -1 between active face neighbors. Inactive or out of lattice neighbors
are Dirichlet, they drop out of the row but leave the diagonal at 6.
*/
func Assemble(mask []byte, d types.Dims) (A utils.CSR, err error) {
	var (
		table    utils.Index
		unknowns int
		offsets  = [6][3]int{{-1, 0, 0}, {1, 0, 0}, {0, -1, 0}, {0, 1, 0}, {0, 0, -1}, {0, 0, 1}}
	)
	if len(mask) != d.Size() {
		err = fmt.Errorf("mask length %d does not match lattice %v", len(mask), d)
		return
	}
	if table, unknowns, err = multigrid.CompactMask(mask); err != nil {
		return
	}
	a := utils.NewDOK(unknowns, unknowns)
	for index, m := range mask {
		if m != 1 {
			continue
		}
		row := table[index]
		a.Set(row, row, 6)
		i, j, k := d.IJK(index)
		for _, off := range offsets {
			ii, jj, kk := i+off[0], j+off[1], k+off[2]
			if !d.Contains(ii, jj, kk) {
				continue
			}
			nbr := d.Index(ii, jj, kk)
			if mask[nbr] == 1 {
				a.Set(row, table[nbr], -1)
			}
		}
	}
	A = a.ToCSR().SetReadOnly("A0")
	a.Clear()
	return
}

// Problem is a masked lattice with its operator and DOF coordinates
type Problem struct {
	Domain DomainType
	Dims   types.Dims
	Mask   []byte
	Coords []types.Coord
	A      utils.CSR
}

func NewProblem(dt DomainType, d types.Dims) (p *Problem, err error) {
	if !d.IsValid() {
		err = fmt.Errorf("invalid lattice extents %v", d)
		return
	}
	p = &Problem{
		Domain: dt,
		Dims:   d,
		Mask:   NewMask(dt, d),
	}
	if p.A, err = Assemble(p.Mask, d); err != nil {
		return nil, err
	}
	if p.Coords, err = multigrid.CoordsFromMask(p.Mask, d); err != nil {
		return nil, err
	}
	return
}

func (p *Problem) Unknowns() int { return len(p.Coords) }
