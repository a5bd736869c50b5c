package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParametersMG struct {
	Title            string `json:"Title"`
	Ni               int    `json:"Ni"`
	Nj               int    `json:"Nj"`
	Nk               int    `json:"Nk"`
	Domain           string `json:"Domain"`  // Box or Sphere
	Builder          string `json:"Builder"` // Sparse (coordinate list) or Structured (activity mask)
	CoarsestUnknowns int    `json:"CoarsestUnknowns"`
	ParallelDegree   int    `json:"ParallelDegree"` // 0 uses all CPUs
	Verbose          bool   `json:"Verbose"`
}

func NewInputParametersMG() (ip *InputParametersMG) {
	ip = &InputParametersMG{
		Title:            "Unnamed",
		Ni:               32,
		Nj:               32,
		Nk:               32,
		Domain:           "Box",
		Builder:          "Sparse",
		CoarsestUnknowns: 4096,
	}
	return
}

// Parse overlays the values present in data onto ip
func (ip *InputParametersMG) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersMG) Validate() (err error) {
	switch {
	case ip.Ni < 1 || ip.Nj < 1 || ip.Nk < 1:
		err = fmt.Errorf("lattice extents must be positive, have %d x %d x %d", ip.Ni, ip.Nj, ip.Nk)
	case ip.CoarsestUnknowns < 1:
		err = fmt.Errorf("CoarsestUnknowns must be positive, have %d", ip.CoarsestUnknowns)
	case ip.ParallelDegree < 0:
		err = fmt.Errorf("ParallelDegree must not be negative, have %d", ip.ParallelDegree)
	}
	return
}

func (ip *InputParametersMG) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d x %d x %d]\t\t= Lattice\n", ip.Ni, ip.Nj, ip.Nk)
	fmt.Printf("[%s]\t\t\t= Domain\n", ip.Domain)
	fmt.Printf("[%s]\t\t\t= Builder\n", ip.Builder)
	fmt.Printf("[%d]\t\t\t= Coarsest Unknowns\n", ip.CoarsestUnknowns)
	fmt.Printf("[%d]\t\t\t\t= Parallel Degree\n", ip.ParallelDegree)
}
