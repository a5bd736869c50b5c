package multigrid

import (
	"github.com/notargets/levelgen/types"
	"github.com/notargets/levelgen/utils"
)

func identity(n int) utils.CSR {
	a := utils.NewDOK(n, n)
	for i := 0; i < n; i++ {
		a.Set(i, i, 1)
	}
	return a.ToCSR()
}

func fullMask(d types.Dims) (mask []byte) {
	mask = make([]byte, d.Size())
	for i := range mask {
		mask[i] = 1
	}
	return
}
