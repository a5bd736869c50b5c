package multigrid

import "github.com/notargets/levelgen/utils"

// CoarseOperator forms 0.5 * R * (A * P)
func CoarseOperator(A, R, P utils.CSR) (Ac utils.CSR) {
	AP := utils.Multiply(A, P, 1.0)
	Ac = utils.Multiply(R, AP, GalerkinScale)
	return Ac.SetReadOnly("A")
}
