package utils

type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

func (I Index) Last() int {
	return I[len(I)-1]
}
