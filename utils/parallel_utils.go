package utils

import (
	"runtime"
	"sync"

	"github.com/notargets/levelgen/types"
)

type PartitionMap struct {
	MaxIndex       int // MaxIndex is partitioned into ParallelDegree partitions
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of partitions
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

// GetBucketDimension is the number of indices owned by bucket bn
func (pm *PartitionMap) GetBucketDimension(bn int) (size int) {
	k1, k2 := pm.GetBucketRange(bn)
	size = k2 - k1
	return
}

func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	// This routine splits one dimension into c.ParallelDegree pieces, with a maximum imbalance of one item
	var (
		Npart            = pm.MaxIndex / (pm.ParallelDegree)
		startAdd, endAdd int
		remainder        int
	)
	remainder = pm.MaxIndex % pm.ParallelDegree
	if remainder != 0 { // spread the remainder over the first chunks evenly
		if threadNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}

// ParallelDegree returns procLimit, or the CPU count when procLimit is 0, capped at maxIndex
func ParallelDegree(procLimit, maxIndex int) (NP int) {
	if procLimit > 0 {
		NP = procLimit
	} else {
		NP = runtime.NumCPU()
	}
	if NP > maxIndex {
		NP = maxIndex
	}
	if NP < 1 {
		NP = 1
	}
	return
}

/*
ParallelFor calls fn(i) for every i in [0,maxIndex), split into contiguous buckets with
one goroutine per bucket. It returns after every call completes. No ordering between
calls is provided, fn must write only to slots owned by i.
*/
func ParallelFor(procLimit, maxIndex int, fn func(i int)) {
	if maxIndex <= 0 {
		return
	}
	var (
		NP = ParallelDegree(procLimit, maxIndex)
		wg = sync.WaitGroup{}
	)
	if NP == 1 {
		for i := 0; i < maxIndex; i++ {
			fn(i)
		}
		return
	}
	pm := NewPartitionMap(NP, maxIndex)
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, _ := pm.GetBucketRange(np)
			for ii := 0; ii < pm.GetBucketDimension(np); ii++ {
				fn(kMin + ii)
			}
		}(np)
	}
	wg.Wait()
}

// ParallelFor3D decomposes each flattened lattice index of d into (i,j,k) before calling fn
func ParallelFor3D(procLimit int, d types.Dims, fn func(i, j, k, index int)) {
	var (
		ni    = d.Ni
		slice = d.Slice()
	)
	ParallelFor(procLimit, d.Size(), func(index int) {
		k := index / slice
		j := (index % slice) / ni
		i := index % ni
		fn(i, j, k, index)
	})
}
