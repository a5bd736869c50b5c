//go:build linux

package cmd

import (
	perf "github.com/hodgesds/perf-utils"
)

// countInstructions runs f once, counting CPU instructions when the kernel allows it
func countInstructions(f func() error) (count uint64, perfErr, err error) {
	var (
		ran bool
		pv  *perf.ProfileValue
	)
	pv, perfErr = perf.CPUInstructions(func() error {
		ran = true
		err = f()
		return err
	})
	if !ran {
		err = f()
		return
	}
	if perfErr == nil && pv != nil {
		count = pv.Value
	}
	if perfErr == err {
		perfErr = nil
	}
	return
}
