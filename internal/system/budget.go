package system

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Budget bounds how much rendering runs at once.
type Budget struct {
	Workers  int // frames rendered concurrently
	InFlight int // frames buffered before they are written out
}

// memoryShare is the part of available memory frame buffers may use.
const memoryShare = 0.25

// PlanBudget sizes the render pool for frames of frameBytes each.
// requested > 0 pins the worker count.
func PlanBudget(requested, frameBytes int) Budget {
	cpus, err := cpu.Counts(true)
	if err != nil || cpus <= 0 {
		cpus = runtime.NumCPU()
	}
	var avail uint64
	if vm, err := mem.VirtualMemory(); err == nil {
		avail = vm.Available
	}
	return budgetFor(cpus, avail, requested, frameBytes)
}

func budgetFor(cpus int, avail uint64, requested, frameBytes int) Budget {
	workers := requested
	if workers <= 0 {
		workers = max(1, cpus)
	}

	inFlight := workers * 4
	if avail > 0 && frameBytes > 0 {
		fit := int(float64(avail) * memoryShare / float64(frameBytes))
		inFlight = min(inFlight, fit)
	}
	// Never fewer buffers than workers, or workers sit idle.
	inFlight = max(inFlight, workers)
	return Budget{Workers: workers, InFlight: inFlight}
}
