package config

import "runtime"

// Threshold resolution chain (highest priority first):
//   1. CLI flag (-threshold)
//   2. Environment variable (POLYROOTS_THRESHOLD)
//   3. Hardware estimate (this file)

// ApplyAdaptiveThresholds replaces a zero parallel threshold with a hardware
// estimate. Explicit values are preserved.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.Threshold == 0 {
		cfg.Threshold = EstimateOptimalParallelThreshold()
	}
	return cfg
}

// EstimateOptimalParallelThreshold estimates the coefficient size (in bits)
// from which splitting a build step across goroutines pays off. Below it the
// goroutine overhead dominates the big.Int multiplications.
func EstimateOptimalParallelThreshold() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU == 1:
		return 0 // No parallelism
	case numCPU <= 2:
		return 65536
	case numCPU <= 4:
		return 32768
	case numCPU <= 8:
		return 16384
	default:
		return 8192
	}
}
