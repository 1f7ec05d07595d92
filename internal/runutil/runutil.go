// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads returns the worker count to use. 0 (or less) means one
// worker per CPU.
func EffectiveThreads(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}
	return threads
}

// ClampBatchSize bounds the streaming batch to the number of records in the
// input and to at least 1. A negative record count means "unknown" (stdin)
// and leaves the batch size as requested.
func ClampBatchSize(batchSize, records int) int {
	if records >= 0 && batchSize > records {
		batchSize = records
	}
	if batchSize < 1 {
		batchSize = 1
	}
	return batchSize
}

// MicroBatchSize splits one streaming batch evenly across threads; each
// micro-batch is the unit handed to the worker pool.
func MicroBatchSize(batchSize, threads int) int {
	if threads < 1 {
		threads = 1
	}
	return max(batchSize/threads, 1)
}
