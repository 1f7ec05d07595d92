// Package writers owns the output side of a run: the unclassified and
// rescued FASTQ sinks and the handling of downstream pipes closing early.
//
// Sinks are opened and closed by the orchestrator only; workers never write.
// Record formatting lives in core/fastq, this package only routes.
package writers
