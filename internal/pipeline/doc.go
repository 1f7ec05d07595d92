// Package pipeline streams FASTQ reads in bounded batches through a pool of
// detection workers and routes each read to the unclassified or rescued sink.
//
// The only contract to implement is Detector (Detect). This keeps the
// pipeline swappable and testable.
package pipeline
