// Package adapter locates adapter and low-quality artifacts in a single read
// from its quality signal and poly-A runs, and turns them into the segments
// that survive trimming.
//
// Every function here is pure and works on one read at a time; the pipeline
// fans reads out across workers. It never imports internal/ packages.
package adapter
