// Package peaks classifies local extrema of a numeric series.
//
// It is the only numeric primitive the adapter finder depends on: callers
// hand it a per-base quality series and get back indices labelled Peak or
// Valley. Keep it free of any read or FASTQ knowledge.
package peaks
