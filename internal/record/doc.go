// Package record turns raw calendar day cells into collection records.
//
// The record package is deliberately markup-free: the scraper reduces each
// day cell to a Cell (date text, type text, past-date marker) and Parse
// decides whether it yields a CollectionRecord. Every rejected cell gets a
// typed SkipReason instead of an error, so the pipeline can log and count
// skip causes without a single malformed cell ever aborting the run.
package record
