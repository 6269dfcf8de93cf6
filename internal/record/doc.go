// Package record defines the immutable value records produced by one run:
// the case overview parsed from a case-status page, the rows parsed from a
// cause-list table, the listing decision derived from them, and the full
// RunResult document that gets persisted.
//
// All records are plain values created during a single extraction pass and
// consumed within the same run. Optional fields use pointers so that
// "heuristic found nothing" (nil) is never conflated with an empty string.
package record
