// Package storage persists run results: a timestamped JSON document with
// stable field names, a plain-text summary next to it, and an optional ICS
// calendar of the case's hearing dates. Results land in a configurable
// output directory (created on first use, ~/ expanded).
package storage
