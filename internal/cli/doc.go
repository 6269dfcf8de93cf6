// Package cli implements the command-line interface for ecourts-check.
//
// The cli package provides the Cobra-based CLI: the flag surface (CNR or
// case-type/number/year, today/tomorrow checks, cause-list and download
// options), optional YAML config defaults, and the run orchestration that
// coordinates the browser session, the extraction core, the listing
// resolver, and result persistence.
package cli
