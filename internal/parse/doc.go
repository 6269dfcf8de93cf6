// Package parse implements the heuristic extraction core: flattening eCourts
// markup to normalized text, pulling a case overview out of a case-status
// page, and walking cause-list tables into row records.
//
// The portal's markup is unstable and undocumented, so every extractor is a
// best-effort pattern match over arbitrary strings. Nothing in this package
// returns an error: a field that can't be recovered is simply absent, and
// false positives are accepted in exchange for recall. Each field's heuristic
// is an independent pattern so fixing one never risks another.
package parse
