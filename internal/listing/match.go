package listing

import (
	"strings"

	"github.com/rpalakkal/ecourts-check/internal/record"
)

// Match returns the first row whose joined cell text contains key, after
// both sides are whitespace-collapsed and lower-cased. The loose substring
// test is deliberate: it tolerates the formatting noise between "OS 123/2024"
// as typed and how it appears embedded in a row, at the cost of accepting
// incidental matches. Returns nil when no row qualifies.
func Match(rows []record.CauseListRow, key string) *record.CauseListRow {
	keyNorm := normalize(key)
	if keyNorm == "" {
		return nil
	}
	for i := range rows {
		rowText := normalize(strings.Join(rows[i].RawCells, " "))
		if strings.Contains(rowText, keyNorm) {
			return &rows[i]
		}
	}
	return nil
}

// normalize collapses runs of whitespace to single spaces, trims, and
// lower-cases.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
