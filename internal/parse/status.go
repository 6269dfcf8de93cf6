package parse

import (
	"regexp"
	"strings"

	"github.com/rpalakkal/ecourts-check/internal/record"
)

// The case-status page is free text with no stable structure, so each field
// gets its own independent pattern. A miss leaves the field nil; nothing here
// can fail. The CNR label is case-insensitive but the value itself is
// strictly 16 uppercase alphanumerics.
var (
	caseNumberRe = regexp.MustCompile(`(?i)(Case\s*No\.?|Case\s*Number)\s*[:\-]?\s*([A-Za-z./\-\s]*\d+/\d{4})`)
	cnrRe        = regexp.MustCompile(`(?i:CNR\s*No\.?)\s*[:\-]?\s*([A-Z0-9]{16})`)
	courtNameRe  = regexp.MustCompile(`(?i)(Court\s*Name|Court)\s*[:\-]?\s*([^\n\r]+)`)
	hearingRe    = regexp.MustCompile(`\d{2}-\d{2}-\d{4}`)
	purposeRe    = regexp.MustCompile(`(?i)(Purpose|Stage)\s*[:\-]?\s*([A-Za-z0-9 ,./()_-]{3,60})`)
)

// CaseStatus pulls a CaseOverview out of a rendered case-status page.
// Extraction is deliberately permissive: unrelated dates and labels can leak
// in, and downstream consumers are expected to tolerate that noise.
func CaseStatus(markup string) record.CaseOverview {
	text := Flatten(markup)

	var overview record.CaseOverview

	if m := caseNumberRe.FindStringSubmatch(text); m != nil {
		overview.CaseNumber = record.String(strings.TrimSpace(m[2]))
	}
	if m := cnrRe.FindStringSubmatch(text); m != nil {
		overview.CNR = record.String(strings.TrimSpace(m[1]))
	}
	if m := courtNameRe.FindStringSubmatch(text); m != nil {
		overview.CourtName = record.String(strings.TrimSpace(m[2]))
	}
	overview.Hearings = extractHearings(text)

	return overview
}

// extractHearings records one entry per DD-MM-YYYY match in scan order,
// duplicates included. The purpose, if any, is searched for in a window
// around the date (60 chars before, 80 after), mirroring how the source
// pages put "Purpose of hearing" next to each date cell.
func extractHearings(text string) []record.HearingEntry {
	var hearings []record.HearingEntry
	for _, loc := range hearingRe.FindAllStringIndex(text, -1) {
		start := loc[0] - 60
		if start < 0 {
			start = 0
		}
		end := loc[1] + 80
		if end > len(text) {
			end = len(text)
		}

		entry := record.HearingEntry{Date: text[loc[0]:loc[1]]}
		if m := purposeRe.FindStringSubmatch(text[start:end]); m != nil {
			entry.Purpose = record.String(strings.TrimSpace(m[2]))
		}
		hearings = append(hearings, entry)
	}
	return hearings
}
