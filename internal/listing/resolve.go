package listing

import (
	"time"

	"github.com/rpalakkal/ecourts-check/internal/record"
)

// Court dates are published in Indian Standard Time.
var IST = time.FixedZone("IST", 5*3600+30*60)

// DateIST renders the IST calendar date of now+days as DD-MM-YYYY, the
// format used by the portal's date pickers and hearing tables.
func DateIST(now time.Time, days int) string {
	return now.In(IST).AddDate(0, 0, days).Format("02-01-2006")
}

// Resolve combines whatever the run recovered into a listing decision.
//
// When cause-list rows and an identifier are both available the matcher is
// authoritative for serial and court. A hit sets the requested flag(s) to
// true: the extractor recovers no date column, so "matched today's list"
// rests on the operator having selected that date in the browser. Known
// limitation, kept as-is.
//
// Hearing dates from the case overview settle any flag the match step left
// open. Flags stay nil only when there was nothing at all to check against.
func Resolve(overview *record.CaseOverview, rows []record.CauseListRow, key string, wantToday, wantTomorrow bool, now time.Time) record.Decision {
	var decision record.Decision

	if len(rows) > 0 && key != "" {
		if matched := Match(rows, key); matched != nil {
			decision.Details = &record.ListingDetails{
				Serial:   matched.Serial,
				Court:    matched.CourtInfo,
				CaseText: matched.CaseText,
				Purpose:  matched.Purpose,
			}
			if wantToday {
				decision.ListedToday = record.Bool(true)
			}
			if wantTomorrow {
				decision.ListedTomorrow = record.Bool(true)
			}
		} else {
			if wantToday {
				decision.ListedToday = record.Bool(false)
			}
			if wantTomorrow {
				decision.ListedTomorrow = record.Bool(false)
			}
		}
	}

	if overview != nil && (wantToday || wantTomorrow) {
		if wantToday && decision.ListedToday == nil {
			decision.ListedToday = record.Bool(hasHearingOn(overview.Hearings, DateIST(now, 0)))
		}
		if wantTomorrow && decision.ListedTomorrow == nil {
			decision.ListedTomorrow = record.Bool(hasHearingOn(overview.Hearings, DateIST(now, 1)))
		}
	}

	return decision
}

func hasHearingOn(hearings []record.HearingEntry, date string) bool {
	for _, h := range hearings {
		if h.Date == date {
			return true
		}
	}
	return false
}
