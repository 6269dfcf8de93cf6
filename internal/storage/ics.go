package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/rpalakkal/ecourts-check/internal/listing"
	"github.com/rpalakkal/ecourts-check/internal/record"
)

// GenerateICS renders the overview's hearings as an iCalendar document, one
// VEVENT per hearing. Hearings whose date fails to parse are skipped; court
// sittings are blocked out 10:30-16:30 IST since the source publishes no
// times.
func GenerateICS(overview *record.CaseOverview, now time.Time) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//ecourts-check//ecourts-check//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	summary := "Court hearing"
	if overview.CaseNumber != nil {
		summary = fmt.Sprintf("Hearing - %s", *overview.CaseNumber)
	} else if overview.CNR != nil {
		summary = fmt.Sprintf("Hearing - %s", *overview.CNR)
	}

	stamp := formatICSTime(now.UTC())
	for i, h := range overview.Hearings {
		day, err := time.ParseInLocation("02-01-2006", h.Date, listing.IST)
		if err != nil {
			continue
		}
		start := day.Add(10*time.Hour + 30*time.Minute)
		end := day.Add(16*time.Hour + 30*time.Minute)

		ics.WriteString("BEGIN:VEVENT\r\n")
		ics.WriteString(fmt.Sprintf("UID:%s-%d@ecourts-check\r\n", h.Date, i))
		ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", stamp))
		ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(start)))
		ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(end)))
		ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(summary)))

		description := fmt.Sprintf("Hearing on %s", h.Date)
		if h.Purpose != nil {
			description = fmt.Sprintf("%s\nPurpose: %s", description, *h.Purpose)
		}
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))

		if overview.CourtName != nil {
			ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(*overview.CourtName)))
		}
		ics.WriteString("STATUS:CONFIRMED\r\n")
		ics.WriteString("TRANSP:OPAQUE\r\n")
		ics.WriteString("END:VEVENT\r\n")
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

// formatICSTime formats a time.Time as an iCalendar datetime string.
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters per RFC 5545.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
