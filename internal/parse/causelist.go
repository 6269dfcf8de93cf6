package parse

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rpalakkal/ecourts-check/internal/record"
)

var (
	serialRe     = regexp.MustCompile(`^\d{1,4}$`)
	headerRe     = regexp.MustCompile(`(?i)^(sr\.?\s*no\.?|serial)`)
	caseTextRe   = regexp.MustCompile(`\b\d{1,6}/\d{4}\b`)
	caseAlphaRe  = regexp.MustCompile(`[A-Za-z]{1,10}\s*\d{1,6}/\d{4}`)
	purposeCueRe = regexp.MustCompile(`(?i)(purpose|stage|for hearing|listing)`)
	courtCueRe   = regexp.MustCompile(`(?i)\bCourt\b`)
)

// CauseList walks every table in a cause-list page and returns one row per
// data row, identified by a 1-4 digit serial in the first cell. Header rows
// and anything else without a serial are dropped, not reported. An
// unparseable page yields an empty slice.
func CauseList(markup string) []record.CauseListRow {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	var rows []record.CauseListRow
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			cells := cellTexts(tr)
			if len(cells) < 2 {
				return
			}
			switch {
			case serialRe.MatchString(cells[0]):
				rows = append(rows, buildRow(cells))
			case headerRe.MatchString(cells[0]):
				// Column header ("Sr No.", "Serial").
				return
			default:
				// No serial recognized; not a data row.
				return
			}
		})
	})
	return rows
}

// cellTexts collects the whitespace-normalized text of each td/th in order.
func cellTexts(tr *goquery.Selection) []string {
	var cells []string
	tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, collapseSpace(cell.Text()))
	})
	return cells
}

// buildRow derives the optional semantic fields from a recognized data row.
// The case number usually sits in the 2nd or 3rd column; purpose and court
// can appear anywhere. First match wins for each field.
func buildRow(cells []string) record.CauseListRow {
	row := record.CauseListRow{
		Serial:   cells[0],
		RawCells: cells,
	}

	limit := len(cells)
	if limit > 4 {
		limit = 4
	}
	for _, cell := range cells[1:limit] {
		if caseTextRe.MatchString(cell) || caseAlphaRe.MatchString(cell) {
			row.CaseText = record.String(cell)
			break
		}
	}
	for _, cell := range cells {
		if purposeCueRe.MatchString(cell) {
			row.Purpose = record.String(cell)
			break
		}
	}
	for _, cell := range cells {
		if courtCueRe.MatchString(cell) {
			row.CourtInfo = record.String(cell)
			break
		}
	}
	return row
}
