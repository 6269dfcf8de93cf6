package parse

import (
	"os"
	"reflect"
	"testing"
)

func TestCauseListFixture(t *testing.T) {
	data, err := os.ReadFile("testdata/cause_list.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	rows := CauseList(string(data))
	if len(rows) != 3 {
		t.Fatalf("expected 3 data rows, got %d", len(rows))
	}

	for _, row := range rows {
		if row.Serial == "Sr No." {
			t.Error("header row must not be emitted as a data row")
		}
	}

	first := rows[0]
	if first.Serial != "1" {
		t.Errorf("expected serial 1, got %q", first.Serial)
	}
	if first.CaseText == nil || *first.CaseText != "OS 45/2023" {
		t.Errorf("expected case text 'OS 45/2023', got %v", deref(first.CaseText))
	}
	if first.Purpose == nil || *first.Purpose != "For Hearing" {
		t.Errorf("expected purpose 'For Hearing', got %v", deref(first.Purpose))
	}
	if first.CourtInfo != nil {
		t.Errorf("expected absent court info, got %q", *first.CourtInfo)
	}
	wantCells := []string{"1", "OS 45/2023", "Ramesh Kumar vs State", "For Hearing"}
	if !reflect.DeepEqual(first.RawCells, wantCells) {
		t.Errorf("expected raw cells %v, got %v", wantCells, first.RawCells)
	}

	// Leading zeros survive: no numeric coercion of serials.
	second := rows[1]
	if second.Serial != "007" {
		t.Errorf("expected serial 007 verbatim, got %q", second.Serial)
	}
	if second.CaseText != nil {
		t.Errorf("expected absent case text for ABC/2020, got %q", *second.CaseText)
	}

	third := rows[2]
	if third.Serial != "12" {
		t.Errorf("expected serial 12, got %q", third.Serial)
	}
	if third.CaseText == nil || *third.CaseText != "CRL 88/2022" {
		t.Errorf("expected case text 'CRL 88/2022', got %v", deref(third.CaseText))
	}
	if third.Purpose == nil || *third.Purpose != "Stage of listing" {
		t.Errorf("expected purpose 'Stage of listing', got %v", deref(third.Purpose))
	}
	if third.CourtInfo == nil || *third.CourtInfo != "Court No. 5" {
		t.Errorf("expected court info 'Court No. 5', got %v", deref(third.CourtInfo))
	}
}

func TestCauseListNoTables(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{"empty page", ""},
		{"page without tables", "<html><body><p>nothing tabular here</p></body></html>"},
		{"table without data rows", "<table><tr><th>Sr No.</th><th>Case No</th></tr></table>"},
		{"rows with a single cell", "<table><tr><td>1</td></tr></table>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rows := CauseList(tt.markup); len(rows) != 0 {
				t.Errorf("expected no rows, got %d", len(rows))
			}
		})
	}
}

func TestCauseListSerialLimit(t *testing.T) {
	// Five digits is no longer a serial.
	rows := CauseList("<table><tr><td>12345</td><td>OS 1/2020</td></tr></table>")
	if len(rows) != 0 {
		t.Fatalf("expected 5-digit first cell to be skipped, got %d rows", len(rows))
	}

	rows = CauseList("<table><tr><td>9999</td><td>OS 1/2020</td></tr></table>")
	if len(rows) != 1 || rows[0].Serial != "9999" {
		t.Fatalf("expected 4-digit serial to be accepted, got %+v", rows)
	}
}

func TestCauseListCaseTextOnlyInEarlyCells(t *testing.T) {
	// A case-number-shaped value beyond the 4th cell must not populate
	// CaseText; it still lands in RawCells for matching.
	rows := CauseList("<table><tr><td>3</td><td>a</td><td>b</td><td>c</td><td>OS 9/2021</td></tr></table>")
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].CaseText != nil {
		t.Errorf("expected absent case text, got %q", *rows[0].CaseText)
	}
	if len(rows[0].RawCells) != 5 || rows[0].RawCells[4] != "OS 9/2021" {
		t.Errorf("expected raw cells to keep the late cell, got %v", rows[0].RawCells)
	}
}

func TestCauseListIdempotent(t *testing.T) {
	data, err := os.ReadFile("testdata/cause_list.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	first := CauseList(string(data))
	second := CauseList(string(data))
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical rows from repeated extraction")
	}
}
