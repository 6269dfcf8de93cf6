package listing

import (
	"testing"

	"github.com/rpalakkal/ecourts-check/internal/record"
)

func TestMatch(t *testing.T) {
	rows := []record.CauseListRow{
		{Serial: "5", RawCells: []string{"5", "CRL 7/2021", "State vs Noone"}},
		{Serial: "12", RawCells: []string{"12", "OS 45/2023", "Evidence"}},
		{Serial: "13", RawCells: []string{"13", "OS  45/2023", "Arguments"}},
	}

	tests := []struct {
		name       string
		key        string
		wantSerial string
	}{
		{"exact key", "OS 45/2023", "12"},
		{"case-insensitive", "os 45/2023", "12"},
		{"extra whitespace in key", "  OS   45/2023 ", "12"},
		{"key spanning cells", "45/2023 Evidence", "12"},
		{"first match wins", "OS 45/2023", "12"},
		{"no such case", "OS 999/2023", ""},
		{"empty key", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(rows, tt.key)
			if tt.wantSerial == "" {
				if got != nil {
					t.Errorf("Match(%q) = row %s, expected no match", tt.key, got.Serial)
				}
				return
			}
			if got == nil {
				t.Fatalf("Match(%q) = nil, expected row %s", tt.key, tt.wantSerial)
			}
			if got.Serial != tt.wantSerial {
				t.Errorf("Match(%q) = row %s, expected row %s", tt.key, got.Serial, tt.wantSerial)
			}
		})
	}
}

func TestMatchNormalizesRowWhitespace(t *testing.T) {
	rows := []record.CauseListRow{
		{Serial: "2", RawCells: []string{"2", "OS\t45/2023", "listed   today"}},
	}
	if got := Match(rows, "os 45/2023 listed today"); got == nil {
		t.Error("expected whitespace-collapsed row text to match")
	}
}

func TestMatchEmptyRows(t *testing.T) {
	if got := Match(nil, "OS 1/2020"); got != nil {
		t.Errorf("expected nil for empty rows, got %+v", got)
	}
}
