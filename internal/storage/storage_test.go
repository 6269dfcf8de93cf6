package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rpalakkal/ecourts-check/internal/record"
)

func sampleResult() *record.RunResult {
	return &record.RunResult{
		Inputs: record.Inputs{
			CNR:   "MHAU019999992015",
			Today: true,
		},
		CaseOverview: &record.CaseOverview{
			CNR:        record.String("MHAU019999992015"),
			CaseNumber: record.String("OS 123/2024"),
			CourtName:  record.String("II Additional District Court, Pune"),
			Hearings: []record.HearingEntry{
				{Date: "05-03-2025", Purpose: record.String("Arguments")},
			},
		},
		IsListedToday:  record.Bool(true),
		ListingDetails: &record.ListingDetails{Serial: "12", Court: record.String("Court No. 5")},
		CauseList: &record.CauseListSnapshot{
			Count: 1,
			Entries: []record.CauseListRow{
				{Serial: "12", RawCells: []string{"12", "OS 123/2024"}},
			},
		},
		TaskRunAt: "2025-03-05T05:00:00Z",
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}

	now := time.Date(2025, 3, 5, 10, 30, 0, 0, time.UTC)
	jsonPath, textPath, err := store.Save(sampleResult(), now)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if filepath.Base(jsonPath) != "result_20250305_103000.json" {
		t.Errorf("unexpected json filename: %s", jsonPath)
	}
	if filepath.Base(textPath) != "result_20250305_103000.txt" {
		t.Errorf("unexpected text filename: %s", textPath)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("failed to read saved json: %v", err)
	}
	var loaded record.RunResult
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("saved json does not parse: %v", err)
	}
	if loaded.CaseOverview == nil || *loaded.CaseOverview.CNR != "MHAU019999992015" {
		t.Error("expected CNR to survive the round trip")
	}
	if loaded.CauseList == nil || loaded.CauseList.Count != 1 {
		t.Error("expected cause list snapshot to survive the round trip")
	}

	// The wire format uses the stable snake_case field names.
	for _, field := range []string{`"cnr"`, `"case_number"`, `"court_name"`, `"hearings"`, `"serial"`, `"raw_cells"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("expected saved json to contain %s", field)
		}
	}

	summary, err := os.ReadFile(textPath)
	if err != nil {
		t.Fatalf("failed to read summary: %v", err)
	}
	for _, want := range []string{"Listed Today: true", "Cause List: count=1", "Run at (UTC): 2025-03-05T05:00:00Z"} {
		if !strings.Contains(string(summary), want) {
			t.Errorf("expected summary to contain %q, got:\n%s", want, summary)
		}
	}
}

func TestSaveExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	store, err := New("~/" + filepath.Join(".cache", "ecourts-check-test-"+time.Now().Format("150405")))
	if err != nil {
		t.Fatalf("failed to create storage under home: %v", err)
	}
	defer os.RemoveAll(store.Dir())
	if !strings.HasPrefix(store.Dir(), home) {
		t.Errorf("expected dir under %s, got %s", home, store.Dir())
	}
}

func TestSaveICS(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}

	now := time.Date(2025, 3, 5, 10, 30, 0, 0, time.UTC)
	path, err := store.SaveICS(sampleResult().CaseOverview, now)
	if err != nil {
		t.Fatalf("SaveICS failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read ics: %v", err)
	}
	ics := string(data)
	for _, want := range []string{"BEGIN:VCALENDAR", "BEGIN:VEVENT", "SUMMARY:Hearing - OS 123/2024", "END:VCALENDAR"} {
		if !strings.Contains(ics, want) {
			t.Errorf("expected ics to contain %q", want)
		}
	}
}

func TestSaveICSNoHearings(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	path, err := store.SaveICS(&record.CaseOverview{}, time.Now())
	if err != nil {
		t.Fatalf("SaveICS failed: %v", err)
	}
	if path != "" {
		t.Errorf("expected no file for empty hearings, got %s", path)
	}
}
