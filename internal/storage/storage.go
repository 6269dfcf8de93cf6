package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rpalakkal/ecourts-check/internal/record"
)

// Storage writes run results into an output directory.
type Storage struct {
	outDir string
}

// New creates a Storage rooted at outDir, creating the directory if needed.
// A leading ~/ is expanded to the user's home directory.
func New(outDir string) (*Storage, error) {
	if strings.HasPrefix(outDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		outDir = filepath.Join(home, outDir[2:])
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Storage{outDir: outDir}, nil
}

// Dir returns the resolved output directory.
func (s *Storage) Dir() string {
	return s.outDir
}

// Save writes the result as a timestamped JSON document plus a sibling
// human-readable text summary. Returns the two paths written.
func (s *Storage) Save(result *record.RunResult, now time.Time) (jsonPath, textPath string, err error) {
	base := fmt.Sprintf("result_%s", now.Format("20060102_150405"))
	jsonPath = filepath.Join(s.outDir, base+".json")
	textPath = filepath.Join(s.outDir, base+".txt")

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("encoding result: %w", err)
	}
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return "", "", fmt.Errorf("writing result: %w", err)
	}

	if err := os.WriteFile(textPath, []byte(Summary(result)), 0644); err != nil {
		return "", "", fmt.Errorf("writing summary: %w", err)
	}
	return jsonPath, textPath, nil
}

// SaveICS writes an ICS calendar of the overview's hearings next to the
// results. No-op (empty path, nil error) when there are no hearings.
func (s *Storage) SaveICS(overview *record.CaseOverview, now time.Time) (string, error) {
	if overview == nil || len(overview.Hearings) == 0 {
		return "", nil
	}
	ics := GenerateICS(overview, now)
	path := filepath.Join(s.outDir, fmt.Sprintf("hearings_%s.ics", now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(ics), 0644); err != nil {
		return "", fmt.Errorf("writing calendar: %w", err)
	}
	return path, nil
}

// Summary renders the result as the plain-text report saved next to the
// JSON document. Absent fields are simply omitted.
func Summary(result *record.RunResult) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Run at (UTC): %s", result.TaskRunAt))

	if inputs, err := json.Marshal(result.Inputs); err == nil {
		lines = append(lines, fmt.Sprintf("Inputs: %s", inputs))
	}
	if result.CaseOverview != nil {
		if overview, err := json.Marshal(result.CaseOverview); err == nil {
			lines = append(lines, fmt.Sprintf("Case Overview: %s", overview))
		}
	}
	if result.IsListedToday != nil {
		lines = append(lines, fmt.Sprintf("Listed Today: %t", *result.IsListedToday))
	}
	if result.IsListedTomorrow != nil {
		lines = append(lines, fmt.Sprintf("Listed Tomorrow: %t", *result.IsListedTomorrow))
	}
	if result.ListingDetails != nil {
		if details, err := json.Marshal(result.ListingDetails); err == nil {
			lines = append(lines, fmt.Sprintf("Listing Details: %s", details))
		}
	}
	if result.CauseList != nil {
		pdf := ""
		if result.CauseList.PDFPath != nil {
			pdf = *result.CauseList.PDFPath
		}
		lines = append(lines, fmt.Sprintf("Cause List: count=%d pdf=%s", result.CauseList.Count, pdf))
	}
	if len(result.DownloadedFiles) > 0 {
		lines = append(lines, fmt.Sprintf("Downloaded Files: %v", result.DownloadedFiles))
	}
	return strings.Join(lines, "\n") + "\n"
}
