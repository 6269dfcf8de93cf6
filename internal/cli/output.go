package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rpalakkal/ecourts-check/internal/record"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	Result   *record.RunResult `json:"result"`
	JSONPath string            `json:"json_path"`
	TextPath string            `json:"text_path"`
	ICSPath  string            `json:"ics_path,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, out *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, out)
	case FormatText:
		return writeText(w, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, out *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// writeText outputs results as a human-readable console summary
func writeText(w io.Writer, out *OutputResult) error {
	result := out.Result

	fmt.Fprintln(w, "\n=== eCourts Check Result ===")
	fmt.Fprintf(w, "Saved JSON: %s\n", out.JSONPath)
	fmt.Fprintf(w, "Saved Text: %s\n", out.TextPath)
	if out.ICSPath != "" {
		fmt.Fprintf(w, "Saved Calendar: %s\n", out.ICSPath)
	}

	switch {
	case result.ListingDetails != nil:
		fmt.Fprintf(w, "Serial: %s\n", result.ListingDetails.Serial)
		fmt.Fprintf(w, "Court : %s\n", stringOr(result.ListingDetails.Court, "-"))
	case boolOr(result.IsListedToday) || boolOr(result.IsListedTomorrow):
		fmt.Fprintln(w, "Case appears to be listed by date (based on hearings), but serial/court requires the cause list.")
	default:
		fmt.Fprintln(w, "Case not found in the selected cause list / date, or details unavailable.")
	}

	if len(result.DownloadedFiles) > 0 {
		fmt.Fprintf(w, "Downloaded: %v\n", result.DownloadedFiles)
	}
	return nil
}

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func boolOr(b *bool) bool {
	return b != nil && *b
}
