package record

// CaseOverview holds whatever the case-status page gave up. Any field can be
// missing; hearings keep their source order, duplicates included.
type CaseOverview struct {
	CNR        *string        `json:"cnr"`
	CaseNumber *string        `json:"case_number"`
	CourtName  *string        `json:"court_name"`
	Hearings   []HearingEntry `json:"hearings"`
}

// HearingEntry is one dated entry from a case's hearing history.
// Date is always DD-MM-YYYY; Purpose is nil when none was recognized.
type HearingEntry struct {
	Date    string  `json:"date"`
	Purpose *string `json:"purpose"`
}

// CauseListRow is one data row recovered from a cause-list table.
// Serial is kept verbatim (leading zeros preserved). RawCells holds every
// cell text left to right, regardless of which semantic fields matched.
type CauseListRow struct {
	Serial    string   `json:"serial"`
	CaseText  *string  `json:"case_text"`
	Purpose   *string  `json:"purpose"`
	CourtInfo *string  `json:"court_info"`
	RawCells  []string `json:"raw_cells"`
}

// ListingDetails describes where a matched case sits in the cause list.
type ListingDetails struct {
	Serial   string  `json:"serial"`
	Court    *string `json:"court"`
	CaseText *string `json:"case_text"`
	Purpose  *string `json:"purpose"`
}

// Decision answers "is this case listed today / tomorrow". A nil flag means
// there was nothing to check against, not "no".
type Decision struct {
	ListedToday    *bool           `json:"listed_today"`
	ListedTomorrow *bool           `json:"listed_tomorrow"`
	Details        *ListingDetails `json:"details"`
}

// Inputs echoes the run's request so saved results are self-describing.
type Inputs struct {
	CNR               string `json:"cnr,omitempty"`
	CaseType          string `json:"case_type,omitempty"`
	CaseNumber        string `json:"case_number,omitempty"`
	Year              string `json:"year,omitempty"`
	Today             bool   `json:"today"`
	Tomorrow          bool   `json:"tomorrow"`
	CauseList         bool   `json:"causelist"`
	Section           string `json:"section,omitempty"`
	DownloadPDF       bool   `json:"download_pdf"`
	DownloadCauseList bool   `json:"download_causelist"`
	Headless          bool   `json:"headless"`
}

// CauseListSnapshot is the parsed cause-list table as persisted.
type CauseListSnapshot struct {
	Count   int            `json:"count"`
	Entries []CauseListRow `json:"entries"`
	PDFPath *string        `json:"pdf_path"`
}

// RunResult is the full document written at the end of a run.
type RunResult struct {
	Inputs           Inputs             `json:"inputs"`
	CaseOverview     *CaseOverview      `json:"case_overview"`
	IsListedToday    *bool              `json:"is_listed_today"`
	IsListedTomorrow *bool              `json:"is_listed_tomorrow"`
	ListingDetails   *ListingDetails    `json:"listing_details"`
	CauseList        *CauseListSnapshot `json:"cause_list"`
	DownloadedFiles  []string           `json:"downloaded_files"`
	TaskRunAt        string             `json:"task_run_at"`
}

// String returns a pointer to s. Optional fields stay nil when a heuristic
// found nothing, so "" never masquerades as a recovered value.
func String(s string) *string {
	return &s
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}
