package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rpalakkal/ecourts-check/internal/browser"
	"github.com/rpalakkal/ecourts-check/internal/config"
	"github.com/rpalakkal/ecourts-check/internal/listing"
	"github.com/rpalakkal/ecourts-check/internal/parse"
	"github.com/rpalakkal/ecourts-check/internal/record"
	"github.com/rpalakkal/ecourts-check/internal/storage"
)

const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitInterrupted = 130
)

var (
	flagCNR               string
	flagCaseType          string
	flagCaseNumber        string
	flagYear              string
	flagToday             bool
	flagTomorrow          bool
	flagCauseList         bool
	flagSection           string
	flagDownloadPDF       bool
	flagDownloadCauseList bool
	flagHeadless          bool
	flagBrowserBin        string
	flagOut               string
	flagDownloads         string
	flagFormat            string
	flagICS               bool
	flagConfig            string
	flagVerbose           bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ecourts-check",
		Short: "Fetch case details and cause lists from eCourts (manual CAPTCHA)",
		Long: `Check whether a court case is listed in an eCourts cause list.

The tool opens the eCourts portal in a real browser, waits while you fill in
the search form and solve the CAPTCHA, then parses the rendered result pages
and reports the case's listing status. Results are saved as JSON plus a text
summary.`,
		SilenceUsage: true,
		RunE:         runCheck,
	}

	cmd.Flags().StringVar(&flagCNR, "cnr", "", "16-char CNR number (e.g., MHAU019999992015)")
	cmd.Flags().StringVar(&flagCaseType, "case-type", "", "Case type code/text, e.g. OS (use with --case-number and --year)")
	cmd.Flags().StringVar(&flagCaseNumber, "case-number", "", "Case number (required with --case-type)")
	cmd.Flags().StringVar(&flagYear, "year", "", "Case year (required with --case-type)")
	cmd.Flags().BoolVar(&flagToday, "today", false, "Check today's listing")
	cmd.Flags().BoolVar(&flagTomorrow, "tomorrow", false, "Check tomorrow's listing")
	cmd.Flags().BoolVar(&flagCauseList, "causelist", false, "Open cause list flow and parse entries")
	cmd.Flags().StringVar(&flagSection, "section", "Civil", "Cause list section to click: Civil or Criminal")
	cmd.Flags().BoolVar(&flagDownloadPDF, "download-pdf", false, "Download PDF(s) linked on the result page")
	cmd.Flags().BoolVar(&flagDownloadCauseList, "download-causelist", false, "Download cause list PDF if present")
	cmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run the browser headless (CAPTCHA flows need a visible window)")
	cmd.Flags().StringVar(&flagBrowserBin, "browser-bin", "", "Path to a Chromium binary (auto-detected when empty)")
	cmd.Flags().StringVar(&flagOut, "out", "outputs", "Output directory for JSON/TXT")
	cmd.Flags().StringVar(&flagDownloads, "downloads", "downloads", "Directory for downloaded PDFs")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagICS, "ics", false, "Also export hearing dates as an ICS calendar")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config file with flag defaults")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.MarkFlagsMutuallyExclusive("cnr", "case-type")
	cmd.MarkFlagsRequiredTogether("case-type", "case-number", "year")

	return cmd
}

// applyConfigFile fills in defaults from the config file for flags the user
// did not set on the command line.
func applyConfigFile(cmd *cobra.Command) error {
	if flagConfig == "" {
		return nil
	}
	fc, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("out") && fc.Out != "" {
		flagOut = fc.Out
	}
	if !cmd.Flags().Changed("downloads") && fc.Downloads != "" {
		flagDownloads = fc.Downloads
	}
	if !cmd.Flags().Changed("browser-bin") && fc.Browser.Bin != "" {
		flagBrowserBin = fc.Browser.Bin
	}
	if !cmd.Flags().Changed("headless") {
		flagHeadless = fc.Browser.Headless
	}
	if !cmd.Flags().Changed("section") && fc.Section != "" {
		flagSection = fc.Section
	}
	if !cmd.Flags().Changed("format") && fc.Format != "" {
		flagFormat = fc.Format
	}
	if !cmd.Flags().Changed("verbose") {
		flagVerbose = fc.Verbose
	}
	return nil
}

// runCheck is the main command logic
func runCheck(cmd *cobra.Command, args []string) error {
	if err := applyConfigFile(cmd); err != nil {
		return err
	}

	if flagVerbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if flagCNR == "" && flagCaseType == "" {
		return fmt.Errorf("one of --cnr or --case-type is required")
	}
	var section string
	switch strings.ToLower(flagSection) {
	case "civil":
		section = "Civil"
	case "criminal":
		section = "Criminal"
	default:
		return fmt.Errorf("invalid section: %s (must be 'Civil' or 'Criminal')", flagSection)
	}
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	store, err := storage.New(flagOut)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	session, err := browser.New(flagHeadless, flagBrowserBin)
	if err != nil {
		return fmt.Errorf("starting browser: %w", err)
	}
	defer session.Close()

	// Ctrl-C during the manual wait should close the browser, not leave a
	// stray Chromium behind.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)
	go func() {
		<-interrupt
		fmt.Fprintln(os.Stderr, "\nAborted by user.")
		session.Close()
		os.Exit(ExitInterrupted)
	}()

	result := &record.RunResult{
		Inputs: record.Inputs{
			CNR:               flagCNR,
			CaseType:          flagCaseType,
			CaseNumber:        flagCaseNumber,
			Year:              flagYear,
			Today:             flagToday,
			Tomorrow:          flagTomorrow,
			CauseList:         flagCauseList,
			Section:           section,
			DownloadPDF:       flagDownloadPDF,
			DownloadCauseList: flagDownloadCauseList,
			Headless:          flagHeadless,
		},
		DownloadedFiles: []string{},
		TaskRunAt:       time.Now().UTC().Format(time.RFC3339),
	}

	// Step 1: case-status flow for a CNR search.
	if flagCNR != "" {
		overview, downloaded, err := runCNRFlow(session)
		if err != nil {
			return err
		}
		result.CaseOverview = overview
		result.DownloadedFiles = append(result.DownloadedFiles, downloaded...)
	}

	// Step 2: cause-list flow (the only way to get serial + court).
	var rows []record.CauseListRow
	var causePDF *string
	if flagCauseList || flagToday || flagTomorrow {
		var downloaded []string
		rows, causePDF, downloaded, err = runCauseListFlow(session, section)
		if err != nil {
			return err
		}
		result.DownloadedFiles = append(result.DownloadedFiles, downloaded...)
	}

	// Step 3: decide listed today/tomorrow.
	key := ""
	if flagCaseType != "" {
		key = fmt.Sprintf("%s %s/%s", flagCaseType, flagCaseNumber, flagYear)
	} else if result.CaseOverview != nil && result.CaseOverview.CaseNumber != nil {
		key = *result.CaseOverview.CaseNumber
	}

	decision := listing.Resolve(result.CaseOverview, rows, key, flagToday, flagTomorrow, time.Now())
	result.IsListedToday = decision.ListedToday
	result.IsListedTomorrow = decision.ListedTomorrow
	result.ListingDetails = decision.Details

	if len(rows) > 0 {
		result.CauseList = &record.CauseListSnapshot{
			Count:   len(rows),
			Entries: rows,
			PDFPath: causePDF,
		}
	}

	// Persist.
	now := time.Now()
	jsonPath, textPath, err := store.Save(result, now)
	if err != nil {
		return fmt.Errorf("saving result: %w", err)
	}
	icsPath := ""
	if flagICS {
		icsPath, err = store.SaveICS(result.CaseOverview, now)
		if err != nil {
			return fmt.Errorf("saving calendar: %w", err)
		}
	}

	out := &OutputResult{
		Result:   result,
		JSONPath: jsonPath,
		TextPath: textPath,
		ICSPath:  icsPath,
	}
	return WriteOutput(os.Stdout, out, format)
}

// runCNRFlow opens the portal home page, hands control to the operator for
// the CNR search, and parses the resulting case-status page.
func runCNRFlow(session *browser.Session) (*record.CaseOverview, []string, error) {
	if err := session.Open(browser.HomeURL); err != nil {
		return nil, nil, err
	}
	msg := "[Browser] Please enter the CNR, solve the CAPTCHA and click 'Search'.\n" +
		"[Terminal] When the results page is visible, press ENTER here to continue..."
	if err := session.WaitForOperator(msg); err != nil {
		return nil, nil, err
	}

	html, err := session.HTML()
	if err != nil {
		return nil, nil, err
	}
	overview := parse.CaseStatus(html)
	log.Debug().Int("hearings", len(overview.Hearings)).Msg("parsed case overview")

	var downloaded []string
	if flagDownloadPDF {
		downloaded, err = session.DownloadPDFs(flagDownloads)
		if err != nil {
			return &overview, nil, fmt.Errorf("downloading pdfs: %w", err)
		}
	}
	return &overview, downloaded, nil
}

// runCauseListFlow opens the cause-list page, hands control to the operator
// for court/date/CAPTCHA selection, and parses the visible table.
func runCauseListFlow(session *browser.Session, section string) ([]record.CauseListRow, *string, []string, error) {
	if err := session.Open(browser.CauseListURL); err != nil {
		return nil, nil, nil, err
	}
	msg := "[Browser] On the cause list page, please:\n" +
		"  1) Select State -> District -> Court Complex -> Court Name\n" +
		"  2) Select the desired 'Cause List Date'\n" +
		fmt.Sprintf("  3) Solve CAPTCHA and click '%s'\n", section) +
		"[Terminal] When the cause list is visible, press ENTER here to continue..."
	if err := session.WaitForOperator(msg); err != nil {
		return nil, nil, nil, err
	}

	html, err := session.HTML()
	if err != nil {
		return nil, nil, nil, err
	}
	rows := parse.CauseList(html)
	log.Debug().Int("rows", len(rows)).Msg("parsed cause list entries")

	var pdfPath *string
	var downloaded []string
	if flagDownloadCauseList {
		p, err := session.DownloadFirstPDF(flagDownloads)
		if err != nil {
			return rows, nil, nil, fmt.Errorf("downloading cause list pdf: %w", err)
		}
		if p != "" {
			pdfPath = record.String(p)
			downloaded = append(downloaded, p)
		}
	}
	return rows, pdfPath, downloaded, nil
}

// Execute runs the CLI
func Execute() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
