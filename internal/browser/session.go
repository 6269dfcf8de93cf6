package browser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog/log"
)

// Official eCourts entry points.
const (
	HomeURL      = "https://services.ecourts.gov.in/ecourtindia_v6/"
	CauseListURL = "https://services.ecourts.gov.in/ecourtindia_v6/?p=cause_list/index"
)

const (
	pageTimeout = 60 * time.Second
	// The portal renders results with JavaScript after form submission;
	// give the page a moment to settle before snapshotting.
	settleDelay = time.Second
)

// Session owns one Chromium instance for the duration of a run. The portal
// requires a CAPTCHA on every search, so the session never submits forms
// itself: it navigates, hands control to the operator, and reads back the
// rendered page once the operator confirms on the terminal.
type Session struct {
	browser *rod.Browser
	page    *rod.Page
	stdin   *bufio.Reader
	stdout  io.Writer
}

// New launches a local Chromium and connects to it. Headless only makes
// sense for flows that need no operator input; the CAPTCHA flows want a
// visible window.
func New(headless bool, bin string) (*Session, error) {
	l := launcher.New().Headless(headless).NoSandbox(true)
	if bin != "" {
		l = l.Bin(bin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}
	log.Debug().Bool("headless", headless).Msg("browser session started")

	return &Session{
		browser: b,
		stdin:   bufio.NewReader(os.Stdin),
		stdout:  os.Stdout,
	}, nil
}

// Open navigates the session's page to url and waits for the load event.
// The first call creates the page; later calls reuse it so the operator
// keeps a single window.
func (s *Session) Open(url string) error {
	if s.page == nil {
		page, err := s.browser.Page(proto.TargetCreateTarget{URL: ""})
		if err != nil {
			return fmt.Errorf("opening page: %w", err)
		}
		s.page = page.Timeout(pageTimeout)
	}
	log.Debug().Str("url", url).Msg("navigating")
	if err := s.page.Navigate(url); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := s.page.WaitLoad(); err != nil {
		return fmt.Errorf("waiting for page load: %w", err)
	}
	return nil
}

// WaitForOperator prints instructions and blocks until the operator presses
// ENTER on the terminal. This is the synchronous handoff around the manual
// form-and-CAPTCHA step: everything downstream sees only the completed page.
func (s *Session) WaitForOperator(message string) error {
	fmt.Fprintf(s.stdout, "\n%s\n", message)
	if _, err := s.stdin.ReadString('\n'); err != nil {
		return fmt.Errorf("waiting for operator: %w", err)
	}
	return nil
}

// HTML returns the current rendered markup as a static snapshot.
func (s *Session) HTML() (string, error) {
	if s.page == nil {
		return "", fmt.Errorf("no page open")
	}
	time.Sleep(settleDelay)
	html, err := s.page.HTML()
	if err != nil {
		return "", fmt.Errorf("reading page source: %w", err)
	}
	return html, nil
}

// Close shuts the browser down. Safe to call on a partially constructed
// session.
func (s *Session) Close() error {
	if s.browser == nil {
		return nil
	}
	if err := s.browser.Close(); err != nil {
		return fmt.Errorf("closing browser: %w", err)
	}
	s.browser = nil
	s.page = nil
	return nil
}
