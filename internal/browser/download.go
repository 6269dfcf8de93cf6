package browser

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog/log"
)

var unsafeFilenameRe = regexp.MustCompile(`[^\w\-.]+`)

// DownloadPDFs collects every pdf-looking link on the current page and
// fetches each one over plain HTTP with the browser's cookies attached, so
// the portal's session survives the hop out of Chromium. Responses that are
// not application/pdf are dropped. Returns the paths written under dir;
// individual download failures are logged and skipped.
func (s *Session) DownloadPDFs(dir string) ([]string, error) {
	if s.page == nil {
		return nil, nil
	}
	hrefs, err := s.pdfLinks()
	if err != nil {
		return nil, err
	}
	if len(hrefs) == 0 {
		return nil, nil
	}
	log.Debug().Int("links", len(hrefs)).Msg("found pdf-like links")

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating download directory: %w", err)
	}

	cookies, err := s.browser.GetCookies()
	if err != nil {
		return nil, fmt.Errorf("reading browser cookies: %w", err)
	}
	client := &http.Client{Timeout: pageTimeout}

	var downloaded []string
	for _, href := range hrefs {
		p, err := s.fetchPDF(client, cookies, href, dir)
		if err != nil {
			log.Warn().Str("url", href).Err(err).Msg("pdf download failed")
			continue
		}
		if p != "" {
			downloaded = append(downloaded, p)
			log.Debug().Str("path", p).Msg("downloaded pdf")
		}
	}
	return downloaded, nil
}

// DownloadFirstPDF is DownloadPDFs limited to the first successful file,
// used for the cause-list PDF link.
func (s *Session) DownloadFirstPDF(dir string) (string, error) {
	files, err := s.DownloadPDFs(dir)
	if err != nil || len(files) == 0 {
		return "", err
	}
	return files[0], nil
}

// pdfLinks returns the page's pdf-looking anchor targets, resolved against
// the page URL, deduplicated and sorted.
func (s *Session) pdfLinks() ([]string, error) {
	info, err := s.page.Info()
	if err != nil {
		return nil, fmt.Errorf("reading page info: %w", err)
	}
	base, err := url.Parse(info.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing page url: %w", err)
	}

	anchors, err := s.page.Elements("a")
	if err != nil {
		return nil, fmt.Errorf("finding links: %w", err)
	}

	seen := make(map[string]bool)
	var hrefs []string
	for _, a := range anchors {
		href, err := a.Attribute("href")
		if err != nil || href == nil {
			continue
		}
		if !strings.Contains(strings.ToLower(*href), "pdf") {
			continue
		}
		ref, err := url.Parse(*href)
		if err != nil {
			continue
		}
		abs := base.ResolveReference(ref).String()
		if !seen[abs] {
			seen[abs] = true
			hrefs = append(hrefs, abs)
		}
	}
	sort.Strings(hrefs)
	return hrefs, nil
}

func (s *Session) fetchPDF(client *http.Client, cookies []*proto.NetworkCookie, rawURL, dir string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	for _, c := range cookies {
		if cookieMatchesHost(c.Domain, req.URL.Host) {
			req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	if !strings.HasPrefix(strings.ToLower(resp.Header.Get("Content-Type")), "application/pdf") {
		return "", nil
	}

	name := sanitizeFilename(path.Base(strings.SplitN(rawURL, "?", 2)[0]))
	if name == "" || name == "." || name == "/" {
		name = fmt.Sprintf("case_%d.pdf", time.Now().Unix())
	}
	dest := filepath.Join(dir, name)

	f, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		return "", err
	}
	return dest, nil
}

// cookieMatchesHost applies the usual domain-suffix rule for cookies.
func cookieMatchesHost(domain, host string) bool {
	domain = strings.TrimPrefix(domain, ".")
	return domain == "" || host == domain || strings.HasSuffix(host, "."+domain)
}

// sanitizeFilename squashes anything outside [word, dash, dot] so portal
// link text can't produce hostile paths.
func sanitizeFilename(name string) string {
	return strings.Trim(unsafeFilenameRe.ReplaceAllString(name, "_"), "_")
}
