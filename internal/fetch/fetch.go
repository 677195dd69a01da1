// Package fetch downloads job postings and reduces their HTML to plain text.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	DefaultTimeout      = 30 * time.Second
	DefaultUserAgent    = "Mozilla/5.0 (compatible; ATSScorer/1.0)"
	DefaultMaxBodyBytes = 5 << 20
)

// Result is the raw response of a fetch.
type Result struct {
	URL         string
	HTML        string
	ContentType string
	StatusCode  int
}

// Error reports a failed fetch of URL.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := "fetch " + e.URL + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures URL. Zero fields fall back to the package defaults.
type Options struct {
	Timeout      time.Duration
	UserAgent    string
	Headers      map[string]string
	MaxBodyBytes int64
	Client       *http.Client // overrides Timeout when set
}

// DefaultOptions returns the options used when URL is given nil.
func DefaultOptions() *Options {
	return &Options{
		Timeout:      DefaultTimeout,
		UserAgent:    DefaultUserAgent,
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

func (o *Options) httpClient() *http.Client {
	if o.Client != nil {
		return o.Client
	}
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

func (o *Options) bodyLimit() int64 {
	if o.MaxBodyBytes > 0 {
		return o.MaxBodyBytes
	}
	return DefaultMaxBodyBytes
}

func (o *Options) newRequest(ctx context.Context, rawURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("User-Agent", DefaultUserAgent)
	if o.UserAgent != "" {
		req.Header.Set("User-Agent", o.UserAgent)
	}
	for key, value := range o.Headers {
		req.Header.Set(key, value)
	}
	return req, nil
}

// checkURL accepts absolute http and https URLs only.
func checkURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}

// URL downloads rawURL. The body is capped at Options.MaxBodyBytes. A
// non-200 status returns the Result together with an *Error.
func URL(ctx context.Context, rawURL string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := checkURL(rawURL); err != nil {
		return nil, &Error{URL: rawURL, Message: "invalid URL", Cause: err}
	}

	req, err := opts.newRequest(ctx, rawURL)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "failed to create request", Cause: err}
	}

	resp, err := opts.httpClient().Do(req)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, opts.bodyLimit()))
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "failed to read response body", Cause: err}
	}

	result := &Result{
		URL:         rawURL,
		HTML:        string(body),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}
	if resp.StatusCode != http.StatusOK {
		return result, &Error{URL: rawURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return result, nil
}

// Elements dropped from every page before text extraction.
var pageNoise = []string{
	"nav", "footer", "header", "script", "style", "noscript", "svg", "iframe",
	".ad", ".ads", ".advertisement", ".sidebar", ".cookie-banner", ".popup",
}

// Elements that end a line in the extracted text.
const blockElements = "p, div, li, h1, h2, h3, h4, h5, h6, tr, section"

// ExtractMainText returns the text of the first element matching one of
// contentSelectors, or of the body when none match. Generic page chrome and
// noiseSelectors are removed first. Block elements end a line and list items
// are prefixed with "- ", so headings such as "Requirements" keep a line of
// their own.
func ExtractMainText(html string, contentSelectors []string, noiseSelectors ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	noise := append(append([]string{}, pageNoise...), noiseSelectors...)
	doc.Find(strings.Join(noise, ", ")).Remove()

	content := pickContent(doc, contentSelectors)
	content.Find("br").ReplaceWithHtml("\n")
	content.Find(blockElements).AppendHtml("\n")
	content.Find("li").PrependHtml("- ")

	return cleanWhitespace(content.Text()), nil
}

func pickContent(doc *goquery.Document, selectors []string) *goquery.Selection {
	for _, selector := range selectors {
		if found := doc.Find(selector); found.Length() > 0 {
			return found.First()
		}
	}
	return doc.Find("body")
}

// JobPostingSelectors lists content selectors common to job boards, most
// specific first.
func JobPostingSelectors() []string {
	return []string{
		".job-description",
		"#job-description",
		"[data-testid='job-description']",
		".job-content",
		"#job-content",
		".job-details",
		".posting-content",
		"main",
		"article",
		".content",
		"#content",
	}
}

// cleanWhitespace collapses runs of spaces within each line and drops lines
// that end up empty or hold a bare list marker.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" || line == "-" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
