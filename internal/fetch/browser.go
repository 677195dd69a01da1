package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/chromedp/chromedp"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/logging"
)

// MinContentLength is the shortest extracted text, in characters, accepted
// from a plain HTTP fetch. Less usually means the page renders client side.
const MinContentLength = 500

const (
	DefaultBrowserTimeout = 30 * time.Second
	DefaultSettleDelay    = 3 * time.Second
)

// Consent buttons clicked when visible; most boards show one on first visit.
const consentButtons = `button[id*="accept"], button[class*="accept"]`

// Renderer returns the rendered HTML of a page.
type Renderer func(ctx context.Context, url string) (string, error)

// ShouldUseBrowser reports whether text is too short to be a full posting.
func ShouldUseBrowser(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) < MinContentLength
}

// Browser renders pages in headless Chrome. Chrome or Chromium must be
// installed.
type Browser struct {
	Timeout  time.Duration // whole render, including browser start
	Settle   time.Duration // wait after the body is ready
	ExecPath string        // browser binary; empty means search PATH
}

// NewBrowser returns a Browser with the default timeout and settle delay.
func NewBrowser() *Browser {
	return &Browser{Timeout: DefaultBrowserTimeout, Settle: DefaultSettleDelay}
}

func (b *Browser) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if b.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(b.ExecPath))
	}
	return opts
}

func (b *Browser) tasks(url string, html *string) chromedp.Tasks {
	return chromedp.Tasks{
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(b.Settle),
		chromedp.ActionFunc(func(ctx context.Context) error {
			_ = chromedp.Click(consentButtons, chromedp.NodeVisible, chromedp.AtLeast(0)).Do(ctx)
			return nil
		}),
		chromedp.OuterHTML("html", html),
	}
}

// Render loads url and returns the page HTML once scripts have had Settle to run.
func (b *Browser) Render(ctx context.Context, url string) (string, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("url", url).Dur("timeout", b.Timeout).Msg("Starting headless browser")

	timeout := b.Timeout
	if timeout <= 0 {
		timeout = DefaultBrowserTimeout
	}
	ctx, cancelTimeout := context.WithTimeout(ctx, timeout)
	defer cancelTimeout()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, b.allocatorOptions()...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var html string
	if err := chromedp.Run(browserCtx, b.tasks(url, &html)); err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	log.Debug().Int("bytes", len(html)).Msg("Rendered HTML")
	return html, nil
}
