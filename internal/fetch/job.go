package fetch

import (
	"context"
	"fmt"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/logging"
)

// Posting is the text of a job posting fetched from a URL.
type Posting struct {
	URL      string
	Platform Platform
	Text     string
	Rendered bool // text came from the headless browser
}

// JobOptions configures JobPosting.
type JobOptions struct {
	HTTP *Options

	// UseBrowser enables the headless browser when the HTTP text is too short
	UseBrowser bool

	// Render overrides the browser renderer; nil means NewBrowser().Render
	Render Renderer
}

// JobPosting fetches a job posting and extracts its text using the selectors
// of the detected platform. When UseBrowser is set and the extracted text is
// shorter than MinContentLength the page is rendered in a browser instead; a
// failed render keeps the HTTP text.
func JobPosting(ctx context.Context, urlStr string, opts JobOptions) (*Posting, error) {
	log := logging.FromContext(ctx)

	platform := DetectPlatform(urlStr)
	log.Debug().Str("url", urlStr).Str("platform", string(platform)).Msg("Fetching job posting")

	result, err := URL(ctx, urlStr, opts.HTTP)
	if err != nil {
		return nil, err
	}

	content := PlatformContentSelectors(platform)
	noise := PlatformNoiseSelectors(platform)

	text, err := ExtractMainText(result.HTML, content, noise...)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "content extraction failed", Cause: err}
	}
	log.Debug().Int("html_bytes", len(result.HTML)).Int("text_chars", len(text)).Msg("Extracted job text")

	posting := &Posting{URL: urlStr, Platform: platform, Text: text}

	if opts.UseBrowser && ShouldUseBrowser(text) {
		render := opts.Render
		if render == nil {
			render = NewBrowser().Render
		}
		log.Info().Int("text_chars", len(text)).Int("min_chars", MinContentLength).Msg("Content too short, rendering in browser")

		html, renderErr := render(ctx, urlStr)
		if renderErr != nil {
			log.Warn().Err(renderErr).Msg("Browser rendering failed, using HTTP content")
			return posting, nil
		}
		rendered, extractErr := ExtractMainText(html, content, noise...)
		if extractErr != nil {
			log.Warn().Err(extractErr).Msg("Browser content extraction failed, using HTTP content")
			return posting, nil
		}
		posting.Text = rendered
		posting.Rendered = true
	}

	if posting.Text == "" {
		return nil, &Error{URL: urlStr, Message: fmt.Sprintf("no text found on %s page", platform)}
	}
	return posting, nil
}
