package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr string
	}{
		{url: "https://jobs.lever.co/acme/123"},
		{url: "http://localhost:8080/job"},
		{url: "not-a-valid-url", wantErr: "unsupported scheme"},
		{url: "ftp://example.com/job", wantErr: "unsupported scheme"},
		{url: "https://", wantErr: "missing host"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := checkURL(tt.url)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &Error{URL: "https://example.com", Message: "HTTP request failed", Cause: cause}

	assert.Equal(t, "fetch https://example.com: HTTP request failed: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "fetch https://example.com: HTTP status 404", (&Error{URL: "https://example.com", Message: "HTTP status 404"}).Error())
}

func TestURL(t *testing.T) {
	var headers http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><h1>Backend Engineer</h1></body></html>"))
	}))
	defer server.Close()

	t.Run("defaults", func(t *testing.T) {
		result, err := URL(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, server.URL, result.URL)
		assert.Equal(t, http.StatusOK, result.StatusCode)
		assert.Equal(t, "text/html", result.ContentType)
		assert.Contains(t, result.HTML, "Backend Engineer")
		assert.Equal(t, DefaultUserAgent, headers.Get("User-Agent"))
	})

	t.Run("custom headers", func(t *testing.T) {
		opts := &Options{UserAgent: "tester/2.0", Headers: map[string]string{"X-Trace": "abc"}}
		_, err := URL(context.Background(), server.URL, opts)
		require.NoError(t, err)
		assert.Equal(t, "tester/2.0", headers.Get("User-Agent"))
		assert.Equal(t, "abc", headers.Get("X-Trace"))
	})

	t.Run("body limit", func(t *testing.T) {
		result, err := URL(context.Background(), server.URL, &Options{MaxBodyBytes: 6})
		require.NoError(t, err)
		assert.Equal(t, "<html>", result.HTML)
	})
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "ftp://example.com/job", nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "invalid URL", fetchErr.Message)
}

func TestURL_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusGone)
		_, _ = w.Write([]byte("posting closed"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusGone, result.StatusCode)
	assert.Equal(t, "posting closed", result.HTML)
	assert.Contains(t, err.Error(), "HTTP status 410")
}

func TestExtractMainText(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		content  []string
		noise    []string
		expected string
	}{
		{
			name:     "page chrome removed",
			html:     `<html><body><nav>Menu</nav><main><h1>Data Engineer</h1><p>Build pipelines.</p></main><footer>Legal</footer></body></html>`,
			content:  []string{"main"},
			expected: "Data Engineer\nBuild pipelines.",
		},
		{
			name:     "body when nothing matches",
			html:     `<html><body><div>Remote friendly.</div></body></html>`,
			content:  []string{"article"},
			expected: "Remote friendly.",
		},
		{
			name: "first matching selector wins",
			html: `<html><body>
				<div class="sidebar">Similar jobs</div>
				<div class="job-description">
					<h2>Requirements</h2><ul><li>Go</li><li>SQL</li></ul>
					<h2>Nice to have</h2><p>Docker<br>Kubernetes</p>
				</div>
				<main>Other</main>
			</body></html>`,
			content:  JobPostingSelectors(),
			expected: "Requirements\n- Go\n- SQL\nNice to have\nDocker\nKubernetes",
		},
		{
			name:     "extra noise selectors",
			html:     `<html><body><main><p>Keep</p><div class="apply">Apply now</div></main></body></html>`,
			content:  []string{"main"},
			noise:    []string{".apply"},
			expected: "Keep",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := ExtractMainText(tt.html, tt.content, tt.noise...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestCleanWhitespace(t *testing.T) {
	input := "  Senior   Engineer \n\n-\n   - Go  \n\t\n"
	assert.Equal(t, "Senior Engineer\n- Go", cleanWhitespace(input))
	assert.Empty(t, cleanWhitespace(strings.Repeat(" \n", 3)))
}
