package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// Metadata records where a document came from and what was extracted from it.
type Metadata struct {
	Source   string    `json:"source"`             // file path or URL
	Format   Format    `json:"format"`             // detected input format
	Platform string    `json:"platform,omitempty"` // job board, for URLs
	Rendered bool      `json:"rendered,omitempty"` // text came from a headless browser
	LoadedAt time.Time `json:"loaded_at"`
	Hash     string    `json:"hash"` // SHA256 hex digest of the cleaned text
	Chars    int       `json:"chars"`
}

// NewMetadata describes cleaned content loaded from source.
func NewMetadata(content, source string, format Format) *Metadata {
	sum := sha256.Sum256([]byte(content))
	return &Metadata{
		Source:   source,
		Format:   format,
		LoadedAt: time.Now().UTC(),
		Hash:     hex.EncodeToString(sum[:]),
		Chars:    utf8.RuneCountInString(content),
	}
}

// ShortHash returns the first 12 hex digits of Hash, enough to tell inputs apart in logs.
func (m *Metadata) ShortHash() string {
	if len(m.Hash) < 12 {
		return m.Hash
	}
	return m.Hash[:12]
}

// MarshalZerologObject lets a Metadata be logged with Event.Object.
func (m *Metadata) MarshalZerologObject(e *zerolog.Event) {
	e.Str("source", m.Source).
		Str("format", string(m.Format)).
		Str("hash", m.ShortHash()).
		Int("chars", m.Chars)
	if m.Platform != "" {
		e.Str("platform", m.Platform)
	}
	if m.Rendered {
		e.Bool("rendered", true)
	}
}
