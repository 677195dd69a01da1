package ingestion

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadata(t *testing.T) {
	content := "test content é"
	before := time.Now().UTC().Add(-time.Second)

	metadata := NewMetadata(content, "resume.txt", FormatText)

	assert.Equal(t, "resume.txt", metadata.Source)
	assert.Equal(t, FormatText, metadata.Format)
	assert.Equal(t, 14, metadata.Chars)
	assert.Len(t, metadata.Hash, 64)
	assert.True(t, metadata.LoadedAt.After(before))
}

func TestNewMetadata_HashFollowsContent(t *testing.T) {
	a := NewMetadata("test content", "a.txt", FormatText)
	b := NewMetadata("different content", "a.txt", FormatText)
	c := NewMetadata("test content", "c.md", FormatText)

	assert.NotEqual(t, a.Hash, b.Hash)
	assert.Equal(t, a.Hash, c.Hash)
	assert.Equal(t, a.Hash[:12], a.ShortHash())
}

func TestMetadata_MarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	metadata := &Metadata{
		Source:   "https://boards.greenhouse.io/acme/jobs/1",
		Format:   FormatURL,
		Platform: "greenhouse",
		Hash:     "abcd1234",
		Chars:    10,
	}
	log.Info().Object("job", metadata).Msg("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	fields, ok := entry["job"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "url", fields["format"])
	assert.Equal(t, "greenhouse", fields["platform"])
	assert.Equal(t, "abcd1234", fields["hash"])
	assert.NotContains(t, fields, "rendered")
}
