package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLineLengths(t *testing.T) {
	long := strings.Repeat("a", 141)
	text := "short line\r\n" + long + "\n" + strings.Repeat("b", 140) + "   \n"

	violations := ValidateLineLengths(text, 140)

	require.Len(t, violations, 1)
	v := violations[0]
	assert.Equal(t, "line_too_long", v.Type)
	assert.Equal(t, "warning", v.Severity)
	require.NotNil(t, v.LineNumber)
	assert.Equal(t, 2, *v.LineNumber)
	require.NotNil(t, v.CharCount)
	assert.Equal(t, 141, *v.CharCount)
	assert.Equal(t, strings.Repeat("a", 60)+"...", v.Excerpt)
	assert.Contains(t, v.Details, "Line 2 has 141 characters")
}

func TestValidateLineLengths_CountsRunes(t *testing.T) {
	// 100 two-byte runes stay under the limit
	text := strings.Repeat("é", 100)
	assert.Empty(t, ValidateLineLengths(text, 140))
}

func TestValidateLineLengths_DefaultLimit(t *testing.T) {
	assert.Empty(t, ValidateLineLengths(strings.Repeat("a", 140), 0))
	assert.Len(t, ValidateLineLengths(strings.Repeat("a", 141), -1), 1)
}

func TestValidateLineLengths_Empty(t *testing.T) {
	assert.Empty(t, ValidateLineLengths("", 140))
}
