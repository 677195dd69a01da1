package validation

import (
	"strings"
	"testing"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/rules"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567

Summary
Backend engineer focused on data platforms.

Experience
Acme Corp, 2019 - 2023
- Led a team of 6 engineers migrating services to Kubernetes
- Reduced infrastructure cost by 30%
- Built Python ETL pipelines feeding SQL dashboards

Education
B.S. Computer Science, 2018

Skills
Python, SQL, Docker, AWS`

func TestHasEmail(t *testing.T) {
	assert.True(t, HasEmail("contact a@b.com"))
	assert.True(t, HasEmail("jane.doe+jobs@mail.example.org"))
	assert.False(t, HasEmail("no at sign here"))
	assert.False(t, HasEmail("broken@address"))
}

func TestHasPhone(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"(555) 123-4567", true},
		{"555.123.4567", true},
		{"+1 555 123 4567", true},
		{"5551234567", true},
		{"call me maybe", false},
		{"2019 - 2023", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HasPhone(tt.text), tt.text)
	}
}

func TestCountBulletLines(t *testing.T) {
	text := "- one\n* two\n• three\n1. four\n2) five\nplain line\n-notabullet"
	assert.Equal(t, 5, CountBulletLines(text))
	assert.Equal(t, 0, CountBulletLines(""))
}

func TestHasDates(t *testing.T) {
	assert.True(t, HasDates("Acme, 2019-2023"))
	assert.True(t, HasDates("since 1998"))
	assert.False(t, HasDates("room 2100"))
	assert.False(t, HasDates("no years"))
}

func TestRunFormatChecks_SampleResume(t *testing.T) {
	rs := rules.Default()

	checks := RunFormatChecks(sampleResume, rs, DefaultMaxLineLength)

	for _, id := range []string{CheckEmail, CheckPhone, CheckBullets, CheckDates, CheckLongLines} {
		check := findCheck(t, checks, id)
		assert.True(t, check.OK, id)
		assert.NotEmpty(t, check.Label)
	}

	advice := 0
	for _, c := range checks {
		if strings.HasPrefix(c.ID, "advice_") {
			advice++
			assert.True(t, c.OK)
		}
	}
	assert.Equal(t, len(rs.FormatAdvice), advice)
}

func TestRunFormatChecks_EmailPresence(t *testing.T) {
	rs := rules.Default()

	with := RunFormatChecks("reach me at a@b.com", rs, 0)
	without := RunFormatChecks("reach me by carrier pigeon", rs, 0)

	assert.True(t, findCheck(t, with, CheckEmail).OK)
	assert.False(t, findCheck(t, without, CheckEmail).OK)
}

func TestRunFormatChecks_Failures(t *testing.T) {
	rs := rules.Default()
	text := "two bullets only\n- a thing\n- another thing\n" + strings.Repeat("x", 141)

	checks := RunFormatChecks(text, rs, 140)

	assert.False(t, findCheck(t, checks, CheckBullets).OK)
	assert.False(t, findCheck(t, checks, CheckLongLines).OK)
	assert.False(t, findCheck(t, checks, CheckDates).OK)
	assert.False(t, findCheck(t, checks, CheckPhone).OK)
}

func TestRunFormatChecks_NoAdvice(t *testing.T) {
	rs := rules.Default()
	rs.FormatAdvice = nil

	checks := RunFormatChecks("", rs, 140)

	assert.Len(t, checks, 5)
}

func findCheck(t *testing.T, checks []types.FormatCheck, id string) types.FormatCheck {
	t.Helper()
	check, ok := types.FindCheck(checks, id)
	require.True(t, ok, "missing check %s", id)
	return check
}
