package keywords

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/rules"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractWeighted_WordsAccumulate(t *testing.T) {
	rs := rules.Default()

	group := ExtractWeighted("Python python, Java and Go", MustOptions, rs)

	require.Len(t, group, 2)
	assert.Equal(t, types.KeywordItem{Key: "python", Weight: 4}, group[0])
	assert.Equal(t, types.KeywordItem{Key: "java", Weight: 2}, group[1])
}

func TestExtractWeighted_PhraseCreditedOnce(t *testing.T) {
	rs := rules.Default()

	group := ExtractWeighted("Machine learning and more machine learning", MustOptions, rs)

	require.Len(t, group, 3)
	assert.Equal(t, types.KeywordItem{Key: "machine learning", Weight: 5}, group[0])
	assert.Equal(t, types.KeywordItem{Key: "machine", Weight: 4}, group[1])
	assert.Equal(t, types.KeywordItem{Key: "learning", Weight: 4}, group[2])
}

func TestExtractWeighted_TiesKeepFirstSeenOrder(t *testing.T) {
	rs := rules.Default()

	group := ExtractWeighted("kafka redis postgres", NiceOptions, rs)

	assert.Equal(t, []string{"kafka", "redis", "postgres"}, group.Keys())
	for _, item := range group {
		assert.Equal(t, 1, item.Weight)
	}
}

func TestExtractWeighted_Truncates(t *testing.T) {
	rs := rules.Default()

	words := make([]string, 0, 40)
	for i := 0; i < 40; i++ {
		words = append(words, fmt.Sprintf("term%02d", i))
	}
	// repeat one word so it sorts first
	text := strings.Join(words, " ") + " term39 term39"

	group := ExtractWeighted(text, MustOptions, rs)

	require.Len(t, group, types.MaxGroupSize)
	assert.Equal(t, "term39", group[0].Key)
	assert.Equal(t, 6, group[0].Weight)
	assert.Equal(t, "term00", group[1].Key)
}

func TestExtractWeighted_Empty(t *testing.T) {
	rs := rules.Default()

	for _, text := range []string{"", "   ", "and the of", "!!! ???"} {
		group := ExtractWeighted(text, MustOptions, rs)
		assert.Empty(t, group, "text %q", text)
	}
}

func TestExtractWeighted_CustomRules(t *testing.T) {
	rs := rules.Default()
	rs.Stopwords = rules.NewWordSet("python")
	rs.Phrases = []string{"site reliability"}

	group := ExtractWeighted("Python site reliability", MustOptions, rs)

	assert.Equal(t, []string{"site reliability", "site", "reliability"}, group.Keys())
}

func TestExtractGroups_RequiredAndPreferred(t *testing.T) {
	rs := rules.Default()

	groups := ExtractGroups("Required: Python, SQL. Preferred: Docker.", rs)

	assert.Equal(t, types.KeywordGroup{
		{Key: "python", Weight: 2},
		{Key: "sql", Weight: 2},
	}, groups.Must)
	assert.Equal(t, types.KeywordGroup{
		{Key: "docker", Weight: 1},
	}, groups.Nice)
}

func TestExtractGroups_HeadingHintsAreNotKeywords(t *testing.T) {
	groups := ExtractGroups("Requirements: Python and SQL are required.", rules.Default())

	assert.Equal(t, []string{"python", "sql"}, groups.Must.Keys())
	assert.Empty(t, groups.Nice)
}

func TestExtractGroups_HintsMatchWholeWords(t *testing.T) {
	groups := ExtractGroups("Requirements:\nJava plus Spring\nKubernetes", rules.Default())

	assert.Subset(t, groups.Must.Keys(), []string{"java", "spring", "kubernetes"})
	assert.Empty(t, groups.Nice)
}

func TestExtractGroups_NoHeadingsFillsBoth(t *testing.T) {
	rs := rules.Default()

	groups := ExtractGroups("We build services in Golang and Kubernetes", rs)

	assert.Equal(t, []string{"build", "services", "golang", "kubernetes"}, groups.Must.Keys())
	assert.Equal(t, groups.Must.Keys(), groups.Nice.Keys())
}

func TestExtractGroups_Deterministic(t *testing.T) {
	rs := rules.Default()
	jd := `About the role
Requirements:
- 5+ years of Go and distributed systems
- Experience with REST API design and SQL databases
Nice to have:
- Kubernetes, Terraform, machine learning`

	first := ExtractGroups(jd, rs)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ExtractGroups(jd, rs))
	}
}

func TestExtractGroups_EmptyJobDescription(t *testing.T) {
	groups := ExtractGroups("", rules.Default())

	assert.Empty(t, groups.Must)
	assert.Empty(t, groups.Nice)
}
