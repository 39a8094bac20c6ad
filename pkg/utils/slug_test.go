package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSlug_Basic(t *testing.T) {
	require.Equal(t, "jane-doe", GenerateSlug("Jane Doe"))
	require.Equal(t, "jane-doe", GenerateSlug("  Jane   Doe  "))
	require.Equal(t, "agile-coaching-101", GenerateSlug("Agile Coaching 101"))
}

func TestGenerateSlug_Diacritics(t *testing.T) {
	require.Equal(t, "francois-muller", GenerateSlug("François Müller"))
	require.Equal(t, "jose-nunez", GenerateSlug("José Núñez"))
	require.Equal(t, "ane-bjork", GenerateSlug("Åne Björk"))
}

func TestGenerateSlug_SymbolsCollapse(t *testing.T) {
	require.Equal(t, "jean-pierre-d-arc", GenerateSlug("Jean-Pierre (d'Arc)"))
	require.Equal(t, "a-b", GenerateSlug("a!!!???b"))
}

func TestGenerateSlug_EmptyResult(t *testing.T) {
	require.Equal(t, "", GenerateSlug("   !!!   "))
	require.Equal(t, "", GenerateSlug(""))
	require.Equal(t, "", GenerateSlug("-----"))
}

func TestGenerateSlug_Deterministic(t *testing.T) {
	inputs := []string{"François Müller", "Jane Doe", "   !!!   ", "日本語テスト"}
	for _, in := range inputs {
		require.Equal(t, GenerateSlug(in), GenerateSlug(in), "input %q", in)
	}
}

func TestGenerateSlug_OutputCharsetAndLength(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9-]*$`)
	inputs := []string{
		"François Müller",
		strings.Repeat("very long name ", 30),
		"MiXeD CaSe 42",
		"trailing symbol!",
	}
	for _, in := range inputs {
		slug := GenerateSlug(in)
		require.True(t, valid.MatchString(slug), "charset violated for %q: %q", in, slug)
		require.False(t, strings.HasPrefix(slug, "-"), "leading hyphen for %q", in)
		require.False(t, strings.HasSuffix(slug, "-"), "trailing hyphen for %q", in)
		require.LessOrEqual(t, len(slug), MaxSlugLength)
	}
}

func TestGenerateSlug_TruncatesAt100(t *testing.T) {
	long := strings.Repeat("abcde ", 40)
	slug := GenerateSlug(long)
	require.Len(t, slug, 100)
	require.False(t, strings.HasSuffix(slug, "-"))
}
