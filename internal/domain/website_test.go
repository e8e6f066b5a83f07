package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebsitePattern_Matches(t *testing.T) {
	domainPattern, err := ParseWebsitePattern("example.com")
	require.NoError(t, err)
	wildcardPattern, err := ParseWebsitePattern("*.social.com")
	require.NoError(t, err)
	containsPattern, err := ParseWebsitePattern("contains:casino")
	require.NoError(t, err)

	assert.Equal(t, PatternDomain, domainPattern.Type)
	assert.Equal(t, PatternWildcard, wildcardPattern.Type)
	assert.Equal(t, PatternContains, containsPattern.Type)

	assert.True(t, domainPattern.Matches("https://example.com"))
	assert.False(t, domainPattern.Matches("https://www.example.com"))
	assert.True(t, wildcardPattern.Matches("https://app.social.com/feed"))
	assert.False(t, wildcardPattern.Matches("social.com"))
	assert.True(t, containsPattern.Matches("best-casino.net"))
	assert.False(t, containsPattern.Matches(""))
}

func TestParseWebsitePattern_Invalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "contains:", "example.com/path"} {
		_, err := ParseWebsitePattern(raw)
		assert.ErrorIs(t, err, ErrInvalidWebsitePattern, raw)
	}
}

func TestWebsitePattern_String(t *testing.T) {
	p, err := ParseWebsitePattern("Contains:News")
	require.NoError(t, err)

	assert.Equal(t, "contains:news", p.String())
}
