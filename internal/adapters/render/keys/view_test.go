package keys

import (
	"testing"
	"time"

	"github.com/bnema/studymate/internal/application"
	"github.com/bnema/studymate/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderKeyList(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	lastUsed := now.Add(-3 * time.Hour)

	output, err := Render([]application.KeySummary{
		{
			ID:        "cred-1",
			Provider:  domain.ProviderOpenAI,
			Name:      "Work",
			CreatedAt: time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC),
			LastUsed:  &lastUsed,
		},
		{
			ID:        "cred-2",
			Provider:  domain.ProviderGoogle,
			Name:      "Side project",
			CreatedAt: now,
		},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "API Keys")
	assert.Contains(t, output, "keys: 2")
	assert.Contains(t, output, "Work (OpenAI)")
	assert.Contains(t, output, "Side project (Google AI)")
	assert.Contains(t, output, "id: cred-1")
	assert.Contains(t, output, "added: 02 Jan 2026")
	assert.Contains(t, output, "3 hours ago")
	assert.Contains(t, output, "never")
	assert.Regexp(t, `Anthropic:\s+not connected`, output)
	assert.Regexp(t, `OpenAI:\s+connected`, output)
}

func TestRenderEmptyKeyList(t *testing.T) {
	output, err := Render(nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "keys: 0")
	assert.Contains(t, output, "No API keys stored.")
}

func TestFormatRelative(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	testCases := []struct {
		name string
		at   time.Time
		want string
	}{
		{name: "seconds", at: now.Add(-10 * time.Second), want: "just now"},
		{name: "one minute", at: now.Add(-time.Minute), want: "1 minute ago"},
		{name: "minutes", at: now.Add(-42 * time.Minute), want: "42 minutes ago"},
		{name: "hours", at: now.Add(-5 * time.Hour), want: "5 hours ago"},
		{name: "days", at: now.Add(-49 * time.Hour), want: "2 days ago"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, formatRelative(tc.at, now))
		})
	}
}

func TestRecencyColorFadesWithAge(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	assert.Equal(t, lipgloss.Color("255"), recencyColor(now, now))
	assert.Equal(t, lipgloss.Color("240"), recencyColor(now.Add(-60*24*time.Hour), now))
	assert.Equal(t, lipgloss.Color("255"), recencyColor(now, time.Time{}))
}
