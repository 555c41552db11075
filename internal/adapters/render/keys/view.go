package keys

import (
	"fmt"
	"math"
	"time"

	"github.com/bnema/studymate/internal/application"
	"github.com/bnema/studymate/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
}

// lastUsedFadeAfter is how long after its last use a key is drawn fully
// faded.
const lastUsedFadeAfter = 30 * 24 * time.Hour

func renderView(keys []application.KeySummary, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("API Keys"),
		s.header.Render(fmt.Sprintf("keys: %d", len(keys))),
		s.section.Render(renderProviders(keys, s)),
	}

	if len(keys) == 0 {
		lines = append(lines, s.section.Render(s.empty.Render("No API keys stored. Add one with `sm key add`.")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, key := range keys {
		lines = append(lines, s.section.Render(renderKey(key, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProviders(keys []application.KeySummary, s styles) string {
	configured := make(map[domain.Provider]bool, len(keys))
	for _, key := range keys {
		configured[key.Provider] = true
	}

	lines := make([]string, 0, len(domain.Providers()))
	for _, provider := range domain.Providers() {
		state := s.disconnected.Render("not connected")
		if configured[provider] {
			state = s.connected.Render("connected")
		}
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.label.Render(fmt.Sprintf("%-10s", provider.Label()+":")),
			" ",
			state,
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderKey(key application.KeySummary, opts RenderOptions, s styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.key.Render(fmt.Sprintf("%s (%s)", key.Name, key.Provider.Label())),
		s.detail.Render(fmt.Sprintf("id: %s", key.ID)),
		s.detail.Render(fmt.Sprintf("added: %s", formatDate(key.CreatedAt))),
		lastUsedLine(key.LastUsed, opts.Now, s),
	)
}

func lastUsedLine(lastUsed *time.Time, now time.Time, s styles) string {
	label := s.label.Render("last used:")
	if lastUsed == nil || lastUsed.IsZero() {
		return label + " " + s.empty.Render("never")
	}

	style := lipgloss.NewStyle().Foreground(recencyColor(*lastUsed, now))
	return label + " " + style.Render(formatRelative(*lastUsed, now))
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return "unknown"
	}

	return value.Format("02 Jan 2006")
}

func formatRelative(at, now time.Time) string {
	if now.IsZero() {
		return at.Format(time.RFC3339)
	}

	elapsed := now.Sub(at)
	if elapsed < time.Minute {
		return "just now"
	}
	if elapsed < time.Hour {
		return plural(int(elapsed.Minutes()), "minute") + " ago"
	}
	if elapsed < 24*time.Hour {
		return plural(int(elapsed.Hours()), "hour") + " ago"
	}

	return plural(int(math.Floor(elapsed.Hours()/24)), "day") + " ago"
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}

	return fmt.Sprintf("%d %ss", n, unit)
}

// recencyColor maps recent use to bright white and fades toward grey as the
// key goes unused.
func recencyColor(lastUsed, now time.Time) lipgloss.Color {
	if now.IsZero() || lastUsed.After(now) {
		return lipgloss.Color("255")
	}

	inverted := lastUsedFadeAfter.Seconds() - now.Sub(lastUsed).Seconds()
	return interpolateColor(inverted, 0, lastUsedFadeAfter.Seconds())
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale: 240 faded, 255 bright.
	interpolated := 240.0 + 15.0*normalized

	return lipgloss.Color(fmt.Sprintf("%d", int(interpolated)))
}
