package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TaskHero theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconHero    = "🦸"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconFire    = "🔥"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconScroll  = "📜"
	IconClock   = "⏰"
	IconTrash   = "🗑️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// TitleStyle renders rank titles in their tier color (hex).
func TitleStyle(hexColor string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hexColor))
}

func DifficultyText(difficulty string) string {
	switch strings.ToLower(strings.TrimSpace(difficulty)) {
	case "hard":
		return Bad.Render("hard")
	case "medium":
		return Warn.Render("medium")
	case "easy":
		return Good.Render("easy")
	default:
		return Muted.Render(difficulty)
	}
}

// XPBar renders a simple progress bar for experience toward the next level.
func XPBar(current, next, width int) string {
	if width < 4 {
		width = 4
	}
	if next <= 0 {
		next = 1
	}
	filled := current * width / next
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return Key.Render("[") + Gold.Render(bar) + Key.Render("]")
}
