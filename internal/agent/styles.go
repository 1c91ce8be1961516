package agent

import "charm.land/lipgloss/v2"

var (
	primary = lipgloss.Color("#33A8FF")
	muted   = lipgloss.Color("#6B7280")

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	promptStyle = lipgloss.NewStyle().
			Foreground(primary)

	answerHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primary)

	farewellStyle = lipgloss.NewStyle().
			Foreground(muted)
)
