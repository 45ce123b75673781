// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// CLI palette. Each color has a light and a dark terminal variant.
var (
	colorBrand     = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	colorMuted     = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}
	colorValue     = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#10B981"}
	colorWarning   = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"}
	colorHighlight = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
)

var (
	// TitleStyle is for headers and the program name.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)

	// SubtitleStyle is for descriptions and placeholder values.
	SubtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)

	// SuccessStyle is for configured values and completed actions.
	SuccessStyle = lipgloss.NewStyle().Foreground(colorValue)

	// WarningStyle is for warnings.
	WarningStyle = lipgloss.NewStyle().Foreground(colorWarning)

	// CmdStyle is for configuration keys and addresses.
	CmdStyle = lipgloss.NewStyle().Foreground(colorHighlight)
)
