// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Scheme selects the palette variant.
type Scheme string

const (
	// SchemeAuto follows the terminal background.
	SchemeAuto Scheme = "auto"
	// SchemeDark forces the dark palette.
	SchemeDark Scheme = "dark"
	// SchemeLight forces the light palette.
	SchemeLight Scheme = "light"
)

var (
	colorOutput  = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	colorInput   = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#FFFFFF"}
	colorUser    = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"}
	colorPath    = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	colorChrome  = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#1F2937"}
	colorTitle   = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#D1D5DB"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	colorWelcome = colorUser
)

// Validate returns an error when s is not a known scheme.
func (s Scheme) Validate() error {
	switch s {
	case SchemeAuto, SchemeDark, SchemeLight:
		return nil
	default:
		return fmt.Errorf("invalid color scheme %q (expected auto, dark or light)", string(s))
	}
}

func (s Scheme) pick(c lipgloss.AdaptiveColor) lipgloss.TerminalColor {
	switch s {
	case SchemeDark:
		return lipgloss.Color(c.Dark)
	case SchemeLight:
		return lipgloss.Color(c.Light)
	default:
		return c
	}
}

// Styles holds the rendered look of every part of the view.
type Styles struct {
	Header  lipgloss.Style
	Title   lipgloss.Style
	Host    lipgloss.Style
	Welcome lipgloss.Style
	Input   lipgloss.Style
	Output  lipgloss.Style
	User    lipgloss.Style
	Path    lipgloss.Style
	Dollar  lipgloss.Style
	Status  lipgloss.Style
}

// NewStyles builds the palette for r. A nil renderer uses the default one.
func NewStyles(r *lipgloss.Renderer, scheme Scheme) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	bar := r.NewStyle().Background(scheme.pick(colorChrome)).Padding(0, 1)

	return Styles{
		Header:  bar,
		Title:   r.NewStyle().Background(scheme.pick(colorChrome)).Foreground(scheme.pick(colorTitle)).Bold(true),
		Host:    r.NewStyle().Background(scheme.pick(colorChrome)).Foreground(scheme.pick(colorMuted)),
		Welcome: r.NewStyle().Foreground(scheme.pick(colorWelcome)),
		Input:   r.NewStyle().Foreground(scheme.pick(colorInput)),
		Output:  r.NewStyle().Foreground(scheme.pick(colorOutput)),
		User:    r.NewStyle().Foreground(scheme.pick(colorUser)),
		Path:    r.NewStyle().Foreground(scheme.pick(colorPath)),
		Dollar:  r.NewStyle().Foreground(scheme.pick(colorInput)),
		Status:  bar.Foreground(scheme.pick(colorMuted)),
	}
}
