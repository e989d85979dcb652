package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Note: Warp terminal fix is in internal/termfix package, imported first in main

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8") // ANSI 8
)

var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	StyleFailure = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleHeader  = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	StyleAccent  = lipgloss.NewStyle().Foreground(ColorCyan)
	StyleBold    = lipgloss.NewStyle().Foreground(ColorWhite).Bold(true)
	StyleDim     = lipgloss.NewStyle().Foreground(ColorDarkGray)
)

func init() {
	// Honor NO_COLOR and friends for the plain-text paths (summary, verbose
	// echo) that bypass bubbletea's own renderer.
	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
