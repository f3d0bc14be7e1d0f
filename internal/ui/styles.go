// Package ui holds the lipgloss styles shared by minehook's human-facing
// command output. Hook IO (stdin/stdout JSON) never goes through here.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Title styles section headers.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	// Accent highlights paths, patterns, and suggested commands.
	Accent = lipgloss.NewStyle().
		Foreground(lipgloss.Color("86"))

	// Muted styles secondary detail.
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	// Success styles confirmation markers.
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))
)

// Ok prints a success line with a leading check mark.
func Ok(msg string) {
	fmt.Printf("  %s %s\n", Success.Render("✓"), msg)
}
