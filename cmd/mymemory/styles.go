package main

import "github.com/charmbracelet/lipgloss"

const (
	// ColorPrimary is used for group names and headers.
	ColorPrimary = lipgloss.Color("#7C3AED")
	// ColorMuted is used for tree branches and secondary columns.
	ColorMuted = lipgloss.Color("#6B7280")
	// ColorError is used for error messages.
	ColorError = lipgloss.Color("#EF4444")
)

var (
	// TitleStyle renders group nodes and table headers.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	// MutedStyle renders tree enumerators and timestamps.
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	// ErrorStyle prefixes errors printed by main.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
)
