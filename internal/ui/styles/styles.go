// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions and styling to ensure
// visual consistency across all UI components (tables, diffs and
// prompts). Call [Init] with the loaded config before rendering.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Primary colors used throughout the UI
var (
	// Primary is the main accent color (borders, titles)
	Primary color.Color = DefaultTheme.Primary

	// Accent is the highlight color for selected/active items
	Accent color.Color = DefaultTheme.Accent

	// Success is used for checkmarks, additions and positive outcomes
	Success color.Color = DefaultTheme.Success

	// Error is used for error messages and deletions
	Error color.Color = DefaultTheme.Error

	// Muted is used for disabled/inactive text
	Muted color.Color = DefaultTheme.Muted

	// Normal is the standard text color
	Normal color.Color = DefaultTheme.Normal

	// Info is used for informational text (hunk headers, hints)
	Info color.Color = DefaultTheme.Info

	// Warning is used for warnings and drift indicators
	Warning color.Color = DefaultTheme.Warning
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// PrimaryStyle applies the primary color
	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// NormalStyle applies the normal text color
	NormalStyle = lipgloss.NewStyle().Foreground(Normal)

	// InfoStyle applies the info color
	InfoStyle = lipgloss.NewStyle().Foreground(Info)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
)
