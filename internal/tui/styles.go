// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	colorDarkGray  = lipgloss.Color("#505050")
	colorLightGray = lipgloss.Color("#C8C8C8")
	colorBlue      = lipgloss.Color("#0079F1")
	colorDarkBlue  = lipgloss.Color("#0052AC")
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorGreen     = lipgloss.Color("#00E430")
	colorRed       = lipgloss.Color("#E62937")
)

// Styles holds every lipgloss style the form uses.
type Styles struct {
	Title       lipgloss.Style
	Tab         lipgloss.Style
	TabSelected lipgloss.Style
	Label       lipgloss.Style
	Field       lipgloss.Style
	FieldActive lipgloss.Style
	Action      lipgloss.Style
	ActionHover lipgloss.Style
	Success     lipgloss.Style
	Failure     lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the form styles for a field box of width cells.
func DefaultStyles(width int) Styles {
	field := lipgloss.NewStyle().
		Width(width-2).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorLightGray).
		Foreground(colorDarkGray)

	action := lipgloss.NewStyle().
		Width(actionWidth-2).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Foreground(colorWhite).
		Background(colorBlue).
		Bold(true)

	tab := lipgloss.NewStyle().
		Width(tabWidth).
		Align(lipgloss.Center).
		Foreground(colorDarkGray).
		Background(colorLightGray)

	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(colorDarkGray),
		Tab:         tab,
		TabSelected: tab.Foreground(colorWhite).Background(colorBlue),
		Label:       lipgloss.NewStyle().Foreground(colorDarkGray),
		Field:       field,
		FieldActive: field.BorderForeground(colorBlue),
		Action:      action,
		ActionHover: action.Background(colorDarkBlue).BorderForeground(colorDarkBlue),
		Success:     lipgloss.NewStyle().Foreground(colorGreen),
		Failure:     lipgloss.NewStyle().Foreground(colorRed),
		Help:        lipgloss.NewStyle().Foreground(colorDarkGray).Faint(true),
	}
}
