package main

import (
	"charm.land/lipgloss/v2"

	"github.com/remaimber-it/matchdrill/internal/grader"
)

var (
	successColor = lipgloss.Color("#22C55E")
	infoColor    = lipgloss.Color("#14B8A6")
	warningColor = lipgloss.Color("#F97316")
	dangerColor  = lipgloss.Color("#F43F5E")
	dimColor     = lipgloss.Color("#94A3B8")

	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(dimColor)
	okStyle    = lipgloss.NewStyle().Foreground(successColor)
	errStyle   = lipgloss.NewStyle().Foreground(dangerColor)
)

// bandStyle colours a percentage by the severity of its band.
func bandStyle(b grader.Band) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch b.Severity {
	case grader.SeveritySuccess:
		return style.Foreground(successColor)
	case grader.SeverityInfo:
		return style.Foreground(infoColor)
	case grader.SeverityWarning:
		return style.Foreground(warningColor)
	default:
		return style.Foreground(dangerColor)
	}
}
