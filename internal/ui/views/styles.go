package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Scan        lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Cursor      lipgloss.Style
	Highlight   lipgloss.Style
	Badge       lipgloss.Style
	Checkmark   lipgloss.Style
	Disabled    lipgloss.Style
	AlbumName   lipgloss.Style
	AssetCount  lipgloss.Style
	MediaTag    lipgloss.Style
	StatusError lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Scan: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Dim:  lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help:        lipgloss.NewStyle().Faint(true),
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		Badge:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Checkmark:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Disabled:    lipgloss.NewStyle().Faint(true).Strikethrough(true),
		AlbumName:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		AssetCount:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		MediaTag:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
