package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Tagline        lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	Help           lipgloss.Style
	Main           lipgloss.Style
	Scroll         lipgloss.Style
	Highlight      lipgloss.Style
	SelectionBg    lipgloss.Style
	SearchBar      lipgloss.Style
	SearchFocused  lipgloss.Style
	Category       lipgloss.Style
	CategoryActive lipgloss.Style
	CategoryCursor lipgloss.Style
	Chip           lipgloss.Style
	ChipIndex      lipgloss.Style
	Modal          lipgloss.Style
	ModalSection   lipgloss.Style
	Option         lipgloss.Style
	OptionPicked   lipgloss.Style
	OptionCursor   lipgloss.Style
	Frame          lipgloss.Style
	Alert          lipgloss.Style
	Tags           lipgloss.Style
	Stat           lipgloss.Style
	StatusError    lipgloss.Style
	StatusLoading  lipgloss.Style
	StatusSuccess  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Tagline: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		SearchBar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SearchFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Category:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		CategoryActive: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("99")).Bold(true).Padding(0, 1),
		CategoryCursor: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Underline(true).Padding(0, 1),
		Chip:           lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Padding(0, 1),
		ChipIndex:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		ModalSection: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Option:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		OptionPicked: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("78")).Padding(0, 1),
		OptionCursor: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Underline(true).Padding(0, 1),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		Alert: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("203")).
			Foreground(lipgloss.Color("203")).
			Padding(0, 2),
		Tags:          lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Stat:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
