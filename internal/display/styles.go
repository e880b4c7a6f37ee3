package display

import "github.com/charmbracelet/lipgloss"

// Value colors, 256-color palette.
var (
	colorBlue   = lipgloss.Color("33")  // dodger blue
	colorOrange = lipgloss.Color("166") // dark orange
	colorRed    = lipgloss.Color("160")
	colorGreen  = lipgloss.Color("28")
)

// Styles holds every lipgloss style the renderer needs. Tests and the
// dashboard layer share one instance so everything is styled the same way.
type Styles struct {
	// Item parts
	Title      lipgloss.Style // item title
	TimePhrase lipgloss.Style // inline "from ... to ..." suffix
	Label      lipgloss.Style // additional labels, people lines
	PersonName lipgloss.Style
	Empty      lipgloss.Style // "No items found."

	// Section parts
	DayHeader    lipgloss.Style // "Monday, January 02"
	SectionTitle lipgloss.Style // context mini-section titles

	// Additional values by color tag
	ValueNone   lipgloss.Style
	ValueBlue   lipgloss.Style
	ValueOrange lipgloss.Style
	ValueRed    lipgloss.Style
	ValueGreen  lipgloss.Style
}

// DefaultStyles returns the standard dashboard look.
func DefaultStyles() Styles {
	value := lipgloss.NewStyle().Bold(true).Italic(true)

	return Styles{
		Title:      lipgloss.NewStyle().Bold(true),
		TimePhrase: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		Label:      lipgloss.NewStyle().Italic(true),
		PersonName: lipgloss.NewStyle().Bold(true).Italic(true),
		Empty:      lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("9")),

		DayHeader:    lipgloss.NewStyle().Bold(true).Underline(true),
		SectionTitle: lipgloss.NewStyle().Bold(true),

		ValueNone:   value,
		ValueBlue:   value.Foreground(colorBlue),
		ValueOrange: value.Foreground(colorOrange),
		ValueRed:    value.Foreground(colorRed),
		ValueGreen:  value.Foreground(colorGreen),
	}
}

// Value returns the style for an additional's color tag.
func (s Styles) Value(c Color) lipgloss.Style {
	switch c {
	case ColorBlue:
		return s.ValueBlue
	case ColorOrange:
		return s.ValueOrange
	case ColorRed:
		return s.ValueRed
	case ColorGreen:
		return s.ValueGreen
	default:
		return s.ValueNone
	}
}
