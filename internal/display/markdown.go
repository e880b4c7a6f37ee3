package display

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	gstyles "github.com/charmbracelet/glamour/styles"
)

// NewBodyRenderer builds the markdown renderer used for item bodies.
//
// Items are always embedded in a narrower nested context, so headings must
// never be centered or boxed the way terminal markdown styles usually do:
// each heading level is re-rendered left-justified as "<indent>→ <text>"
// with one space of indent per extra level.
func NewBodyRenderer(theme string, width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStyles(bodyStyleConfig(theme)),
		glamour.WithWordWrap(width),
	)
}

func bodyStyleConfig(theme string) ansi.StyleConfig {
	var sc ansi.StyleConfig
	switch theme {
	case "light":
		sc = gstyles.LightStyleConfig
	case "ascii":
		sc = gstyles.ASCIIStyleConfig
	default:
		sc = gstyles.DarkStyleConfig
	}

	// The body is indented under its item by the caller; glamour's own
	// document margin would double it up.
	zero := uint(0)
	sc.Document.Margin = &zero
	sc.Document.BlockPrefix = ""
	sc.Document.BlockSuffix = ""

	bold := theme != "ascii"
	sc.H1 = headingStyle(1, bold)
	sc.H2 = headingStyle(2, bold)
	sc.H3 = headingStyle(3, bold)
	sc.H4 = headingStyle(4, bold)
	sc.H5 = headingStyle(5, bold)
	sc.H6 = headingStyle(6, bold)

	return sc
}

func headingStyle(level int, bold bool) ansi.StyleBlock {
	style := ansi.StylePrimitive{
		Prefix: strings.Repeat(" ", level-1) + "→ ",
	}
	if bold {
		b := true
		style.Bold = &b
	}
	return ansi.StyleBlock{StylePrimitive: style}
}
