package layout

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Panel is a named, fully rendered dashboard section with its grid span
// and measured height. Panels live only for the layout pass that created
// them.
type Panel struct {
	Name    string
	Span    Span
	Content string
	// Height is the panel's rendered height in terminal lines, available
	// as metadata for future row balancing. Placement does not use it.
	Height int
}

// NewPanel parses the panel's position spec and measures its content.
func NewPanel(name, content, spec string) (*Panel, error) {
	span, err := ParseSpan(spec)
	if err != nil {
		return nil, fmt.Errorf("panel %q: %w", name, err)
	}
	return &Panel{
		Name:    name,
		Span:    span,
		Content: content,
		Height:  Measure(content),
	}, nil
}

// Measure returns a block's rendered height in terminal lines. It is a
// pure string measurement: nothing is printed, and the same content always
// measures the same.
func Measure(content string) int {
	return lipgloss.Height(content)
}

// ColumnSpanError reports a panel whose span covers more than one column.
// Multi-column spanning is an unsupported configuration and is rejected
// rather than silently approximated.
type ColumnSpanError struct {
	Name string
	Span Span
}

func (e *ColumnSpanError) Error() string {
	return fmt.Sprintf("panel %q spans columns %d-%d; column spanning is not supported",
		e.Name, e.Span.ColStart+1, e.Span.ColEnd+1)
}

// Grid is the finished two-dimensional arrangement: one track per column
// index, each holding its panels in row order. Row spanning is implicit —
// a panel occupies its track slot for as many lines as it renders, and
// later panels in the column simply follow it.
type Grid struct {
	Tracks [][]*Panel
}

// BuildGrid arranges panels into a grid. The column count is
// max(ColEnd)+1 over all panels; column indices without panels become
// empty tracks so the grid's width stays faithful to the specs.
func BuildGrid(panels []*Panel) (*Grid, error) {
	if len(panels) == 0 {
		return &Grid{}, nil
	}

	nCols := 0
	for _, p := range panels {
		if p.Span.ColEnd+1 > nCols {
			nCols = p.Span.ColEnd + 1
		}
	}

	byCol := make(map[int][]*Panel)
	for _, p := range panels {
		if p.Span.ColStart != p.Span.ColEnd {
			return nil, &ColumnSpanError{Name: p.Name, Span: p.Span}
		}
		byCol[p.Span.ColStart] = append(byCol[p.Span.ColStart], p)
	}

	tracks := make([][]*Panel, nCols)
	for col := 0; col < nCols; col++ {
		track := byCol[col]
		// Stable: panels sharing a row start keep their input order.
		sort.SliceStable(track, func(i, j int) bool {
			return track[i].Span.RowStart < track[j].Span.RowStart
		})
		tracks[col] = track
	}

	return &Grid{Tracks: tracks}, nil
}

// Render composes the grid into one text block: each track stacks its
// panels top to bottom, tracks sit side by side.
func (g *Grid) Render() string {
	cols := make([]string, 0, len(g.Tracks))
	for _, track := range g.Tracks {
		blocks := make([]string, 0, len(track))
		for _, p := range track {
			blocks = append(blocks, p.Content)
		}
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Left, blocks...))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
