package display

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"plandash/internal/record"
)

// marker prefixes every item title line.
const marker = "→ "

// Renderer turns Items into styled text blocks. The reference date is
// injected at construction; nothing in this package reads a wall clock,
// so the same inputs always render the same output.
type Renderer struct {
	Current  time.Time
	Styles   Styles
	markdown *glamour.TermRenderer
}

// NewRenderer builds a renderer for one pass. width is the content width
// available to markdown bodies before their two-space indent.
func NewRenderer(current time.Time, theme string, width int) (*Renderer, error) {
	bodyWidth := width - 2
	if bodyWidth < 20 {
		bodyWidth = 20
	}
	md, err := NewBodyRenderer(theme, bodyWidth)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		Current:  current,
		Styles:   DefaultStyles(),
		markdown: md,
	}, nil
}

// Item renders one item as a block of lines. isLast suppresses the
// trailing blank line that normally spaces an item from its successor.
//
// Block order: title (with inline time phrase), additionals, people,
// body.
func (r *Renderer) Item(it Item, isLast bool) string {
	var lines []string

	title := r.Styles.Title.Render(it.Title)
	if it.Time != nil {
		title += " " + r.Styles.TimePhrase.Render(it.Time.Phrase())
	}
	lines = append(lines, marker+title)

	for _, a := range it.Additionals {
		v, ok := a.ValueText(r.Current)
		if !ok {
			continue
		}
		lines = append(lines,
			r.Styles.Label.Render("  "+a.Name+": ")+r.Styles.Value(a.Color).Render(v))
	}

	if len(it.People) > 0 {
		lines = append(lines, r.Styles.Label.Render("  People needed:"))
		for _, p := range it.People {
			lines = append(lines,
				r.Styles.Label.Render("    - ")+r.Styles.PersonName.Render(p.Name))
		}
	}

	if it.Body != "" {
		// Lists already read as part of the item; prose gets a blank line
		// of separation above.
		if !strings.HasPrefix(it.Body, "- ") && !strings.HasPrefix(it.Body, "1. ") {
			lines = append(lines, "")
		}
		lines = append(lines, r.body(it.Body))
		if !isLast {
			lines = append(lines, "")
		}
	} else if !isLast {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// body renders markdown indented two spaces under the item. A body that
// fails to render as markdown is shown verbatim rather than dropped.
func (r *Renderer) body(src string) string {
	rendered, err := r.markdown.Render(src)
	if err != nil {
		rendered = src
	}
	rendered = strings.Trim(rendered, "\n")

	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		if line == "" {
			lines[i] = ""
			continue
		}
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}

// ItemList renders a sequence of items separated per Item's spacing rules.
// An empty sequence renders a single "No items found." notice so callers
// can treat empty and non-empty sections uniformly.
func (r *Renderer) ItemList(items []Item) string {
	if len(items) == 0 {
		return r.Styles.Empty.Render("No items found.")
	}
	blocks := make([]string, 0, len(items))
	for i, it := range items {
		blocks = append(blocks, r.Item(it, i == len(items)-1))
	}
	return strings.Join(blocks, "\n")
}

// Items decodes and renders a raw record list of the given kind.
func (r *Renderer) Items(kind record.Kind, raw json.RawMessage) (string, error) {
	items, err := TransformAll(kind, raw)
	if err != nil {
		return "", err
	}
	return r.ItemList(items), nil
}
