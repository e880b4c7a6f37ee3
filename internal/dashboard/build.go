package dashboard

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"plandash/internal/display"
	"plandash/internal/layout"
	"plandash/internal/record"
)

// posDelim separates a view name from its position spec in a batch key,
// e.g. "cal__r:1;c:1".
const posDelim = "__"

// Section is one finished dashboard block: the view's name, its boxed
// rendering, and the position spec it resolved to ("" when the view has
// none, which forces the stacked fallback).
type Section struct {
	Name    string
	Content string
	Spec    string
}

// Builder renders a batch's views into sections. One Builder serves one
// layout pass; the reference date is fixed at construction.
type Builder struct {
	renderer  *display.Renderer
	width     int // panel inner width, including side padding
	positions map[string]string
}

// NewBuilder constructs a Builder rendering at the given panel width.
// positions supplies default specs for views without a position suffix
// (may be nil).
func NewBuilder(current time.Time, theme string, width int, positions map[string]string) (*Builder, error) {
	r, err := display.NewRenderer(current, theme, width-2)
	if err != nil {
		return nil, err
	}
	return &Builder{
		renderer:  r,
		width:     width,
		positions: positions,
	}, nil
}

// Sections renders every view of the batch, in batch order.
func (b *Builder) Sections(views []record.View) ([]Section, error) {
	sections := make([]Section, 0, len(views))

	for _, v := range views {
		name, spec := splitViewName(v.Name)
		if spec == "" && b.positions != nil {
			spec = b.positions[name]
		}

		var (
			content string
			err     error
		)
		switch v.Kind {
		case record.KindEvents, record.KindDailyNotes:
			content, err = dayView(b.renderer, v.Kind, v.Raw)
		case record.KindTargetContexts:
			content, err = b.contextView(v.Raw)
		default:
			content, err = b.renderer.Items(v.Kind, v.Raw)
		}
		if err != nil {
			return nil, err
		}

		sections = append(sections, Section{
			Name:    name,
			Content: layout.Box(name, content, b.width),
			Spec:    spec,
		})
	}

	return sections, nil
}

// contextView fans a target-context payload (context -> tasks) out into
// one titled mini-section per context, sorted lexicographically by raw
// context key, with one blank line between mini-sections.
func (b *Builder) contextView(raw json.RawMessage) (string, error) {
	var byContext map[string][]record.Task
	if err := json.Unmarshal(raw, &byContext); err != nil {
		return "", err
	}
	if len(byContext) == 0 {
		return b.renderer.ItemList(nil), nil
	}

	keys := make([]string, 0, len(byContext))
	for k := range byContext {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	textWidth := b.width - 2
	blocks := make([]string, 0, len(keys))
	for _, key := range keys {
		items, err := display.TransformTasks(byContext[key])
		if err != nil {
			return "", err
		}

		label := display.FromContextLabel(key).Title
		title := lipgloss.PlaceHorizontal(textWidth, lipgloss.Center,
			b.renderer.Styles.SectionTitle.Render(label))

		blocks = append(blocks, title+"\n\n"+b.renderer.ItemList(items))
	}

	return strings.Join(blocks, "\n\n"), nil
}

// Panels converts sections into positioned panels. Every section must
// carry a spec; check AllPositioned first.
func Panels(sections []Section) ([]*layout.Panel, error) {
	panels := make([]*layout.Panel, 0, len(sections))
	for _, s := range sections {
		p, err := layout.NewPanel(s.Name, s.Content, s.Spec)
		if err != nil {
			return nil, err
		}
		panels = append(panels, p)
	}
	return panels, nil
}

// AllPositioned reports whether every section resolved a position spec.
func AllPositioned(sections []Section) bool {
	for _, s := range sections {
		if s.Spec == "" {
			return false
		}
	}
	return true
}

// Stack renders sections vertically in batch order — the fallback when
// positions are missing or stacked output was requested.
func Stack(sections []Section) string {
	blocks := make([]string, 0, len(sections))
	for _, s := range sections {
		blocks = append(blocks, s.Content)
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// splitViewName splits a batch key into view name and position spec.
func splitViewName(key string) (name, spec string) {
	parts := strings.SplitN(key, posDelim, 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return key, ""
}
