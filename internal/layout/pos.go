// Package layout places named dashboard panels into a two-dimensional
// grid from compact position specs like "r:1/2;c:3".
package layout

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Span is a panel's inclusive zero-based grid range on both axes.
// Invariant (enforced by ParseSpan): start <= end on each axis. Downstream
// code trusts this ordering and does not re-validate.
type Span struct {
	RowStart int
	RowEnd   int
	ColStart int
	ColEnd   int
}

// MalformedSpecError reports a position spec that does not match the
// grammar.
type MalformedSpecError struct {
	Spec string
}

func (e *MalformedSpecError) Error() string {
	return fmt.Sprintf("malformed position spec %q", e.Spec)
}

// BackwardSpanError reports a spec whose span runs backwards (start > end)
// on either axis.
type BackwardSpanError struct {
	Spec string
}

func (e *BackwardSpanError) Error() string {
	return fmt.Sprintf("backwards span in position spec %q", e.Spec)
}

// Grammar: r:<int>[/<int>] ; c:<int>[/<int>], case-insensitive, tolerant
// of whitespace around the separator. Input integers are 1-based.
var posRe = regexp.MustCompile(`(?i)^r:(\d+)(?:/(\d+))?\s*;\s*c:(\d+)(?:/(\d+))?$`)

// ParseSpan parses a position spec into a zero-based Span. A single
// integer on an axis means start == end. This is the only validation
// layer for layout geometry.
func ParseSpan(spec string) (Span, error) {
	m := posRe.FindStringSubmatch(strings.TrimSpace(spec))
	if m == nil {
		return Span{}, &MalformedSpecError{Spec: spec}
	}

	rowStart, err := oneBased(m[1])
	if err != nil {
		return Span{}, &MalformedSpecError{Spec: spec}
	}
	rowEnd := rowStart
	if m[2] != "" {
		if rowEnd, err = oneBased(m[2]); err != nil {
			return Span{}, &MalformedSpecError{Spec: spec}
		}
	}

	colStart, err := oneBased(m[3])
	if err != nil {
		return Span{}, &MalformedSpecError{Spec: spec}
	}
	colEnd := colStart
	if m[4] != "" {
		if colEnd, err = oneBased(m[4]); err != nil {
			return Span{}, &MalformedSpecError{Spec: spec}
		}
	}

	if rowStart > rowEnd || colStart > colEnd {
		return Span{}, &BackwardSpanError{Spec: spec}
	}

	return Span{RowStart: rowStart, RowEnd: rowEnd, ColStart: colStart, ColEnd: colEnd}, nil
}

// oneBased converts a 1-based spec integer to its zero-based form.
func oneBased(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}
