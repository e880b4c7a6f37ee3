package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// View is one named dashboard section as it appears in the planner batch.
// Name is the raw batch key (it may carry a "__<position>" suffix, which
// internal/dashboard splits off). Raw is the undecoded record payload for
// Kind: a JSON array for most kinds, a context->tasks object for
// target_contexts.
type View struct {
	Name string
	Kind Kind
	Raw  json.RawMessage
}

// DecodeBatch decodes one planner batch from r.
//
// The batch is a JSON object mapping view names to single-key objects like
// {"events": [...]}. The order of views in the batch is meaningful (it
// drives the stacked fallback layout), so the top-level object is walked
// token by token instead of through a Go map, which would lose key order.
func DecodeBatch(r io.Reader) ([]View, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("record: decode batch: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("record: batch must be a JSON object")
	}

	var views []View
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("record: decode batch: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("record: unexpected batch token %v", keyTok)
		}

		var payload map[Kind]json.RawMessage
		if err := dec.Decode(&payload); err != nil {
			return nil, fmt.Errorf("record: decode view %q: %w", name, err)
		}
		if len(payload) != 1 {
			return nil, fmt.Errorf("record: view %q must hold exactly one record kind, got %d", name, len(payload))
		}

		for kind, raw := range payload {
			if !kind.Known() {
				return nil, &UnknownKindError{Kind: kind}
			}
			views = append(views, View{Name: name, Kind: kind, Raw: raw})
		}
	}

	// Consume the closing brace so trailing garbage is caught.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("record: decode batch: %w", err)
	}

	return views, nil
}
