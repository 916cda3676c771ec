package gantt

import (
	"encoding/json"
	"fmt"
	"io"

	"gantt2svg/config"
)

// Update operations of a chart document.
const (
	OpLoad   = "load"
	OpUnload = "unload"
	OpReflow = "reflow"
)

// Update is one content change applied after the initial tracks are loaded.
type Update struct {
	Op    string      `json:"op"`
	Key   string      `json:"key,omitempty"`
	Track *TrackInput `json:"track,omitempty"`
	Data  *GraphData  `json:"data,omitempty"`
}

// Document is a chart file: the graph input, the initial tracks and an
// ordered list of updates.
type Document struct {
	GraphInput
	Tracks  []TrackInput `json:"tracks"`
	Updates []Update     `json:"updates,omitempty"`
}

// DecodeDocument reads a JSON chart document.
func DecodeDocument(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("error parsing chart document: %w", err)
	}
	return &doc, nil
}

// Build creates a graph from the document, loads its tracks in order and
// applies its updates.
func (d *Document) Build(cfg *config.Config) (*Graph, error) {
	g, err := New(cfg, d.GraphInput)
	if err != nil {
		return nil, err
	}
	for i, in := range d.Tracks {
		if _, err := g.LoadContent(in); err != nil {
			return nil, fmt.Errorf("tracks[%d]: %w", i, err)
		}
	}
	for i, u := range d.Updates {
		if err := g.apply(u); err != nil {
			return nil, fmt.Errorf("updates[%d] %s: %w", i, u.Op, err)
		}
	}
	Logger().Debug("document built", "graph", g, "updates", len(d.Updates))
	return g, nil
}

func (g *Graph) apply(u Update) error {
	switch u.Op {
	case OpLoad:
		if u.Track == nil {
			return ErrMissingContent
		}
		_, err := g.LoadContent(*u.Track)
		return err
	case OpUnload:
		if u.Key == "" {
			return ErrMissingKey
		}
		return g.UnloadContent(u.Key)
	case OpReflow:
		if u.Key == "" {
			return ErrMissingKey
		}
		if u.Data == nil {
			return ErrMissingContent
		}
		return g.ReflowContent(u.Key, *u.Data)
	default:
		return fmt.Errorf("unknown op %q", u.Op)
	}
}
