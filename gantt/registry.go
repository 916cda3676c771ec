package gantt

import (
	"fmt"
	"slices"
)

// TrackListEntry is the registry record of a loaded track.
type TrackListEntry struct {
	Key         string
	TrackHeight float64
	TrackLabel  string
}

// trackList is the ordered track registry. Order is stacking order, top to
// bottom, and the Y domain order.
type trackList struct {
	entries []TrackListEntry
}

// insert splices entry in at index. An index past the end appends.
func (l *trackList) insert(entry TrackListEntry, index int) {
	index = min(max(index, 0), len(l.entries))
	l.entries = slices.Insert(l.entries, index, entry)
}

func (l *trackList) remove(key string) bool {
	i := l.index(key)
	if i < 0 {
		return false
	}
	l.entries = slices.Delete(l.entries, i, i+1)
	return true
}

func (l *trackList) index(key string) int {
	return slices.IndexFunc(l.entries, func(e TrackListEntry) bool { return e.Key == key })
}

func (l *trackList) has(key string) bool { return l.index(key) >= 0 }

func (l *trackList) len() int { return len(l.entries) }

func (l *trackList) get(key string) (TrackListEntry, bool) {
	i := l.index(key)
	if i < 0 {
		return TrackListEntry{}, false
	}
	return l.entries[i], true
}

func (l *trackList) keys() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Key
	}
	return out
}

func (l *trackList) labels() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.TrackLabel
	}
	return out
}

func (l *trackList) heights() []float64 {
	out := make([]float64, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.TrackHeight
	}
	return out
}

func (l *trackList) snapshot() []TrackListEntry {
	return slices.Clone(l.entries)
}

// prepareLoadAtIndex returns the registry index for a loading track. Without
// loadAtIndex the track is appended. Values past the end are kept as given:
// insert appends them.
func prepareLoadAtIndex(loadAtIndex *int, size int) (int, error) {
	if loadAtIndex == nil {
		return size, nil
	}
	if *loadAtIndex < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidIndex, *loadAtIndex)
	}
	return *loadAtIndex, nil
}
