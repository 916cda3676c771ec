package scale

// Ordinal maps track labels to vertical offsets. The range holds one more
// boundary than the domain: entry i is the sum of the heights of all labels
// before label i, and the last entry is the total height.
type Ordinal struct {
	domain []string
	index  map[string]int
	rng    []float64
}

// NewOrdinal builds the scale for labels stacked top to bottom with the given
// heights. labels and heights must have the same length.
func NewOrdinal(labels []string, heights []float64) *Ordinal {
	o := &Ordinal{
		domain: append([]string(nil), labels...),
		index:  make(map[string]int, len(labels)),
		rng:    make([]float64, len(labels)+1),
	}
	for i, label := range labels {
		if _, dup := o.index[label]; !dup {
			o.index[label] = i
		}
		o.rng[i+1] = o.rng[i] + heights[i]
	}
	return o
}

// Map returns the top offset of label.
func (o *Ordinal) Map(label string) (float64, bool) {
	i, ok := o.index[label]
	if !ok {
		return 0, false
	}
	return o.rng[i], true
}

// Band returns the height allotted to label.
func (o *Ordinal) Band(label string) (float64, bool) {
	i, ok := o.index[label]
	if !ok {
		return 0, false
	}
	return o.rng[i+1] - o.rng[i], true
}

func (o *Ordinal) Domain() []string { return append([]string(nil), o.domain...) }

func (o *Ordinal) Range() []float64 { return append([]float64(nil), o.rng...) }

// Total is the height of all stacked labels.
func (o *Ordinal) Total() float64 { return o.rng[len(o.rng)-1] }
