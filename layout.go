package radial

import (
	"cmp"
	"math"
	"slices"
)

// LayoutOptions tunes the angular partition.
type LayoutOptions struct {
	// WeightedChildren sizes secondary and tertiary segments by their own
	// Weight instead of splitting the parent span equally.
	WeightedChildren bool
}

// Layout is the segment list derived from a dataset, with lookup indexes.
// It is immutable; a new dataset needs a new Layout.
type Layout struct {
	dataset    Dataset
	segments   []Segment
	byID       map[string]int // segment index
	categories map[string]int // dataset index
	children   map[string][]int
	byLevel    [3][]int
}

// ComputeSegments partitions the dataset into angular segments. It is a pure
// function of the dataset: primaries first, then secondaries grouped by
// parent, then tertiaries.
func ComputeSegments(ds Dataset) ([]Segment, error) {
	l, err := NewLayout(ds, LayoutOptions{})
	if err != nil {
		return nil, err
	}
	return l.Segments(), nil
}

// NewLayout validates the dataset and computes its segments.
func NewLayout(ds Dataset, opts LayoutOptions) (*Layout, error) {
	l := &Layout{
		dataset:    ds,
		byID:       make(map[string]int, ds.Len()),
		categories: make(map[string]int, ds.Len()),
		children:   make(map[string][]int),
	}
	if err := l.index(); err != nil {
		return nil, err
	}

	primaries := l.childrenOf("", LevelPrimary)
	if len(primaries) == 0 {
		debugf("layout: dataset has no primary categories")
		return l, nil
	}
	spans, err := l.partition("", primaries, 0, 360, true)
	if err != nil {
		return nil, err
	}
	l.segments = make([]Segment, 0, ds.Len())
	l.appendSegments(primaries, spans)

	for _, lvl := range []Level{LevelSecondary, LevelTertiary} {
		for _, pi := range l.byLevel[lvl-1] {
			parent := l.segments[pi]
			kids := l.childrenOf(parent.ID, lvl)
			if len(kids) == 0 {
				continue
			}
			spans, err := l.partition(parent.ID, kids, parent.StartDeg, parent.EndDeg, opts.WeightedChildren)
			if err != nil {
				return nil, err
			}
			l.appendSegments(kids, spans)
		}
	}
	debugf("layout: %d categories -> %d segments", ds.Len(), len(l.segments))
	debugCheckLayout(l)
	return l, nil
}

// index validates ids, levels and parent references.
func (l *Layout) index() error {
	cats := l.dataset.Categories
	for i, c := range cats {
		if c.ID == "" {
			return dataError("", "", "category at position %d has an empty id", i)
		}
		if _, dup := l.categories[c.ID]; dup {
			return dataError(c.ID, "", "duplicate id")
		}
		if !c.Level.Valid() {
			return dataError(c.ID, "", "unknown level %d", int(c.Level))
		}
		l.categories[c.ID] = i
	}
	for _, c := range cats {
		if c.Level == LevelPrimary {
			if c.ParentID != "" {
				return dataError(c.ID, c.ParentID, "primary category must not have a parent")
			}
			continue
		}
		pi, ok := l.categories[c.ParentID]
		if !ok || c.ParentID == "" {
			return dataError(c.ID, c.ParentID, "parent does not resolve")
		}
		if want := c.Level - 1; cats[pi].Level != want {
			return dataError(c.ID, c.ParentID, "parent is %s, want %s", cats[pi].Level, want)
		}
	}
	return nil
}

// childrenOf returns dataset indexes of categories at lvl under parentID,
// in insertion order.
func (l *Layout) childrenOf(parentID string, lvl Level) []int {
	var out []int
	for i, c := range l.dataset.Categories {
		if c.Level == lvl && c.ParentID == parentID {
			out = append(out, i)
		}
	}
	return out
}

// partition splits [from, to] among the given categories. Boundaries are
// computed from the cumulative weight rather than by summing spans, and the
// last boundary is pinned to `to`, so no drift accumulates.
func (l *Layout) partition(parentID string, members []int, from, to float64, weighted bool) ([][2]float64, error) {
	cats := l.dataset.Categories
	weights := make([]float64, len(members))
	var total float64
	for i, ci := range members {
		w := 1.0
		if weighted {
			w = cats[ci].Weight
			if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
				return nil, dataError(cats[ci].ID, "", "weight must be a positive finite number, got %v", w)
			}
		}
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return nil, dataError("", parentID, "weight sum of siblings is zero")
	}

	span := to - from
	out := make([][2]float64, len(members))
	var cum float64
	start := from
	for i, w := range weights {
		cum += w
		end := from + span*cum/total
		if i == len(weights)-1 {
			end = to
		}
		out[i] = [2]float64{start, end}
		start = end
	}
	return out, nil
}

func (l *Layout) appendSegments(members []int, spans [][2]float64) {
	cats := l.dataset.Categories
	for i, ci := range members {
		c := cats[ci]
		idx := len(l.segments)
		l.segments = append(l.segments, Segment{
			ID:       c.ID,
			Level:    c.Level,
			StartDeg: spans[i][0],
			EndDeg:   spans[i][1],
			ParentID: c.ParentID,
			Index:    idx,
		})
		l.byID[c.ID] = idx
		l.byLevel[c.Level] = append(l.byLevel[c.Level], idx)
		if c.ParentID != "" {
			l.children[c.ParentID] = append(l.children[c.ParentID], idx)
		}
	}
}

// Segments returns a copy of the segment list.
func (l *Layout) Segments() []Segment {
	out := make([]Segment, len(l.segments))
	copy(out, l.segments)
	return out
}

// Len returns the number of segments.
func (l *Layout) Len() int {
	return len(l.segments)
}

// Segment returns the segment for id.
func (l *Layout) Segment(id string) (Segment, bool) {
	i, ok := l.byID[id]
	if !ok {
		return Segment{}, false
	}
	return l.segments[i], true
}

// Category returns the dataset entry for id.
func (l *Layout) Category(id string) (Category, bool) {
	i, ok := l.categories[id]
	if !ok {
		return Category{}, false
	}
	return l.dataset.Categories[i], true
}

// Dataset returns the dataset the layout was built from.
func (l *Layout) Dataset() Dataset {
	return l.dataset
}

// Level returns the segments of one ring in angular order.
func (l *Layout) Level(lvl Level) []Segment {
	if !lvl.Valid() {
		return nil
	}
	idx := l.byLevel[lvl]
	out := make([]Segment, len(idx))
	for i, si := range idx {
		out[i] = l.segments[si]
	}
	return out
}

// Children returns the segments whose parent is id, in angular order.
func (l *Layout) Children(id string) []Segment {
	idx := l.children[id]
	out := make([]Segment, len(idx))
	for i, si := range idx {
		out[i] = l.segments[si]
	}
	return out
}

// SectorCenters returns the mid-angle of every primary segment.
func (l *Layout) SectorCenters() []float64 {
	out := make([]float64, 0, len(l.byLevel[LevelPrimary]))
	for _, si := range l.byLevel[LevelPrimary] {
		out = append(out, l.segments[si].MidDeg())
	}
	return out
}

// CanonicalOrder sorts ids by segment start angle ascending, then deeper
// level first, then segment index. Unknown ids are dropped.
func (l *Layout) CanonicalOrder(ids []string) []string {
	segs := make([]Segment, 0, len(ids))
	for _, id := range ids {
		if s, ok := l.Segment(id); ok {
			segs = append(segs, s)
		}
	}
	slices.SortStableFunc(segs, func(a, b Segment) int {
		if math.Abs(a.StartDeg-b.StartDeg) > AngleEpsilon {
			return cmp.Compare(a.StartDeg, b.StartDeg)
		}
		if a.Level != b.Level {
			return cmp.Compare(b.Level, a.Level)
		}
		return cmp.Compare(a.Index, b.Index)
	})
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.ID
	}
	return out
}
