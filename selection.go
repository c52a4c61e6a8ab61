package radial

import "slices"

// SelectionMode selects how many ids may be selected at once.
type SelectionMode uint8

const (
	SelectionMultiple SelectionMode = iota // any number, bounded by MaxSelected
	SelectionSingle                        // at most one
)

func (m SelectionMode) String() string {
	if m == SelectionSingle {
		return "single"
	}
	return "multiple"
}

// ParseSelectionMode accepts "single" and "multiple".
func ParseSelectionMode(s string) (SelectionMode, error) {
	switch s {
	case "single":
		return SelectionSingle, nil
	case "multiple", "":
		return SelectionMultiple, nil
	}
	return 0, configError("selection mode", "unknown mode %q", s)
}

// EvictionPolicy decides what happens when a multiple-mode selection is full.
type EvictionPolicy uint8

const (
	// EvictOldest drops the earliest-selected id to make room.
	EvictOldest EvictionPolicy = iota
	// RejectNew refuses the new id and leaves the selection unchanged.
	RejectNew
)

func (p EvictionPolicy) String() string {
	if p == RejectNew {
		return "reject-new"
	}
	return "evict-oldest"
}

// ParseEvictionPolicy accepts "evict-oldest" and "reject-new".
func ParseEvictionPolicy(s string) (EvictionPolicy, error) {
	switch s {
	case "evict-oldest", "":
		return EvictOldest, nil
	case "reject-new":
		return RejectNew, nil
	}
	return 0, configError("eviction policy", "unknown policy %q", s)
}

// SelectionOptions configures a Selection.
type SelectionOptions struct {
	Mode SelectionMode
	// MaxSelected bounds a multiple-mode selection. 0 means unbounded.
	MaxSelected int
	Policy      EvictionPolicy
	// Initial is the starting selection, in selection order.
	Initial []string
	// DisabledIDs are treated like categories with Disabled set.
	DisabledIDs []string
	ReadOnly    bool
	Disabled    bool
	// Controlled makes the owner authoritative: Toggle and Clear only
	// propose the next state through OnChange, and SetSelected applies it.
	Controlled bool
}

// Selection holds the set of selected ids for one layout.
type Selection struct {
	layout   *Layout
	opts     SelectionOptions
	disabled map[string]bool
	selected []string // insertion order, oldest first
	onChange observers[[]string]
}

// NewSelection validates opts and returns a selection over layout.
func NewSelection(layout *Layout, opts SelectionOptions) (*Selection, error) {
	if opts.Mode != SelectionSingle && opts.Mode != SelectionMultiple {
		return nil, configError("selection mode", "unknown mode %d", int(opts.Mode))
	}
	if opts.Mode == SelectionMultiple && opts.MaxSelected < 0 {
		return nil, configError("max selected", "must be at least 1, got %d", opts.MaxSelected)
	}
	if opts.Mode == SelectionSingle && len(opts.Initial) > 1 {
		return nil, configError("initial selection", "single mode accepts one id, got %d", len(opts.Initial))
	}
	s := &Selection{
		layout:   layout,
		opts:     opts,
		disabled: make(map[string]bool, len(opts.DisabledIDs)),
	}
	for _, id := range opts.DisabledIDs {
		s.disabled[id] = true
	}
	for _, id := range opts.Initial {
		if _, ok := layout.Segment(id); !ok {
			debugf("selection: dropping unknown initial id %q", id)
			continue
		}
		if slices.Contains(s.selected, id) {
			continue
		}
		s.selected = append(s.selected, id)
	}
	if max := opts.MaxSelected; max > 0 && len(s.selected) > max {
		s.selected = s.selected[len(s.selected)-max:]
	}
	return s, nil
}

// Mode returns the selection mode.
func (s *Selection) Mode() SelectionMode {
	return s.opts.Mode
}

// MaxSelected returns the bound, 0 when unbounded.
func (s *Selection) MaxSelected() int {
	if s.opts.Mode == SelectionSingle {
		return 1
	}
	return s.opts.MaxSelected
}

// OnChange registers a callback that receives the canonical-ordered
// selection after every membership change.
func (s *Selection) OnChange(fn func(ids []string)) CallbackHandle {
	return s.onChange.add(fn)
}

// Selectable reports whether Toggle(id) could change anything right now.
func (s *Selection) Selectable(id string) bool {
	if s.opts.Disabled || s.opts.ReadOnly || s.disabled[id] {
		return false
	}
	c, ok := s.layout.Category(id)
	return ok && !c.Disabled
}

// ItemDisabled reports whether id is disabled in the dataset or listed in
// DisabledIDs.
func (s *Selection) ItemDisabled(id string) bool {
	if s.disabled[id] {
		return true
	}
	c, ok := s.layout.Category(id)
	return ok && c.Disabled
}

// Toggle selects or deselects id. It reports whether membership changed.
// Unknown ids, disabled categories and a read-only or disabled selection are
// silent no-ops.
func (s *Selection) Toggle(id string) bool {
	_, changed := s.toggle(id)
	return changed
}

// toggle is Toggle returning the emitted selection. In controlled mode that
// is the proposal, not the local state.
func (s *Selection) toggle(id string) ([]string, bool) {
	if !s.Selectable(id) {
		return nil, false
	}
	next, changed := s.next(id)
	if !changed {
		return nil, false
	}
	s.commit(next)
	return next, true
}

// next computes the selection after toggling id.
func (s *Selection) next(id string) ([]string, bool) {
	cur := s.selected
	if i := slices.Index(cur, id); i >= 0 {
		return slices.Delete(slices.Clone(cur), i, i+1), true
	}
	if s.opts.Mode == SelectionSingle {
		return []string{id}, true
	}
	max := s.opts.MaxSelected
	if max > 0 && len(cur) >= max {
		if s.opts.Policy == RejectNew {
			debugf("selection: rejecting %q, selection full (%d)", id, max)
			return nil, false
		}
		evicted := cur[:len(cur)-max+1]
		debugf("selection: evicting %v to admit %q", evicted, id)
		return append(slices.Clone(cur[len(cur)-max+1:]), id), true
	}
	return append(slices.Clone(cur), id), true
}

// Clear empties the selection. It reports whether anything was selected.
func (s *Selection) Clear() bool {
	if s.opts.Disabled || s.opts.ReadOnly || len(s.selected) == 0 {
		return false
	}
	s.commit(nil)
	return true
}

// commit applies next (unless controlled) and emits it once.
func (s *Selection) commit(next []string) {
	if !s.opts.Controlled {
		s.selected = next
	}
	s.onChange.emit(s.layout.CanonicalOrder(next))
}

// SetSelected replaces the selection with ids from the owner. Unknown ids
// are dropped and duplicates collapsed. It does not emit.
func (s *Selection) SetSelected(ids []string) {
	next := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := s.layout.Segment(id); !ok || slices.Contains(next, id) {
			continue
		}
		next = append(next, id)
	}
	s.selected = next
}

// Selected returns the selected ids, oldest first.
func (s *Selection) Selected() []string {
	return slices.Clone(s.selected)
}

// CanonicalOrder returns the selected ids by ascending start angle, deeper
// levels first on ties.
func (s *Selection) CanonicalOrder() []string {
	return s.layout.CanonicalOrder(s.selected)
}

// IsSelected reports whether id is selected.
func (s *Selection) IsSelected(id string) bool {
	return slices.Contains(s.selected, id)
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	return len(s.selected)
}

// SetReadOnly toggles read-only mode.
func (s *Selection) SetReadOnly(readOnly bool) {
	s.opts.ReadOnly = readOnly
}

// SetDisabled toggles the disabled flag.
func (s *Selection) SetDisabled(disabled bool) {
	s.opts.Disabled = disabled
}

// ReadOnly reports whether the selection ignores toggles.
func (s *Selection) ReadOnly() bool {
	return s.opts.ReadOnly
}
