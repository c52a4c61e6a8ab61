package radial

import (
	"fmt"
	"slices"
)

// DefaultAriaLabel labels the wheel when WheelOptions.AriaLabel is empty.
const DefaultAriaLabel = "Emotion wheel"

// AccessibilityItem describes one option of the wheel's listbox.
type AccessibilityItem struct {
	ID       string
	Label    string
	Level    Level
	Selected bool
	Disabled bool
	// PosInSet is 1-based within the item's ring; SetSize is the ring size.
	PosInSet int
	SetSize  int
}

// AccessibilityReport is the state an assistive-technology bridge needs to
// expose the wheel as a listbox. The engine reports it; it renders nothing.
type AccessibilityReport struct {
	Label            string
	Multiselectable  bool
	MaxSelected      int // 0 when unbounded
	Disabled         bool
	ReadOnly         bool
	ActiveDescendant string
	Items            []AccessibilityItem
}

// Item returns the entry for id.
func (r AccessibilityReport) Item(id string) (AccessibilityItem, bool) {
	for _, it := range r.Items {
		if it.ID == id {
			return it, true
		}
	}
	return AccessibilityItem{}, false
}

// Accessibility builds the report for the current state. Items are listed
// ring by ring, primary first, in angular order.
func (w *Wheel) Accessibility() AccessibilityReport {
	r := AccessibilityReport{
		Label:            w.opts.AriaLabel,
		Multiselectable:  w.selection.Mode() == SelectionMultiple,
		MaxSelected:      w.selection.MaxSelected(),
		Disabled:         w.disabled,
		ReadOnly:         w.selection.ReadOnly(),
		ActiveDescendant: w.focus.id,
		Items:            make([]AccessibilityItem, 0, w.layout.Len()),
	}
	for lvl := LevelPrimary; lvl <= LevelTertiary; lvl++ {
		ring := w.layout.Level(lvl)
		for i, s := range ring {
			c, _ := w.layout.Category(s.ID)
			r.Items = append(r.Items, AccessibilityItem{
				ID:       s.ID,
				Label:    w.itemLabel(c),
				Level:    lvl,
				Selected: w.selection.IsSelected(s.ID),
				Disabled: w.disabled || w.selection.ItemDisabled(s.ID),
				PosInSet: i + 1,
				SetSize:  len(ring),
			})
		}
	}
	return r
}

// itemLabel is the spoken label for c.
func (w *Wheel) itemLabel(c Category) string {
	if w.opts.ItemLabel != nil {
		return w.opts.ItemLabel(c)
	}
	return fmt.Sprintf("%s, %s", w.Label(c.ID), c.Level)
}

// announcement is the live-region text after toggling id produced next.
func (w *Wheel) announcement(id string, next []string) string {
	verb := "deselected"
	if slices.Contains(next, id) {
		verb = "selected"
	}
	return fmt.Sprintf("%s %s, %d selected", w.Label(id), verb, len(next))
}
