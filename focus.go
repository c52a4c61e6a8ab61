package radial

// focusRing moves keyboard focus across a layout. Left and Right walk the
// current ring with wrap-around, Up goes to the parent and Down to the
// first child.
type focusRing struct {
	layout *Layout
	id     string
}

// move returns the id focus lands on for key, and whether key is a focus
// key at all. With nothing focused every focus key lands on the first
// primary.
func (f *focusRing) move(key Key) (string, bool) {
	switch key {
	case KeyArrowLeft, KeyArrowRight, KeyArrowUp, KeyArrowDown, KeyHome, KeyEnd:
	default:
		return f.id, false
	}
	cur, ok := f.layout.Segment(f.id)
	if !ok {
		ring := f.layout.Level(LevelPrimary)
		if len(ring) == 0 {
			return "", true
		}
		f.id = ring[0].ID
		return f.id, true
	}

	ring := f.layout.Level(cur.Level)
	pos := 0
	for i, s := range ring {
		if s.ID == cur.ID {
			pos = i
			break
		}
	}
	switch key {
	case KeyArrowLeft:
		f.id = ring[(pos-1+len(ring))%len(ring)].ID
	case KeyArrowRight:
		f.id = ring[(pos+1)%len(ring)].ID
	case KeyArrowUp:
		if cur.ParentID != "" {
			f.id = cur.ParentID
		}
	case KeyArrowDown:
		if kids := f.layout.Children(cur.ID); len(kids) > 0 {
			f.id = kids[0].ID
		}
	case KeyHome:
		f.id = ring[0].ID
	case KeyEnd:
		f.id = ring[len(ring)-1].ID
	}
	return f.id, true
}

// set focuses id if it exists in the layout.
func (f *focusRing) set(id string) bool {
	if _, ok := f.layout.Segment(id); !ok && id != "" {
		return false
	}
	f.id = id
	return true
}
