package radial

import "fmt"

// EffectKind names a side effect the host should perform after an event.
type EffectKind uint8

const (
	EffectPreventDefault EffectKind = iota // suppress the host's default action
	EffectCapturePointer                   // route further pointer events here
	EffectReleasePointer                   // undo CapturePointer
	EffectLockScroll                       // stop page scrolling during a gesture
	EffectUnlockScroll                     // undo LockScroll
	EffectSetCursor                        // change the pointer cursor
	EffectFocusSegment                     // move keyboard focus to a segment
	EffectAnnounce                         // speak a message in a live region
)

var effectNames = [...]string{
	EffectPreventDefault: "prevent-default",
	EffectCapturePointer: "capture-pointer",
	EffectReleasePointer: "release-pointer",
	EffectLockScroll:     "lock-scroll",
	EffectUnlockScroll:   "unlock-scroll",
	EffectSetCursor:      "set-cursor",
	EffectFocusSegment:   "focus-segment",
	EffectAnnounce:       "announce",
}

func (k EffectKind) String() string {
	if int(k) < len(effectNames) {
		return effectNames[k]
	}
	return fmt.Sprintf("EffectKind(%d)", int(k))
}

// Cursor is a CSS-style cursor name.
type Cursor string

const (
	CursorDefault    Cursor = "default"
	CursorGrab       Cursor = "grab"
	CursorGrabbing   Cursor = "grabbing"
	CursorPointer    Cursor = "pointer"
	CursorNotAllowed Cursor = "not-allowed"
)

// Effect is one side effect. Only the field matching Kind is set.
type Effect struct {
	Kind      EffectKind
	PointerID int    // CapturePointer, ReleasePointer
	Cursor    Cursor // SetCursor
	SegmentID string // FocusSegment
	Message   string // Announce
}

func (e Effect) String() string {
	switch e.Kind {
	case EffectCapturePointer, EffectReleasePointer:
		return fmt.Sprintf("%s(%d)", e.Kind, e.PointerID)
	case EffectSetCursor:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Cursor)
	case EffectFocusSegment:
		return fmt.Sprintf("%s(%s)", e.Kind, e.SegmentID)
	case EffectAnnounce:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Message)
	}
	return e.Kind.String()
}

// Effects is the ordered list returned by every Wheel handler.
type Effects []Effect

// Has reports whether any effect of kind is present.
func (es Effects) Has(kind EffectKind) bool {
	for _, e := range es {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Find returns the last effect of kind.
func (es Effects) Find(kind EffectKind) (Effect, bool) {
	for i := len(es) - 1; i >= 0; i-- {
		if es[i].Kind == kind {
			return es[i], true
		}
	}
	return Effect{}, false
}

func (es Effects) preventDefault() Effects {
	if es.Has(EffectPreventDefault) {
		return es
	}
	return append(es, Effect{Kind: EffectPreventDefault})
}

func (es Effects) cursor(c Cursor) Effects {
	return append(es, Effect{Kind: EffectSetCursor, Cursor: c})
}

func (es Effects) announce(msg string) Effects {
	return append(es, Effect{Kind: EffectAnnounce, Message: msg})
}

func (es Effects) focus(id string) Effects {
	return append(es, Effect{Kind: EffectFocusSegment, SegmentID: id})
}

func (es Effects) capture(pointerID int) Effects {
	return append(es,
		Effect{Kind: EffectCapturePointer, PointerID: pointerID},
		Effect{Kind: EffectLockScroll})
}

func (es Effects) release(pointerID int) Effects {
	return append(es,
		Effect{Kind: EffectReleasePointer, PointerID: pointerID},
		Effect{Kind: EffectUnlockScroll})
}
