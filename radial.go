package radial

import "fmt"

// AngleEpsilon is the tolerance used when comparing angles produced by the
// layout engine. Cumulative boundary computation keeps drift well below it.
const AngleEpsilon = 1e-6

// Vec2 is a 2D vector used for positions, offsets and translations
// throughout the API. Screen coordinates: Y grows downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Level is the hierarchy depth of a category. Primary is the innermost ring.
type Level uint8

const (
	LevelPrimary   Level = iota // innermost ring, no parent
	LevelSecondary              // parent is a primary
	LevelTertiary               // parent is a secondary
)

// Depth returns 0 for primary, 1 for secondary and 2 for tertiary.
func (l Level) Depth() int {
	return int(l)
}

// Valid reports whether l is one of the three known levels.
func (l Level) Valid() bool {
	return l <= LevelTertiary
}

func (l Level) String() string {
	switch l {
	case LevelPrimary:
		return "primary"
	case LevelSecondary:
		return "secondary"
	case LevelTertiary:
		return "tertiary"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel accepts the English level names and the Portuguese names used
// by emotion documents ("primaria", "secundaria", "terciaria").
func ParseLevel(s string) (Level, error) {
	switch s {
	case "primary", "primaria", "primária":
		return LevelPrimary, nil
	case "secondary", "secundaria", "secundária":
		return LevelSecondary, nil
	case "tertiary", "terciaria", "terciária":
		return LevelTertiary, nil
	}
	return 0, fmt.Errorf("unknown level %q", s)
}

// Category is one node of the wheel hierarchy.
type Category struct {
	ID       string
	Label    string
	Level    Level
	Weight   float64 // angular weight among primaries; constructors default it to 1
	ParentID string  // empty for primaries
	Disabled bool
	// Color is an optional hex colour token ("#fbbf24") handed to the
	// presentation layer untouched.
	Color   string
	Payload any
}

// Primary returns a primary category with weight 1.
func Primary(id, label string) Category {
	return Category{ID: id, Label: label, Level: LevelPrimary, Weight: 1}
}

// Secondary returns a secondary category under parentID with weight 1.
func Secondary(id, label, parentID string) Category {
	return Category{ID: id, Label: label, Level: LevelSecondary, Weight: 1, ParentID: parentID}
}

// Tertiary returns a tertiary category under parentID with weight 1.
func Tertiary(id, label, parentID string) Category {
	return Category{ID: id, Label: label, Level: LevelTertiary, Weight: 1, ParentID: parentID}
}

// Dataset is an ordered collection of categories. Insertion order is the
// tie-break order for layout and navigation.
type Dataset struct {
	Categories []Category
}

// NewDataset returns a dataset holding the given categories in order.
func NewDataset(categories ...Category) Dataset {
	return Dataset{Categories: categories}
}

// Len returns the number of categories.
func (d Dataset) Len() int {
	return len(d.Categories)
}

// Segment is the angular wedge derived for one category.
// 0 <= StartDeg < EndDeg <= 360.
type Segment struct {
	ID       string
	Level    Level
	StartDeg float64
	EndDeg   float64
	ParentID string
	Index    int // position in the layout's segment list
}

// Span returns EndDeg - StartDeg.
func (s Segment) Span() float64 {
	return s.EndDeg - s.StartDeg
}

// MidDeg returns the angle halfway through the segment.
func (s Segment) MidDeg() float64 {
	return (s.StartDeg + s.EndDeg) / 2
}

// Contains reports whether the normalized angle deg lies in [StartDeg, EndDeg).
func (s Segment) Contains(deg float64) bool {
	deg = NormalizeAngle(deg)
	return deg >= s.StartDeg-AngleEpsilon && deg < s.EndDeg-AngleEpsilon
}

// ViewState is the rotation, zoom and pan of the wheel. It is a value type:
// every snapshot handed to a callback is an independent copy.
type ViewState struct {
	AngleDeg  float64 // clockwise rotation, any range
	Scale     float64
	Translate Vec2
}

// DefaultViewState is the unrotated, unscaled, unpanned view.
var DefaultViewState = ViewState{Scale: 1}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Has reports whether all bits of o are set in m.
func (m KeyModifiers) Has(o KeyModifiers) bool {
	return m&o == o
}

// Key identifies a key the engine reacts to. Hosts translate their native
// key codes into these values.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
	KeyEnter
	KeySpace
	KeyEscape
	KeyPlus // also '=' on US layouts
	KeyMinus
	KeyZero // reset scale
	KeyR    // reset rotation
)

var keyNames = map[Key]string{
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyArrowUp:    "ArrowUp",
	KeyArrowDown:  "ArrowDown",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyEnter:      "Enter",
	KeySpace:      "Space",
	KeyEscape:     "Escape",
	KeyPlus:       "+",
	KeyMinus:      "-",
	KeyZero:       "0",
	KeyR:          "r",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "Unknown"
}

// ParseKey maps a DOM-style key name ("ArrowLeft", "+", "=", " ") to a Key.
// Unknown names return KeyUnknown.
func ParseKey(name string) Key {
	switch name {
	case "=":
		return KeyPlus
	case " ", "Spacebar":
		return KeySpace
	case "R":
		return KeyR
	}
	for k, s := range keyNames {
		if s == name {
			return k
		}
	}
	return KeyUnknown
}
