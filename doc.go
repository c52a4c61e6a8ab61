// Package radial is the layout and interaction engine behind a multi-ring
// radial selection widget, the "emotion wheel".
//
// The package has no rendering dependencies. It partitions a hierarchy of
// categories into angular segments, turns angles and radii into arc
// geometry, and keeps selection and view state driven by pointer and
// keyboard input. Presentation lives in the ebitenwheel sub-package; the
// radial command exports layouts and SVG renderings.
//
// # Quick start
//
//	ds := radial.NewDataset(
//		radial.Primary("joy", "Joy"),
//		radial.Primary("fear", "Fear"),
//		radial.Secondary("optimism", "Optimism", "joy"),
//	)
//	w, err := radial.NewWheel(ds, radial.WheelOptions{
//		View: radial.ViewOptions{Center: radial.Vec2{X: 200, Y: 200}},
//	})
//	if err != nil {
//		return err
//	}
//	w.OnChange(func(ids []string) { fmt.Println(ids) })
//
// Hosts forward input to [Wheel.HandlePointerDown], [Wheel.HandlePointerMove],
// [Wheel.HandlePointerUp], [Wheel.HandleWheel] and [Wheel.HandleKey], then
// perform the returned [Effects]. [Wheel.Tick] advances inertia once per
// frame.
//
// # Angles
//
// Angles are degrees, 0 at 12 o'clock, increasing clockwise with screen Y
// growing downward. [NormalizeAngle] maps any value into [0, 360) and
// [ShortestAngleDelta] gives the signed difference in (-180, 180].
//
// # Layout
//
// [NewLayout] splits 360 degrees among the primaries by weight, then splits
// each parent's span equally among its children (or by weight with
// [LayoutOptions].WeightedChildren). Boundaries are computed from cumulative
// weight and the last one is pinned to 360, so the primary ring closes
// exactly.
//
// # Selection and view
//
// [Selection] supports single and bounded multiple modes, evicting the
// oldest pick or rejecting new ones when full. [ViewController] rotates by
// drag, zooms by wheel, pans with the secondary button, coasts with inertia
// on a [Scheduler], and snaps to sector centres. Both can run controlled,
// proposing changes to an owner instead of applying them.
//
// # Debug mode
//
// [SetDebugMode] logs layout and controller decisions and warns about
// segments too thin to hit.
package radial
