// Package nines computes nine-slice layouts, also known as 9-slice scaling or
// border images.
//
// A nine-slice layout splits a rectangle into a 3×3 grid: four corners, four
// edges, and a center. Mapping the slices of a source image onto the slices of
// a larger or smaller destination scales the edges and the center while
// keeping the corners intact, which is how UI panels, buttons, and sprite
// borders are usually drawn.
//
//	left             right   ┌──→ +x
//	 ┊←──── outer ────→┊     │
//	 ┊                 ┊     ↓
//	 ┊  ┊←─ inner ─→┊  ┊    +y
//	 ┊  ┊           ┊  ┊
//	 ┌──┬───────────┬──┐┈┈┈┈┈┈┈┈ top
//	 │  │           │  │          ↑
//	 ├──┼───────────┼──┤┈┈┈┈      │
//	 │  │           │  │   ↑      │
//	 │  │           │  │ inner  outer
//	 │  │           │  │   ↓      │
//	 ├──┼───────────┼──┤┈┈┈┈      │
//	 │  │           │  │          ↓
//	 └──┴───────────┴──┘┈┈┈┈┈┈ bottom
//
// This package only computes geometry. It does not resample or draw anything;
// what to do with the rectangle pairs is up to the caller.
//
// # Validated types
//
// Raw geometry is described by [Rect] and [Dimensions], whose fields can be
// set to anything, including negative extents and NaN. Before any layout math
// happens, they have to be validated into [ValidRect] and [ValidDimensions].
// The validated types keep a private copy of the raw value and only offer read
// access to it, so a value that passed validation stays valid. Operations
// deriving new geometry, such as [ValidDimensions.WithOuter], establish the
// invariant again.
//
// Going back from a validated to a raw value always succeeds, see
// [ValidRect.Rect] and [ValidDimensions.Dimensions].
//
// # Layouts
//
// A [Layout] pairs destination and source [Dimensions] with a [Style]. After
// validating it into a [ValidLayout], [ValidLayout.EachDstSrc] reports the nine
// destination and source rectangles in row-major order. [ValidLayout.Pairs]
// and [ValidLayout.Cells] provide the same information as an iterator and as
// an array.
//
// A [Style] assigns a [Scale] to each edge and to both axes of the center.
// Only [Stretch] is implemented at the moment; layouts that would need Repeat,
// Round or Space fail with [ErrUnsupportedScale] instead of emitting
// approximate geometry.
//
// # Scalars
//
// All types are generic over a [Scalar], which admits the signed integer and
// floating point types. Arithmetic is not checked for overflow: integers wrap
// around and floats become infinite, as usual in Go. Degenerate slices with
// zero width or height are valid.
//
// Unsigned integers are excluded by default, as they underflow as soon as
// geometry extends left of or above the origin. Build with the nines_unsigned
// tag to allow them anyway.
//
// Building with the nines_debug tag enables extra assertions on invariants the
// package already guarantees by construction. This is only useful when
// working on the package itself.
//
// # Literature
//
//   - [9-slice scaling]
//   - [Unity: 9-slicing Sprites]
//   - [CSS Backgrounds and Borders Module Level 3: Border Images]
//
// [9-slice scaling]: https://en.wikipedia.org/wiki/9-slice_scaling
// [Unity: 9-slicing Sprites]: https://docs.unity3d.com/Manual/9SliceSprites.html
// [CSS Backgrounds and Borders Module Level 3: Border Images]: https://www.w3.org/TR/css-backgrounds-3/#border-images
package nines
