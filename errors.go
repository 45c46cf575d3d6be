package nines

// Error is the error returned when a value fails validation. It carries a
// fixed description of the violated constraint and nothing else; callers are
// expected to check for its presence, not to branch on its contents.
type Error struct {
	msg string
}

func (e *Error) Error() string {
	return "nines: " + e.msg
}

// ErrUnsupportedScale is returned when a layout would need a scale other than
// [Stretch]. Repeat, Round and Space are reserved and not yet implemented.
var ErrUnsupportedScale = &Error{"non-stretch scaling is not implemented"}

var (
	errLeftRight = &Error{"expected left ≤ right"}
	errTopBottom = &Error{"expected top ≤ bottom"}

	errOuterLeftInnerLeft     = &Error{"expected outer.left ≤ inner.left"}
	errInnerLeftInnerRight    = &Error{"expected inner.left ≤ inner.right"}
	errInnerRightOuterRight   = &Error{"expected inner.right ≤ outer.right"}
	errOuterTopInnerTop       = &Error{"expected outer.top ≤ inner.top"}
	errInnerTopInnerBottom    = &Error{"expected inner.top ≤ inner.bottom"}
	errInnerBottomOuterBottom = &Error{"expected inner.bottom ≤ outer.bottom"}

	errNegativeCenterWidth  = &Error{"resulting dimensions would have a negative center width"}
	errNegativeCenterHeight = &Error{"resulting dimensions would have a negative center height"}
)
