package nines

import (
	"fmt"
	"strings"
)

// Scale describes how a strip of source content fills a strip of the
// destination. The values follow the CSS [border-image-repeat] property.
//
// Only [Stretch] is implemented. Laying out a style that uses any other value
// fails with [ErrUnsupportedScale].
//
// [border-image-repeat]: https://www.w3.org/TR/css-backgrounds-3/#the-border-image-repeat
type Scale uint8

const (
	// Stretch uses the source exactly once, scaled up or down as necessary.
	Stretch Scale = iota

	// Repeat tiles the source floor(dst / src) times, centered, with partial
	// tiles at either end.
	Repeat

	// Round tiles the source max(1, round(dst / src)) times, scaling the tiles
	// so that a whole number of them fits.
	Round

	// Space tiles the source floor(dst / src) times and distributes the
	// leftover space between the tiles. Mostly useful for dashed borders.
	Space
)

var scaleNames = [...]string{
	Stretch: "stretch",
	Repeat:  "repeat",
	Round:   "round",
	Space:   "space",
}

func (s Scale) String() string {
	if int(s) < len(scaleNames) {
		return scaleNames[s]
	}
	return fmt.Sprintf("Scale(%d)", uint8(s))
}

// Supported reports whether layouts can use s. Only [Stretch] is supported.
func (s Scale) Supported() bool {
	return s == Stretch
}

// ParseScale returns the scale with the given name, ignoring case.
func ParseScale(name string) (Scale, error) {
	for i, n := range scaleNames {
		if strings.EqualFold(name, n) {
			return Scale(i), nil
		}
	}
	return 0, fmt.Errorf("nines: unknown scale %q", name)
}

func (s Scale) MarshalText() ([]byte, error) {
	if int(s) >= len(scaleNames) {
		return nil, fmt.Errorf("nines: invalid scale %d", uint8(s))
	}
	return []byte(scaleNames[s]), nil
}

func (s *Scale) UnmarshalText(text []byte) error {
	v, err := ParseScale(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
