package nines

// Axes is a pair of values, one per axis.
type Axes[V any] struct {
	// Horizontal is the x-axis value.
	Horizontal V
	// Vertical is the y-axis value.
	Vertical V
}
