package cairo

// Dash is a stroke dash pattern: alternating "on" and "off" lengths in user
// space and the offset into the pattern at which stroking starts.
//
// An empty Array disables dashing. Dash values are passed to cairo as they
// are; cairo validates them and puts the context in the StatusInvalidDash
// state for negative lengths or an all-zero array.
type Dash struct {
	Array  []float64
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
//
// Examples:
//
//	NewDash(5, 3)        // 5 units dash, 3 units gap
//	NewDash(10, 5, 2, 5) // 10 dash, 5 gap, 2 dash, 5 gap
//	NewDash(5)           // cairo repeats odd arrays: 5 dash, 5 gap
func NewDash(lengths ...float64) Dash {
	return Dash{Array: append([]float64(nil), lengths...)}
}

// WithOffset returns a copy of d starting at offset.
func (d Dash) WithOffset(offset float64) Dash {
	return Dash{Array: d.Array, Offset: offset}
}

// IsDashed reports whether d describes a dashed stroke.
func (d Dash) IsDashed() bool {
	return len(d.Array) > 0
}

// PatternLength returns the total length of one complete pattern cycle.
// Odd-length arrays are counted twice, as cairo repeats them.
func (d Dash) PatternLength() float64 {
	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// Clone creates a deep copy of the Dash.
func (d Dash) Clone() Dash {
	return Dash{Array: append([]float64(nil), d.Array...), Offset: d.Offset}
}

// Scale returns d with every length and the offset multiplied by factor.
func (d Dash) Scale(factor float64) Dash {
	scaled := make([]float64, len(d.Array))
	for i, l := range d.Array {
		scaled[i] = l * factor
	}
	return Dash{Array: scaled, Offset: d.Offset * factor}
}
