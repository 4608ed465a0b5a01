package maze

// Word is any unsigned integer used as a packed bit field.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// GetBit returns bit n of v as 0 or 1.
func GetBit[T Word](v T, n int) T {
	return (v >> n) & 1
}

// FlipBit inverts bit n of v.
func FlipBit[T Word](v T, n int) T {
	return v ^ (1 << n)
}

// SetBit sets bit n of v to 1 if on, otherwise to 0.
func SetBit[T Word](v T, n int, on bool) T {
	if (GetBit(v, n) == 1) == on {
		return v
	}
	return FlipBit(v, n)
}

// Bounds is the wall word of one cell. Bit d describes the wall on the positive
// side of axis d: 1 is closed, 0 is open. The wall between c and c+e_d is only
// ever stored in c.
type Bounds uint16

// closedBounds returns a word with every wall of an n-dimensional cell closed.
func closedBounds(n int) Bounds {
	return Bounds(1<<n - 1)
}

// Closed reports whether the wall along axis d is closed.
func (b Bounds) Closed(d int) bool {
	return GetBit(b, d) == 1
}

// Open reports whether the wall along axis d is open.
func (b Bounds) Open(d int) bool {
	return GetBit(b, d) == 0
}

// Set returns b with the wall along axis d set to closed or open.
func (b Bounds) Set(d int, closed bool) Bounds {
	return SetBit(b, d, closed)
}

// Flip returns b with the wall along axis d toggled.
func (b Bounds) Flip(d int) Bounds {
	return FlipBit(b, d)
}
