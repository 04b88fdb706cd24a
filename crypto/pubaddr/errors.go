package pubaddr

import "fmt"

// ErrInvalidLength is returned when a coordinate is not exactly
// CoordinateSize bytes long, or when one of its elements does not fit in a
// byte.
type ErrInvalidLength struct {
	// Coordinate is "x" or "y".
	Coordinate string
	// Got is the number of elements supplied.
	Got int

	// OutOfRange is set when the length was fine but the element at Index
	// holds Value, which is outside [0, 255].
	OutOfRange bool
	Index      int
	Value      int
}

func (e ErrInvalidLength) Error() string {
	if e.OutOfRange {
		return fmt.Sprintf("pub_key_%s[%d] = %d is not a byte value (expected 0-255)",
			e.Coordinate, e.Index, e.Value)
	}
	return fmt.Sprintf("pub_key_%s must be %d bytes, got %d", e.Coordinate, CoordinateSize, e.Got)
}

// ErrInvalidAddress is returned by ValidateAddress.
type ErrInvalidAddress struct {
	Address string
	Reason  string
}

func (e ErrInvalidAddress) Error() string {
	return fmt.Sprintf("invalid address %q: %s", e.Address, e.Reason)
}
