package crypto

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// AddressSize is the size of an address in bytes.
const AddressSize = 20

// Address is the tail of a public key hash.
type Address []byte

// AddressFromHex parses a 40-character hex string into an Address.
func AddressFromHex(s string) (Address, error) {
	bz, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid address hex: %w", err)
	}
	if len(bz) != AddressSize {
		return nil, fmt.Errorf("invalid address length: expected %d bytes, got %d", AddressSize, len(bz))
	}
	return Address(bz), nil
}

// String renders the address as lowercase hex without a prefix.
func (a Address) String() string {
	return hex.EncodeToString(a)
}

// Bytes returns the raw address bytes.
func (a Address) Bytes() []byte {
	return []byte(a)
}

// Equals reports whether a and other hold the same bytes.
func (a Address) Equals(other Address) bool {
	return bytes.Equal(a, other)
}

// MarshalText encodes the address as lowercase hex so JSON output carries the
// same form as String.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes a hex address.
func (a *Address) UnmarshalText(text []byte) error {
	addr, err := AddressFromHex(string(text))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
