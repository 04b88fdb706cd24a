package pubaddr

import (
	"github.com/cometbft/addrgen/crypto"
	"github.com/cometbft/addrgen/crypto/tmhash"
)

const (
	// CoordinateSize is the size of one public key coordinate in bytes.
	CoordinateSize = 32
	// AddressSize is the size of a derived address in bytes.
	AddressSize = crypto.AddressSize
	// AddressHexSize is the length of the hex rendering of an address.
	AddressHexSize = 2 * AddressSize
)

// DeriveAddress hashes pubKeyX followed by pubKeyY with SHA256 and returns
// the last 20 bytes of the digest as a lowercase hex string.
func DeriveAddress(pubKeyX, pubKeyY []byte) (string, error) {
	addr, err := Derive(pubKeyX, pubKeyY)
	if err != nil {
		return "", err
	}
	return addr.String(), nil
}

// Derive is DeriveAddress returning the raw address bytes.
func Derive(pubKeyX, pubKeyY []byte) (crypto.Address, error) {
	if err := checkLen("x", pubKeyX); err != nil {
		return nil, err
	}
	if err := checkLen("y", pubKeyY); err != nil {
		return nil, err
	}
	return crypto.Address(tmhash.SumManyTail(pubKeyX, pubKeyY)), nil
}

// DeriveAddressFromInts is DeriveAddress for coordinates given as plain
// integers, e.g. decoded from JSON. Every element must be within [0, 255].
func DeriveAddressFromInts(pubKeyX, pubKeyY []int) (string, error) {
	x, err := CoordinateFromInts("x", pubKeyX)
	if err != nil {
		return "", err
	}
	y, err := CoordinateFromInts("y", pubKeyY)
	if err != nil {
		return "", err
	}
	return DeriveAddress(x, y)
}

// CoordinateFromInts converts vals into a coordinate. name is used in the
// returned error.
func CoordinateFromInts(name string, vals []int) ([]byte, error) {
	if len(vals) != CoordinateSize {
		return nil, ErrInvalidLength{Coordinate: name, Got: len(vals)}
	}
	bz := make([]byte, CoordinateSize)
	for i, v := range vals {
		if v < 0 || v > 0xff {
			return nil, ErrInvalidLength{
				Coordinate: name,
				Got:        len(vals),
				OutOfRange: true,
				Index:      i,
				Value:      v,
			}
		}
		bz[i] = byte(v)
	}
	return bz, nil
}

// ValidateAddress checks that s has the shape DeriveAddress produces.
func ValidateAddress(s string) error {
	if err := tmhash.ValidateTail(s); err != nil {
		return ErrInvalidAddress{Address: s, Reason: err.Error()}
	}
	return nil
}

func checkLen(name string, coord []byte) error {
	if len(coord) != CoordinateSize {
		return ErrInvalidLength{Coordinate: name, Got: len(coord)}
	}
	return nil
}
