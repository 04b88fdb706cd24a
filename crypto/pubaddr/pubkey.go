package pubaddr

import (
	"bytes"
	"fmt"

	"github.com/cometbft/addrgen/crypto"
	"github.com/cometbft/addrgen/crypto/tmhash"
)

// PubKey holds the affine coordinates of a public key.
type PubKey struct {
	X [CoordinateSize]byte
	Y [CoordinateSize]byte
}

// NewPubKey copies x and y into a PubKey.
func NewPubKey(x, y []byte) (PubKey, error) {
	var pk PubKey
	if err := checkLen("x", x); err != nil {
		return pk, err
	}
	if err := checkLen("y", y); err != nil {
		return pk, err
	}
	copy(pk.X[:], x)
	copy(pk.Y[:], y)
	return pk, nil
}

// Address returns the last 20 bytes of SHA256(X || Y).
func (pk PubKey) Address() crypto.Address {
	return crypto.Address(tmhash.SumManyTail(pk.X[:], pk.Y[:]))
}

// Bytes returns X || Y.
func (pk PubKey) Bytes() []byte {
	bz := make([]byte, 0, 2*CoordinateSize)
	bz = append(bz, pk.X[:]...)
	return append(bz, pk.Y[:]...)
}

func (pk PubKey) Equals(other PubKey) bool {
	return bytes.Equal(pk.X[:], other.X[:]) && bytes.Equal(pk.Y[:], other.Y[:])
}

func (pk PubKey) String() string {
	return fmt.Sprintf("PubKey{X:%X Y:%X}", pk.X[:], pk.Y[:])
}
