// Package pubaddr derives short addresses from elliptic-curve public keys.
//
// An address is computed from the raw affine coordinates of a public key on
// a curve with 32-byte field elements (P-256, secp256k1):
//
//	digest  = SHA256(X || Y)
//	address = hex(digest[12:32])
//
// X is always hashed first. The result is 40 lowercase hex characters with no
// prefix. Both coordinates must be exactly 32 bytes, anything else fails with
// ErrInvalidLength.
//
// All functions are pure and safe for concurrent use.
package pubaddr
