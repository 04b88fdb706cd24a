// crypto holds the address type shared by addrgen.
//
// Addresses:
//
// An Address is the 20-byte tail of a SHA-256 digest computed over a public
// key's coordinates. See package crypto/pubaddr for the derivation:
//
//	addr, err := pubaddr.DeriveAddress(x, y)
//	if err != nil {
//		return err
//	}
//	fmt.Println(addr) // 40 lowercase hex characters
package crypto
