package tmhash

import (
	"fmt"
	"regexp"

	"github.com/minio/sha256-simd"
)

const (
	Size = sha256.Size

	// TruncatedSize is the number of digest bytes kept for an address.
	TruncatedSize = 20
)

// tailOffset is where the last TruncatedSize bytes of a digest begin.
const tailOffset = Size - TruncatedSize

var tailPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)

// SumMany takes at least 1 byteslice along with a variadic
// number of other byteslices and produces the SHA256 sum from
// hashing them as if they were 1 joined slice.
func SumMany(data []byte, rest ...[]byte) []byte {
	h := sha256.New()
	h.Write(data)
	for _, data := range rest {
		h.Write(data)
	}
	return h.Sum(nil)
}

// SumManyTail is SumMany followed by keeping the last 20 bytes.
func SumManyTail(data []byte, rest ...[]byte) []byte {
	return SumMany(data, rest...)[tailOffset:]
}

// ValidateTail checks if the given string is a syntactically valid truncated
// hash as rendered by addrgen: 40 lowercase hex characters.
// If it isn't valid, it returns an error explaining why.
func ValidateTail(hashStr string) error {
	if len(hashStr) != 2*TruncatedSize {
		return fmt.Errorf("expected %d characters, but have %d", 2*TruncatedSize, len(hashStr))
	}

	if !tailPattern.MatchString(hashStr) {
		return fmt.Errorf("contains characters outside 0-9a-f")
	}

	return nil
}
