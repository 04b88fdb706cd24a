package version

const (
	// AddrgenSemVer is used as the fallback version of addrgen
	// when not using git describe. It uses semantic versioning format.
	AddrgenSemVer = "0.1.0"

	// AddressVersion versions the address derivation scheme:
	// hex(SHA256(X || Y)[12:32]).
	AddressVersion uint64 = 1
)

// GitCommitHash uses git rev-parse HEAD to find commit hash which is helpful
// for the engineering team when working with the addrgen binary. Set with -ldflags at build time.
var GitCommitHash = ""
