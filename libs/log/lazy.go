package log

import (
	"fmt"
	"log/slog"

	"github.com/cometbft/addrgen/crypto"
)

type LazySprintf struct {
	format string
	args   []any
}

// NewLazySprintf defers fmt.Sprintf until the Stringer interface is invoked.
// This is particularly useful for avoiding calling Sprintf when debugging is not
// active.
func NewLazySprintf(format string, args ...any) *LazySprintf {
	return &LazySprintf{format, args}
}

func (l *LazySprintf) String() string {
	return fmt.Sprintf(l.format, l.args...)
}

// LogValue implements slog.LogValuer.
func (l *LazySprintf) LogValue() slog.Value {
	return slog.StringValue(l.String())
}

// LazyAddress is a wrapper around an addressable object that defers the
// Address call until the Stringer interface is invoked.
type LazyAddress struct {
	inner addressable
}

type addressable interface {
	Address() crypto.Address
}

// NewLazyAddress defers calling `Address()` until the Stringer interface is
// invoked. Hashing is skipped entirely when the log line is filtered out.
func NewLazyAddress(inner addressable) *LazyAddress {
	return &LazyAddress{inner}
}

func (l *LazyAddress) String() string {
	return l.inner.Address().String()
}

// LogValue implements slog.LogValuer.
func (l *LazyAddress) LogValue() slog.Value {
	return slog.StringValue(l.String())
}
