package log_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/cometbft/addrgen/libs/log"
)

func TestLoggerLogsItsErrors(t *testing.T) {
	var buf bytes.Buffer

	logger := log.NewLogger(&buf)
	logger.Info("foo", "baz baz", "bar")
	msg := strings.TrimSpace(buf.String())
	if !strings.Contains(msg, "foo") {
		t.Errorf("expected logger msg to contain foo, got %s", msg)
	}
}

func TestLevels(t *testing.T) {
	testCases := []struct {
		name  string
		log   func(l log.Logger)
		level string
	}{
		{"info", func(l log.Logger) { l.Info("derived address", "address", "8a0252d3") }, "INF"},
		{"debug", func(l log.Logger) { l.Debug("derived address", "address", "8a0252d3") }, "DBG"},
		{"warn", func(l log.Logger) { l.Warn("derived address", "address", "8a0252d3") }, "WRN"},
		{"error", func(l log.Logger) { l.Error("derived address", "address", "8a0252d3") }, "ERR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			tc.log(log.NewLoggerWithColor(&buf, false))

			msg := strings.TrimSpace(buf.String())
			for _, want := range []string{tc.level, "derived address", "address=8a0252d3"} {
				if !strings.Contains(msg, want) {
					t.Errorf("expected %q to contain %q", msg, want)
				}
			}
		})
	}
}

func TestLoggerWithoutColor(t *testing.T) {
	var buf bytes.Buffer

	logger := log.NewLoggerWithColor(&buf, false)
	logger.Error("failed", "err", errors.New("pub_key_x must be 32 bytes, got 31"))

	msg := buf.String()
	if strings.Contains(msg, "\x1b[") {
		t.Errorf("expected no ANSI escapes, got %q", msg)
	}
	if !strings.Contains(msg, "pub_key_x must be 32 bytes, got 31") {
		t.Errorf("expected error text in %q", msg)
	}
}

func TestJSONLoggerWith(t *testing.T) {
	var buf bytes.Buffer

	logger := log.NewJSONLoggerNoTS(&buf).With("module", "pubaddr")
	logger.Info("derived address", "address", "8a0252d32e218701088f09d74143ab8004d95054")

	want := `{"level":"INFO","msg":"derived address","module":"pubaddr","address":"8a0252d32e218701088f09d74143ab8004d95054"}`
	if have := strings.TrimSpace(buf.String()); want != have {
		t.Errorf("\nwant '%s'\nhave '%s'", want, have)
	}
}

func TestNopLogger(t *testing.T) {
	logger := log.NewNopLogger()
	logger.With("module", "pubaddr").Info("nothing")
	if logger.Impl() != nil {
		t.Errorf("expected nil impl")
	}
}

func BenchmarkLoggerSimple(b *testing.B) {
	benchmarkRunner(b, log.NewLogger(io.Discard), baseInfoMessage)
}

func BenchmarkLoggerContextual(b *testing.B) {
	benchmarkRunner(b, log.NewLogger(io.Discard), withInfoMessage)
}

func benchmarkRunner(b *testing.B, logger log.Logger, f func(log.Logger)) {
	b.Helper()
	lc := logger.With("common_key", "common_value")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f(lc)
	}
}

var (
	baseInfoMessage = func(logger log.Logger) { logger.Info("foo_message", "foo_key", "foo_value") }
	withInfoMessage = func(logger log.Logger) { logger.With("a", "b").Info("c", "d", "f") }
)
