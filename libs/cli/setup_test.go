package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupEnv(t *testing.T) {
	cases := []struct {
		args     []string
		env      map[string]string
		expected string
	}{
		{nil, nil, ""},
		{[]string{"--coord", "0a8b"}, nil, "0a8b"},
		{[]string{"--coord=f86d"}, nil, "f86d"},
		// test error is not triggered by env
		{nil, map[string]string{"DERIVE_COORD": "ffff"}, "ffff"},
		// test direct prefix copies
		{nil, map[string]string{"DERIVECOORD": "0000"}, "0000"},
		// flags take precedence over env
		{[]string{"--coord", "aa"}, map[string]string{"DERIVE_COORD": "bb"}, "aa"},
	}

	for idx, tc := range cases {
		i := strconv.Itoa(idx)
		// test command that store value of foobar in local variable
		var coord string
		demo := &cobra.Command{
			Use: "demo",
			RunE: func(cmd *cobra.Command, args []string) error {
				coord = viper.GetString("coord")
				return nil
			},
		}
		demo.Flags().String("coord", "", "Some test value from config")
		cmd := PrepareBaseCmd(demo, "DERIVE", "/qwerty/asdfgh") // some missing dir..
		cmd.Exit = func(int) {}

		viper.Reset()
		args := append([]string{cmd.Use}, tc.args...)
		err := RunWithArgs(cmd, args, tc.env)
		require.Nil(t, err, i)
		assert.Equal(t, tc.expected, coord, i)
		for k := range tc.env {
			os.Unsetenv(k)
		}
	}
}

func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "addrgen-cli-test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func TestSetupConfig(t *testing.T) {
	// we pre-create two config files we can refer to in the rest of
	// the test cases.
	cval1 := "info"
	conf1 := tempDir(t)
	err := WriteConfigVals(conf1, map[string]string{"log_level": cval1})
	require.Nil(t, err)

	cases := []struct {
		args     []string
		env      map[string]string
		expected string
	}{
		{nil, nil, ""},
		// setting on the command line
		{[]string{"--log_level", "debug"}, nil, "debug"},
		{[]string{"--home", conf1}, nil, cval1},
		// test both variants of the prefix
		{nil, map[string]string{"RD_LOG_LEVEL": "error"}, "error"},
		{nil, map[string]string{"RD_HOME": conf1}, cval1},
		{nil, map[string]string{"RDHOME": conf1}, cval1},
	}

	for idx, tc := range cases {
		i := strconv.Itoa(idx)
		// test command that store value of log_level in local variable
		var level string
		boo := &cobra.Command{
			Use: "reader",
			RunE: func(cmd *cobra.Command, args []string) error {
				level = viper.GetString("log_level")
				return nil
			},
		}
		boo.Flags().String("log_level", "", "Some test value from config")
		cmd := PrepareBaseCmd(boo, "RD", "/qwerty/asdfgh") // some missing dir...
		cmd.Exit = func(int) {}

		viper.Reset()
		args := append([]string{cmd.Use}, tc.args...)
		err := RunWithArgs(cmd, args, tc.env)
		require.Nil(t, err, i)
		assert.Equal(t, tc.expected, level, i)
		for k := range tc.env {
			os.Unsetenv(k)
		}
	}
}

func TestSetupOutput(t *testing.T) {
	cases := []struct {
		args    []string
		want    string
		wantErr bool
	}{
		{nil, "text", false},
		{[]string{"--output", "json"}, "json", false},
		{[]string{"-o", "text"}, "text", false},
		{[]string{"--output", "yaml"}, "", true},
	}

	for idx, tc := range cases {
		i := strconv.Itoa(idx)
		var output string
		cmd := &cobra.Command{
			Use: "printer",
			RunE: func(cmd *cobra.Command, args []string) error {
				output = viper.GetString(OutputFlag)
				return nil
			},
		}
		exec := PrepareMainCmd(cmd, "PR", "/qwerty/asdfgh")
		exitCode := -1
		exec.Exit = func(code int) { exitCode = code }

		viper.Reset()
		args := append([]string{cmd.Use}, tc.args...)
		_, stderr, err := RunCaptureWithArgs(exec, args, nil)
		if tc.wantErr {
			require.Error(t, err, i)
			assert.Equal(t, 1, exitCode, i)
			assert.Contains(t, stderr, "unsupported output format: yaml", i)
			continue
		}
		require.NoError(t, err, i)
		assert.Equal(t, tc.want, output, i)
		assert.Equal(t, -1, exitCode, i)
	}
}

type exitCodeErr struct {
	code int
}

func (e exitCodeErr) Error() string { return fmt.Sprintf("exit with %d", e.code) }
func (e exitCodeErr) ExitCode() int { return e.code }

func TestExecutorExitCode(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{errors.New("pub_key_x must be 32 bytes, got 31"), 1, "ERROR: pub_key_x must be 32 bytes, got 31"},
		{exitCodeErr{3}, 3, "ERROR: exit with 3"},
		{fmt.Errorf("wrapped: %w", exitCodeErr{4}), 4, "ERROR: wrapped: exit with 4"},
	}

	for idx, tc := range cases {
		i := strconv.Itoa(idx)
		failing := &cobra.Command{
			Use: "failing",
			RunE: func(cmd *cobra.Command, args []string) error {
				return tc.err
			},
		}
		exec := PrepareBaseCmd(failing, "FL", "/qwerty/asdfgh")
		exitCode := 0
		exec.Exit = func(code int) { exitCode = code }

		viper.Reset()
		stdout, stderr, err := RunCaptureWithArgs(exec, []string{failing.Use}, nil)
		require.Error(t, err, i)
		assert.Equal(t, tc.wantCode, exitCode, i)
		assert.Empty(t, stdout, i)
		assert.Equal(t, tc.wantMsg, strings.TrimSpace(stderr), i)
	}
}

func TestSetupTrace(t *testing.T) {
	cases := []struct {
		args     []string
		env      map[string]string
		long     bool
		expected string
	}{
		{nil, nil, false, "trace flag = false"},
		{[]string{"--trace"}, nil, true, "trace flag = true"},
		{nil, map[string]string{"DBG_TRACE": "true"}, true, "trace flag = true"},
	}

	for idx, tc := range cases {
		i := strconv.Itoa(idx)
		// test command that store value of foobar in local variable
		trace := &cobra.Command{
			Use: "trace",
			RunE: func(cmd *cobra.Command, args []string) error {
				return fmt.Errorf("trace flag = %t", viper.GetBool(TraceFlag))
			},
		}
		cmd := PrepareBaseCmd(trace, "DBG", "/qwerty/asdfgh") // some missing dir..
		cmd.Exit = func(int) {}

		viper.Reset()
		args := append([]string{cmd.Use}, tc.args...)
		stdout, stderr, err := RunCaptureWithArgs(cmd, args, tc.env)
		require.NotNil(t, err, i)
		require.Equal(t, "", stdout, i)
		require.NotEqual(t, "", stderr, i)
		msg := strings.Split(stderr, "\n")
		desired := fmt.Sprintf("ERROR: %s", tc.expected)
		assert.Equal(t, desired, msg[0], i)
		if tc.long && assert.True(t, len(msg) > 2, i) {
			// the next line starts the stack trace...
			assert.True(t, strings.HasPrefix(msg[1], "goroutine "), i)
			assert.Contains(t, stderr, "libs/cli/setup.go", i)
		} else {
			assert.NotContains(t, stderr, "goroutine ", i)
		}
		for k := range tc.env {
			os.Unsetenv(k)
		}
	}
}
