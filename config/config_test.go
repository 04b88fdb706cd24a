package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cometbft/addrgen/config"
)

func TestDefaultConfig(t *testing.T) {
	assert := assert.New(t)

	// set up some defaults
	cfg := config.DefaultConfig()
	assert.NotNil(cfg.Derive)
	assert.Equal(config.DefaultLogLevel, cfg.LogLevel)
	assert.Equal(config.OutputText, cfg.Output)

	// check the root dir stuff...
	cfg.SetRoot("/foo")
	assert.Equal("/foo/config/config.toml", cfg.ConfigFile())
}

func TestConfigValidateBasic(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.ValidateBasic())
	require.NoError(t, config.TestConfig().ValidateBasic())

	cfg.LogFormat = "xml"
	require.ErrorIs(t, cfg.ValidateBasic(), config.ErrUnknownLogFormat)
	cfg.LogFormat = config.LogFormatJSON

	cfg.Output = "yaml"
	require.ErrorIs(t, cfg.ValidateBasic(), config.ErrUnknownOutput)
	cfg.Output = config.OutputJSON

	cfg.LogLevel = ""
	require.ErrorIs(t, cfg.ValidateBasic(), config.ErrEmptyLogLevel)
	cfg.LogLevel = "pubaddr:debug,*:info"
	require.NoError(t, cfg.ValidateBasic())

	// tamper with max_input_bytes
	cfg.Derive.MaxInputBytes = 0
	err := cfg.ValidateBasic()
	require.Error(t, err)
	var inSection config.ErrInSection
	require.True(t, errors.As(err, &inSection))
	assert.Equal(t, "derive", inSection.Section)
	assert.EqualError(t, err, "error in [derive] section: max_input_bytes must be positive, got 0")

	cfg.Derive = nil
	require.ErrorIs(t, cfg.ValidateBasic(), config.ErrMissingSection)
}
