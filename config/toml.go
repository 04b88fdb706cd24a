package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	_ "embed"

	cmtos "github.com/cometbft/addrgen/internal/os"
)

// DefaultDirPerm is the default permissions used when creating directories.
const DefaultDirPerm = 0o700

var configTemplate *template.Template

func init() {
	var err error
	tmpl := template.New("configFileTemplate")
	if configTemplate, err = tmpl.Parse(defaultConfigTemplate); err != nil {
		panic(err)
	}
}

// EnsureRoot creates the root and config directories if they don't exist.
func EnsureRoot(rootDir string) error {
	if err := cmtos.EnsureDir(rootDir, DefaultDirPerm); err != nil {
		return err
	}
	return cmtos.EnsureDir(filepath.Join(rootDir, DefaultConfigDir), DefaultDirPerm)
}

// WriteConfigFile renders config using the template and writes it to configFilePath.
func WriteConfigFile(configFilePath string, config *Config) error {
	var buffer bytes.Buffer

	if err := configTemplate.Execute(&buffer, config); err != nil {
		return fmt.Errorf("rendering config template: %w", err)
	}

	return cmtos.WriteFile(configFilePath, buffer.Bytes(), 0o644)
}

// Note: any changes to the comments/variables/mapstructure
// must be reflected in the appropriate struct in config/config.go.
//
//go:embed config.toml.tpl
var defaultConfigTemplate string
