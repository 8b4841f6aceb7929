// Package toolchain locates and invokes the external executables a
// generation run depends on.
package toolchain

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config adjusts how tools are looked up. The file is YAML: a plugin_path
// list of extra directories to search, plus one entry per tool name that
// pins the tool to a location.
//
//	plugin_path:
//	  - /opt/protobuf/bin
//	protoc:
//	  location: /opt/protobuf/bin/protoc
type Config struct {
	PluginPath []string `yaml:"plugin_path,omitempty"`

	Tools map[string]*ToolConfig `yaml:",inline"`
}

// ToolConfig overrides lookup for a single tool.
type ToolConfig struct {
	// Location points at the executable itself or at a directory to
	// search for it.
	Location string `yaml:"location,omitempty"`
}

// LoadConfig reads and parses the toolchain config at path.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load toolchain config %s", path)
	}
	var conf Config
	if err := yaml.Unmarshal(b, &conf); err != nil {
		return nil, errors.Wrapf(err, "failed to load toolchain config %s", path)
	}
	return &conf, nil
}
