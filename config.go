package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/NickyBoy89/java2scala/render"
	"github.com/cockroachdb/errors"
)

// DefaultConfigFile is read when no configuration file is given
const DefaultConfigFile = "java2scala.toml"

// Config holds the settings of a generator run
type Config struct {
	// Model is the YAML file describing the API
	Model string `toml:"model"`
	// Templates is a directory overriding the built in fragments
	Templates string `toml:"templates"`
	// Output is the root directory of the generated sources
	Output string `toml:"output"`
	// Lang is inserted into the translated package names
	Lang string `toml:"lang"`
	// Modules restricts generation to the named modules
	Modules  []string `toml:"modules"`
	LogLevel string   `toml:"log_level"`
}

// DefaultConfig returns the settings used for anything a file leaves out
func DefaultConfig() Config {
	return Config{
		Model:    "model.yaml",
		Output:   "src/main/scala",
		Lang:     render.DefaultLang,
		LogLevel: "info",
	}
}

// LoadConfig reads path on top of the defaults. A missing default file is
// not an error, but an explicitly named one is.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && !explicit {
		return config, nil
	}

	if _, err := toml.DecodeFile(path, &config); err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}
	return config, nil
}
