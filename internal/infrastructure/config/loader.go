package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// DefaultFile is the config file name looked up by LoadNav
const DefaultFile = "worlds.json"

// EnvPrefix prefixes environment overrides, e.g. STARMAP_TRANSITION_FLASHMS=250
const EnvPrefix = "STARMAP"

// Loader loads navigation configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadNav loads and validates worlds.json
func (l *Loader) LoadNav() (*NavConfig, error) {
	return l.LoadNamed(DefaultFile)
}

// LoadNamed loads and validates the named config file.
// Scalar settings present in the file may be overridden from the environment.
func (l *Loader) LoadNamed(name string) (*NavConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	v := newViper()
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	var cfg NavConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}

	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("assetsDir", "assets")
	v.SetDefault("transition.flashMs", 500)
	v.SetDefault("transition.color", "#ffffff")
	v.SetDefault("returnButton.label", "Return to Starmap")
	v.SetDefault("returnButton.bottomOffset", 50)
	v.SetDefault("returnButton.fontSize", 24)
	v.SetDefault("returnButton.color", "#ffffff")
	v.SetDefault("returnButton.background", "#222222")
	v.SetDefault("returnButton.paddingX", 10)
	v.SetDefault("returnButton.paddingY", 5)
	v.SetDefault("display.width", 1280)
	v.SetDefault("display.height", 800)
	v.SetDefault("display.title", "Starmap")
	v.SetDefault("display.tps", 60)

	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}
