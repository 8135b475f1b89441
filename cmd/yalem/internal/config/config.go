// Package config loads the optional yalem.yaml or yalem.toml file of a
// project and resolves defaults for the windows it describes.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/yalem-ui/yalem/pkg/errors"
	"github.com/yalem-ui/yalem/pkg/rendering"
)

// Config file names, in lookup order.
const (
	YAMLFile = "yalem.yaml"
	TOMLFile = "yalem.toml"
)

// Window defaults.
const (
	DefaultWindowTitle  = "yalem Demo"
	DefaultWindowWidth  = 300
	DefaultWindowHeight = 300
)

// Config represents the optional project configuration.
type Config struct {
	App     AppConfig      `yaml:"app" toml:"app"`
	Windows []WindowConfig `yaml:"windows,omitempty" toml:"windows,omitempty"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty" toml:"name,omitempty"`
}

// WindowConfig describes one window. Zero values are filled by Resolve.
type WindowConfig struct {
	Title  string  `yaml:"title,omitempty" toml:"title,omitempty"`
	Width  float64 `yaml:"width,omitempty" toml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty" toml:"height,omitempty"`
	Clear  string  `yaml:"clear,omitempty" toml:"clear,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	Source     string
	ModulePath string
	AppName    string
	Windows    []Window
}

// Window is a fully resolved window description.
type Window struct {
	Title string
	Size  rendering.Size
	Clear rendering.Color
}

func configError(op string, err error) error {
	return &errors.YalemError{Op: op, Kind: errors.KindConfig, Err: err}
}

// LoadOptional reads yalem.yaml or yalem.toml from dir if present. It
// returns the parsed config and the path it was read from, or an empty
// config and "" when neither file exists. Having both is an error.
func LoadOptional(dir string) (*Config, string, error) {
	yamlPath := filepath.Join(dir, YAMLFile)
	tomlPath := filepath.Join(dir, TOMLFile)

	yamlData, yamlErr := readOptional(yamlPath)
	if yamlErr != nil {
		return nil, "", configError("config.LoadOptional", yamlErr)
	}
	tomlData, tomlErr := readOptional(tomlPath)
	if tomlErr != nil {
		return nil, "", configError("config.LoadOptional", tomlErr)
	}

	var cfg Config
	switch {
	case yamlData != nil && tomlData != nil:
		return nil, "", configError("config.LoadOptional",
			fmt.Errorf("both %s and %s present in %s", YAMLFile, TOMLFile, dir))
	case yamlData != nil:
		if err := yaml.Unmarshal(yamlData, &cfg); err != nil {
			return nil, "", configError("config.LoadOptional", fmt.Errorf("failed to parse %s: %w", YAMLFile, err))
		}
		return &cfg, yamlPath, nil
	case tomlData != nil:
		if err := toml.Unmarshal(tomlData, &cfg); err != nil {
			return nil, "", configError("config.LoadOptional", fmt.Errorf("failed to parse %s: %w", TOMLFile, err))
		}
		return &cfg, tomlPath, nil
	default:
		return &cfg, "", nil
	}
}

func readOptional(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return data, nil
}

// Resolve loads the config in dir (if present) and resolves defaults.
// A go.mod in dir, when there is one, supplies the default app name.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, configError("config.Resolve", err)
	}

	cfg, source, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	windows, err := resolveWindows(cfg.Windows)
	if err != nil {
		return nil, configError("config.Resolve", err)
	}

	return &Resolved{
		Root:       dir,
		Source:     source,
		ModulePath: modulePath,
		AppName:    appName,
		Windows:    windows,
	}, nil
}

// Defaults returns the configuration used when no project is given.
func Defaults() *Resolved {
	windows, _ := resolveWindows(nil)
	return &Resolved{
		AppName: "yalem",
		Windows: windows,
	}
}

func resolveWindows(in []WindowConfig) ([]Window, error) {
	if len(in) == 0 {
		in = []WindowConfig{{}}
	}
	out := make([]Window, 0, len(in))
	for i, wc := range in {
		w := Window{
			Title: strings.TrimSpace(wc.Title),
			Size:  rendering.Size{Width: wc.Width, Height: wc.Height},
			Clear: rendering.ColorWhite,
		}
		if w.Title == "" {
			w.Title = DefaultWindowTitle
		}
		if w.Size.Width == 0 {
			w.Size.Width = DefaultWindowWidth
		}
		if w.Size.Height == 0 {
			w.Size.Height = DefaultWindowHeight
		}
		if w.Size.Width < 0 || w.Size.Height < 0 {
			return nil, fmt.Errorf("windows[%d]: size must not be negative (got %gx%g)", i, w.Size.Width, w.Size.Height)
		}
		if clear := strings.TrimSpace(wc.Clear); clear != "" {
			c, err := ParseColor(clear)
			if err != nil {
				return nil, fmt.Errorf("windows[%d].clear: %w", i, err)
			}
			w.Clear = c
		}
		out = append(out, w)
	}
	return out, nil
}

// ParseColor parses "#rrggbb" (opaque) or "#aarrggbb".
func ParseColor(s string) (rendering.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, fmt.Errorf("color %q must start with '#'", s)
	}
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("color %q must be #rrggbb or #aarrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q is not hexadecimal", s)
	}
	if len(hex) == 6 {
		v |= 0xFF000000
	}
	return rendering.Color(v), nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "yalem_app"
	}
	return base
}
