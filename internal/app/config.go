package app

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the host parameters for the application. Values come
// from defaults, then an optional TOML file, then command-line flags.
type Config struct {
	App        string  `toml:"app"`
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	TPS        int     `toml:"tps"`
	WheelScale float64 `toml:"wheel_scale"`
	Verbose    bool    `toml:"verbose"`

	// Options is handed to the app factory after stringification.
	Options map[string]any `toml:"options"`

	ConfigFile string   `toml:"-"`
	Overrides  []string `toml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{App: "plane", Width: 1280, Height: 800, TPS: 60, WheelScale: 40}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.App, "app", c.App, "app to run")
	fs.IntVar(&c.Width, "width", c.Width, "frame width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "frame height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Float64Var(&c.WheelScale, "wheel", c.WheelScale, "pixels scrolled per wheel notch")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log tile generation")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "optional TOML config file")
	fs.Var((*kvList)(&c.Overrides), "set", "app option key=value (repeatable)")
}

// Load decodes the TOML file at path into c. Keys absent from the file keep
// their current values.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("parse config %s:%d:%d: %w", path, row, col, err)
		}
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks the host values.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("invalid tps %d", c.TPS)
	}
	return nil
}

// AppOptions flattens the file options and the -set overrides into the map
// passed to the app factory. Overrides win.
func (c *Config) AppOptions() map[string]string {
	out := make(map[string]string, len(c.Options)+len(c.Overrides))
	for k, v := range c.Options {
		out[k] = fmt.Sprint(v)
	}
	for _, kv := range c.Overrides {
		k, v, _ := strings.Cut(kv, "=")
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

// Parse builds a Config from args. If -config names a file, it is loaded
// first and the flags given explicitly on the command line are applied on
// top of it.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	return ParseInto(NewConfig(), fs, args)
}

// ParseInto is Parse with caller-provided defaults, for tools that bind
// additional flags to fs.
func ParseInto(cfg *Config, fs *flag.FlagSet, args []string) (*Config, error) {
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ConfigFile == "" {
		return cfg, nil
	}

	merged := *cfg
	merged.Options = nil
	if err := merged.Load(cfg.ConfigFile); err != nil {
		return nil, err
	}
	again := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	merged.Bind(again)
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil || f.Name == "set" || again.Lookup(f.Name) == nil {
			return
		}
		err = again.Set(f.Name, f.Value.String())
	})
	if err != nil {
		return nil, err
	}
	merged.Overrides = cfg.Overrides
	return &merged, nil
}

// kvList collects repeated key=value flags.
type kvList []string

func (l *kvList) String() string {
	if l == nil {
		return ""
	}
	s := append([]string(nil), *l...)
	sort.Strings(s)
	return strings.Join(s, ",")
}

func (l *kvList) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("expected key=value, got %q", v)
	}
	*l = append(*l, v)
	return nil
}
