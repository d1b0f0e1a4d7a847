// Package config loads the hcicodec CLI configuration.
package config

import (
	"os"

	"github.com/muxable/hcicodec/pkg/hci"
	"github.com/muxable/hcicodec/pkg/hci/stm32wb"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Transport TransportConfig `yaml:"transport"`
	Vendor    string          `yaml:"vendor"` // "stm32wb" or "none"
	Log       LogConfig       `yaml:"log"`
}

type TransportConfig struct {
	Kind   string `yaml:"kind"`   // "socket" or "uart"
	Device int    `yaml:"device"` // HCI device id, -1 for the first available
	Port   string `yaml:"port"`   // serial device
	Baud   int    `yaml:"baud"`

	// ResetOnClose sends HCI Reset when a socket transport is closed.
	ResetOnClose bool `yaml:"reset_on_close"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() *Config {
	return &Config{
		Transport: TransportConfig{Kind: "socket", Device: -1, Baud: 115200},
		Vendor:    "none",
		Log:       LogConfig{Level: "info"},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read")
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(err, "config: parse")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks every setting except the uart port, which the command
// line may still supply. TransportConfig.Validate checks it before a
// transport is opened.
func (c *Config) Validate() error {
	if err := c.Transport.check(); err != nil {
		return err
	}
	if _, err := c.VendorExtension(); err != nil {
		return err
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

// VendorExtension returns the vendor selected by name.
func (c *Config) VendorExtension() (hci.Vendor, error) {
	switch c.Vendor {
	case "", "none":
		return hci.NoVendor{}, nil
	case "stm32wb":
		return stm32wb.Vendor{}, nil
	}
	return nil, errors.Errorf("config: unknown vendor %q", c.Vendor)
}

func (c *Config) level() (zapcore.Level, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return l, errors.Wrapf(err, "config: log level")
	}
	return l, nil
}

// Logger builds the zap logger described by the log section.
func (c *Config) Logger() (*zap.Logger, error) {
	l, err := c.level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(l)
	return zc.Build()
}

func (t TransportConfig) check() error {
	switch t.Kind {
	case "socket", "uart":
	default:
		return errors.Errorf("config: unknown transport %q", t.Kind)
	}
	if t.Baud < 0 {
		return errors.Errorf("config: invalid baud %d", t.Baud)
	}
	return nil
}

// Validate reports whether t is complete enough to open.
func (t TransportConfig) Validate() error {
	if err := t.check(); err != nil {
		return err
	}
	if t.Kind == "uart" && t.Port == "" {
		return errors.New("config: uart transport needs a port")
	}
	return nil
}
