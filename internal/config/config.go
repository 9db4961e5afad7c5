package config

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/ThatOtherAndrew/Hexrune/internal/stroke"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Recognizer struct {
	// Similarity an input must exceed before its command runs.
	CommandExecuteThreshold float64 `yaml:"command_execute_threshold"`
	// Strokes with fewer captured points are rejected.
	PointCountThreshold int `yaml:"point_count_threshold"`
	// Rotation search half-window, in degrees.
	RotationAngleRange float64 `yaml:"rotation_angle_range"`
	// Rotation search precision, in degrees.
	RotationAngleThreshold float64 `yaml:"rotation_angle_threshold"`
	ResampleNumPoints      int     `yaml:"resample_num_points"`
	// Reference frame used for recognition. It need not match the screen.
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Workers int     `yaml:"workers"`
}

type Command struct {
	Pattern string `yaml:"pattern"`
	Command string `yaml:"command"`
}

type Config struct {
	Recognizer Recognizer `yaml:"recognizer"`
	Commands   []Command  `yaml:"commands"`
}

func Default() *Config {
	return &Config{
		Recognizer: Recognizer{
			CommandExecuteThreshold: 0.8,
			PointCountThreshold:     10,
			RotationAngleRange:      10,
			RotationAngleThreshold:  2,
			ResampleNumPoints:       64,
			Width:                   100,
			Height:                  100,
			Workers:                 1,
		},
	}
}

// GetPath is $XDG_CONFIG_HOME/hexrune/config.yaml, falling back to
// ~/.config/hexrune/config.yaml.
func GetPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "hexrune", "config.yaml"), nil
}

// Load reads the config at path. An empty path means the default location,
// where a missing file yields the defaults; an explicit path must exist.
func Load(path string) (*Config, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return Parse(data)
	}

	path, err := GetPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Config %s not found, using defaults", path)
			return Default(), nil
		}
		return nil, err
	}
	log.Printf("Loading config file %s", path)
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	// Check for unrecognised keys
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	warnUnknownKeys("", raw, reflect.TypeOf(Config{}))

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	r := c.Recognizer
	if r.CommandExecuteThreshold < 0 || r.CommandExecuteThreshold > 1 {
		return fmt.Errorf("%w: recognizer.command_execute_threshold should be in range [0,1]", ErrInvalid)
	}
	if r.PointCountThreshold < 0 {
		return fmt.Errorf("%w: recognizer.point_count_threshold should not be negative", ErrInvalid)
	}
	if !(r.RotationAngleRange > 0) {
		return fmt.Errorf("%w: recognizer.rotation_angle_range should be positive number", ErrInvalid)
	}
	if !(r.RotationAngleThreshold > 0) {
		return fmt.Errorf("%w: recognizer.rotation_angle_threshold should be positive number", ErrInvalid)
	}
	if r.ResampleNumPoints < 2 {
		return fmt.Errorf("%w: recognizer.resample_num_points should be at least 2", ErrInvalid)
	}
	if !(r.Width > 0) {
		return fmt.Errorf("%w: recognizer.width should be positive number", ErrInvalid)
	}
	if !(r.Height > 0) {
		return fmt.Errorf("%w: recognizer.height should be positive number", ErrInvalid)
	}
	for i, cmd := range c.Commands {
		if cmd.Pattern == "" {
			return fmt.Errorf("%w: commands[%d].pattern is empty", ErrInvalid, i)
		}
	}
	return nil
}

// Engine converts the recognizer settings into engine units.
func (c *Config) Engine() stroke.Config {
	r := c.Recognizer
	return stroke.Config{
		AngleRange:     DegreesToRadians(r.RotationAngleRange),
		AnglePrecision: DegreesToRadians(r.RotationAngleThreshold),
		Width:          r.Width,
		Height:         r.Height,
		NumPoints:      r.ResampleNumPoints,
		Workers:        r.Workers,
	}
}

// PatternNames returns the bound patterns in config order, without repeats.
func (c *Config) PatternNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, cmd := range c.Commands {
		if !seen[cmd.Pattern] {
			seen[cmd.Pattern] = true
			names = append(names, cmd.Pattern)
		}
	}
	return names
}

// CommandFor returns the first command bound to pattern.
func (c *Config) CommandFor(pattern string) (string, bool) {
	for _, cmd := range c.Commands {
		if cmd.Pattern == pattern {
			return cmd.Command, true
		}
	}
	return "", false
}

func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func warnUnknownKeys(prefix string, raw map[string]any, t reflect.Type) {
	knownKeys := getKnownKeys(t)
	for key, value := range raw {
		field, ok := knownKeys[key]
		if !ok {
			log.Printf("Warning: unrecognised setting key '%s%s' in config file", prefix, key)
			continue
		}
		if field.Kind() == reflect.Struct {
			if nested, ok := value.(map[string]any); ok {
				warnUnknownKeys(prefix+key+".", nested, field)
			}
		}
	}
}

func getKnownKeys(t reflect.Type) map[string]reflect.Type {
	keys := make(map[string]reflect.Type)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if yamlTag := field.Tag.Get("yaml"); yamlTag != "" {
			// Handle yaml tags like "field,omitempty"
			tagName := strings.Split(yamlTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = field.Type
			}
		}
	}
	return keys
}
