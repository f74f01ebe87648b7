// Package config loads the optional animator.yaml and resolves the
// settings the editor runs with.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	animerrors "github.com/go-drift/animator/pkg/errors"
	"github.com/go-drift/animator/pkg/rendering"
	"github.com/go-drift/animator/pkg/timeline"
)

// FileName is the name of the configuration file.
const FileName = "animator.yaml"

// SchemaVersion is the configuration schema version written by default.
const SchemaVersion = "v1.0.0"

// Config represents the optional animator.yaml configuration.
type Config struct {
	Version  string         `yaml:"version"`
	Project  ProjectConfig  `yaml:"project"`
	Timeline TimelineConfig `yaml:"timeline"`
	Colors   ColorsConfig   `yaml:"colors"`
	Playback PlaybackConfig `yaml:"playback"`
}

// ProjectConfig contains project metadata.
type ProjectConfig struct {
	Name string `yaml:"name,omitempty"`
}

// TimelineConfig contains timeline geometry.
type TimelineConfig struct {
	CueSize      float64 `yaml:"cueSize"`
	MarginLeft   float64 `yaml:"marginLeft"`
	MarginRight  float64 `yaml:"marginRight"`
	LabelsHeight float64 `yaml:"labelsHeight"`
	DrawLabels   bool    `yaml:"drawLabels"`
	Precision    int     `yaml:"precision"`
	CornerRadius float64 `yaml:"cornerRadius"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
}

// ColorsConfig contains timeline colors as hex strings.
type ColorsConfig struct {
	Background string  `yaml:"background"`
	Grip       string  `yaml:"grip"`
	GripAlpha  float64 `yaml:"gripAlpha"`
	Cue        string  `yaml:"cue"`
}

// PlaybackConfig contains playback slider settings in milliseconds.
type PlaybackConfig struct {
	SliderMax  float64 `yaml:"sliderMax"`
	SliderStep float64 `yaml:"sliderStep"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root        string
	ProjectName string
	Timeline    timeline.Config
	Style       timeline.Style
	Size        rendering.Size
	SliderMax   float64
	SliderStep  float64
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: SchemaVersion,
		Timeline: TimelineConfig{
			CueSize:      10,
			MarginLeft:   20,
			MarginRight:  20,
			LabelsHeight: 15,
			DrawLabels:   false,
			Precision:    2,
			CornerRadius: 0,
			Width:        420,
			Height:       40,
		},
		Colors: ColorsConfig{
			Background: "#f5f5f5",
			Grip:       "#f5f5f5",
			GripAlpha:  0.6,
			Cue:        "#0000ff",
		},
		Playback: PlaybackConfig{
			SliderMax:  4000,
			SliderStep: 1,
		},
	}
}

// LoadOptional reads animator.yaml from dir if present. Fields missing
// from the file keep their defaults.
func LoadOptional(dir string) (*Config, error) {
	cfg := Default()
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, configError(fmt.Errorf("failed to read %s: %w", FileName, err))
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, configError(fmt.Errorf("failed to parse %s: %w", FileName, err))
	}
	return cfg, nil
}

// Resolve loads animator.yaml (if present), validates it and resolves
// defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, configError(err)
	}

	name := strings.TrimSpace(cfg.Project.Name)
	if name == "" {
		name = defaultProjectName(dir)
	}

	style, err := cfg.Style()
	if err != nil {
		return nil, configError(err)
	}

	return &Resolved{
		Root:        dir,
		ProjectName: name,
		Timeline:    cfg.TimelineConfig(),
		Style:       style,
		Size:        rendering.Size{Width: cfg.Timeline.Width, Height: cfg.Timeline.Height},
		SliderMax:   cfg.Playback.SliderMax,
		SliderStep:  cfg.Playback.SliderStep,
	}, nil
}

// Validate checks the configuration for values the editor cannot run with.
func (c *Config) Validate() error {
	v := c.Version
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("version %q is not a semantic version", c.Version)
	}
	if semver.Major(v) != "v1" {
		return fmt.Errorf("unsupported config version %s (want v1.x)", c.Version)
	}

	t := c.Timeline
	switch {
	case t.CueSize <= 0:
		return fmt.Errorf("timeline.cueSize must be positive")
	case t.MarginLeft < 0 || t.MarginRight < 0:
		return fmt.Errorf("timeline margins must not be negative")
	case t.LabelsHeight < 0:
		return fmt.Errorf("timeline.labelsHeight must not be negative")
	case t.Precision < 0 || t.Precision > 6:
		return fmt.Errorf("timeline.precision must be between 0 and 6")
	case t.CornerRadius < 0:
		return fmt.Errorf("timeline.cornerRadius must not be negative")
	case t.Width < 0 || t.Height < 0:
		return fmt.Errorf("timeline size must not be negative")
	}

	if c.Colors.GripAlpha < 0 || c.Colors.GripAlpha > 1 {
		return fmt.Errorf("colors.gripAlpha must be between 0 and 1")
	}
	if c.Playback.SliderMax <= 0 {
		return fmt.Errorf("playback.sliderMax must be positive")
	}
	if c.Playback.SliderStep <= 0 {
		return fmt.Errorf("playback.sliderStep must be positive")
	}
	return nil
}

// TimelineConfig converts the timeline section to a timeline.Config.
func (c *Config) TimelineConfig() timeline.Config {
	cfg := timeline.DefaultConfig()
	cfg.CueSize = c.Timeline.CueSize
	cfg.MarginLeft = c.Timeline.MarginLeft
	cfg.MarginRight = c.Timeline.MarginRight
	cfg.LabelsHeight = c.Timeline.LabelsHeight
	cfg.DrawLabels = c.Timeline.DrawLabels
	cfg.Precision = c.Timeline.Precision
	cfg.CornerRadius = c.Timeline.CornerRadius
	return cfg
}

// Style converts the colors section to a timeline.Style.
func (c *Config) Style() (timeline.Style, error) {
	style := timeline.DefaultStyle()
	bg, err := rendering.ParseColor(c.Colors.Background)
	if err != nil {
		return style, fmt.Errorf("colors.background: %w", err)
	}
	grip, err := rendering.ParseColor(c.Colors.Grip)
	if err != nil {
		return style, fmt.Errorf("colors.grip: %w", err)
	}
	cue, err := rendering.ParseColor(c.Colors.Cue)
	if err != nil {
		return style, fmt.Errorf("colors.cue: %w", err)
	}
	style.Background = bg
	style.Grip = grip.WithOpacity(c.Colors.GripAlpha)
	style.Cue = cue
	style.Label = cue
	return style, nil
}

// Write stores cfg as animator.yaml in dir.
func Write(dir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return configError(fmt.Errorf("failed to encode %s: %w", FileName, err))
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0o644); err != nil {
		return configError(fmt.Errorf("failed to write %s: %w", FileName, err))
	}
	return nil
}

// FindProjectRoot walks up from the current directory to the first
// directory containing animator.yaml or go.mod. It falls back to the
// current directory.
func FindProjectRoot() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := start
	for {
		for _, marker := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}

// defaultProjectName derives a name from the module path in go.mod, or
// from the directory name when there is no module.
func defaultProjectName(dir string) string {
	base := filepath.Base(dir)
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return base
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return base
	}
	if prefix, _, ok := module.SplitPathVersion(path); ok {
		path = prefix
	}
	parts := strings.Split(path, "/")
	return parts[len(parts)-1]
}

func configError(err error) error {
	return &animerrors.AnimatorError{Op: "config", Kind: animerrors.KindConfig, Err: err}
}
