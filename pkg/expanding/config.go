package expanding

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/expanding/pkg/animation"
	"github.com/go-drift/expanding/pkg/errors"
	"github.com/go-drift/expanding/pkg/logging"
)

// Format identifies an attribute file syntax.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// Config holds the attributes of an expanding host, as written in an
// attribute file. Unset fields keep the host's current value.
//
//	duration_ms: 250
//	parallax: 0.3
//	expanded: false
//	orientation: horizontal
//	uses_spring: true
//	spring:
//	  stiffness: 1500
//	  damping_ratio: 0.75
//	curve: linear_out_slow_in
type Config struct {
	DurationMS  *int64        `yaml:"duration_ms" toml:"duration_ms"`
	Parallax    *float64      `yaml:"parallax" toml:"parallax"`
	Expanded    *bool         `yaml:"expanded" toml:"expanded"`
	Orientation string        `yaml:"orientation" toml:"orientation"`
	UsesSpring  *bool         `yaml:"uses_spring" toml:"uses_spring"`
	Spring      *SpringParams `yaml:"spring" toml:"spring"`
	Curve       string        `yaml:"curve" toml:"curve"`
}

// Configurable is the setter surface Config.Apply writes through. Every
// expanding host implements it.
type Configurable interface {
	SetDuration(d time.Duration) error
	SetParallax(p float64)
	SetExpandState(f float64)
	SetUsingSpring(using bool)
	SetSpring(p SpringParams) error
	SetCurve(c animation.Curve)
	SetOrientation(o Orientation) error
}

// ParseConfig decodes an attribute file.
func ParseConfig(data []byte, format Format) (*Config, error) {
	var cfg Config
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	default:
		err = fmt.Errorf("unknown format %d", int(format))
	}
	if err != nil {
		return nil, &errors.ExpandError{Op: "expanding.ParseConfig", Kind: errors.KindConfig, Err: err}
	}
	return &cfg, nil
}

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, &errors.ExpandError{
			Op:   "expanding.LoadConfig",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("unsupported attribute file %q (want .yaml, .yml or .toml)", path),
		}
	}
}

// LoadConfig reads and decodes an attribute file.
func LoadConfig(path string) (*Config, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.ExpandError{Op: "expanding.LoadConfig", Kind: errors.KindConfig, Err: err}
	}
	cfg, err := ParseConfig(data, format)
	if err != nil {
		return nil, err
	}
	logging.New("config").Info("loaded attributes", "path", path)
	return cfg, nil
}

const maxDurationMS = math.MaxInt64 / int64(time.Millisecond)

type resolvedConfig struct {
	duration    *time.Duration
	orientation *Orientation
	curve       animation.Curve
}

func (cfg *Config) resolve() (resolvedConfig, error) {
	var r resolvedConfig
	if cfg.DurationMS != nil {
		if *cfg.DurationMS < 0 {
			return r, errors.InvalidArgument("expanding.Config", "duration_ms %d is negative", *cfg.DurationMS)
		}
		if *cfg.DurationMS > maxDurationMS {
			return r, errors.InvalidArgument("expanding.Config", "duration_ms %d is out of range", *cfg.DurationMS)
		}
		d := time.Duration(*cfg.DurationMS) * time.Millisecond
		r.duration = &d
	}
	if cfg.Orientation != "" {
		o, err := ParseOrientation(cfg.Orientation)
		if err != nil {
			return r, err
		}
		r.orientation = &o
	}
	if cfg.Curve != "" {
		curve, ok := animation.CurveByName(cfg.Curve)
		if !ok {
			return r, errors.InvalidArgument("expanding.Config", "unknown curve %q", cfg.Curve)
		}
		r.curve = curve
	}
	if cfg.Spring != nil {
		if err := cfg.Spring.Validate(); err != nil {
			return r, err
		}
	}
	return r, nil
}

// Validate checks every set attribute without applying anything.
func (cfg *Config) Validate() error {
	_, err := cfg.resolve()
	return err
}

// Apply validates cfg and then writes every set attribute to t. If
// validation fails t is left untouched.
func (cfg *Config) Apply(t Configurable) error {
	r, err := cfg.resolve()
	if err != nil {
		return err
	}
	if r.orientation != nil {
		if err := t.SetOrientation(*r.orientation); err != nil {
			return err
		}
	}
	if r.duration != nil {
		if err := t.SetDuration(*r.duration); err != nil {
			return err
		}
	}
	if cfg.Parallax != nil {
		t.SetParallax(*cfg.Parallax)
	}
	if r.curve != nil {
		t.SetCurve(r.curve)
	}
	if cfg.UsesSpring != nil {
		t.SetUsingSpring(*cfg.UsesSpring)
	}
	if cfg.Spring != nil {
		if err := t.SetSpring(*cfg.Spring); err != nil {
			return err
		}
	}
	if cfg.Expanded != nil {
		if *cfg.Expanded {
			t.SetExpandState(1)
		} else {
			t.SetExpandState(0)
		}
	}
	return nil
}
