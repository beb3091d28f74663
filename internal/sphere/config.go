package sphere

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// DeltasCfg holds per-frame angle increments in radians.
type DeltasCfg struct {
	Pitch Real `json:"pitch" mapstructure:"pitch"`
	Yaw   Real `json:"yaw" mapstructure:"yaw"`
	Roll  Real `json:"roll" mapstructure:"roll"`
}

// RingCfg describes one ring: tilt about the y axis in degrees and its display character.
type RingCfg struct {
	TiltDeg Real   `json:"tiltDeg" mapstructure:"tiltDeg"`
	Char    string `json:"char" mapstructure:"char"`
}

type Config struct {
	Width      int           `json:"width" mapstructure:"width"`
	Height     int           `json:"height" mapstructure:"height"`
	Distance   Real          `json:"distance" mapstructure:"distance"`
	Radius     Real          `json:"radius" mapstructure:"radius"`
	ZOffset    Real          `json:"zOffset" mapstructure:"zOffset"`
	Step       Real          `json:"step" mapstructure:"step"`
	Deltas     DeltasCfg     `json:"deltas" mapstructure:"deltas"`
	Rings      []RingCfg     `json:"rings" mapstructure:"rings"`
	Color      int           `json:"color" mapstructure:"color"`           // ANSI palette index 0-15
	FrameDelay time.Duration `json:"frameDelay" mapstructure:"frameDelay"` // 0 renders as fast as possible
	Frames     int           `json:"frames" mapstructure:"frames"`         // 0 renders forever
	LogLevel   string        `json:"logLevel" mapstructure:"logLevel"`
	LogFile    string        `json:"logFile" mapstructure:"logFile"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("width", ScreenWidth)
	v.SetDefault("height", ScreenHeight)
	v.SetDefault("distance", ScreenDistance)
	v.SetDefault("radius", Radius)
	v.SetDefault("zOffset", ZOffset)
	v.SetDefault("step", SampleStep)

	v.SetDefault("deltas.pitch", PitchDelta)
	v.SetDefault("deltas.yaw", YawDelta)
	v.SetDefault("deltas.roll", RollDelta)

	rings := make([]map[string]any, 0, 4)
	for _, r := range DefaultRings() {
		rings = append(rings, map[string]any{"tiltDeg": r.TiltDeg, "char": string(r.Char)})
	}
	v.SetDefault("rings", rings)

	v.SetDefault("color", ForegroundANSI)
	v.SetDefault("frameDelay", time.Duration(0))
	v.SetDefault("frames", 0)
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
}

// DefaultConfig returns the built-in configuration, ignoring files and environment.
func DefaultConfig() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(err)
	}
	return cfg
}

// LoadConfig reads defaults, then the optional file at path (format taken from
// its extension), then HOLLOWSPHERE_* environment overrides, and validates the result.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("HOLLOWSPHERE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	DebugLog("Loaded config from %q: size=(%d, %d), radius=%g, zOffset=%g, rings=%d", path, cfg.Width, cfg.Height, cfg.Radius, cfg.ZOffset, len(cfg.Rings))
	return cfg, nil
}

// Validate reports every problem found, each wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}
	if c.Width <= 0 || c.Height <= 0 {
		bad("screen size must be positive, got %dx%d", c.Width, c.Height)
	}
	if !(c.Distance > 0) || !isFinite(c.Distance) {
		bad("distance must be positive and finite, got %g", c.Distance)
	}
	if !(c.Radius > 0) || !isFinite(c.Radius) {
		bad("radius must be positive and finite, got %g", c.Radius)
	}
	if !(c.ZOffset > c.Radius) || !isFinite(c.ZOffset) {
		bad("zOffset %g must be finite and exceed radius %g to keep the sphere in front of the viewer", c.ZOffset, c.Radius)
	}
	if !(c.Step > 0) || !isFinite(c.Step) {
		bad("step must be positive and finite, got %g", c.Step)
	} else if n := 2 * float64(c.Radius) / float64(c.Step); n > MaxRingSamples {
		bad("step %g is too fine for radius %g: %.0f samples per ring, max %d", c.Step, c.Radius, n, MaxRingSamples)
	}
	for name, d := range map[string]Real{"pitch": c.Deltas.Pitch, "yaw": c.Deltas.Yaw, "roll": c.Deltas.Roll} {
		if !isFinite(d) {
			bad("deltas.%s must be finite, got %g", name, d)
		}
	}
	if len(c.Rings) == 0 {
		bad("at least one ring is required")
	}
	for i, r := range c.Rings {
		if len(r.Char) != 1 || r.Char[0] <= ' ' || r.Char[0] > '~' {
			bad("ring #%d: char must be a single printable ASCII character, got %q", i, r.Char)
		}
		if !isFinite(r.TiltDeg) {
			bad("ring #%d: tilt must be finite", i)
		}
	}
	if c.Color < 0 || c.Color > 15 {
		bad("color must be an ANSI palette index 0-15, got %d", c.Color)
	}
	if c.FrameDelay < 0 {
		bad("frameDelay must not be negative, got %s", c.FrameDelay)
	}
	if c.Frames < 0 {
		bad("frames must not be negative, got %d", c.Frames)
	}
	return errors.Join(errs...)
}

// RingSet converts the ring configuration.
func (c Config) RingSet() []Ring {
	rings := make([]Ring, len(c.Rings))
	for i, r := range c.Rings {
		rings[i] = Ring{TiltDeg: r.TiltDeg, Char: r.Char[0]}
	}
	return rings
}

// Projector returns the projector for the configured screen and camera.
func (c Config) Projector() Projector {
	return Projector{Width: c.Width, Height: c.Height, Distance: c.Distance, ZOffset: c.ZOffset}
}

// Step returns the per-frame angle increment.
func (d DeltasCfg) Step() Rot3 {
	return Rot3{Pitch: d.Pitch, Yaw: d.Yaw, Roll: d.Roll}
}
