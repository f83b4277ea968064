// Package config holds the tunable simulation constants and the launch
// options of the jumper binaries.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/jumper/core"
	"github.com/lixenwraith/jumper/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full set of tunables consumed by the simulation
type Config struct {
	Geometry GeometryConfig `toml:"geometry"`
	Physics  PhysicsConfig  `toml:"physics"`
	Spawn    SpawnConfig    `toml:"spawn"`
	Camera   CameraConfig   `toml:"camera"`

	// Seed for platform placement, 0 seeds from the clock
	Seed uint64 `toml:"seed"`
}

// GeometryConfig holds entity boxes and the start layout
type GeometryConfig struct {
	Player              core.Size `toml:"player"`
	Platform            core.Size `toml:"platform"`
	StartPlatformOffset float64   `toml:"start_platform_offset"`
}

// PhysicsConfig holds integration constants
type PhysicsConfig struct {
	Gravity        float64 `toml:"gravity"`
	LaunchScale    float64 `toml:"launch_scale"`
	HighestEpsilon float64 `toml:"highest_epsilon"`
}

// SpawnConfig holds platform generator bounds
type SpawnConfig struct {
	MinOffsetY  float64 `toml:"min_offset_y"`
	MaxOffsetY  float64 `toml:"max_offset_y"`
	MaxAttempts int     `toml:"max_attempts"`
}

// CameraConfig holds dead zone margins
type CameraConfig struct {
	MarginX float64 `toml:"margin_x"`
	MarginY float64 `toml:"margin_y"`
}

// Default returns the stock tunables
func Default() Config {
	return Config{
		Geometry: GeometryConfig{
			Player:              core.Size{W: parameter.PlayerWidth, H: parameter.PlayerHeight},
			Platform:            core.Size{W: parameter.PlatformWidth, H: parameter.PlatformHeight},
			StartPlatformOffset: parameter.StartPlatformOffset,
		},
		Physics: PhysicsConfig{
			Gravity:        parameter.Gravity,
			LaunchScale:    parameter.LaunchScale,
			HighestEpsilon: parameter.HighestEpsilon,
		},
		Spawn: SpawnConfig{
			MinOffsetY:  parameter.SpawnMinOffsetY,
			MaxOffsetY:  parameter.SpawnMaxOffsetY,
			MaxAttempts: parameter.SpawnMaxAttempts,
		},
		Camera: CameraConfig{
			MarginX: parameter.CameraDeadZoneMarginX,
			MarginY: parameter.CameraDeadZoneMarginY,
		},
	}
}

// Load decodes a TOML file over the defaults and validates the result
// Keys missing from the file keep their default values
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects tunables the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case !c.Geometry.Player.Valid():
		return fmt.Errorf("player size %vx%v: %w", c.Geometry.Player.W, c.Geometry.Player.H, ErrInvalid)
	case !c.Geometry.Platform.Valid():
		return fmt.Errorf("platform size %vx%v: %w", c.Geometry.Platform.W, c.Geometry.Platform.H, ErrInvalid)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("gravity %v must be positive: %w", c.Physics.Gravity, ErrInvalid)
	case c.Physics.LaunchScale <= 0:
		return fmt.Errorf("launch scale %v must be positive: %w", c.Physics.LaunchScale, ErrInvalid)
	case c.Physics.HighestEpsilon < 0:
		return fmt.Errorf("highest epsilon %v must not be negative: %w", c.Physics.HighestEpsilon, ErrInvalid)
	case c.Spawn.MinOffsetY <= 0:
		return fmt.Errorf("spawn min offset %v must be positive: %w", c.Spawn.MinOffsetY, ErrInvalid)
	case c.Spawn.MaxOffsetY < c.Spawn.MinOffsetY:
		return fmt.Errorf("spawn offset range [%v, %v]: %w", c.Spawn.MinOffsetY, c.Spawn.MaxOffsetY, ErrInvalid)
	case c.Spawn.MaxAttempts < 1:
		return fmt.Errorf("spawn max attempts %d: %w", c.Spawn.MaxAttempts, ErrInvalid)
	case c.Camera.MarginX < 0 || c.Camera.MarginY < 0:
		return fmt.Errorf("camera margins %v,%v: %w", c.Camera.MarginX, c.Camera.MarginY, ErrInvalid)
	}
	return nil
}
