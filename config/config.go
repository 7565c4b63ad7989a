// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Frogs     FrogsConfig     `yaml:"frogs"`
	Balls     BallsConfig     `yaml:"balls"`
	Terrain   TerrainConfig   `yaml:"terrain"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Assets    AssetsConfig    `yaml:"assets"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// WorldConfig holds terrain bounds and void depths.
type WorldConfig struct {
	Width          float64 `yaml:"width"`           // Side of the square terrain, centered on the origin
	VoidHeight     float64 `yaml:"void_height"`     // Height at which the void begins
	VoidTransition float64 `yaml:"void_transition"` // Depth over which the void fully resolves
}

// PhysicsConfig holds mobility kernel coefficients.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	AirResistance float64 `yaml:"air_resistance"`
	Friction      float64 `yaml:"friction"`
	ReferenceFPS  float64 `yaml:"reference_fps"` // Frame rate at which drag divides by exactly coeff*dt
	HeadlessFPS   float64 `yaml:"headless_fps"`
}

// PlayerConfig holds player controller tuning.
type PlayerConfig struct {
	CamHeight       float64 `yaml:"cam_height"`
	Width           float64 `yaml:"width"`
	Depth           float64 `yaml:"depth"`
	LookSpeed       float64 `yaml:"look_speed"`
	MaxPitch        float64 `yaml:"max_pitch"`
	ZoomSpeed       float64 `yaml:"zoom_speed"`
	FOV             float64 `yaml:"fov"`
	FOVMin          float64 `yaml:"fov_min"`
	FOVMax          float64 `yaml:"fov_max"`
	WalkSpeed       float64 `yaml:"walk_speed"`
	StrafeSpeed     float64 `yaml:"strafe_speed"`
	JumpSpeed       float64 `yaml:"jump_speed"`
	SprintCoeff     float64 `yaml:"sprint_coeff"`
	PushCoeff       float64 `yaml:"push_coeff"`
	ThrowSpeed      float64 `yaml:"throw_speed"`
	SuperLeapAccels int     `yaml:"super_leap_accels"`
	SuperLeapJumps  int     `yaml:"super_leap_jumps"`
}

// FrogsConfig holds frog size and spawn points.
type FrogsConfig struct {
	Size   float64           `yaml:"size"`
	Spawns []FrogSpawnConfig `yaml:"spawns"`
}

// FrogSpawnConfig places one frog at world start.
type FrogSpawnConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
	Color string  `yaml:"color"`
}

// BallsConfig holds projectile parameters.
type BallsConfig struct {
	Capacity int     `yaml:"capacity"`
	Size     float64 `yaml:"size"`
	Transfer float64 `yaml:"transfer"`
	Retain   float64 `yaml:"retain"`
}

// TerrainConfig holds wall stress parameters.
type TerrainConfig struct {
	ShakeCoeff   float64 `yaml:"shake_coeff"`
	StretchCoeff float64 `yaml:"stretch_coeff"`
	PosLimit     float64 `yaml:"pos_limit"`
	DimMinRatio  float64 `yaml:"dim_min_ratio"`
	DimMaxRatio  float64 `yaml:"dim_max_ratio"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// AssetsConfig names the texture and sound files, relative to Dir.
type AssetsConfig struct {
	Dir   string `yaml:"dir"`
	Cat   string `yaml:"cat"`
	Frog  string `yaml:"frog"`
	Woosh string `yaml:"woosh"`
	Croak string `yaml:"croak"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	HalfWidth float64 // World.Width / 2
	VoidEnd   float64 // World.VoidHeight - World.VoidTransition
	WallSize  float64 // World.Width * 2

	ReferenceDT float64 // 1 / Physics.ReferenceFPS
	HeadlessDT  float64 // 1 / Physics.HeadlessFPS
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Default returns the embedded defaults. Panics if they fail to parse.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

func (c *Config) validate() error {
	switch {
	case c.World.Width <= 0:
		return fmt.Errorf("world.width must be positive, got %v", c.World.Width)
	case c.World.VoidTransition <= 0:
		return fmt.Errorf("world.void_transition must be positive, got %v", c.World.VoidTransition)
	case c.Physics.ReferenceFPS <= 0:
		return fmt.Errorf("physics.reference_fps must be positive, got %v", c.Physics.ReferenceFPS)
	case c.Physics.HeadlessFPS <= 0:
		return fmt.Errorf("physics.headless_fps must be positive, got %v", c.Physics.HeadlessFPS)
	case c.Balls.Capacity < 1:
		return fmt.Errorf("balls.capacity must be at least 1, got %d", c.Balls.Capacity)
	case c.Player.FOVMin > c.Player.FOVMax:
		return fmt.Errorf("player.fov_min %v exceeds fov_max %v", c.Player.FOVMin, c.Player.FOVMax)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.HalfWidth = c.World.Width / 2
	c.Derived.VoidEnd = c.World.VoidHeight - c.World.VoidTransition
	c.Derived.WallSize = c.World.Width * 2
	c.Derived.ReferenceDT = 1 / c.Physics.ReferenceFPS
	c.Derived.HeadlessDT = 1 / c.Physics.HeadlessFPS
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
