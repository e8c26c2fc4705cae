package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/dashrunner/camera"
	"github.com/milk9111/dashrunner/movement"
	"gopkg.in/yaml.v3"
)

const CharacterFile = "character.yaml"

// Detector strategies accepted in character.yaml.
const (
	DetectorContact = "contact"
	DetectorProbe   = "probe"
)

// LoadSpec decodes filename over defaults, so keys missing from the file keep
// their default values.
func LoadSpec[T any](filename string, defaults T) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec := defaults
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type CharacterSpec struct {
	Name     string       `yaml:"name"`
	Gravity  float64      `yaml:"gravity"`
	Movement MovementSpec `yaml:"movement"`
	Collider ColliderSpec `yaml:"collider"`
	Detector DetectorSpec `yaml:"detector"`
	Camera   CameraSpec   `yaml:"camera"`
	Debug    DebugSpec    `yaml:"debug"`
}

type MovementSpec struct {
	MaxSpeed            float64 `yaml:"max_speed"`
	GroundAcceleration  float64 `yaml:"ground_acceleration"`
	GroundDeceleration  float64 `yaml:"ground_deceleration"`
	JumpImpulse         float64 `yaml:"jump_impulse"`
	AirControl          float64 `yaml:"air_control"`
	DashImpulse         float64 `yaml:"dash_impulse"`
	DashDuration        float64 `yaml:"dash_duration"`
	DashBoostWindow     float64 `yaml:"dash_boost_window"`
	DashBoostMultiplier float64 `yaml:"dash_boost_multiplier"`
	DashEndVertical     string  `yaml:"dash_end_vertical"`
	CoyoteWindow        float64 `yaml:"coyote_window"`
	JumpBuffer          float64 `yaml:"jump_buffer"`
	JumpBuffering       bool    `yaml:"jump_buffering"`
	WallJumpPush        float64 `yaml:"wall_jump_push"`
	WallSpeedFactor     float64 `yaml:"wall_speed_factor"`
	WallControlFactor   float64 `yaml:"wall_control_factor"`
	WallFallDamping     float64 `yaml:"wall_fall_damping"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type DetectorSpec struct {
	Strategy   string  `yaml:"strategy"`
	ProbeReach float64 `yaml:"probe_reach"`
}

type CameraSpec struct {
	ScreenWidth  float64 `yaml:"screen_width"`
	ScreenHeight float64 `yaml:"screen_height"`
	SmoothTime   float64 `yaml:"smooth_time"`
}

type DebugSpec struct {
	SolidColor     *YAMLColor `yaml:"solid_color"`
	CharacterColor *YAMLColor `yaml:"character_color"`
	ProbeColor     *YAMLColor `yaml:"probe_color"`
}

// DefaultCharacterSpec mirrors the embedded character.yaml.
func DefaultCharacterSpec() CharacterSpec {
	cfg := movement.DefaultConfig()
	cam := camera.DefaultConfig()
	return CharacterSpec{
		Name:    "runner",
		Gravity: -25,
		Movement: MovementSpec{
			MaxSpeed:            cfg.MaxSpeed,
			GroundAcceleration:  cfg.GroundAcceleration,
			GroundDeceleration:  cfg.GroundDeceleration,
			JumpImpulse:         cfg.JumpImpulse,
			AirControl:          cfg.AirControl,
			DashImpulse:         cfg.DashImpulse,
			DashDuration:        cfg.DashDuration,
			DashBoostWindow:     cfg.DashBoostWindow,
			DashBoostMultiplier: cfg.DashBoostMultiplier,
			DashEndVertical:     string(cfg.DashEndVertical),
			CoyoteWindow:        cfg.CoyoteWindow,
			JumpBuffer:          cfg.JumpBuffer,
			JumpBuffering:       cfg.JumpBuffering,
			WallJumpPush:        cfg.WallJumpPush,
			WallSpeedFactor:     cfg.WallSpeedFactor,
			WallControlFactor:   cfg.WallControlFactor,
			WallFallDamping:     cfg.WallFallDamping,
		},
		Collider: ColliderSpec{Width: 0.8, Height: 1.6},
		Detector: DetectorSpec{Strategy: DetectorContact, ProbeReach: 0.05},
		Camera: CameraSpec{
			ScreenWidth:  cam.ScreenWidth,
			ScreenHeight: cam.ScreenHeight,
			SmoothTime:   cam.SmoothTime,
		},
	}
}

// LoadCharacterSpec loads and validates character.yaml.
func LoadCharacterSpec() (*CharacterSpec, error) {
	spec, err := LoadSpec(CharacterFile, DefaultCharacterSpec())
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", CharacterFile, err)
	}
	return &spec, nil
}

func (s CharacterSpec) Validate() error {
	if s.Gravity >= 0 {
		return fmt.Errorf("gravity must pull down, got %v", s.Gravity)
	}
	if s.Collider.Width <= 0 || s.Collider.Height <= 0 {
		return fmt.Errorf("collider size must be positive, got %vx%v", s.Collider.Width, s.Collider.Height)
	}
	switch s.Detector.Strategy {
	case DetectorContact, DetectorProbe:
	default:
		return fmt.Errorf("unknown detector strategy %q", s.Detector.Strategy)
	}
	if _, err := s.MovementConfig(); err != nil {
		return err
	}
	return nil
}

// MovementConfig converts the movement block and validates it.
func (s CharacterSpec) MovementConfig() (movement.Config, error) {
	m := s.Movement
	cfg := movement.Config{
		MaxSpeed:            m.MaxSpeed,
		GroundAcceleration:  m.GroundAcceleration,
		GroundDeceleration:  m.GroundDeceleration,
		JumpImpulse:         m.JumpImpulse,
		AirControl:          m.AirControl,
		DashImpulse:         m.DashImpulse,
		DashDuration:        m.DashDuration,
		DashBoostWindow:     m.DashBoostWindow,
		DashBoostMultiplier: m.DashBoostMultiplier,
		DashEndVertical:     movement.DashEndVertical(strings.ToLower(strings.TrimSpace(m.DashEndVertical))),
		CoyoteWindow:        m.CoyoteWindow,
		JumpBuffer:          m.JumpBuffer,
		JumpBuffering:       m.JumpBuffering,
		WallJumpPush:        m.WallJumpPush,
		WallSpeedFactor:     m.WallSpeedFactor,
		WallControlFactor:   m.WallControlFactor,
		WallFallDamping:     m.WallFallDamping,
	}
	if err := cfg.Validate(); err != nil {
		return movement.Config{}, err
	}
	return cfg, nil
}

func (s CharacterSpec) CameraConfig() camera.Config {
	return camera.Config{
		ScreenWidth:  s.Camera.ScreenWidth,
		ScreenHeight: s.Camera.ScreenHeight,
		SmoothTime:   s.Camera.SmoothTime,
	}
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.Color
}

// Or returns the decoded color, or fallback when the key was absent.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	channels := make([]uint8, 4)
	channels[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		channels[i] = uint8(v)
	}

	c.Color = color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}
	return nil
}
