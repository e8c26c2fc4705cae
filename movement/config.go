package movement

import (
	"errors"
	"fmt"
)

// DashEndVertical selects what happens to vertical velocity when a dash ends.
type DashEndVertical string

const (
	// DashEndKeep leaves whatever vertical velocity the dash produced.
	DashEndKeep DashEndVertical = "keep"
	// DashEndRestore puts back the vertical velocity captured at dash start.
	DashEndRestore DashEndVertical = "restore"
)

// Config holds the movement tunables. Times are in seconds, speeds in world
// units per second. A Config is read-only once handed to a Controller.
type Config struct {
	MaxSpeed           float64
	GroundAcceleration float64
	GroundDeceleration float64
	JumpImpulse        float64
	AirControl         float64

	DashImpulse         float64
	DashDuration        float64
	DashBoostWindow     float64
	DashBoostMultiplier float64
	DashEndVertical     DashEndVertical

	CoyoteWindow  float64
	JumpBuffer    float64
	JumpBuffering bool

	WallJumpPush      float64
	WallSpeedFactor   float64
	WallControlFactor float64
	WallFallDamping   float64
}

func DefaultConfig() Config {
	return Config{
		MaxSpeed:           5,
		GroundAcceleration: 10,
		GroundDeceleration: 15,
		JumpImpulse:        10,
		AirControl:         0.2,

		DashImpulse:         20,
		DashDuration:        0.2,
		DashBoostWindow:     0.5,
		DashBoostMultiplier: 1.5,
		DashEndVertical:     DashEndKeep,

		CoyoteWindow:  0.2,
		JumpBuffer:    0.5,
		JumpBuffering: true,

		WallJumpPush:      5,
		WallSpeedFactor:   0.5,
		WallControlFactor: 0.5,
		WallFallDamping:   0.8,
	}
}

var errInvalidConfig = errors.New("movement: invalid config")

// Validate reports the first tunable that would make the controller misbehave.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"max_speed", c.MaxSpeed},
		{"ground_acceleration", c.GroundAcceleration},
		{"ground_deceleration", c.GroundDeceleration},
		{"jump_impulse", c.JumpImpulse},
		{"dash_impulse", c.DashImpulse},
		{"dash_boost_multiplier", c.DashBoostMultiplier},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %g", errInvalidConfig, p.name, p.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"air_control", c.AirControl},
		{"dash_duration", c.DashDuration},
		{"dash_boost_window", c.DashBoostWindow},
		{"coyote_window", c.CoyoteWindow},
		{"jump_buffer", c.JumpBuffer},
		{"wall_jump_push", c.WallJumpPush},
	}
	for _, p := range nonNegative {
		if p.v < 0 {
			return fmt.Errorf("%w: %s must be >= 0, got %g", errInvalidConfig, p.name, p.v)
		}
	}

	factors := []struct {
		name string
		v    float64
	}{
		{"wall_speed_factor", c.WallSpeedFactor},
		{"wall_control_factor", c.WallControlFactor},
		{"wall_fall_damping", c.WallFallDamping},
	}
	for _, p := range factors {
		if p.v < 0 || p.v > 1 {
			return fmt.Errorf("%w: %s must be within [0,1], got %g", errInvalidConfig, p.name, p.v)
		}
	}

	switch c.DashEndVertical {
	case DashEndKeep, DashEndRestore:
	default:
		return fmt.Errorf("%w: dash_end_vertical %q (want %q or %q)", errInvalidConfig, c.DashEndVertical, DashEndKeep, DashEndRestore)
	}
	return nil
}

// IsInvalidConfig reports whether err came from Validate.
func IsInvalidConfig(err error) bool {
	return errors.Is(err, errInvalidConfig)
}
