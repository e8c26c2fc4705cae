package movement

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero_max_speed", func(c *Config) { c.MaxSpeed = 0 }},
		{"negative_acceleration", func(c *Config) { c.GroundAcceleration = -1 }},
		{"zero_jump", func(c *Config) { c.JumpImpulse = 0 }},
		{"negative_air_control", func(c *Config) { c.AirControl = -0.1 }},
		{"negative_dash_duration", func(c *Config) { c.DashDuration = -0.2 }},
		{"zero_boost_multiplier", func(c *Config) { c.DashBoostMultiplier = 0 }},
		{"negative_coyote", func(c *Config) { c.CoyoteWindow = -1 }},
		{"wall_factor_above_one", func(c *Config) { c.WallSpeedFactor = 1.5 }},
		{"negative_fall_damping", func(c *Config) { c.WallFallDamping = -0.1 }},
		{"unknown_dash_end", func(c *Config) { c.DashEndVertical = "bounce" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, IsInvalidConfig(err))
		})
	}
}

func TestConfigZeroWindowsAreValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CoyoteWindow = 0
	cfg.JumpBuffer = 0
	cfg.DashBoostWindow = 0
	cfg.DashDuration = 0
	assert.NoError(t, cfg.Validate())
}

func TestMotionStateString(t *testing.T) {
	assert.Equal(t, "airborne", Airborne.String())
	assert.Equal(t, "grounded", Grounded.String())
	assert.Equal(t, "wall_slide", WallSliding.String())
	assert.Equal(t, "dash", Dashing.String())
}

func TestResolveStatePriority(t *testing.T) {
	cases := []struct {
		dashing, grounded, onWall bool
		want                      MotionState
	}{
		{false, false, false, Airborne},
		{false, true, false, Grounded},
		{false, false, true, WallSliding},
		{false, true, true, Grounded},
		{true, true, true, Dashing},
		{true, false, false, Dashing},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, resolveState(c.dashing, c.grounded, c.onWall))
	}
}

func TestAnimationFlags(t *testing.T) {
	cases := []struct {
		name                      string
		vx, vy                    float64
		jumping, falling, running bool
	}{
		{"idle", 0, 0, false, false, false},
		{"run", 3, 0, false, false, true},
		{"creep", 0.05, 0, false, false, false},
		{"rise", 3, 2, true, false, false},
		{"fall", -3, -2, false, true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			j, f, r := AnimationFlags(cp.Vector{X: c.vx, Y: c.vy})
			assert.Equal(t, c.jumping, j)
			assert.Equal(t, c.falling, f)
			assert.Equal(t, c.running, r)
		})
	}
}
