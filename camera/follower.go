package camera

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashrunner/common"
)

// Config sizes one screen in world units.
type Config struct {
	ScreenWidth  float64
	ScreenHeight float64
	SmoothTime   float64
}

func DefaultConfig() Config {
	return Config{ScreenWidth: 16, ScreenHeight: 9, SmoothTime: 0.2}
}

// Follower moves screen by screen: the camera rests on the center of the
// screen cell that holds the target and glides to the next cell when the
// target crosses a boundary.
type Follower struct {
	cfg      Config
	pos      cp.Vector
	velocity cp.Vector
}

func NewFollower(cfg Config) *Follower {
	def := DefaultConfig()
	if cfg.ScreenWidth <= 0 {
		cfg.ScreenWidth = def.ScreenWidth
	}
	if cfg.ScreenHeight <= 0 {
		cfg.ScreenHeight = def.ScreenHeight
	}
	if cfg.SmoothTime < 0 {
		cfg.SmoothTime = 0
	}
	return &Follower{cfg: cfg}
}

func (f *Follower) Position() cp.Vector { return f.pos }

func (f *Follower) Config() Config { return f.cfg }

// ScreenCenter returns the center of the screen cell containing p.
func (f *Follower) ScreenCenter(p cp.Vector) cp.Vector {
	sx := math.Floor(p.X / f.cfg.ScreenWidth)
	sy := math.Floor(p.Y / f.cfg.ScreenHeight)
	return cp.Vector{
		X: sx*f.cfg.ScreenWidth + f.cfg.ScreenWidth/2,
		Y: sy*f.cfg.ScreenHeight + f.cfg.ScreenHeight/2,
	}
}

// Snap jumps straight to the screen holding target.
func (f *Follower) Snap(target cp.Vector) {
	f.pos = f.ScreenCenter(target)
	f.velocity = cp.Vector{}
}

// Update eases toward the screen holding target.
func (f *Follower) Update(target cp.Vector, dt float64) cp.Vector {
	goal := f.ScreenCenter(target)
	if f.cfg.SmoothTime == 0 {
		f.pos = goal
		f.velocity = cp.Vector{}
		return f.pos
	}
	f.pos.X = common.SmoothDamp(f.pos.X, goal.X, &f.velocity.X, f.cfg.SmoothTime, dt)
	f.pos.Y = common.SmoothDamp(f.pos.Y, goal.Y, &f.velocity.Y, f.cfg.SmoothTime, dt)
	return f.pos
}
