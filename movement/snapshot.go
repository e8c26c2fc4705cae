package movement

import (
	"math"

	"github.com/jakecoffman/cp"
)

// animationThreshold is the speed below which the animator treats an axis as still.
const animationThreshold = 0.1

// Snapshot is the read-only view handed to the camera and the animator.
type Snapshot struct {
	Position cp.Vector
	Velocity cp.Vector
	Move     cp.Vector
	Facing   float64
	State    MotionState

	Grounded bool
	OnWall   bool
	Dashing  bool
	CanDash  bool

	Jumping bool
	Falling bool
	Running bool
}

func (c *Controller) Snapshot() Snapshot {
	v := c.body.Velocity()
	s := Snapshot{
		Position: c.body.Position(),
		Velocity: v,
		Move:     c.intent.Move,
		Facing:   c.facing,
		State:    c.state,
		Grounded: c.grounded,
		OnWall:   c.onWall,
		Dashing:  c.dashing,
		CanDash:  c.canDash,
	}
	s.Jumping, s.Falling, s.Running = AnimationFlags(v)
	return s
}

// AnimationFlags maps a velocity to the jump/fall/run animation triggers.
func AnimationFlags(v cp.Vector) (jumping, falling, running bool) {
	jumping = v.Y > animationThreshold
	falling = v.Y < -animationThreshold
	running = math.Abs(v.X) > animationThreshold && !jumping && !falling
	return jumping, falling, running
}
