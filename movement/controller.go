package movement

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashrunner/common"
)

// inputEpsilon is the axis magnitude below which input counts as released.
const inputEpsilon = 0.01

// Controller turns per-step intent and contact state into forces, impulses
// and direct velocity writes on one Body. It is not reentrant: the host calls
// Step exactly once per fixed tick.
type Controller struct {
	cfg      Config
	body     Body
	detector Detector
	queue    *IntentQueue

	intent   Intent
	state    MotionState
	grounded bool
	onWall   bool
	facing   float64
	canDash  bool

	coyote Timer
	// jumped is set by any jump and cleared once grounded again, so leaving
	// the ground by jumping never arms coyote time.
	jumped bool
	// jumpedLastStep is set for the step after a jump fires.
	jumpedLastStep bool

	boostEligible bool
	boost         Timer

	dashing     bool
	dashTimer   Timer
	dashDir     cp.Vector
	dashBoosted bool
	preDash     cp.Vector

	debug bool
}

func New(body Body, detector Detector, queue *IntentQueue, cfg Config) (*Controller, error) {
	if body == nil {
		return nil, errors.New("movement: nil body")
	}
	if detector == nil {
		return nil, errors.New("movement: nil detector")
	}
	if queue == nil {
		return nil, errors.New("movement: nil intent queue")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("movement: new controller: %w", err)
	}
	return &Controller{
		cfg:      cfg,
		body:     body,
		detector: detector,
		queue:    queue,
		state:    Airborne,
		facing:   1,
		canDash:  true,
	}, nil
}

// SetDebug enables state transition logging.
func (c *Controller) SetDebug(debug bool) {
	c.debug = debug
}

// Reconfigure swaps the tunables and keeps runtime state, including a dash in
// progress. An invalid cfg leaves the controller unchanged.
func (c *Controller) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("movement: reconfigure: %w", err)
	}
	c.cfg = cfg
	c.queue.Configure(cfg)
	return nil
}

func (c *Controller) SetDetector(detector Detector) {
	if detector != nil {
		c.detector = detector
	}
}

func (c *Controller) Config() Config { return c.cfg }
func (c *Controller) State() MotionState { return c.state }
func (c *Controller) Facing() float64 { return c.facing }
func (c *Controller) CanDash() bool { return c.canDash }
func (c *Controller) Dashing() bool { return c.dashing }
func (c *Controller) Grounded() bool { return c.grounded }
func (c *Controller) OnWall() bool { return c.onWall }
func (c *Controller) Coyote() float64 { return c.coyote.Remaining() }
func (c *Controller) BoostEligible() bool { return c.boostEligible }

// Step runs the ordered per-step algorithm. The physics host integrates the
// body after Step returns.
func (c *Controller) Step(dt float64) {
	if c == nil || dt <= 0 {
		return
	}
	prevState := c.state

	in := c.queue.Snapshot(dt)
	c.intent = in

	grounded, onWall := c.updateContacts(dt)
	c.jumpedLastStep = false
	state := resolveState(c.dashing, grounded, onWall)

	c.drive(state, in.Move.X)
	if !c.dashing {
		c.clampX()
	}

	if in.Move.X != 0 {
		c.facing = common.Sign(in.Move.X)
	}

	if in.Jump {
		c.resolveJump(in, grounded, onWall)
	}

	startedDash := false
	if in.Dash && !c.dashing && c.canDash {
		c.startDash(in.Move)
		startedDash = true
	}

	if c.boostEligible && (!c.boost.Active() || c.boost.Tick(dt)) {
		c.boostEligible = false
	}

	if c.dashing && !startedDash && (!c.dashTimer.Active() || c.dashTimer.Tick(dt)) {
		c.endDash()
	}

	c.state = resolveState(c.dashing, grounded, onWall)
	if c.debug && c.state != prevState {
		log.Printf("MovementController: %s -> %s", prevState, c.state)
	}
}

// updateContacts refreshes the contact flags and the coyote timer.
func (c *Controller) updateContacts(dt float64) (grounded, onWall bool) {
	grounded, onWall = c.detector.Update()
	if grounded {
		onWall = false
	}
	landed := grounded && !c.grounded
	leftGround := !grounded && c.grounded
	c.grounded, c.onWall = grounded, onWall

	if grounded {
		c.coyote.Stop()
		// the step after a jump may still report the floor it left
		if landed || !c.jumpedLastStep {
			c.jumped = false
			c.boostEligible = false
			c.boost.Stop()
		}
		return grounded, onWall
	}

	if leftGround && !c.jumped {
		c.coyote.Start(c.cfg.CoyoteWindow)
	} else {
		c.coyote.Tick(dt)
	}
	return grounded, onWall
}

func (c *Controller) drive(state MotionState, move float64) {
	v := c.body.Velocity()
	switch state {
	case Grounded:
		target := move * c.cfg.MaxSpeed
		rate := c.cfg.GroundDeceleration
		if math.Abs(target) > inputEpsilon && math.Abs(v.X) <= math.Abs(target) {
			rate = c.cfg.GroundAcceleration
		}
		c.body.ApplyForce(cp.Vector{X: (target - v.X) * rate})
		c.canDash = true
	case WallSliding:
		target := move * c.cfg.MaxSpeed * c.cfg.WallSpeedFactor
		rate := c.cfg.AirControl * c.cfg.WallControlFactor
		c.body.ApplyForce(cp.Vector{X: (target - v.X) * rate})
		if v.Y < 0 {
			c.body.SetVelocity(cp.Vector{X: v.X, Y: v.Y * c.cfg.WallFallDamping})
		}
	case Airborne:
		target := move * c.cfg.MaxSpeed
		rate := c.cfg.GroundDeceleration
		if math.Abs(move) > inputEpsilon {
			rate = c.cfg.AirControl
		}
		c.body.ApplyForce(cp.Vector{X: (target - v.X) * rate})
		c.clampX()
	case Dashing:
		// the dash impulse alone carries horizontal motion
	}
}

func (c *Controller) clampX() {
	v := c.body.Velocity()
	x := common.Clamp(v.X, -c.cfg.MaxSpeed, c.cfg.MaxSpeed)
	if x != v.X {
		c.body.SetVelocity(cp.Vector{X: x, Y: v.Y})
	}
}

func (c *Controller) resolveJump(in Intent, grounded, onWall bool) {
	up := cp.Vector{Y: c.cfg.JumpImpulse}
	switch {
	case grounded || c.coyote.Active():
		c.body.ApplyImpulse(up)
	case onWall:
		side := cp.Vector{X: c.facing}
		if in.Move.X != 0 {
			side = in.Move.Normalize()
		}
		c.body.ApplyImpulse(up)
		c.body.ApplyImpulse(cp.Vector{X: -side.X * c.cfg.WallJumpPush})
		if !c.dashing {
			c.clampX()
		}
	default:
		return
	}

	c.queue.ConsumeJump(in)
	c.coyote.Stop()
	c.jumped = true
	c.jumpedLastStep = true
	c.boostEligible = true
	c.boost.Start(c.cfg.DashBoostWindow)
	if c.debug {
		log.Printf("MovementController: jump (grounded=%v wall=%v)", grounded, onWall)
	}
}

func (c *Controller) startDash(move cp.Vector) {
	c.preDash = c.body.Velocity()
	c.canDash = false

	dir := cp.Vector{X: c.facing}
	if move.X != 0 || move.Y != 0 {
		dir = move.Normalize()
	}
	c.dashDir = dir
	c.body.ApplyImpulse(dir.Mult(c.cfg.DashImpulse))

	c.dashBoosted = c.boostEligible
	c.boostEligible = false
	c.boost.Stop()

	c.dashing = true
	c.dashTimer.Start(c.cfg.DashDuration)
	c.queue.SetDashing(true)
}

func (c *Controller) endDash() {
	v := c.body.Velocity()
	x := c.dashDir.X * c.cfg.MaxSpeed
	if c.dashBoosted {
		x *= c.cfg.DashBoostMultiplier
	}
	y := v.Y
	if c.cfg.DashEndVertical == DashEndRestore {
		y = c.preDash.Y
	}
	c.body.SetVelocity(cp.Vector{X: x, Y: y})

	c.dashing = false
	c.dashBoosted = false
	c.dashTimer.Stop()
	c.queue.SetDashing(false)
}

// Reset returns the controller to its spawn state. The host repositions the body.
func (c *Controller) Reset() {
	c.intent = Intent{}
	c.state = Airborne
	c.grounded = false
	c.onWall = false
	c.facing = 1
	c.canDash = true
	c.coyote.Stop()
	c.jumped = false
	c.jumpedLastStep = false
	c.boostEligible = false
	c.boost.Stop()
	c.dashing = false
	c.dashTimer.Stop()
	c.dashBoosted = false
	c.queue.Reset()
}
