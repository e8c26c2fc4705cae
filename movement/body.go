package movement

import "github.com/jakecoffman/cp"

// Body is the rigid body the controller drives. The physics host owns
// integration; the controller only reads velocity, writes velocity and queues
// forces and impulses.
type Body interface {
	Position() cp.Vector
	Velocity() cp.Vector
	SetVelocity(v cp.Vector)
	// ApplyForce adds a continuous force integrated by the next physics step.
	ApplyForce(f cp.Vector)
	// ApplyImpulse changes velocity immediately by j / mass.
	ApplyImpulse(j cp.Vector)
	// Bounds is the collider's world-space bounding box.
	Bounds() cp.BB
}
