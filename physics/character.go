package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashrunner/movement"
)

// Character is a rotation-locked box body driven by the movement controller.
type Character struct {
	world *World
	body  *cp.Body
	shape *cp.Shape
	halfW float64
	halfH float64
}

// NewCharacter adds a unit-mass box of the given size centered on pos.
func (w *World) NewCharacter(pos cp.Vector, width, height float64) *Character {
	if w == nil || w.space == nil || width <= 0 || height <= 0 {
		return nil
	}
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(pos)
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeCharacter)
	shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: categoryCharacter, Mask: cp.ALL_CATEGORIES})

	w.space.AddBody(body)
	w.space.AddShape(shape)
	w.logf("character %.2fx%.2f at (%.2f, %.2f)", width, height, pos.X, pos.Y)

	return &Character{
		world: w,
		body:  body,
		shape: shape,
		halfW: width / 2,
		halfH: height / 2,
	}
}

func (c *Character) Body() *cp.Body { return c.body }

func (c *Character) Position() cp.Vector { return c.body.Position() }

func (c *Character) Velocity() cp.Vector { return c.body.Velocity() }

func (c *Character) SetVelocity(v cp.Vector) {
	c.body.SetVelocityVector(v)
}

// ApplyForce pushes through the center of mass; cp clears forces after each step.
func (c *Character) ApplyForce(f cp.Vector) {
	c.body.ApplyForceAtWorldPoint(f, c.body.Position())
}

func (c *Character) ApplyImpulse(j cp.Vector) {
	c.body.ApplyImpulseAtWorldPoint(j, c.body.Position())
}

// Bounds is computed from the position so it is current between steps.
func (c *Character) Bounds() cp.BB {
	p := c.body.Position()
	return cp.BB{L: p.X - c.halfW, B: p.Y - c.halfH, R: p.X + c.halfW, T: p.Y + c.halfH}
}

// Teleport moves the body and zeroes its velocity, used on respawn.
func (c *Character) Teleport(pos cp.Vector) {
	c.body.SetPosition(pos)
	c.body.SetVelocityVector(cp.Vector{})
}

// Contacts lists the solid contacts from the last step. Normals point from
// the surface toward the character.
func (c *Character) Contacts() []movement.Contact {
	var contacts []movement.Contact
	c.body.EachArbiter(func(arb *cp.Arbiter) {
		_, other := arb.Shapes()
		if !c.world.IsSolid(other) {
			return
		}
		contact := movement.Contact{Normal: arb.Normal().Neg()}
		if set := arb.ContactPointSet(); set.Count > 0 {
			contact.Point = set.Points[0].PointA
		}
		contacts = append(contacts, contact)
	})
	return contacts
}
