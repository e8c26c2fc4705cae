package physics

import (
	"log"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeCharacter
)

const (
	categorySolid uint = 1 << iota
	categoryCharacter
)

// solidFilter is what world geometry carries and what probes query against.
var solidFilter = cp.ShapeFilter{
	Group:      cp.NO_GROUP,
	Categories: categorySolid,
	Mask:       cp.ALL_CATEGORIES,
}

// Config tunes the space. Units are world units (one tile each), y up.
type Config struct {
	Gravity float64
}

func DefaultConfig() Config {
	return Config{Gravity: -25}
}

// World owns the Chipmunk space and its static geometry.
type World struct {
	space  *cp.Space
	solids map[*cp.Shape]struct{}
	bounds cp.BB
	debug  bool
}

// NewWorld creates an empty space with the given gravity.
func NewWorld(cfg Config) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})

	return &World{
		space:  space,
		solids: make(map[*cp.Shape]struct{}),
	}
}

// SetDebug enables geometry logging.
func (w *World) SetDebug(debug bool) {
	if w == nil {
		return
	}
	w.debug = debug
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Bounds returns the box enclosed by AddBounds, or the zero BB.
func (w *World) Bounds() cp.BB {
	if w == nil {
		return cp.BB{}
	}
	return w.bounds
}

// Step advances the physics simulation.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil || dt <= 0 {
		return
	}
	w.space.Step(dt)
}

// AddBox adds one static solid box.
func (w *World) AddBox(bb cp.BB) *cp.Shape {
	if w == nil || w.space == nil {
		return nil
	}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	w.addSolid(shape)
	return shape
}

// AddBounds encloses the world with four static segments.
func (w *World) AddBounds(width, height float64) {
	if w == nil || w.space == nil || width <= 0 || height <= 0 {
		return
	}
	thickness := 0.1
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: width, Y: 0}},
		{a: cp.Vector{X: 0, Y: height}, b: cp.Vector{X: width, Y: height}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: height}},
		{a: cp.Vector{X: width, Y: 0}, b: cp.Vector{X: width, Y: height}},
	}
	for _, seg := range segments {
		w.addSolid(cp.NewSegment(w.space.StaticBody, seg.a, seg.b, thickness))
	}
	w.bounds = cp.BB{L: 0, B: 0, R: width, T: height}
}

func (w *World) addSolid(shape *cp.Shape) {
	shape.SetFriction(0.8)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeSolid)
	shape.SetFilter(solidFilter)
	w.space.AddShape(shape)
	w.solids[shape] = struct{}{}
}

// IsSolid reports whether shape is static world geometry.
func (w *World) IsSolid(shape *cp.Shape) bool {
	if w == nil || shape == nil {
		return false
	}
	_, ok := w.solids[shape]
	return ok
}

// SolidCount is the number of static solid shapes, bounds included.
func (w *World) SolidCount() int {
	if w == nil {
		return 0
	}
	return len(w.solids)
}

// Raycast reports whether the segment from..to touches solid geometry.
func (w *World) Raycast(from, to cp.Vector) bool {
	if w == nil || w.space == nil {
		return false
	}
	filter := cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: categorySolid}
	info := w.space.SegmentQueryFirst(from, to, 0, filter)
	return info.Shape != nil
}

func (w *World) logf(format string, args ...any) {
	if w.debug {
		log.Printf("PhysicsWorld: "+format, args...)
	}
}
