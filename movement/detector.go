package movement

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	// groundNormalMin is the minimum upward normal component for a floor.
	groundNormalMin = 0.5
	// wallNormalMin is the minimum sideways normal component for a wall.
	wallNormalMin = 0.5
	// defaultProbeReach is how far probes look past the collider edge.
	defaultProbeReach = 0.05
)

// Detector derives grounded/onWall for the current step. Implementations
// recompute from scratch on every call.
type Detector interface {
	Update() (grounded, onWall bool)
}

// Contact is one active contact against the character's collider. Normal
// points from the touched surface toward the character.
type Contact struct {
	Point  cp.Vector
	Normal cp.Vector
}

// ContactSource lists the contacts that persisted through the last physics step.
type ContactSource interface {
	Contacts() []Contact
}

// RayCaster answers whether a segment hits solid ground.
type RayCaster interface {
	Raycast(from, to cp.Vector) bool
}

// ContactDetector inspects contact normals.
type ContactDetector struct {
	source ContactSource
}

func NewContactDetector(source ContactSource) *ContactDetector {
	return &ContactDetector{source: source}
}

func (d *ContactDetector) Update() (grounded, onWall bool) {
	if d == nil || d.source == nil {
		return false, false
	}
	for _, c := range d.source.Contacts() {
		n := c.Normal
		if n.Y > groundNormalMin {
			grounded = true
		} else if math.Abs(n.X) > wallNormalMin {
			onWall = true
		}
	}
	if grounded {
		onWall = false
	}
	return grounded, onWall
}

// ProbeDetector casts three short rays from the collider center: one down
// past the bottom edge and one past each side edge. Starting at the center
// keeps the rays outside solid shapes the body has sunk into.
type ProbeDetector struct {
	body  Body
	rays  RayCaster
	reach float64
}

// NewProbeDetector builds a probe detector; a non-positive reach uses the default.
func NewProbeDetector(body Body, rays RayCaster, reach float64) *ProbeDetector {
	if reach <= 0 {
		reach = defaultProbeReach
	}
	return &ProbeDetector{body: body, rays: rays, reach: reach}
}

func (d *ProbeDetector) Update() (grounded, onWall bool) {
	if d == nil || d.body == nil || d.rays == nil {
		return false, false
	}
	bb := d.body.Bounds()
	cx := (bb.L + bb.R) / 2
	cy := (bb.B + bb.T) / 2

	center := cp.Vector{X: cx, Y: cy}
	grounded = d.rays.Raycast(center, cp.Vector{X: cx, Y: bb.B - d.reach})
	if grounded {
		return true, false
	}

	onWall = d.rays.Raycast(center, cp.Vector{X: bb.L - d.reach, Y: cy}) ||
		d.rays.Raycast(center, cp.Vector{X: bb.R + d.reach, Y: cy})
	return false, onWall
}
