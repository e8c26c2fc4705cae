package movement

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"
)

const testDt = 0.02

// fakeBody integrates forces the way the physics host does: impulses change
// velocity immediately, forces are accumulated and applied on integrate.
type fakeBody struct {
	pos      cp.Vector
	vel      cp.Vector
	force    cp.Vector
	mass     float64
	gravity  cp.Vector
	impulses []cp.Vector
}

func newFakeBody() *fakeBody {
	return &fakeBody{mass: 1}
}

func (b *fakeBody) Position() cp.Vector { return b.pos }
func (b *fakeBody) Velocity() cp.Vector { return b.vel }
func (b *fakeBody) SetVelocity(v cp.Vector) { b.vel = v }
func (b *fakeBody) ApplyForce(f cp.Vector) { b.force = b.force.Add(f) }

func (b *fakeBody) ApplyImpulse(j cp.Vector) {
	b.impulses = append(b.impulses, j)
	b.vel = b.vel.Add(j.Mult(1 / b.mass))
}

func (b *fakeBody) Bounds() cp.BB {
	return cp.BB{L: b.pos.X - 0.5, B: b.pos.Y - 1, R: b.pos.X + 0.5, T: b.pos.Y + 1}
}

func (b *fakeBody) integrate(dt float64) {
	b.vel = b.vel.Add(b.gravity.Mult(dt)).Add(b.force.Mult(dt / b.mass))
	b.force = cp.Vector{}
	b.pos = b.pos.Add(b.vel.Mult(dt))
}

type fakeDetector struct {
	grounded bool
	onWall   bool
}

func (d *fakeDetector) Update() (bool, bool) { return d.grounded, d.onWall }

type rig struct {
	body  *fakeBody
	det   *fakeDetector
	queue *IntentQueue
	ctrl  *Controller
}

func newRig(t *testing.T, cfg Config) *rig {
	t.Helper()
	r := &rig{
		body:  newFakeBody(),
		det:   &fakeDetector{},
		queue: NewIntentQueue(cfg),
	}
	ctrl, err := New(r.body, r.det, r.queue, cfg)
	require.NoError(t, err)
	r.ctrl = ctrl
	return r
}

// step runs one controller step followed by body integration.
func (r *rig) step() {
	r.ctrl.Step(testDt)
	r.body.integrate(testDt)
}

func (r *rig) steps(n int) {
	for i := 0; i < n; i++ {
		r.step()
	}
}

func (r *rig) verticalImpulses() int {
	n := 0
	for _, j := range r.body.impulses {
		if j.Y != 0 {
			n++
		}
	}
	return n
}
