package movement

import (
	"sync"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashrunner/common"
)

// Intent is the input the controller sees for one fixed step.
type Intent struct {
	// Move.X is the horizontal axis in [-1,1]. Move.Y only steers the dash
	// and wall-jump direction.
	Move cp.Vector
	Jump bool
	Dash bool

	jumpSeq uint64
}

// IntentQueue latches input edges delivered between steps. Edge methods may
// be called from the input host at any time; Snapshot, ConsumeJump and
// SetDashing belong to the controller's step.
type IntentQueue struct {
	mu sync.Mutex

	move cp.Vector

	jump       bool
	jumpSeq    uint64
	jumpBuffer Timer
	buffering  bool
	window     float64

	dash    bool
	dashing bool
}

func NewIntentQueue(cfg Config) *IntentQueue {
	return &IntentQueue{
		buffering: cfg.JumpBuffering,
		window:    cfg.JumpBuffer,
	}
}

// Configure applies new buffering settings. A press already latched keeps
// its running window.
func (q *IntentQueue) Configure(cfg Config) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.buffering = cfg.JumpBuffering
	q.window = cfg.JumpBuffer
}

// SetMove latches the stick/keyboard vector. Last value wins.
func (q *IntentQueue) SetMove(x, y float64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.move = cp.Vector{X: common.Clamp(x, -1, 1), Y: common.Clamp(y, -1, 1)}
}

func (q *IntentQueue) ReleaseMove() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.move = cp.Vector{}
}

// PressJump records a jump edge and restarts its buffer window.
func (q *IntentQueue) PressJump() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jump = true
	q.jumpSeq++
	q.jumpBuffer.Start(q.window)
}

// PressDash records a dash edge unless a dash is already running.
func (q *IntentQueue) PressDash() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.dashing {
		return
	}
	q.dash = true
}

// SetDashing tells the queue whether dash edges must be dropped.
func (q *IntentQueue) SetDashing(dashing bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.dashing = dashing
	if dashing {
		q.dash = false
	}
}

// Snapshot returns the intent for this step and ages the latches: the dash
// request never outlives the step that sees it, and a jump request expires
// when its buffer window runs out (or immediately when buffering is off).
func (q *IntentQueue) Snapshot(dt float64) Intent {
	q.mu.Lock()
	defer q.mu.Unlock()

	in := Intent{
		Move:    q.move,
		Jump:    q.jump,
		Dash:    q.dash,
		jumpSeq: q.jumpSeq,
	}

	q.dash = false
	if q.jump {
		if !q.buffering || !q.jumpBuffer.Active() || q.jumpBuffer.Tick(dt) {
			q.jump = false
			q.jumpBuffer.Stop()
		}
	}
	return in
}

// ConsumeJump clears the jump press seen by in. A press that arrived after
// the snapshot is kept.
func (q *IntentQueue) ConsumeJump(in Intent) {
	if !in.Jump {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.jumpSeq != in.jumpSeq {
		return
	}
	q.jump = false
	q.jumpBuffer.Stop()
}

// Reset drops every latch, used on respawn.
func (q *IntentQueue) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.move = cp.Vector{}
	q.jump = false
	q.jumpBuffer.Stop()
	q.dash = false
	q.dashing = false
}
