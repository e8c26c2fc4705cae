package movement

// MotionState is the derived movement state for one step.
type MotionState int

const (
	Airborne MotionState = iota
	Grounded
	WallSliding
	Dashing
)

func (s MotionState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case WallSliding:
		return "wall_slide"
	case Dashing:
		return "dash"
	default:
		return "airborne"
	}
}

// resolveState applies the priority Dashing > Grounded > WallSliding > Airborne.
func resolveState(dashing, grounded, onWall bool) MotionState {
	switch {
	case dashing:
		return Dashing
	case grounded:
		return Grounded
	case onWall:
		return WallSliding
	default:
		return Airborne
	}
}
