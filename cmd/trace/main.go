// Command trace replays a scripted input sequence through the movement
// controller on a headless physics course and prints what the character did.
//
//	trace -script "wait:30 move:1,0 wait:40 jump wait:10 dash wait:30"
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashrunner/movement"
	"github.com/milk9111/dashrunner/physics"
	"github.com/milk9111/dashrunner/prefabs"
)

const traceDt = 1.0 / 60

var courseRows = []string{
	"##############################",
	"#...........................##",
	"#...........................##",
	"#...........................##",
	"#...........................##",
	"#...........................##",
	"#...........................##",
	"##############################",
}

var courseSpawn = cp.Vector{X: 2, Y: 2}

type action struct {
	kind  string
	x, y  float64
	steps int
}

func parseScript(script string) ([]action, error) {
	var actions []action
	for _, tok := range strings.Fields(script) {
		name, arg, _ := strings.Cut(tok, ":")
		switch name {
		case "jump", "dash", "release":
			actions = append(actions, action{kind: name})
		case "wait":
			n, err := strconv.Atoi(arg)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("trace: bad wait %q", tok)
			}
			actions = append(actions, action{kind: name, steps: n})
		case "move":
			xs, ys, _ := strings.Cut(arg, ",")
			x, err := strconv.ParseFloat(xs, 64)
			if err != nil {
				return nil, fmt.Errorf("trace: bad move %q: %w", tok, err)
			}
			y := 0.0
			if ys != "" {
				if y, err = strconv.ParseFloat(ys, 64); err != nil {
					return nil, fmt.Errorf("trace: bad move %q: %w", tok, err)
				}
			}
			actions = append(actions, action{kind: name, x: x, y: y})
		default:
			return nil, fmt.Errorf("trace: unknown action %q", tok)
		}
	}
	return actions, nil
}

type tracer struct {
	world *physics.World
	body  *physics.Character
	queue *movement.IntentQueue
	ctrl  *movement.Controller
	step  int
}

func newTracer(spec *prefabs.CharacterSpec) (*tracer, error) {
	grid, err := physics.ParseGrid(courseRows)
	if err != nil {
		return nil, err
	}
	world := physics.NewWorld(physics.Config{Gravity: spec.Gravity})
	world.AddTiles(grid)

	body := world.NewCharacter(courseSpawn, spec.Collider.Width, spec.Collider.Height)
	if body == nil {
		return nil, fmt.Errorf("trace: invalid collider %vx%v", spec.Collider.Width, spec.Collider.Height)
	}
	cfg, err := spec.MovementConfig()
	if err != nil {
		return nil, err
	}
	var det movement.Detector = movement.NewContactDetector(body)
	if spec.Detector.Strategy == prefabs.DetectorProbe {
		det = movement.NewProbeDetector(body, world, spec.Detector.ProbeReach)
	}
	queue := movement.NewIntentQueue(cfg)
	ctrl, err := movement.New(body, det, queue, cfg)
	if err != nil {
		return nil, err
	}
	return &tracer{world: world, body: body, queue: queue, ctrl: ctrl}, nil
}

// run executes actions and writes one row per state change, or per step when every is set.
func (t *tracer) run(out io.Writer, actions []action, every bool) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "step\tstate\tx\ty\tvx\tvy\tcan_dash")

	prev := movement.MotionState(-1)
	emit := func() {
		s := t.ctrl.Snapshot()
		if !every && s.State == prev {
			return
		}
		prev = s.State
		fmt.Fprintf(tw, "%d\t%s\t%.3f\t%.3f\t%.3f\t%.3f\t%v\n",
			t.step, s.State, s.Position.X, s.Position.Y, s.Velocity.X, s.Velocity.Y, s.CanDash)
	}

	for _, a := range actions {
		switch a.kind {
		case "jump":
			t.queue.PressJump()
		case "dash":
			t.queue.PressDash()
		case "release":
			t.queue.ReleaseMove()
		case "move":
			t.queue.SetMove(a.x, a.y)
		case "wait":
			for i := 0; i < a.steps; i++ {
				t.ctrl.Step(traceDt)
				t.world.Step(traceDt)
				t.step++
				emit()
			}
		}
	}
	return tw.Flush()
}

func main() {
	script := flag.String("script", "wait:30 move:1,0 wait:60 jump wait:10 dash wait:40", "space separated actions: move:x,y release jump dash wait:n")
	every := flag.Bool("every", false, "print every step instead of state changes only")
	probe := flag.Bool("probe", false, "use ray probes instead of contacts")
	flag.Parse()

	actions, err := parseScript(*script)
	if err != nil {
		log.Fatal(err)
	}
	spec, err := prefabs.LoadCharacterSpec()
	if err != nil {
		log.Fatal(err)
	}
	if *probe {
		spec.Detector.Strategy = prefabs.DetectorProbe
	}
	t, err := newTracer(spec)
	if err != nil {
		log.Fatal(err)
	}
	if err := t.run(os.Stdout, actions, *every); err != nil {
		log.Fatal(err)
	}
}
