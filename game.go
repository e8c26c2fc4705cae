package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/dashrunner/camera"
	"github.com/milk9111/dashrunner/movement"
	"github.com/milk9111/dashrunner/physics"
	"github.com/milk9111/dashrunner/prefabs"
	"golang.org/x/image/colornames"
)

const (
	baseWidth     = 1280
	baseHeight    = 720
	pixelsPerUnit = 80
)

type Options struct {
	Debug bool
	Probe bool
	Watch bool
}

type Game struct {
	opts   Options
	frames int
	dt     float64

	spec     *prefabs.CharacterSpec
	world    *physics.World
	body     *physics.Character
	queue    *movement.IntentQueue
	ctrl     *movement.Controller
	follower *camera.Follower
	watcher  *prefabs.Watcher

	showDebug bool
}

func NewGame(opts Options) (*Game, error) {
	spec, err := prefabs.LoadCharacterSpec()
	if err != nil {
		return nil, err
	}
	if opts.Probe {
		spec.Detector.Strategy = prefabs.DetectorProbe
	}

	g := &Game{
		opts:      opts,
		dt:        1 / float64(ebiten.TPS()),
		spec:      spec,
		showDebug: true,
	}
	if err := g.respawn(); err != nil {
		return nil, err
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("Game: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// respawn rebuilds the world, the body and the controller from the current spec.
func (g *Game) respawn() error {
	world := physics.NewWorld(physics.Config{Gravity: g.spec.Gravity})
	world.SetDebug(g.opts.Debug)
	if _, err := buildArena(world); err != nil {
		return fmt.Errorf("game: build arena: %w", err)
	}
	body := world.NewCharacter(arenaSpawn, g.spec.Collider.Width, g.spec.Collider.Height)
	if body == nil {
		return fmt.Errorf("game: invalid collider %vx%v", g.spec.Collider.Width, g.spec.Collider.Height)
	}

	g.world = world
	g.body = body
	if err := g.rebuildController(); err != nil {
		return err
	}
	g.follower = camera.NewFollower(g.spec.CameraConfig())
	g.follower.Snap(body.Position())
	return nil
}

func (g *Game) rebuildController() error {
	cfg, err := g.spec.MovementConfig()
	if err != nil {
		return err
	}
	queue := movement.NewIntentQueue(cfg)
	ctrl, err := movement.New(g.body, g.detector(), queue, cfg)
	if err != nil {
		return err
	}
	ctrl.SetDebug(g.opts.Debug)
	g.queue = queue
	g.ctrl = ctrl
	return nil
}

func (g *Game) detector() movement.Detector {
	if g.spec.Detector.Strategy == prefabs.DetectorProbe {
		return movement.NewProbeDetector(g.body, g.world, g.spec.Detector.ProbeReach)
	}
	return movement.NewContactDetector(g.body)
}

// reload applies an edited character.yaml to the running controller and keeps
// the last good spec on error.
func (g *Game) reload(name string) {
	if name != prefabs.CharacterFile {
		return
	}
	spec, err := prefabs.LoadCharacterSpec()
	if err != nil {
		log.Printf("Game: reload %s: %v", name, err)
		return
	}
	if g.opts.Probe {
		spec.Detector.Strategy = prefabs.DetectorProbe
	}
	cfg, err := spec.MovementConfig()
	if err != nil {
		log.Printf("Game: reload %s: %v", name, err)
		return
	}
	if err := g.ctrl.Reconfigure(cfg); err != nil {
		log.Printf("Game: reload %s: %v", name, err)
		return
	}
	g.spec = spec
	g.ctrl.SetDetector(g.detector())
	g.follower = camera.NewFollower(spec.CameraConfig())
	g.follower.Snap(g.body.Position())
	log.Printf("Game: reloaded %s (collider and gravity apply on respawn)", name)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("Game: watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()

	c := readControls()
	if c.toggleDebug {
		g.showDebug = !g.showDebug
	}
	if c.respawn {
		if err := g.respawn(); err != nil {
			log.Printf("Game: respawn: %v", err)
		}
		return nil
	}
	c.push(g.queue)

	g.ctrl.Step(g.dt)
	g.world.Step(g.dt)
	g.follower.Update(g.body.Position(), g.dt)
	return nil
}

func (g *Game) view() view {
	return view{
		cam:           g.follower.Position(),
		pixelsPerUnit: pixelsPerUnit,
		width:         baseWidth,
		height:        baseHeight,
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	v := g.view()

	dbg := g.spec.Debug
	drawSpace(screen, g.world, v, dbg.SolidColor.Or(colornames.Steelblue), dbg.CharacterColor.Or(colornames.Orchid))
	if g.spec.Detector.Strategy == prefabs.DetectorProbe {
		drawProbes(screen, v, g.body.Bounds(), g.spec.Detector.ProbeReach, dbg.ProbeColor.Or(colornames.Gold))
	}

	if g.showDebug {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.ctrl.Snapshot()
	anim := "idle"
	switch {
	case s.Dashing:
		anim = "dash"
	case s.Jumping:
		anim = "jump"
	case s.Falling:
		anim = "fall"
	case s.Running:
		anim = "run"
	}
	text := fmt.Sprintf(
		"FPS: %.1f  Tick: %d\nState: %s\nAnim: %s\nPos: (%.2f, %.2f)\nVel: (%.2f, %.2f)\nFacing: %+.0f\nGrounded: %v  Wall: %v\nCanDash: %v  Coyote: %.2f  Boost: %v\nDetector: %s",
		ebiten.ActualFPS(), g.frames, s.State, anim,
		s.Position.X, s.Position.Y, s.Velocity.X, s.Velocity.Y, s.Facing,
		s.Grounded, s.OnWall, s.CanDash, g.ctrl.Coyote(), g.ctrl.BoostEligible(),
		g.spec.Detector.Strategy,
	)
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
	ebitenutil.DebugPrintAt(screen, "move: WASD/arrows  jump: space  dash: shift/K  respawn: R  HUD: F1", 10, baseHeight-20)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

// Close releases the prefab watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
