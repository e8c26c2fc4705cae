package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashrunner/physics"
	"golang.org/x/image/colornames"
)

const debugCircleSegments = 24

// view maps world units (y up) onto screen pixels (y down) around the camera.
type view struct {
	cam           cp.Vector
	pixelsPerUnit float64
	width         float64
	height        float64
}

func (v view) toScreen(p cp.Vector) (float32, float32) {
	x := (p.X-v.cam.X)*v.pixelsPerUnit + v.width/2
	y := v.height/2 - (p.Y-v.cam.Y)*v.pixelsPerUnit
	return float32(x), float32(y)
}

func (v view) line(screen *ebiten.Image, a, b cp.Vector, clr color.Color) {
	x1, y1 := v.toScreen(a)
	x2, y2 := v.toScreen(b)
	vector.StrokeLine(screen, x1, y1, x2, y2, 1, clr, false)
}

// spaceDrawer renders a Chipmunk space through cp.DrawSpace.
type spaceDrawer struct {
	screen    *ebiten.Image
	view      view
	world     *physics.World
	solid     color.Color
	character color.Color
}

func drawSpace(screen *ebiten.Image, world *physics.World, v view, solid, character color.Color) {
	if screen == nil || world == nil || world.Space() == nil {
		return
	}
	cp.DrawSpace(world.Space(), &spaceDrawer{
		screen:    screen,
		view:      v,
		world:     world,
		solid:     solid,
		character: character,
	})
}

func (d *spaceDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.circle(pos, radius, toNRGBA(outline))
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.view.line(d.screen, pos, end, toNRGBA(outline))
}

func (d *spaceDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.view.line(d.screen, a, b, toNRGBA(fill))
}

func (d *spaceDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.view.line(d.screen, a, b, toNRGBA(fill))
}

func (d *spaceDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.polygon(verts[:count], toNRGBA(fill))
}

func (d *spaceDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	x, y := d.view.toScreen(pos)
	half := float32(size / 2)
	vector.FillRect(d.screen, x-half, y-half, half*2, half*2, toNRGBA(fill), false)
}

func (d *spaceDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *spaceDrawer) OutlineColor() cp.FColor {
	return toFColor(colornames.Lime)
}

// ShapeColor separates world geometry from the character.
func (d *spaceDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if d.world.IsSolid(shape) {
		return toFColor(d.solid)
	}
	return toFColor(d.character)
}

func (d *spaceDrawer) ConstraintColor() cp.FColor {
	return toFColor(colornames.Orange)
}

func (d *spaceDrawer) CollisionPointColor() cp.FColor {
	return toFColor(colornames.Red)
}

func (d *spaceDrawer) Data() interface{} {
	return nil
}

func (d *spaceDrawer) polygon(verts []cp.Vector, clr color.Color) {
	for i := range verts {
		d.view.line(d.screen, verts[i], verts[(i+1)%len(verts)], clr)
	}
}

func (d *spaceDrawer) circle(center cp.Vector, radius float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.polygon(points, clr)
}

// drawProbes shows the three probe rays from the collider center.
func drawProbes(screen *ebiten.Image, v view, bb cp.BB, reach float64, clr color.Color) {
	center := cp.Vector{X: (bb.L + bb.R) / 2, Y: (bb.B + bb.T) / 2}
	v.line(screen, center, cp.Vector{X: center.X, Y: bb.B - reach}, clr)
	v.line(screen, center, cp.Vector{X: bb.L - reach, Y: center.Y}, clr)
	v.line(screen, center, cp.Vector{X: bb.R + reach, Y: center.Y}, clr)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func toFColor(c color.Color) cp.FColor {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return cp.FColor{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
