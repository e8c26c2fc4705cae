package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dashrunner/movement"
)

const stickDeadzone = 0.2

// controls is the device state read once per tick.
type controls struct {
	moveX, moveY float64
	jumpPressed  bool
	dashPressed  bool
	respawn      bool
	toggleDebug  bool
}

func readControls() controls {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)

	c := controls{
		jumpPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		dashPressed: inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyK),
		respawn:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		toggleDebug: inpututil.IsKeyJustPressed(ebiten.KeyF1),
	}
	if left {
		c.moveX -= 1
	}
	if right {
		c.moveX += 1
	}
	if up {
		c.moveY += 1
	}
	if down {
		c.moveY -= 1
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			// gamepad y grows downward
			c.moveX, c.moveY = lx, -ly
		}
		c.jumpPressed = c.jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		c.dashPressed = c.dashPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		c.respawn = c.respawn || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}
	return c
}

// push forwards the tick's controls to the queue as edges.
func (c controls) push(q *movement.IntentQueue) {
	if c.moveX == 0 && c.moveY == 0 {
		q.ReleaseMove()
	} else {
		q.SetMove(c.moveX, c.moveY)
	}
	if c.jumpPressed {
		q.PressJump()
	}
	if c.dashPressed {
		q.PressDash()
	}
}
