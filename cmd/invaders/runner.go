package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/user-none/invaders8080/invaders"
)

// Runner wraps a System for ebiten, polling the keyboard each Update and
// blitting the rendered framebuffer each Draw. Input polling is the
// frontend's job; the System never reads a keyboard itself.
type Runner struct {
	sys       *invaders.System
	offscreen *ebiten.Image
}

// NewRunner creates a Runner wrapping the given system.
func NewRunner(sys *invaders.System) *Runner {
	return &Runner{
		sys:       sys,
		offscreen: ebiten.NewImage(invaders.DisplayWidth, invaders.DisplayHeight),
	}
}

// Update implements ebiten.Game.
func (r *Runner) Update() error {
	r.pollInput()
	r.sys.ExecuteFrame()
	return nil
}

// Draw implements ebiten.Game.
func (r *Runner) Draw(screen *ebiten.Image) {
	fb := r.sys.Framebuffer()
	r.offscreen.WritePixels(fb.Pix)

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	scaleX := float64(screenW) / invaders.DisplayWidth
	scaleY := float64(screenH) / invaders.DisplayHeight
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(r.offscreen, op)
}

// Layout implements ebiten.Game.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// pollInput reads the keyboard and writes the cabinet's input latches.
// Arrows/space drive player 1, the numpad drives player 2, RETURN deposits
// a credit, 1/2 press the start buttons, and PAUSE released triggers a
// system reset (there is no NMI on this cabinet, so reset stands in for it).
func (r *Runner) pollInput() {
	in := r.sys.Inputs()

	in.SetLeft1P(ebiten.IsKeyPressed(ebiten.KeyArrowLeft))
	in.SetRight1P(ebiten.IsKeyPressed(ebiten.KeyArrowRight))
	in.SetFire1P(ebiten.IsKeyPressed(ebiten.KeySpace))
	in.SetLeft(ebiten.IsKeyPressed(ebiten.KeyArrowLeft))
	in.SetRight(ebiten.IsKeyPressed(ebiten.KeyArrowRight))
	in.SetFire(ebiten.IsKeyPressed(ebiten.KeySpace))

	in.SetLeft2P(ebiten.IsKeyPressed(ebiten.KeyNumpad4))
	in.SetRight2P(ebiten.IsKeyPressed(ebiten.KeyNumpad6))
	in.SetFire2P(ebiten.IsKeyPressed(ebiten.KeyNumpad0))

	in.SetCredit(ebiten.IsKeyPressed(ebiten.KeyEnter))
	in.SetStart1P(ebiten.IsKeyPressed(ebiten.KeyDigit1))
	in.SetStart2P(ebiten.IsKeyPressed(ebiten.KeyDigit2))

	if inpututil.IsKeyJustReleased(ebiten.KeyPause) {
		r.sys.Reset()
	}
}
