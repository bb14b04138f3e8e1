package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// keyState reports keyboard state for the current tick.
type keyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// ebitenKeys reads the live keyboard through ebiten.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Key bindings. Directions are held; the rest trigger once per press.
var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	fireKeys    = []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// pollInput builds the input frame for one tick.
func pollInput(ks keyState) core.InputFrame {
	in := core.NewInputFrame()
	if anyKey(ks.Pressed, leftKeys) {
		in.Set(core.ActionLeft)
	}
	if anyKey(ks.Pressed, rightKeys) {
		in.Set(core.ActionRight)
	}
	if anyKey(ks.JustPressed, fireKeys) {
		in.Set(core.ActionFire)
	}
	if anyKey(ks.JustPressed, restartKeys) {
		in.Set(core.ActionRestart)
	}
	if anyKey(ks.JustPressed, quitKeys) {
		in.Set(core.ActionQuit)
	}
	return in
}

func anyKey(check func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if check(k) {
			return true
		}
	}
	return false
}
