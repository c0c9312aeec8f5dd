package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// input is one frame's worth of edge-triggered presses.
type input struct {
	flap    bool
	confirm bool
	pause   bool
	claim   bool
	reset   bool
	share   bool
	quit    bool
}

var flapKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}

// pollInput reads presses that started this frame. Space, Up, W, a left
// click or a new touch all flap.
func pollInput() input {
	var in input
	for _, k := range flapKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.flap = true
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.flap = true
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		in.flap = true
	}

	in.confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.pause = inpututil.IsKeyJustPressed(ebiten.KeyP)
	in.claim = inpututil.IsKeyJustPressed(ebiten.KeyC)
	in.reset = inpututil.IsKeyJustPressed(ebiten.KeyX)
	in.share = inpututil.IsKeyJustPressed(ebiten.KeyS)
	in.quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return in
}
