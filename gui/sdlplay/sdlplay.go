// This file is part of Eartrainer.
//
// Eartrainer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Eartrainer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Eartrainer.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlplay implements the gui.Surface interface with SDL. The window is
// of a fixed size and is drawn to with filled rectangles only.
//
// All functions must be called from the main thread.
package sdlplay

import (
	"image/color"

	"github.com/jetsetilly/eartrainer/curated"
	"github.com/jetsetilly/eartrainer/gui"
	"github.com/jetsetilly/eartrainer/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLError is the pattern used for all errors from SDL.
const SDLError = "sdl: %v"

// Background is the colour the window is cleared to at the start of a frame.
var Background = color.RGBA{R: 30, G: 30, B: 40, A: 255}

// SdlPlay is a simple SDL implementation of the gui.Surface interface.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	width  int
	height int
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. SDL audio
// is initialised at the same time as video.
func NewSdlPlay(perm logger.Permission, title string, width int, height int) (*SdlPlay, error) {
	scr := &SdlPlay{
		width:  width,
		height: height,
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	var v sdl.Version
	sdl.GetVersion(&v)
	logger.Logf(perm, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	scr.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(width), int32(height),
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	setupService()

	return scr, nil
}

// Size implements the gui.Canvas interface.
func (scr *SdlPlay) Size() (int, int) {
	return scr.width, scr.height
}

// FillRect implements the gui.Canvas interface.
func (scr *SdlPlay) FillRect(x, y, w, h int, col color.RGBA) error {
	err := scr.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	err = scr.renderer.FillRect(&sdl.Rect{X: int32(x), Y: int32(y), W: int32(w), H: int32(h)})
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	return nil
}

// Clear implements the gui.Surface interface.
func (scr *SdlPlay) Clear() error {
	err := scr.renderer.SetDrawColor(Background.R, Background.G, Background.B, Background.A)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	err = scr.renderer.Clear()
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	return nil
}

// Present implements the gui.Surface interface.
func (scr *SdlPlay) Present() error {
	scr.renderer.Present()
	return nil
}

// Pointer implements the gui.Surface interface.
func (scr *SdlPlay) Pointer() gui.Pointer {
	x, y, state := sdl.GetMouseState()
	return gui.Pointer{
		X:       int(x),
		Y:       int(y),
		Primary: state&sdl.Button(sdl.BUTTON_LEFT) != 0,
	}
}

// Destroy implements the gui.Surface interface.
func (scr *SdlPlay) Destroy() {
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
	}
	sdl.Quit()
}
