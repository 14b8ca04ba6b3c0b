// Package gui shows a run figure in a desktop window.
package gui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/bbdrive/runplot/pkg/figure"
)

const (
	defaultWidth  = 960
	defaultHeight = 640
)

// Run opens a window showing fig. It blocks until the window closes.
func Run(fig *figure.Figure, title string) error {
	w := &window{fig: fig}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(defaultWidth, defaultHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

type window struct {
	fig    *figure.Figure
	img    *ebiten.Image
	width  int
	height int
	err    error
}

func (w *window) Update() error {
	if w.err != nil {
		return w.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if b.Empty() {
		return
	}
	if w.img == nil || b.Dx() != w.width || b.Dy() != w.height {
		rgba, err := w.fig.Image(b.Dx(), b.Dy())
		if err != nil {
			w.err = err
			return
		}
		if w.img != nil {
			w.img.Deallocate()
		}
		w.img = ebiten.NewImageFromImage(rgba)
		w.width, w.height = b.Dx(), b.Dy()
	}
	screen.DrawImage(w.img, nil)
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
