//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// poll forwards characters typed since the last call, including OS key
// repeat, which is what ramps zoom speed while a key is held. Escape is
// delivered as 'q'.
func (k *hostKeyboard) poll() {
	for _, r := range ebiten.AppendInputChars(nil) {
		k.push(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		k.push('q')
	}
}
