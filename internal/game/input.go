package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"drift/internal/sim"
)

// KeyToken maps a GLFW key to the token the simulation binds actions to.
// Unknown keys map to "".
func KeyToken(key glfw.Key, scancode int) string {
	switch key {
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return "shift"
	case glfw.KeySpace:
		return "space"
	case glfw.KeyUp:
		return "up"
	case glfw.KeyDown:
		return "down"
	case glfw.KeyLeft:
		return "left"
	case glfw.KeyRight:
		return "right"
	case glfw.KeyEnter:
		return "enter"
	case glfw.KeyTab:
		return "tab"
	}
	return sim.NormalizeKey(glfw.GetKeyName(key, scancode))
}

// physicalKeys counts the physical keys held per token, so a token shared
// by two keys (left and right shift) is released only when both are up.
type physicalKeys map[string]map[glfw.Key]struct{}

func (pk physicalKeys) press(tok string, key glfw.Key) {
	keys, ok := pk[tok]
	if !ok {
		keys = make(map[glfw.Key]struct{}, 2)
		pk[tok] = keys
	}
	keys[key] = struct{}{}
}

// release reports whether key was the last one holding tok.
func (pk physicalKeys) release(tok string, key glfw.Key) bool {
	keys := pk[tok]
	delete(keys, key)
	if len(keys) > 0 {
		return false
	}
	delete(pk, tok)
	return true
}

func (pk physicalKeys) clear() {
	for tok := range pk {
		delete(pk, tok)
	}
}

// bindInput routes window key events into in. Losing focus drops all held
// keys since their releases will never arrive.
func bindInput(window *glfw.Window, in *sim.Input) {
	down := make(physicalKeys)
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape {
			if action == glfw.Press {
				window.SetShouldClose(true)
			}
			return
		}
		tok := KeyToken(key, scancode)
		if tok == "" {
			return
		}
		switch action {
		case glfw.Press:
			down.press(tok, key)
			in.Press(tok)
		case glfw.Repeat:
			in.Repeat(tok)
		case glfw.Release:
			if down.release(tok, key) {
				in.Release(tok)
			}
		}
	})
	window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			down.clear()
			in.Clear()
		}
	})
}
