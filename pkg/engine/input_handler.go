package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// InputHandler tracks edge-triggered key and mouse presses between frames
type InputHandler struct {
	window            *glfw.Window
	keys              []glfw.Key
	currentKeys       map[glfw.Key]bool
	previousKeys      map[glfw.Key]bool
	currentMouseBtns  map[glfw.MouseButton]bool
	previousMouseBtns map[glfw.MouseButton]bool
	cursorEnabled     bool
}

// NewInputHandler watches the bound keys and the mouse buttons of window
func NewInputHandler(window *glfw.Window) *InputHandler {
	keys := make([]glfw.Key, 0, len(keyBindings))
	for k := range keyBindings {
		keys = append(keys, k)
	}

	return &InputHandler{
		window:            window,
		keys:              keys,
		currentKeys:       make(map[glfw.Key]bool),
		previousKeys:      make(map[glfw.Key]bool),
		currentMouseBtns:  make(map[glfw.MouseButton]bool),
		previousMouseBtns: make(map[glfw.MouseButton]bool),
	}
}

// Update samples the current key and button state
func (ih *InputHandler) Update() {
	ih.previousKeys, ih.currentKeys = ih.currentKeys, ih.previousKeys
	for _, key := range ih.keys {
		ih.currentKeys[key] = ih.window.GetKey(key) == glfw.Press
	}

	ih.previousMouseBtns, ih.currentMouseBtns = ih.currentMouseBtns, ih.previousMouseBtns
	for btn := glfw.MouseButton1; btn <= glfw.MouseButtonLast; btn++ {
		ih.currentMouseBtns[btn] = ih.window.GetMouseButton(btn) == glfw.Press
	}
}

// IsKeyPressed reports whether key went down this frame
func (ih *InputHandler) IsKeyPressed(key glfw.Key) bool {
	return ih.currentKeys[key] && !ih.previousKeys[key]
}

// IsMouseButtonPressed reports whether button went down this frame
func (ih *InputHandler) IsMouseButtonPressed(button glfw.MouseButton) bool {
	return ih.currentMouseBtns[button] && !ih.previousMouseBtns[button]
}

// Actions returns the actions whose keys went down this frame
func (ih *InputHandler) Actions() []Action {
	var actions []Action
	for _, key := range ih.keys {
		if ih.IsKeyPressed(key) {
			actions = append(actions, keyBindings[key])
		}
	}
	return actions
}

// ToggleCursor switches between a captured and a free cursor
func (ih *InputHandler) ToggleCursor() {
	ih.cursorEnabled = !ih.cursorEnabled
	mode := glfw.CursorDisabled
	if ih.cursorEnabled {
		mode = glfw.CursorNormal
	}
	ih.window.SetInputMode(glfw.CursorMode, mode)
}
