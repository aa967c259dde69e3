package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"terraingen/pkg/config"
)

// Action is a viewer command bound to a key
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionReseed
	ActionMoreOctaves
	ActionFewerOctaves
	ActionRaiseBias
	ActionLowerBias
	ActionMoreChunks
	ActionFewerChunks
	ActionLargerChunks
	ActionSmallerChunks
)

const biasStep = 0.05

var actionNames = map[Action]string{
	ActionNone:          "none",
	ActionQuit:          "quit",
	ActionReseed:        "new seed",
	ActionMoreOctaves:   "octaves +1",
	ActionFewerOctaves:  "octaves -1",
	ActionRaiseBias:     "bias +0.05",
	ActionLowerBias:     "bias -0.05",
	ActionMoreChunks:    "chunks +1",
	ActionFewerChunks:   "chunks -1",
	ActionLargerChunks:  "chunk size x2",
	ActionSmallerChunks: "chunk size /2",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// keyBindings maps keys to viewer actions
var keyBindings = map[glfw.Key]Action{
	glfw.KeyEscape:   ActionQuit,
	glfw.KeyN:        ActionReseed,
	glfw.KeyUp:       ActionMoreOctaves,
	glfw.KeyDown:     ActionFewerOctaves,
	glfw.KeyRight:    ActionRaiseBias,
	glfw.KeyLeft:     ActionLowerBias,
	glfw.KeyPageUp:   ActionMoreChunks,
	glfw.KeyPageDown: ActionFewerChunks,
	glfw.KeyEqual:    ActionLargerChunks,
	glfw.KeyMinus:    ActionSmallerChunks,
}

// applyAction returns the settings after a parameter action, clamped to
// the allowed ranges, and whether they changed.
func applyAction(t config.TerrainConfig, a Action) (config.TerrainConfig, bool) {
	next := t
	switch a {
	case ActionMoreOctaves:
		next.Octaves++
	case ActionFewerOctaves:
		next.Octaves--
	case ActionRaiseBias:
		next.Bias += biasStep
	case ActionLowerBias:
		next.Bias -= biasStep
	case ActionMoreChunks:
		next.NumChunks++
	case ActionFewerChunks:
		next.NumChunks--
	case ActionLargerChunks:
		next.ChunkSize *= 2
	case ActionSmallerChunks:
		next.ChunkSize /= 2
	default:
		return t, false
	}
	next.Clamp()
	return next, next != t
}
