// Package debugui provides a Dear ImGui overlay for inspecting a running game.
// Windows are registered as Items on an ImguiSystem, which submits them after
// every other system in the frame has run.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// Item holds a Dear ImGui render function submitted once per frame.
type Item struct {
	Render func()
}

// InputState tracks Dear ImGui's input capture state. Game input systems
// should ignore the keyboard while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render function of every item and refreshes the
// shared InputState.
type ImguiSystem struct {
	Items      []Item
	InputState *InputState
}

// NewImguiSystem creates a system publishing into state.
func NewImguiSystem(state *InputState, items ...Item) *ImguiSystem {
	return &ImguiSystem{
		Items:      items,
		InputState: state,
	}
}

// Add registers another window.
func (i *ImguiSystem) Add(item Item) {
	i.Items = append(i.Items, item)
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *loop.UpdateFrame) {
	if i.InputState != nil {
		io := imgui.CurrentIO()
		i.InputState.WantCaptureMouse = io.WantCaptureMouse()
		i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for _, item := range i.Items {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}
