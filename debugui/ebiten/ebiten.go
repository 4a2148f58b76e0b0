// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// Overlay wraps the Ebiten-specific Dear ImGui backend. A game calls
// BeginFrame and EndFrame around its update, Draw after drawing its own
// content, and Layout from its own Layout.
type Overlay struct {
	*ebitenbackend.EbitenBackend
}

// NewOverlay creates the backend and its window. The imgui.ini file is
// disabled so window placement is not persisted between runs.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &Overlay{EbitenBackend: backend}
}
