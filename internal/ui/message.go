package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/photox/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgManifestLoaded MsgKind = iota
	MsgSelectionChanged
)

type manifestLoaded struct {
	gallery *models.Gallery
	err     error
}

// manifestLoadedMsg is the constructor for [MsgManifestLoaded]
func manifestLoadedMsg(g *models.Gallery, err error) Msg {
	return Msg{kind: MsgManifestLoaded, data: manifestLoaded{g, err}}
}

// selectionChangedMsg is the constructor for [MsgSelectionChanged]
func selectionChangedMsg(ids []string) Msg {
	return Msg{kind: MsgSelectionChanged, data: ids}
}
