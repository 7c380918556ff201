// Package ui implements the interactive gallery grid using bubbletea's Elm architecture.
//
// The TUI has two views:
//  1. [GridView] : Tiles of photos with cursor, click, ctrl-click and shift-click selection
//  2. [OverlayView] : Annotations of the focused photo positioned in display space, with per-annotation visibility toggles
//
// Every interaction is translated into a [selection.Event] and dispatched to a
// [selection.Controller]; the grid only renders the resulting state. Filtering
// replaces the displayed photo list and therefore starts a fresh selection.
//
// Mouse clicks honour ctrl and shift modifiers where the terminal reports them.
// Keyboard equivalents are enter (click), space/x (toggle) and shift+arrows (range).
package ui
