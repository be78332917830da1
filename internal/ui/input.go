package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavern/internal/systems"
)

// Input turns terminal key presses into movement intents.
type Input struct {
	screen *Screen
	quit   bool
}

// NewInput creates an input source reading from screen.
func NewInput(screen *Screen) *Input {
	return &Input{screen: screen}
}

// Quit returns true once the player has asked to leave.
func (in *Input) Quit() bool {
	return in.quit
}

// NextIntent blocks for one terminal event and decodes it.
// Non-movement events yield no intent.
func (in *Input) NextIntent() (systems.Intent, bool) {
	switch ev := in.screen.PollEvent().(type) {
	case *tcell.EventKey:
		intent, action := DecodeKey(ev.Key(), ev.Rune())
		switch action {
		case ActionQuit:
			in.quit = true
		case ActionMove:
			return intent, true
		}
	case *tcell.EventResize:
		in.screen.Sync()
	}
	return systems.Intent{}, false
}

// Action is what a decoded key asks for.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionQuit
)

var runeMoves = map[rune]systems.Intent{
	'h': {DX: -1}, 'l': {DX: 1}, 'k': {DY: -1}, 'j': {DY: 1},
	'y': {DX: -1, DY: -1}, 'u': {DX: 1, DY: -1},
	'b': {DX: -1, DY: 1}, 'n': {DX: 1, DY: 1},
	'4': {DX: -1}, '6': {DX: 1}, '8': {DY: -1}, '2': {DY: 1},
	'7': {DX: -1, DY: -1}, '9': {DX: 1, DY: -1},
	'1': {DX: -1, DY: 1}, '3': {DX: 1, DY: 1},
}

// DecodeKey maps a key press to a movement intent or quit request.
func DecodeKey(key tcell.Key, r rune) (systems.Intent, Action) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return systems.Intent{}, ActionQuit
	case tcell.KeyUp:
		return systems.Intent{DY: -1}, ActionMove
	case tcell.KeyDown:
		return systems.Intent{DY: 1}, ActionMove
	case tcell.KeyLeft:
		return systems.Intent{DX: -1}, ActionMove
	case tcell.KeyRight:
		return systems.Intent{DX: 1}, ActionMove
	case tcell.KeyRune:
		if r == 'q' || r == 'Q' {
			return systems.Intent{}, ActionQuit
		}
		if intent, ok := runeMoves[r]; ok {
			return intent, ActionMove
		}
	}
	return systems.Intent{}, ActionNone
}
