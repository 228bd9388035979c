// Package input turns SDL2 events into machine commands.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Command is a user request decoded from the keyboard.
type Command int

// Commands.
const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandQuit
	CommandScreenshot
	CommandWireframe
	CommandReset
)

var commandNames = [...]string{
	CommandNone:       "none",
	CommandUp:         "up",
	CommandDown:       "down",
	CommandLeft:       "left",
	CommandRight:      "right",
	CommandQuit:       "quit",
	CommandScreenshot: "screenshot",
	CommandWireframe:  "wireframe",
	CommandReset:      "reset",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// keymap binds scancodes to commands. Scancodes follow key position, so the
// bindings survive keyboard layouts.
var keymap = map[sdl.Scancode]Command{
	sdl.SCANCODE_UP:        CommandUp,
	sdl.SCANCODE_DOWN:      CommandDown,
	sdl.SCANCODE_LEFT:      CommandLeft,
	sdl.SCANCODE_RIGHT:     CommandRight,
	sdl.SCANCODE_ESCAPE:    CommandQuit,
	sdl.SCANCODE_F12:       CommandScreenshot,
	sdl.SCANCODE_W:         CommandWireframe,
	sdl.SCANCODE_BACKSPACE: CommandReset,
}

// Lookup returns the command bound to a scancode, or CommandNone.
func Lookup(key sdl.Scancode) Command {
	return keymap[key]
}

// Input collects the commands of one frame.
type Input struct {
	commands []Command
	resized  bool
	width    int
	height   int
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		commands: make([]Command, 0, 8),
	}
}

// Update drains pending SDL events. It returns true once the window was
// asked to close.
func (i *Input) Update() bool {
	i.commands = i.commands[:0]
	i.resized = false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if i.handle(event) {
			return true
		}
	}
	return false
}

// handle records one event and reports whether it requests quitting.
func (i *Input) handle(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.commands = append(i.commands, CommandQuit)
		return true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			i.resized = true
			i.width = int(e.Data1)
			i.height = int(e.Data2)
		}

	case *sdl.KeyboardEvent:
		// Held keys repeat; one press is one command.
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return false
		}
		if c := Lookup(e.Keysym.Scancode); c != CommandNone {
			i.commands = append(i.commands, c)
		}
	}
	return false
}

// Commands returns the commands decoded by the last Update, in order.
func (i *Input) Commands() []Command {
	return i.commands
}

// Resized reports whether the window changed size during the last Update,
// and the new size.
func (i *Input) Resized() (bool, int, int) {
	return i.resized, i.width, i.height
}
