package core

// Command is an abstract player intent, decoupled from the physical key
// or window event that produced it.
type Command int

const (
	CommandNone Command = iota
	CommandPlay         // Enter, Space - start or confirm
	CommandQuit         // Esc, Q, Ctrl+C - leave the game
	CommandGoUp         // Up, K, W
	CommandGoDown       // Down, J, S
	CommandGoLeft       // Left, H, A
	CommandGoRight      // Right, L, D
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandPlay:
		return "Play"
	case CommandQuit:
		return "Quit"
	case CommandGoUp:
		return "GoUp"
	case CommandGoDown:
		return "GoDown"
	case CommandGoLeft:
		return "GoLeft"
	case CommandGoRight:
		return "GoRight"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction requested by a Go* command.
// ok is false for commands that do not steer.
func (c Command) Direction() (dir Direction, ok bool) {
	switch c {
	case CommandGoUp:
		return DirUp, true
	case CommandGoDown:
		return DirDown, true
	case CommandGoLeft:
		return DirLeft, true
	case CommandGoRight:
		return DirRight, true
	default:
		return DirIdle, false
	}
}

// CommandQueue collects the commands produced during one frame, in arrival order.
type CommandQueue struct {
	cmds []Command
}

// Push appends a command. CommandNone is ignored.
func (q *CommandQueue) Push(c Command) {
	if c == CommandNone {
		return
	}
	q.cmds = append(q.cmds, c)
}

// Drain returns the collected commands and empties the queue.
func (q *CommandQueue) Drain() []Command {
	out := q.cmds
	q.cmds = nil
	return out
}

// Len returns the number of commands collected so far.
func (q *CommandQueue) Len() int {
	return len(q.cmds)
}
