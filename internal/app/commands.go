package app

// CommandKind enumerates the actions a frontend can request.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandTogglePause
	CommandResume
	CommandStep
	CommandClear
	CommandReseed
	CommandGliders
	CommandQuit
)

// Command is a frontend-independent request against a Session.
type Command struct {
	Kind CommandKind
	// N is the glider count for CommandGliders.
	N int
}

// RuneCommand translates a printable key into a command.
func RuneCommand(r rune) (Command, bool) {
	switch {
	case r == ' ':
		return Command{Kind: CommandTogglePause}, true
	case r == 'n' || r == 'N':
		return Command{Kind: CommandStep}, true
	case r == 'r' || r == 'R':
		return Command{Kind: CommandReseed}, true
	case r == 'q' || r == 'Q':
		return Command{Kind: CommandQuit}, true
	case r >= '0' && r <= '9':
		return Command{Kind: CommandGliders, N: int(r - '0')}, true
	}
	return Command{}, false
}

// Apply executes c and reports whether the frontend should exit.
func (s *Session) Apply(c Command) (quit bool) {
	switch c.Kind {
	case CommandTogglePause:
		s.TogglePause()
	case CommandResume:
		s.Resume()
	case CommandStep:
		s.RequestStep()
	case CommandClear:
		s.Clear()
	case CommandReseed:
		s.Reseed()
	case CommandGliders:
		s.AddGliders(c.N)
	case CommandQuit:
		return true
	}
	return false
}
