// Package control maps user input to fold animation commands. It is shared
// by the GUI, the raw SDL viewer and the terminal front end.
package control

import (
	"fmt"

	"github.com/Faultbox/cubefold/internal/demo"
	"github.com/Faultbox/cubefold/internal/fold"
)

// Action is a front-end independent command.
type Action int

const (
	None Action = iota
	Quit
	TogglePause
	Fold
	Unfold
	Reset
	Screenshot
	NextDemo
)

func (a Action) String() string {
	switch a {
	case None:
		return "none"
	case Quit:
		return "quit"
	case TogglePause:
		return "toggle-pause"
	case Fold:
		return "fold"
	case Unfold:
		return "unfold"
	case Reset:
		return "reset"
	case Screenshot:
		return "screenshot"
	case NextDemo:
		return "next-demo"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ForRune maps the character keys every front end understands.
func ForRune(r rune) Action {
	switch r {
	case ' ':
		return TogglePause
	case 'f', 'F':
		return Fold
	case 'u', 'U':
		return Unfold
	case 'r', 'R':
		return Reset
	case 'q', 'Q':
		return Quit
	default:
		return None
	}
}

// Apply performs a fold command on net and reports whether a was one.
func Apply(a Action, net *demo.FoldNet) bool {
	switch a {
	case TogglePause:
		net.Animator().TogglePause()
	case Fold:
		net.SetTarget(fold.Folded)
	case Unfold:
		net.SetTarget(fold.Unfolded)
	case Reset:
		net.Restart()
	default:
		return false
	}
	return true
}

// Help lists the key bindings for display.
var Help = []struct {
	Key    string
	Action Action
}{
	{"Space", TogglePause},
	{"F", Fold},
	{"U", Unfold},
	{"R", Reset},
	{"Esc/Q", Quit},
}

// FormatStatus renders s as a single status line.
func FormatStatus(s fold.Status) string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	face := "-"
	if s.ActiveFace > 0 {
		face = fmt.Sprintf("%d", s.ActiveFace)
	}
	return fmt.Sprintf("%s | %s | face %s | %3.0f%% | %s",
		s.Direction, s.Stage, face, s.Completion*100, state)
}
