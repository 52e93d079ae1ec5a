package console

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Control is an action offered between events.
type Control int

const (
	ControlContinue Control = iota
	ControlSave
	ControlQuit
	ControlStats
)

func (c Control) String() string {
	switch c {
	case ControlSave:
		return "save"
	case ControlQuit:
		return "quit"
	case ControlStats:
		return "stats"
	default:
		return "continue"
	}
}

// ParseControl picks the action named by the first recognised letter
// (c, s, q or v, any case). Anything else continues.
func ParseControl(answer string) Control {
	for _, r := range answer {
		switch unicode.ToLower(r) {
		case 'c':
			return ControlContinue
		case 's':
			return ControlSave
		case 'q':
			return ControlQuit
		case 'v':
			return ControlStats
		}
	}
	return ControlContinue
}

// MenuChoice is a top-level menu selection.
type MenuChoice int

const (
	MenuNewGame MenuChoice = iota
	MenuLoadGame
	MenuQuit
)

func (m MenuChoice) String() string {
	switch m {
	case MenuLoadGame:
		return "load"
	case MenuQuit:
		return "quit"
	default:
		return "new"
	}
}

var menuWords = map[MenuChoice][]string{
	MenuNewGame:  {"new", "start"},
	MenuLoadGame: {"load"},
	MenuQuit:     {"quit", "exit"},
}

// ParseMainMenu maps "1", "2", "3" or a word close to new/start, load or
// quit/exit. Anything unrecognised starts a new game.
func ParseMainMenu(answer string) MenuChoice {
	answer = strings.ToLower(strings.TrimSpace(answer))
	switch answer {
	case "1":
		return MenuNewGame
	case "2":
		return MenuLoadGame
	case "3":
		return MenuQuit
	}
	if len(answer) < 3 {
		return MenuNewGame
	}

	for _, choice := range []MenuChoice{MenuLoadGame, MenuQuit, MenuNewGame} {
		for _, word := range menuWords[choice] {
			if levenshtein.ComputeDistance(answer, word) <= 1 {
				return choice
			}
		}
	}
	return MenuNewGame
}

// Affirmative reports whether answer is exactly "y", ignoring case.
func Affirmative(answer string) bool {
	return strings.ToLower(answer) == "y"
}
