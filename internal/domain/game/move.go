package game

import "strings"

// Choice is a movement token typed by the player.
type Choice int

const (
	ChoiceUnknown Choice = iota
	ChoiceLeft
	ChoiceRight
	ChoiceExit
)

// Tokens as the player types them: esquerda, direita, sair.
const (
	TokenLeft  = "e"
	TokenRight = "d"
	TokenExit  = "s"
)

// ParseChoice maps one line of input to a Choice. Surrounding blanks are
// ignored; anything but a single known token is ChoiceUnknown.
func ParseChoice(line string) Choice {
	switch strings.TrimSpace(line) {
	case TokenLeft:
		return ChoiceLeft
	case TokenRight:
		return ChoiceRight
	case TokenExit:
		return ChoiceExit
	default:
		return ChoiceUnknown
	}
}

func (c Choice) Token() string {
	switch c {
	case ChoiceLeft:
		return TokenLeft
	case ChoiceRight:
		return TokenRight
	case ChoiceExit:
		return TokenExit
	default:
		return ""
	}
}

func (c Choice) String() string {
	switch c {
	case ChoiceLeft:
		return "left"
	case ChoiceRight:
		return "right"
	case ChoiceExit:
		return "exit"
	default:
		return "unknown"
	}
}
