package engine

import (
	"fmt"

	"github.com/EstruturaDados/detective-quest-OruamC/internal/clues"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/mansion"
)

func (ev Event) String() string {
	switch ev {
	case Arrived:
		return "arrived"
	case Moved:
		return "moved"
	case Blocked:
		return "blocked"
	case InvalidOption:
		return "invalid"
	case Quitted:
		return "quit"
	case Ended:
		return "ended"
	}
	return "unknown"
}

// Report describes the outcome of Start or Step for display.
type Report struct {
	Event  Event
	Action Action

	// Room is the occupied room after the transition. It is nil once the
	// player has quit.
	Room *mansion.Room

	// Clue and Collected are set when Room holds a clue and was just entered.
	Clue      string
	Collected clues.Outcome

	Left, Right bool
	DeadEnd     bool
	Stopped     bool
}

// Entered reports whether the transition put the player in a new room.
func (r Report) Entered() bool {
	return r.Room != nil && (r.Event == Arrived || r.Event == Moved)
}

// Lines renders the report as the messages shown to the player.
func (r Report) Lines() []string {
	var lines []string

	switch r.Event {
	case Blocked:
		if r.Action == GoLeft {
			return []string{"Nao ha caminho a esquerda."}
		}
		return []string{"Nao ha caminho a direita."}
	case InvalidOption:
		return []string{"Opcao invalida. Tente novamente."}
	case Quitted:
		return []string{"Saindo da exploracao."}
	case Ended:
		return []string{"Exploracao encerrada."}
	}

	if !r.Entered() {
		return nil
	}

	lines = append(lines, "Voce esta em: "+r.Room.Name)
	switch {
	case r.Clue == "":
		lines = append(lines, "Nenhuma pista neste comodo.")
	case r.Collected == clues.Duplicate:
		lines = append(lines, fmt.Sprintf("Pista ja coletada: %s", r.Clue))
	default:
		lines = append(lines, fmt.Sprintf("Pista encontrada: %s", r.Clue))
	}

	if r.DeadEnd {
		lines = append(lines, "Este comodo nao possui mais caminhos. Exploracao encerrada.")
	}
	return lines
}

// Menu is the prompt of available directions, empty once exploration is over.
func (r Report) Menu() string {
	if r.Stopped || r.Room == nil {
		return ""
	}
	return fmt.Sprintf("Escolha o caminho: (e) esquerda%s | (d) direita%s | (s) sair",
		unavailable(r.Left), unavailable(r.Right))
}

func unavailable(ok bool) string {
	if ok {
		return ""
	}
	return " (indisponivel)"
}
