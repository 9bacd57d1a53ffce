// Package verdict decides whether an accusation is backed by the clues
// collected during an investigation.
package verdict

import (
	"errors"
	"fmt"
	"strings"

	"github.com/EstruturaDados/detective-quest-OruamC/internal/clues"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/suspects"
)

// Threshold is the number of supporting clues an accusation needs. A single
// clue can be a coincidence.
const Threshold = 2

var ErrEmptyAccusation = errors.New("accusation is empty")

type Outcome int

const (
	Unsustained Outcome = iota
	Sustained
)

func (o Outcome) String() string {
	if o == Sustained {
		return "sustained"
	}
	return "unsustained"
}

// ParseAccusation trims the line read from the player. Empty input is
// rejected so the shell can ask again.
func ParseAccusation(line string) (string, error) {
	name := strings.TrimSpace(line)
	if name == "" {
		return "", ErrEmptyAccusation
	}
	return name, nil
}

// Tally counts the collected clues that point at accused. Clue lookups are
// exact; the suspect name comparison ignores case.
func Tally(set *clues.Set, index *suspects.Index, accused string) int {
	return len(supporting(set, index, accused))
}

func supporting(set *clues.Set, index *suspects.Index, accused string) []string {
	if set.Len() == 0 {
		return nil
	}

	var found []string
	for clue := range set.All() {
		suspect, ok := index.Lookup(clue)
		if ok && strings.EqualFold(suspect, accused) {
			found = append(found, clue)
		}
	}
	return found
}

// Decide applies the threshold to a tally.
func Decide(count int) Outcome {
	if count >= Threshold {
		return Sustained
	}
	return Unsustained
}

// Verdict is the result of an accusation.
type Verdict struct {
	Accused    string
	Count      int
	Outcome    Outcome
	Supporting []string // sorted
}

// Judge tallies the clues against accused and decides the case.
func Judge(set *clues.Set, index *suspects.Index, accused string) Verdict {
	found := supporting(set, index, accused)
	return Verdict{
		Accused:    accused,
		Count:      len(found),
		Outcome:    Decide(len(found)),
		Supporting: found,
	}
}

func (v Verdict) Sustained() bool { return v.Outcome == Sustained }

// Message is the closing line shown to the player.
func (v Verdict) Message() string {
	if v.Sustained() {
		return fmt.Sprintf("Acusacao sustentada! %d pistas apontam para %s. Caso encerrado.", v.Count, v.Accused)
	}
	return fmt.Sprintf("Acusacao nao sustentada: apenas %d pista(s) apontam para %s. O culpado continua solto.", v.Count, v.Accused)
}

// ClueList renders the collected clues in order, or a marker when there are
// none.
func ClueList(set *clues.Set) []string {
	if set.Len() == 0 {
		return []string{"(nenhuma pista)"}
	}
	var lines []string
	for clue := range set.All() {
		lines = append(lines, "- "+clue)
	}
	return lines
}
