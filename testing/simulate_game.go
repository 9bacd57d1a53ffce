package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/EstruturaDados/detective-quest-OruamC/internal/clues"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/console"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/engine"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/mansion"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/suspects"
)

// Plays every root-to-leaf walk of the mansion against every suspect and
// prints which accusations hold.
func main() {
	ctx := context.Background()
	layout := mansion.Layout()
	index := suspects.FromRules(layout.Rules, suspects.DefaultBuckets)

	walks := paths(mansion.Build(), "")
	fmt.Printf("--- %s: %d walks, %d suspects ---\n\n", layout.Title, len(walks), len(index.Suspects()))

	for _, walk := range walks {
		for _, suspect := range index.Suspects() {
			eng := engine.New(mansion.Build(), clues.New(), nil)
			input := strings.Join(strings.Split(walk, ""), "\n") + "\n" + suspect + "\n"

			// The transcript is noise here; only the verdict matters.
			v, err := console.New(strings.NewReader(input), io.Discard, nil, nil).Play(ctx, eng, index)
			if err != nil {
				log.Fatalf("walk %s: %v", walk, err)
			}

			mark := " "
			if v.Sustained() {
				mark = "*"
			}
			fmt.Printf("%s %-2s %-40s %-10s %d\n", mark, walk, strings.Join(eng.Path(), " > "), suspect, v.Count)
		}
	}
}

// paths lists the key sequences (e/d) leading from room to each dead end.
func paths(room *mansion.Room, prefix string) []string {
	if room.IsDeadEnd() {
		return []string{prefix}
	}
	var out []string
	if room.HasLeft() {
		out = append(out, paths(room.Left, prefix+"e")...)
	}
	if room.HasRight() {
		out = append(out, paths(room.Right, prefix+"d")...)
	}
	return out
}
