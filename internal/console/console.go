// Package console plays the game over plain line-based input and output,
// for pipes and terminals where the full-screen interface is unwanted.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/EstruturaDados/detective-quest-OruamC/internal/engine"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/narrator"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/suspects"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/verdict"
	"go.uber.org/zap"
)

// ErrNoAccusation is returned when input ends before a suspect is named.
var ErrNoAccusation = errors.New("input ended before an accusation was made")

type Shell struct {
	in       *bufio.Scanner
	out      io.Writer
	narrator narrator.Narrator
	logger   *zap.Logger
}

func New(in io.Reader, out io.Writer, n narrator.Narrator, logger *zap.Logger) *Shell {
	if n == nil {
		n = narrator.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		in:       bufio.NewScanner(in),
		out:      out,
		narrator: n,
		logger:   logger,
	}
}

// Play runs a whole investigation: exploration until the engine stops, the
// list of clues, then one accusation.
func (s *Shell) Play(ctx context.Context, eng *engine.Engine, index *suspects.Index) (verdict.Verdict, error) {
	s.println("Bem-vindo(a) ao Detective Quest!")

	r, err := eng.Start()
	if err != nil {
		return verdict.Verdict{}, err
	}
	s.report(ctx, r)

	for !eng.Stopped() {
		s.printf("%s\nOpcao: ", r.Menu())
		line, ok := s.readLine()
		action := engine.Quit
		if ok {
			action = engine.ParseAction(line)
		}

		r, err = eng.Step(action)
		if err != nil {
			return verdict.Verdict{}, err
		}
		s.report(ctx, r)
	}

	s.println("\nSalas visitadas: " + strings.Join(eng.Path(), " -> "))
	s.println("Pistas coletadas:")
	for _, line := range verdict.ClueList(eng.Clues()) {
		s.println(line)
	}

	accused, err := s.accusation(index)
	if err != nil {
		return verdict.Verdict{}, err
	}

	v := verdict.Judge(eng.Clues(), index, accused)
	s.logger.Info("verdict",
		zap.String("accused", v.Accused),
		zap.Int("count", v.Count),
		zap.Stringer("outcome", v.Outcome),
	)
	s.println(v.Message())
	return v, nil
}

func (s *Shell) accusation(index *suspects.Index) (string, error) {
	if names := index.Suspects(); len(names) > 0 {
		s.println("Suspeitos: " + strings.Join(names, ", "))
	}
	for {
		s.printf("Quem voce acusa? ")
		line, ok := s.readLine()
		if !ok {
			return "", ErrNoAccusation
		}
		name, err := verdict.ParseAccusation(line)
		if err != nil {
			s.println("Entrada invalida. Digite o nome de um suspeito.")
			continue
		}
		return name, nil
	}
}

func (s *Shell) report(ctx context.Context, r engine.Report) {
	s.println("")
	for _, line := range r.Lines() {
		s.println(line)
	}
	if !r.Entered() {
		return
	}

	text, err := s.narrator.Describe(ctx, r.Room)
	if err != nil {
		s.logger.Warn("narration failed", zap.String("room", r.Room.Name), zap.Error(err))
		return
	}
	if text != "" {
		s.println(text)
	}
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
