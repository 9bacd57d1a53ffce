package engine

import (
	"testing"

	"github.com/EstruturaDados/detective-quest-OruamC/internal/clues"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/mansion"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	return New(mansion.Build(), clues.New(), zaptest.NewLogger(t))
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		input string
		want  Action
	}{
		{"e", GoLeft},
		{"E", GoLeft},
		{"esquerda", GoLeft},
		{"d", GoRight},
		{"D\n", GoRight},
		{"s", Quit},
		{"S", Quit},
		{"x", Invalid},
		{"", Invalid},
		{"\n", Invalid},
		{"é", Invalid},
	}
	for _, tt := range tests {
		if got := ParseAction(tt.input); got != tt.want {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTransition(t *testing.T) {
	root := mansion.Build()

	next, ev := Transition(root, GoLeft)
	assert.Equal(t, Moved, ev)
	assert.Equal(t, "Sala de Estar", next.Name)

	next, ev = Transition(root, GoRight)
	assert.Equal(t, Moved, ev)
	assert.Equal(t, "Jardim", next.Name)

	next, ev = Transition(root, Invalid)
	assert.Equal(t, InvalidOption, ev)
	assert.Same(t, root, next)

	next, ev = Transition(root, Quit)
	assert.Equal(t, Quitted, ev)
	assert.Nil(t, next)

	leaf := root.Left.Left
	for _, a := range []Action{GoLeft, GoRight, Quit, Invalid} {
		next, ev = Transition(leaf, a)
		assert.Equal(t, Ended, ev, "action %v", a)
		assert.Same(t, leaf, next)
	}

	_, ev = Transition(nil, GoLeft)
	assert.Equal(t, Ended, ev)
}

func TestTransitionBlocked(t *testing.T) {
	root := mansion.FromLayout(models.RoomSpec{
		Name: "Porao",
		Left: &models.RoomSpec{Name: "Adega"},
	})

	next, ev := Transition(root, GoRight)
	assert.Equal(t, Blocked, ev)
	assert.Same(t, root, next)
}

// Scenario A: left, left from the hall ends in the kitchen.
func TestExploreLeftLeft(t *testing.T) {
	e := newEngine(t)

	r, err := e.Start()
	require.NoError(t, err)
	assert.Equal(t, "Hall de Entrada", r.Room.Name)
	assert.Equal(t, clues.Inserted, r.Collected)
	assert.True(t, r.Left)
	assert.True(t, r.Right)

	r, err = e.Step(GoLeft)
	require.NoError(t, err)
	assert.Equal(t, "Sala de Estar", r.Room.Name)
	assert.Equal(t, "Retrato torto na parede.", r.Clue)

	r, err = e.Step(GoLeft)
	require.NoError(t, err)
	assert.Equal(t, "Cozinha", r.Room.Name)
	assert.True(t, r.DeadEnd)
	assert.True(t, r.Stopped)
	assert.True(t, e.Stopped())

	_, err = e.Step(Quit)
	assert.ErrorIs(t, err, ErrStopped)

	want := []string{
		"Faca molhada na pia.",
		"Pegadas recentes no tapete.",
		"Retrato torto na parede.",
	}
	if diff := cmp.Diff(want, e.Clues().Sorted()); diff != "" {
		t.Errorf("collected clues mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"Hall de Entrada", "Sala de Estar", "Cozinha"}, e.Path())
}

// Scenario C: right, right reaches the study, which ends the game on its own.
func TestExploreRightRightDeadEnd(t *testing.T) {
	e := newEngine(t)
	_, err := e.Start()
	require.NoError(t, err)

	r, err := e.Step(GoRight)
	require.NoError(t, err)
	assert.Equal(t, "Jardim", r.Room.Name)
	assert.Empty(t, r.Clue)
	assert.False(t, r.Stopped)

	r, err = e.Step(GoRight)
	require.NoError(t, err)
	assert.Equal(t, "Escritorio", r.Room.Name)
	assert.True(t, r.DeadEnd)
	assert.True(t, e.Stopped())
	assert.Empty(t, r.Menu())

	_, err = e.Step(GoLeft)
	assert.ErrorIs(t, err, ErrStopped)
	assert.Equal(t, 3, e.Clues().Len())
}

func TestInvalidAndBlockedKeepRoom(t *testing.T) {
	root := mansion.FromLayout(models.RoomSpec{
		Name:  "Hall",
		Clue:  "Pegadas.",
		Right: &models.RoomSpec{Name: "Jardim"},
	})
	set := clues.New()
	e := New(root, set, nil)
	_, err := e.Start()
	require.NoError(t, err)

	r, err := e.Step(Invalid)
	require.NoError(t, err)
	assert.Equal(t, InvalidOption, r.Event)
	assert.Same(t, root, e.Current())
	assert.Equal(t, []string{"Opcao invalida. Tente novamente."}, r.Lines())

	r, err = e.Step(GoLeft)
	require.NoError(t, err)
	assert.Equal(t, Blocked, r.Event)
	assert.Same(t, root, e.Current())
	assert.Equal(t, []string{"Nao ha caminho a esquerda."}, r.Lines())
	assert.Contains(t, r.Menu(), "(e) esquerda (indisponivel)")

	// Staying put must not collect the clue again.
	assert.Equal(t, []string{"Hall"}, e.Path())
	assert.Equal(t, 1, set.Len())
}

func TestQuit(t *testing.T) {
	e := newEngine(t)
	_, err := e.Start()
	require.NoError(t, err)

	r, err := e.Step(Quit)
	require.NoError(t, err)
	assert.Equal(t, Quitted, r.Event)
	assert.True(t, r.Stopped)
	assert.Nil(t, r.Room)
	assert.Equal(t, []string{"Saindo da exploracao."}, r.Lines())
	assert.Equal(t, "Hall de Entrada", e.Current().Name)
}

func TestStartRules(t *testing.T) {
	e := newEngine(t)
	_, err := e.Step(GoLeft)
	assert.ErrorIs(t, err, ErrNotStarted)

	_, err = e.Start()
	require.NoError(t, err)
	_, err = e.Start()
	assert.ErrorIs(t, err, ErrAlreadyStarted)
}

func TestStartAtDeadEnd(t *testing.T) {
	e := New(mansion.FromLayout(models.RoomSpec{Name: "Cela"}), clues.New(), nil)

	r, err := e.Start()
	require.NoError(t, err)
	assert.True(t, r.DeadEnd)
	assert.True(t, e.Stopped())
	assert.Contains(t, r.Lines(), "Nenhuma pista neste comodo.")
}

func TestNilSetDefaultsToEmpty(t *testing.T) {
	e := New(mansion.Build(), nil, nil)

	r, err := e.Start()
	require.NoError(t, err)
	assert.Equal(t, clues.Inserted, r.Collected)
	require.NotNil(t, e.Clues())
	assert.Equal(t, []string{"Pegadas recentes no tapete."}, e.Clues().Sorted())
}

func TestStartWithoutRoot(t *testing.T) {
	e := New(nil, clues.New(), nil)

	r, err := e.Start()
	require.NoError(t, err)
	assert.Equal(t, Ended, r.Event)
	assert.True(t, e.Stopped())
}

func TestDuplicateClueReported(t *testing.T) {
	// Two rooms holding the same clue text.
	root := mansion.FromLayout(models.RoomSpec{
		Name: "Hall",
		Clue: "Pegadas.",
		Left: &models.RoomSpec{
			Name: "Corredor",
			Clue: "Pegadas.",
			Left: &models.RoomSpec{Name: "Quarto"},
		},
	})
	e := New(root, clues.New(), nil)
	_, err := e.Start()
	require.NoError(t, err)

	r, err := e.Step(GoLeft)
	require.NoError(t, err)
	assert.Equal(t, clues.Duplicate, r.Collected)
	assert.Contains(t, r.Lines(), "Pista ja coletada: Pegadas.")
	assert.Equal(t, 1, e.Clues().Len())
}
