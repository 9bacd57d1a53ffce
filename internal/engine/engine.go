package engine

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/EstruturaDados/detective-quest-OruamC/internal/clues"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/mansion"
	"go.uber.org/zap"
)

var (
	ErrNotStarted     = errors.New("exploration has not started")
	ErrAlreadyStarted = errors.New("exploration already started")
	ErrStopped        = errors.New("exploration is over")
)

// Action is a decoded player choice.
type Action int

const (
	Invalid Action = iota
	GoLeft
	GoRight
	Quit
)

func (a Action) String() string {
	switch a {
	case GoLeft:
		return "left"
	case GoRight:
		return "right"
	case Quit:
		return "quit"
	}
	return "invalid"
}

// ParseAction decodes the first character of input: e goes left, d goes
// right, s quits. Case is ignored and anything else is Invalid.
func ParseAction(input string) Action {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(input))
	switch unicode.ToLower(r) {
	case 'e':
		return GoLeft
	case 'd':
		return GoRight
	case 's':
		return Quit
	}
	return Invalid
}

// Event says what a transition did.
type Event int

const (
	Arrived Event = iota
	Moved
	Blocked
	InvalidOption
	Quitted
	Ended
)

// Transition is the pure navigation rule: given the occupied room and an
// action, it returns the room occupied afterwards and what happened. A nil
// room or a dead end admits no transition.
func Transition(room *mansion.Room, action Action) (*mansion.Room, Event) {
	if room == nil || room.IsDeadEnd() {
		return room, Ended
	}

	switch action {
	case GoLeft:
		if room.HasLeft() {
			return room.Left, Moved
		}
		return room, Blocked
	case GoRight:
		if room.HasRight() {
			return room.Right, Moved
		}
		return room, Blocked
	case Quit:
		return nil, Quitted
	}
	return room, InvalidOption
}

// Engine walks a mansion from its root, dropping every clue it finds into a
// clue set.
type Engine struct {
	root    *mansion.Room
	current *mansion.Room
	clues   *clues.Set
	logger  *zap.Logger
	path    []string
	started bool
	stopped bool
}

func New(root *mansion.Room, set *clues.Set, logger *zap.Logger) *Engine {
	if set == nil {
		set = clues.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		root:   root,
		clues:  set,
		logger: logger,
	}
}

// Start enters the root room.
func (e *Engine) Start() (Report, error) {
	if e.started {
		return Report{}, ErrAlreadyStarted
	}
	e.started = true

	if e.root == nil {
		e.stopped = true
		return Report{Event: Ended, Stopped: true}, nil
	}
	return e.arrive(e.root, Arrived), nil
}

// Step applies one player action.
func (e *Engine) Step(action Action) (Report, error) {
	if !e.started {
		return Report{}, ErrNotStarted
	}
	if e.stopped {
		return Report{}, ErrStopped
	}

	next, ev := Transition(e.current, action)
	e.logger.Debug("step",
		zap.String("room", e.current.Name),
		zap.Stringer("action", action),
		zap.Stringer("event", ev),
	)

	switch ev {
	case Moved:
		r := e.arrive(next, Moved)
		r.Action = action
		return r, nil
	case Quitted, Ended:
		e.stopped = true
		return Report{Event: ev, Action: action, Stopped: true}, nil
	}
	return Report{
		Event:  ev,
		Action: action,
		Room:   e.current,
		Left:   e.current.HasLeft(),
		Right:  e.current.HasRight(),
	}, nil
}

// arrive occupies room and collects its clue once for this arrival.
func (e *Engine) arrive(room *mansion.Room, ev Event) Report {
	e.current = room
	e.path = append(e.path, room.Name)

	r := Report{
		Event: ev,
		Room:  room,
		Left:  room.HasLeft(),
		Right: room.HasRight(),
	}
	if room.HasClue() {
		r.Clue = room.Clue
		r.Collected = e.clues.Insert(room.Clue)
		e.logger.Info("clue found",
			zap.String("room", room.Name),
			zap.String("clue", room.Clue),
			zap.Stringer("outcome", r.Collected),
		)
	}

	if room.IsDeadEnd() {
		e.stopped = true
		r.DeadEnd = true
		r.Stopped = true
		e.logger.Info("dead end", zap.String("room", room.Name))
	}
	return r
}

// Current is the occupied room, nil before Start.
func (e *Engine) Current() *mansion.Room { return e.current }

func (e *Engine) Stopped() bool { return e.stopped }

// Path lists the names of the rooms entered, in order.
func (e *Engine) Path() []string {
	return append([]string(nil), e.path...)
}

// Clues is the set the engine collects into.
func (e *Engine) Clues() *clues.Set { return e.clues }
