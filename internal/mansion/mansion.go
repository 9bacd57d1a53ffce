package mansion

import (
	_ "embed"
	"fmt"

	"github.com/EstruturaDados/detective-quest-OruamC/internal/models"
)

//go:embed mansion.yaml
var layoutYAML []byte

// Room is one node of the mansion. Each room owns its children; nothing
// points back up the tree.
type Room struct {
	Name  string
	Clue  string
	Left  *Room
	Right *Room
}

func (r *Room) HasLeft() bool  { return r.Left != nil }
func (r *Room) HasRight() bool { return r.Right != nil }
func (r *Room) HasClue() bool  { return r.Clue != "" }

// IsDeadEnd reports whether the room has no way forward.
func (r *Room) IsDeadEnd() bool {
	return r.Left == nil && r.Right == nil
}

// Layout returns the compiled-in mansion layout. It panics if the embedded
// document is invalid, since the binary cannot do anything useful without it.
func Layout() *models.Layout {
	layout, err := models.ParseLayout(layoutYAML)
	if err != nil {
		panic(fmt.Sprintf("mansion: embedded layout: %v", err))
	}
	return layout
}

// Build constructs the fixed mansion and returns its root, the
// "Hall de Entrada".
func Build() *Room {
	return FromLayout(Layout().Room)
}

// FromLayout builds a room tree from its description. Each child is assigned
// exactly once, top-down.
func FromLayout(spec models.RoomSpec) *Room {
	room := &Room{Name: spec.Name, Clue: spec.Clue}
	if spec.Left != nil {
		room.Left = FromLayout(*spec.Left)
	}
	if spec.Right != nil {
		room.Right = FromLayout(*spec.Right)
	}
	return room
}

// Walk visits the tree in pre-order, passing each room with its depth
// (the root is at depth 0).
func Walk(root *Room, fn func(room *Room, depth int)) {
	walk(root, 0, fn)
}

func walk(room *Room, depth int, fn func(*Room, int)) {
	if room == nil {
		return
	}
	fn(room, depth)
	walk(room.Left, depth+1, fn)
	walk(room.Right, depth+1, fn)
}

// Release tears the tree down post-order, children before parent, and
// returns the number of rooms released. A nil root is a no-op.
func Release(root *Room) int {
	if root == nil {
		return 0
	}
	n := Release(root.Left) + Release(root.Right)
	root.Left, root.Right = nil, nil
	return n + 1
}
