package models

// Layout is the compiled-in description of a mansion: its room tree and the
// rules linking each clue to the suspect it incriminates.
type Layout struct {
	Title string   `yaml:"title"`
	Room  RoomSpec `yaml:"room"` // root of the tree, e.g. "Hall de Entrada"
	Rules []Rule   `yaml:"rules"`
}

// RoomSpec describes one room and, recursively, the rooms reachable from it.
type RoomSpec struct {
	Name  string    `yaml:"name"`
	Clue  string    `yaml:"clue,omitempty"` // empty means the room holds no clue
	Left  *RoomSpec `yaml:"left,omitempty"`
	Right *RoomSpec `yaml:"right,omitempty"`
}

// Rule maps the exact text of a clue to a suspect name.
type Rule struct {
	Clue    string `yaml:"clue"`
	Suspect string `yaml:"suspect"`
}

const (
	MaxNameLen = 63
	MaxClueLen = 127
)
