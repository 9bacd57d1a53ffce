// Package clues keeps the clues found during an investigation in an
// unbalanced binary search tree, ordered byte-wise and free of duplicates.
package clues

import (
	"iter"
	"slices"
)

// Outcome is the result of an insertion.
type Outcome int

const (
	Inserted Outcome = iota
	Duplicate
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Duplicate:
		return "duplicate"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

type entry struct {
	text  string
	left  *entry
	right *entry
}

// Set is an ordered set of clue texts. The zero value is an empty set.
type Set struct {
	root *entry
	size int
}

func New() *Set {
	return &Set{}
}

// Insert adds text to the set. Empty text is rejected; text already present
// leaves the set unchanged and reports Duplicate.
func (s *Set) Insert(text string) Outcome {
	if text == "" {
		return Rejected
	}

	link := &s.root
	for *link != nil {
		node := *link
		switch {
		case text == node.text:
			return Duplicate
		case text < node.text:
			link = &node.left
		default:
			link = &node.right
		}
	}
	*link = &entry{text: text}
	s.size++
	return Inserted
}

// Contains reports whether text has been inserted.
func (s *Set) Contains(text string) bool {
	node := s.root
	for node != nil {
		switch {
		case text == node.text:
			return true
		case text < node.text:
			node = node.left
		default:
			node = node.right
		}
	}
	return false
}

func (s *Set) Len() int {
	return s.size
}

// All returns the clues in ascending order. The sequence walks the tree
// lazily and can be ranged over any number of times.
func (s *Set) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		inorder(s.root, yield)
	}
}

func inorder(node *entry, yield func(string) bool) bool {
	if node == nil {
		return true
	}
	return inorder(node.left, yield) &&
		yield(node.text) &&
		inorder(node.right, yield)
}

// Sorted returns a copy of the clues in ascending order.
func (s *Set) Sorted() []string {
	return slices.Collect(s.All())
}

// Clear drops every clue.
func (s *Set) Clear() {
	s.root = nil
	s.size = 0
}
