package models

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyName    = errors.New("room name is empty")
	ErrNameTooLong  = errors.New("room name is too long")
	ErrClueTooLong  = errors.New("clue is too long")
	ErrUnknownClue  = errors.New("rule refers to a clue no room holds")
	ErrEmptySuspect = errors.New("rule has no suspect")
)

// ParseLayout decodes a YAML layout document and validates it.
func ParseLayout(data []byte) (*Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &layout, nil
}

// Validate checks every room and rule of the layout.
func (l *Layout) Validate() error {
	clues := make(map[string]bool)
	if err := l.Room.validate(l.Room.Name, clues); err != nil {
		return err
	}

	for i, rule := range l.Rules {
		if !clues[rule.Clue] {
			return fmt.Errorf("rule %d (%q): %w", i, rule.Clue, ErrUnknownClue)
		}
		if rule.Suspect == "" {
			return fmt.Errorf("rule %d (%q): %w", i, rule.Clue, ErrEmptySuspect)
		}
	}
	return nil
}

func (r *RoomSpec) validate(path string, clues map[string]bool) error {
	if r.Name == "" {
		return fmt.Errorf("room %q: %w", path, ErrEmptyName)
	}
	if len(r.Name) > MaxNameLen {
		return fmt.Errorf("room %q: %w", path, ErrNameTooLong)
	}
	if len(r.Clue) > MaxClueLen {
		return fmt.Errorf("room %q: %w", path, ErrClueTooLong)
	}
	if r.Clue != "" {
		clues[r.Clue] = true
	}

	if r.Left != nil {
		if err := r.Left.validate(path+"/"+r.Left.Name, clues); err != nil {
			return err
		}
	}
	if r.Right != nil {
		if err := r.Right.validate(path+"/"+r.Right.Name, clues); err != nil {
			return err
		}
	}
	return nil
}
