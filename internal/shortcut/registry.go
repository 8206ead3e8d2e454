// Package shortcut holds the fifteen key-addressable routing slots.
package shortcut

import (
	"strings"

	"imgsort/internal/errors"
	"imgsort/pkg/types"
)

// Unassigned is the label shown for a slot without a target.
const Unassigned = "--None--"

// keys are laid out as three keyboard rows of five.
var keys = []string{
	"Q", "W", "E", "R", "T",
	"A", "S", "D", "F", "G",
	"Z", "X", "C", "V", "B",
}

// Slot is one routing destination.
type Slot struct {
	Key    string
	Target string
}

// Assigned reports whether the slot has a target.
func (s Slot) Assigned() bool {
	return s.Target != ""
}

// Registry maps the fixed key alphabet to slots and holds the global mode.
type Registry struct {
	slots map[string]*Slot
	mode  types.Mode
}

// NewRegistry returns fifteen unassigned slots in Move mode.
func NewRegistry() *Registry {
	r := &Registry{slots: make(map[string]*Slot, len(keys)), mode: types.Move}
	for _, k := range keys {
		r.slots[k] = &Slot{Key: k}
	}
	return r
}

// Keys returns the alphabet in display order.
func Keys() []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Normalize upper-cases key and checks it belongs to the alphabet.
func Normalize(key string) (string, error) {
	k := strings.ToUpper(strings.TrimSpace(key))
	for _, known := range keys {
		if k == known {
			return k, nil
		}
	}
	return "", errors.NewShortcutError("unknown shortcut key", key, errors.UnknownKey)
}

// IsKey reports whether key (any case) names a slot.
func IsKey(key string) bool {
	_, err := Normalize(key)
	return err == nil
}

// Row returns 0, 1 or 2 for the keyboard row a valid key sits on.
func Row(key string) int {
	k, err := Normalize(key)
	if err != nil {
		return -1
	}
	for i, known := range keys {
		if known == k {
			return i / 5
		}
	}
	return -1
}

// Assign sets or replaces the slot's target. The path is not checked here.
func (r *Registry) Assign(key, target string) error {
	k, err := Normalize(key)
	if err != nil {
		return err
	}
	r.slots[k].Target = target
	return nil
}

// Clear unsets the slot's target.
func (r *Registry) Clear(key string) error {
	k, err := Normalize(key)
	if err != nil {
		return err
	}
	r.slots[k].Target = ""
	return nil
}

// Slot returns a copy of the slot for key.
func (r *Registry) Slot(key string) (Slot, error) {
	k, err := Normalize(key)
	if err != nil {
		return Slot{}, err
	}
	return *r.slots[k], nil
}

// Slots returns copies of every slot in display order.
func (r *Registry) Slots() []Slot {
	out := make([]Slot, 0, len(keys))
	for _, k := range keys {
		out = append(out, *r.slots[k])
	}
	return out
}

// Label is the slot's target or the unassigned sentinel.
func (r *Registry) Label(key string) string {
	s, err := r.Slot(key)
	if err != nil || !s.Assigned() {
		return Unassigned
	}
	return s.Target
}

// SetGlobalMode sets the routing mode for every slot.
func (r *Registry) SetGlobalMode(mode types.Mode) {
	r.mode = mode
}

// ToggleMode flips between Move and Copy and returns the new mode.
func (r *Registry) ToggleMode() types.Mode {
	r.mode = r.mode.Toggle()
	return r.mode
}

// Mode returns the global routing mode.
func (r *Registry) Mode() types.Mode {
	return r.mode
}
