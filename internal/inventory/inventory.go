// Package inventory tracks how many of each item component the user owns
package inventory

import (
	"github.com/KirkDiggler/tft-notebook/internal/entities/tft"
	"github.com/KirkDiggler/tft-notebook/internal/errors"
)

// Inventory maps component identifiers to non-negative counts.
// It is not safe for concurrent use.
type Inventory struct {
	components []tft.ComponentState
	index      map[string]int
}

// New seeds a count of zero for every component
func New(components []tft.Item) *Inventory {
	inv := &Inventory{
		components: make([]tft.ComponentState, 0, len(components)),
		index:      make(map[string]int, len(components)),
	}
	for _, c := range components {
		if _, dup := inv.index[c.APIName]; dup {
			continue
		}
		inv.index[c.APIName] = len(inv.components)
		inv.components = append(inv.components, tft.ComponentState{Component: c.Clone()})
	}
	return inv
}

// Increment adds one to the component's count and returns the new count
func (inv *Inventory) Increment(id string) (int, error) {
	i, err := inv.lookup(id)
	if err != nil {
		return 0, err
	}
	inv.components[i].Count++
	return inv.components[i].Count, nil
}

// Decrement removes one from the component's count, stopping at zero, and
// returns the new count
func (inv *Inventory) Decrement(id string) (int, error) {
	i, err := inv.lookup(id)
	if err != nil {
		return 0, err
	}
	if inv.components[i].Count > 0 {
		inv.components[i].Count--
	}
	return inv.components[i].Count, nil
}

// Count returns the component's count
func (inv *Inventory) Count(id string) (int, error) {
	i, err := inv.lookup(id)
	if err != nil {
		return 0, err
	}
	return inv.components[i].Count, nil
}

// Has reports whether id is a known component
func (inv *Inventory) Has(id string) bool {
	_, ok := inv.index[id]
	return ok
}

// Counts returns a snapshot of every count keyed by component identifier
func (inv *Inventory) Counts() map[string]int {
	out := make(map[string]int, len(inv.components))
	for _, c := range inv.components {
		out[c.Component.APIName] = c.Count
	}
	return out
}

// States returns every component with its count, in seeding order
func (inv *Inventory) States() []tft.ComponentState {
	out := make([]tft.ComponentState, len(inv.components))
	copy(out, inv.components)
	return out
}

// Reset sets every count back to zero
func (inv *Inventory) Reset() {
	for i := range inv.components {
		inv.components[i].Count = 0
	}
}

func (inv *Inventory) lookup(id string) (int, error) {
	i, ok := inv.index[id]
	if !ok {
		return 0, errors.NotFoundf("component %s not found", id).WithMeta("component", id)
	}
	return i, nil
}
