// Package tft holds the game-data entities the notebook works with: items,
// champions and the per-champion build state.
package tft

import (
	"strings"

	json "github.com/goccy/go-json"
)

// Item is one entry of the feed's item catalog.
//
// An item with a non-empty Composition is a completed item. An item with an
// empty Composition that some completed item lists in its Composition is a
// component.
type Item struct {
	APIName            string          `json:"apiName"`
	Name               string          `json:"name"`
	Desc               string          `json:"desc"`
	Composition        []string        `json:"composition"`
	AssociatedTraits   []string        `json:"associatedTraits"`
	IncompatibleTraits []string        `json:"incompatibleTraits"`
	Unique             bool            `json:"unique"`
	Effects            json.RawMessage `json:"effects,omitempty"`
	Icon               string          `json:"icon"`
}

// IsCompleted reports whether the item is built from components
func (i *Item) IsCompleted() bool {
	return len(i.Composition) > 0
}

// String returns the display name
func (i Item) String() string {
	return i.Name
}

// Normalize replaces absent lists with empty ones. A null name or desc
// already decodes to the empty string.
func (i *Item) Normalize() {
	if i.Composition == nil {
		i.Composition = []string{}
	}
	if i.AssociatedTraits == nil {
		i.AssociatedTraits = []string{}
	}
	if i.IncompatibleTraits == nil {
		i.IncompatibleTraits = []string{}
	}
}

// Clone returns a copy that shares no slices with i
func (i Item) Clone() Item {
	out := i
	out.Composition = append([]string{}, i.Composition...)
	out.AssociatedTraits = append([]string{}, i.AssociatedTraits...)
	out.IncompatibleTraits = append([]string{}, i.IncompatibleTraits...)
	if i.Effects != nil {
		out.Effects = append(json.RawMessage{}, i.Effects...)
	}
	return out
}

// JoinNames renders a build the way the builder screen shows it
func JoinNames(items []Item) string {
	if len(items) == 0 {
		return "no items"
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return strings.Join(names, ", ")
}
