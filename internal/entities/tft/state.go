package tft

import "fmt"

// ChampionState is a champion and the ordered list of items assigned to it.
// It is also the persisted form of a build.
type ChampionState struct {
	Champion Champion `json:"champion"`
	Items    []Item   `json:"items"`
}

// Clone returns a copy whose item list can be mutated independently
func (s ChampionState) Clone() ChampionState {
	items := make([]Item, len(s.Items))
	for i, item := range s.Items {
		items[i] = item.Clone()
	}
	return ChampionState{Champion: s.Champion, Items: items}
}

// String renders "Name: item, item"
func (s ChampionState) String() string {
	return fmt.Sprintf("%s: %s", s.Champion.Name, JoinNames(s.Items))
}

// ComponentState is a component and how many of it the user owns
type ComponentState struct {
	Component Item `json:"component"`
	Count     int  `json:"count"`
}
