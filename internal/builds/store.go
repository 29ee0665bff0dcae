// Package builds is the per-champion build state: which items are assigned to
// which champion, merged against any previously saved state.
package builds

import (
	"github.com/KirkDiggler/tft-notebook/internal/entities/tft"
	"github.com/KirkDiggler/tft-notebook/internal/errors"
)

// Store holds one ChampionState per roster champion, in roster order.
// It is not safe for concurrent use.
type Store struct {
	states []tft.ChampionState
	index  map[string]int
}

// Attach builds a store for roster. A champion carries over its saved items
// when persisted holds exactly one entry with the same name; otherwise it
// starts empty. Saved entries for champions missing from roster are ignored.
//
// Matching is by display name, so a renamed champion loses its build.
// Champions are also addressed by display name, so when the roster repeats a
// name only the first champion with it is kept.
func Attach(roster []tft.Champion, persisted []tft.ChampionState) *Store {
	byName := make(map[string][]tft.ChampionState, len(persisted))
	for _, state := range persisted {
		byName[state.Champion.Name] = append(byName[state.Champion.Name], state)
	}

	states := make([]tft.ChampionState, len(roster))
	for i, champ := range roster {
		states[i] = tft.ChampionState{Champion: champ, Items: []tft.Item{}}
		if matches := byName[champ.Name]; len(matches) == 1 {
			states[i].Items = matches[0].Clone().Items
		}
	}
	return newStore(states)
}

// Deserialize rebuilds a store from its persisted form
func Deserialize(states []tft.ChampionState) *Store {
	cloned := make([]tft.ChampionState, len(states))
	for i, state := range states {
		cloned[i] = state.Clone()
	}
	return newStore(cloned)
}

func newStore(states []tft.ChampionState) *Store {
	index := make(map[string]int, len(states))
	kept := states[:0]
	for _, state := range states {
		if _, dup := index[state.Champion.Name]; dup {
			continue
		}
		index[state.Champion.Name] = len(kept)
		kept = append(kept, state)
	}
	return &Store{states: kept, index: index}
}

// Serialize returns the persisted form of the store
func (s *Store) Serialize() []tft.ChampionState {
	return s.States()
}

// States returns copies of every champion state in roster order
func (s *Store) States() []tft.ChampionState {
	out := make([]tft.ChampionState, len(s.states))
	for i, state := range s.states {
		out[i] = state.Clone()
	}
	return out
}

// Len returns the number of champions in the store
func (s *Store) Len() int {
	return len(s.states)
}

// Get returns a copy of one champion's state
func (s *Store) Get(champion string) (tft.ChampionState, error) {
	i, err := s.lookup(champion)
	if err != nil {
		return tft.ChampionState{}, err
	}
	return s.states[i].Clone(), nil
}

// Assign appends item to the champion's build. The same item may be
// assigned more than once.
func (s *Store) Assign(champion string, item tft.Item) error {
	i, err := s.lookup(champion)
	if err != nil {
		return err
	}
	s.states[i].Items = append(s.states[i].Items, item.Clone())
	return nil
}

// Unassign removes the first item named itemName from the champion's build.
// It reports whether an item was removed; an absent item is not an error.
func (s *Store) Unassign(champion, itemName string) (bool, error) {
	i, err := s.lookup(champion)
	if err != nil {
		return false, err
	}

	items := s.states[i].Items
	for j := range items {
		if items[j].Name == itemName {
			s.states[i].Items = append(items[:j:j], items[j+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Clear empties the champion's build
func (s *Store) Clear(champion string) error {
	i, err := s.lookup(champion)
	if err != nil {
		return err
	}
	s.states[i].Items = []tft.Item{}
	return nil
}

func (s *Store) lookup(champion string) (int, error) {
	i, ok := s.index[champion]
	if !ok {
		return 0, errors.NotFoundf("champion %s not found", champion).WithMeta("champion", champion)
	}
	return i, nil
}
