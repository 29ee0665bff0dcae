// Package ranking orders champions by how much of an owned component
// inventory their current builds would use.
package ranking

import (
	"sort"

	"github.com/KirkDiggler/tft-notebook/internal/entities/tft"
)

// Counter is the read side of a component inventory
type Counter interface {
	Counts() map[string]int
}

// Result is one champion's state and its match score
type Result struct {
	State tft.ChampionState
	Score int
}

// Demand expands a build into the multiset of components it consumes.
// A component listed twice in one item counts twice, and so does a component
// shared by two items.
func Demand(items []tft.Item) map[string]int {
	demand := make(map[string]int)
	for _, item := range items {
		for _, component := range item.Composition {
			demand[component]++
		}
	}
	return demand
}

// Score sums min(owned, consumed) over every component the build consumes
// and the inventory knows. A champion with no items scores zero.
func Score(state tft.ChampionState, owned map[string]int) int {
	score := 0
	for component, consumed := range Demand(state.Items) {
		have, ok := owned[component]
		if !ok {
			continue
		}
		score += min(have, consumed)
	}
	return score
}

// Rank scores every state against inv and orders them by descending score.
// Equal scores keep their input order.
func Rank(states []tft.ChampionState, inv Counter) []Result {
	owned := inv.Counts()

	results := make([]Result, len(states))
	for i, state := range states {
		results[i] = Result{State: state, Score: Score(state, owned)}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
