package notebook

import (
	"github.com/KirkDiggler/tft-notebook/internal/entities/tft"
)

// Screen is one of the two views of the notebook
type Screen string

const (
	// ScreenBuilder is where items are assigned to the focused champion
	ScreenBuilder Screen = "builder"
	// ScreenDeterminer is where components are counted and champions ranked
	ScreenDeterminer Screen = "determiner"
)

// Screens lists every screen
var Screens = []Screen{ScreenBuilder, ScreenDeterminer}

// SortOrder controls the order Champions returns
type SortOrder string

const (
	SortRoster SortOrder = "roster"
	SortName   SortOrder = "name"
	SortCost   SortOrder = "cost"
	SortScore  SortOrder = "score"
)

// SortOrders lists every sort order
var SortOrders = []SortOrder{SortRoster, SortName, SortCost, SortScore}

// SelectChampionInput names the champion to focus
type SelectChampionInput struct {
	Champion string
}

// SelectChampionOutput holds the newly focused champion
type SelectChampionOutput struct {
	State tft.ChampionState
}

// AssignItemInput names the item to add to the focused champion. Item may be
// an identifier or a display name.
type AssignItemInput struct {
	Item string
}

// AssignItemOutput holds the focused champion after the assignment
type AssignItemOutput struct {
	State tft.ChampionState
}

// RemoveItemInput names the item to take off a champion. An empty Champion
// means the focused one.
type RemoveItemInput struct {
	Champion string
	Item     string
}

// RemoveItemOutput reports the champion's build after the removal
type RemoveItemOutput struct {
	State   tft.ChampionState
	Removed bool
}

// ClearItemsInput names the champion to strip. An empty Champion means the
// focused one.
type ClearItemsInput struct {
	Champion string
}

// ClearItemsOutput holds the emptied champion
type ClearItemsOutput struct {
	State tft.ChampionState
}

// AdjustComponentInput moves a component count by Delta, which must be +1 or -1
type AdjustComponentInput struct {
	Component string
	Delta     int
}

// AdjustComponentOutput holds the component after the change
type AdjustComponentOutput struct {
	State tft.ComponentState
}

// SaveInput is empty; the whole build state is always saved
type SaveInput struct{}

// SaveOutput describes the written snapshot
type SaveOutput struct {
	SnapshotID string
	Location   string
	Champions  int
}

// SwitchScreenInput names the screen to show
type SwitchScreenInput struct {
	Screen Screen
}

// SwitchScreenOutput holds the active screen
type SwitchScreenOutput struct {
	Screen Screen
}

// SetSortOrderInput names the order for Champions
type SetSortOrderInput struct {
	Order SortOrder
}

// SetSortOrderOutput holds the active order
type SetSortOrderOutput struct {
	Order SortOrder
}

// WarmIconsOutput counts the icons fetched into the local cache
type WarmIconsOutput struct {
	Resolved int
	Failed   int
}
