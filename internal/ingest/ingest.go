// Package ingest turns the raw CommunityDragon TFT document into the
// notebook's catalog: playable champions of one set, completed items, and the
// components those items are built from.
package ingest

import (
	"log/slog"
	"sort"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/KirkDiggler/tft-notebook/internal/entities/tft"
	"github.com/KirkDiggler/tft-notebook/internal/errors"
)

const (
	// DefaultSetIndex selects set 8 stage 2 in the setData array
	DefaultSetIndex = 18

	keySetData   = "setData"
	keyItems     = "items"
	keyChampions = "champions"

	placeholderName = "tft_item_name"
	tutorialMarker  = "Tutorial"
)

// excludedGenerations are digits that tag an item identifier as belonging to
// another set generation
var excludedGenerations = []string{"5", "6", "7"}

// Catalog is the validated result of one ingestion
type Catalog struct {
	SetIndex   int
	SetName    string
	Mutator    string
	Champions  []tft.Champion
	Items      []tft.Item
	Components []tft.Item
}

// SetInfo describes one entry of the setData array
type SetInfo struct {
	Index   int    `json:"-"`
	Name    string `json:"name"`
	Mutator string `json:"mutator"`
	Number  int    `json:"number"`
}

type setEntry struct {
	SetInfo
	Champions json.RawMessage `json:"champions"`
}

// Filter ingests doc, selecting the set at setIndex. Any shape problem is an
// ingestion error; there is no partial result.
func Filter(doc []byte, setIndex int) (*Catalog, error) {
	top, err := decodeTop(doc)
	if err != nil {
		return nil, err
	}

	set, err := selectSet(top, setIndex)
	if err != nil {
		return nil, err
	}

	champions, err := decodeChampions(set.Champions, setIndex)
	if err != nil {
		return nil, err
	}

	allItems, err := decodeItems(top)
	if err != nil {
		return nil, err
	}

	completed := completedItems(allItems)

	components, err := resolveComponents(completed, allItems)
	if err != nil {
		return nil, err
	}

	slog.Debug("ingested game data",
		"set_index", setIndex,
		"set_name", set.Name,
		"champions", len(champions),
		"items", len(completed),
		"components", len(components))

	return &Catalog{
		SetIndex:   setIndex,
		SetName:    set.Name,
		Mutator:    set.Mutator,
		Champions:  champions,
		Items:      completed,
		Components: components,
	}, nil
}

// ListSets returns the entries of the setData array so a caller can pick a
// set index other than the default
func ListSets(doc []byte) ([]SetInfo, error) {
	top, err := decodeTop(doc)
	if err != nil {
		return nil, err
	}

	entries, err := decodeSetData(top)
	if err != nil {
		return nil, err
	}

	sets := make([]SetInfo, 0, len(entries))
	for i, raw := range entries {
		var info SetInfo
		if err := json.Unmarshal(raw, &info); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeIngestion, "setData[%d] is not an object", i).
				WithMeta("index", i)
		}
		info.Index = i
		sets = append(sets, info)
	}
	return sets, nil
}

func decodeTop(doc []byte) (map[string]json.RawMessage, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(doc, &top); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeIngestion, "game data is not a JSON object")
	}
	return top, nil
}

func decodeSetData(top map[string]json.RawMessage) ([]json.RawMessage, error) {
	raw, ok := top[keySetData]
	if !ok || isNull(raw) {
		return nil, errors.Ingestion("game data has no setData").WithMeta("key", keySetData)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeIngestion, "setData is not an array").
			WithMeta("key", keySetData)
	}
	return entries, nil
}

func selectSet(top map[string]json.RawMessage, setIndex int) (*setEntry, error) {
	entries, err := decodeSetData(top)
	if err != nil {
		return nil, err
	}

	if setIndex < 0 || setIndex >= len(entries) {
		return nil, errors.Ingestionf("set index %d out of range (setData has %d entries)", setIndex, len(entries)).
			WithMeta("index", setIndex)
	}

	var set setEntry
	if err := json.Unmarshal(entries[setIndex], &set); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeIngestion, "setData[%d] is not an object", setIndex).
			WithMeta("index", setIndex)
	}
	if set.Champions == nil || isNull(set.Champions) {
		return nil, errors.Ingestionf("setData[%d] has no champions", setIndex).
			WithMeta("index", setIndex).
			WithMeta("key", keyChampions)
	}
	return &set, nil
}

// decodeChampions applies rule 1: champions without traits are dropped
func decodeChampions(raw json.RawMessage, setIndex int) ([]tft.Champion, error) {
	var all []tft.Champion
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeIngestion, "setData[%d].champions is not a champion array", setIndex).
			WithMeta("index", setIndex).
			WithMeta("key", keyChampions)
	}

	champions := make([]tft.Champion, 0, len(all))
	for _, champ := range all {
		champ.Normalize()
		if !champ.IsPlayable() {
			continue
		}
		champions = append(champions, champ)
	}
	return champions, nil
}

func decodeItems(top map[string]json.RawMessage) ([]tft.Item, error) {
	raw, ok := top[keyItems]
	if !ok || isNull(raw) {
		return nil, errors.Ingestion("game data has no items").WithMeta("key", keyItems)
	}

	var items []tft.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeIngestion, "items is not an item array").
			WithMeta("key", keyItems)
	}
	for i := range items {
		items[i].Normalize()
	}
	return items, nil
}

// completedItems applies rules 2 and 3
func completedItems(all []tft.Item) []tft.Item {
	completed := make([]tft.Item, 0, len(all))
	for _, item := range all {
		if !item.IsCompleted() {
			continue
		}
		if excluded(item) {
			continue
		}
		completed = append(completed, item)
	}
	return completed
}

func excluded(item tft.Item) bool {
	for _, digit := range excludedGenerations {
		if strings.Contains(item.APIName, digit) {
			return true
		}
	}
	if strings.Contains(item.Name, placeholderName) {
		return true
	}
	for _, component := range item.Composition {
		if strings.Contains(component, tutorialMarker) {
			return true
		}
	}
	return false
}

// resolveComponents applies rule 4. Components are looked up in the
// unfiltered catalog since they fail the has-composition test themselves.
func resolveComponents(completed, all []tft.Item) ([]tft.Item, error) {
	byName := make(map[string]tft.Item, len(all))
	for _, item := range all {
		if _, seen := byName[item.APIName]; !seen {
			byName[item.APIName] = item
		}
	}

	wanted := make(map[string]struct{})
	for _, item := range completed {
		for _, component := range item.Composition {
			wanted[component] = struct{}{}
		}
	}

	components := make([]tft.Item, 0, len(wanted))
	for apiName := range wanted {
		item, ok := byName[apiName]
		if !ok {
			return nil, errors.Ingestionf("component %s is not in the item catalog", apiName).
				WithMeta("component", apiName)
		}
		components = append(components, item)
	}

	sort.Slice(components, func(i, j int) bool {
		return components[i].APIName < components[j].APIName
	})
	return components, nil
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}
