package ingest_test

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/tft-notebook/internal/errors"
	"github.com/KirkDiggler/tft-notebook/internal/ingest"
)

type FilterTestSuite struct {
	suite.Suite
	doc map[string]any
}

func TestFilterSuite(t *testing.T) {
	suite.Run(t, new(FilterTestSuite))
}

func (s *FilterTestSuite) SetupTest() {
	s.doc = map[string]any{
		"setData": []any{
			map[string]any{"name": "Set8", "mutator": "TFTSet8", "number": 8, "champions": []any{}},
			map[string]any{
				"name":    "Set8_Stage2",
				"mutator": "TFTSet8_Stage2",
				"number":  8,
				"champions": []any{
					champion("TFT8_Ahri", "Ahri", 4, "Star Guardian", "Spellslinger"),
					champion("TFT8_Annie", "Annie", 3, "Gadgeteen"),
					champion("TFT8_Egg", "Egg", 0),
					map[string]any{"apiName": "TFT8_Prop", "name": "Prop", "cost": 0, "traits": nil},
				},
			},
		},
		"items": []any{
			item("TFT_Item_BFSword", "B.F. Sword"),
			item("TFT_Item_RecurveBow", "Recurve Bow"),
			item("TFT_Item_NeedlesslyLargeRod", "Needlessly Large Rod"),
			item("TFT_Item_TutorialSword", "Tutorial Sword"),
			item("TFT_Item_InfinityEdge", "Infinity Edge", "TFT_Item_BFSword", "TFT_Item_BFSword"),
			item("TFT_Item_GuinsoosRageblade", "Guinsoo's Rageblade", "TFT_Item_RecurveBow", "TFT_Item_NeedlesslyLargeRod"),
			item("TFT5_Item_InfinityEdgeRadiant", "Radiant Infinity Edge", "TFT_Item_BFSword", "TFT_Item_BFSword"),
			item("TFT6_Item_Hextech", "Hextech Thing", "TFT_Item_BFSword", "TFT_Item_RecurveBow"),
			item("TFT_Item_Placeholder", "tft_item_name_Placeholder", "TFT_Item_BFSword", "TFT_Item_RecurveBow"),
			item("TFT_Item_Tutorial", "Tutorial Blade", "TFT_Item_TutorialSword", "TFT_Item_BFSword"),
		},
	}
}

func champion(apiName, name string, cost int, traits ...string) map[string]any {
	return map[string]any{
		"apiName": apiName,
		"name":    name,
		"cost":    cost,
		"traits":  traits,
		"stats": map[string]any{
			"armor":          40,
			"attackSpeed":    0.75,
			"critChance":     0.25,
			"critMultiplier": 1.4,
			"damage":         nil,
			"hp":             750,
			"initialMana":    30,
			"magicResist":    nil,
			"mana":           80,
			"range":          4,
		},
		"ability": map[string]any{
			"name": name + " Ability",
			"desc": nil,
			"icon": "ASSETS/Characters/" + apiName + "/HUD/Icons2D/ability.dds",
			"variables": []any{
				map[string]any{"name": "Damage", "value": []float64{0, 200, 300, 450}},
				map[string]any{"name": "Empty", "value": nil},
			},
		},
		"squareIcon": "ASSETS/Characters/" + apiName + "/HUD/" + apiName + "_Square.tex",
	}
}

func item(apiName, name string, composition ...string) map[string]any {
	return map[string]any{
		"apiName":            apiName,
		"name":               name,
		"desc":               nil,
		"composition":        composition,
		"associatedTraits":   []string{},
		"incompatibleTraits": []string{},
		"unique":             false,
		"effects":            map[string]any{"AD": 10},
		"from":               nil,
		"id":                 nil,
		"icon":               "ASSETS/Maps/Particles/TFT/" + apiName + ".dds",
	}
}

func (s *FilterTestSuite) encode() []byte {
	data, err := json.Marshal(s.doc)
	s.Require().NoError(err)
	return data
}

func (s *FilterTestSuite) TestFilter() {
	catalog, err := ingest.Filter(s.encode(), 1)
	s.Require().NoError(err)

	s.Run("keeps only champions with traits", func() {
		s.Require().Len(catalog.Champions, 2)
		s.Equal("Ahri", catalog.Champions[0].Name)
		s.Equal("Annie", catalog.Champions[1].Name)
	})

	s.Run("keeps only surviving completed items", func() {
		names := make([]string, len(catalog.Items))
		for i, it := range catalog.Items {
			names[i] = it.APIName
		}
		s.Equal([]string{"TFT_Item_InfinityEdge", "TFT_Item_GuinsoosRageblade"}, names)
	})

	s.Run("resolves components from the unfiltered catalog", func() {
		names := make([]string, len(catalog.Components))
		for i, it := range catalog.Components {
			names[i] = it.APIName
			s.Empty(it.Composition)
		}
		s.Equal([]string{
			"TFT_Item_BFSword",
			"TFT_Item_NeedlesslyLargeRod",
			"TFT_Item_RecurveBow",
		}, names)
	})

	s.Run("carries set metadata", func() {
		s.Equal(1, catalog.SetIndex)
		s.Equal("Set8_Stage2", catalog.SetName)
		s.Equal("TFTSet8_Stage2", catalog.Mutator)
	})

	s.Run("normalizes null fields", func() {
		ahri := catalog.Champions[0]
		s.Equal("", ahri.Ability.Desc)
		s.Nil(ahri.Stats.Damage)
		s.Nil(ahri.Stats.MagicResist)
		s.Require().NotNil(ahri.Stats.Armor)
		s.InDelta(40.0, *ahri.Stats.Armor, 0.0001)
		s.Require().Len(ahri.Ability.Variables, 2)
		s.NotNil(ahri.Ability.Variables[1].Value)
		s.Empty(ahri.Ability.Variables[1].Value)
		s.Equal("", catalog.Items[0].Desc)
	})

	s.Run("preserves effects payload", func() {
		s.JSONEq(`{"AD":10}`, string(catalog.Items[0].Effects))
	})
}

func (s *FilterTestSuite) TestFilterErrors() {
	testCases := []struct {
		name     string
		mutate   func(doc map[string]any)
		setIndex int
		contains string
	}{
		{
			name:     "missing setData",
			mutate:   func(doc map[string]any) { delete(doc, "setData") },
			setIndex: 1,
			contains: "setData",
		},
		{
			name:     "missing items",
			mutate:   func(doc map[string]any) { delete(doc, "items") },
			setIndex: 1,
			contains: "items",
		},
		{
			name:     "set index out of range",
			mutate:   func(doc map[string]any) {},
			setIndex: 18,
			contains: "out of range",
		},
		{
			name:     "negative set index",
			mutate:   func(doc map[string]any) {},
			setIndex: -1,
			contains: "out of range",
		},
		{
			name: "set entry is not an object",
			mutate: func(doc map[string]any) {
				doc["setData"] = []any{"set8"}
			},
			setIndex: 0,
			contains: "not an object",
		},
		{
			name: "set has no champions",
			mutate: func(doc map[string]any) {
				doc["setData"] = []any{map[string]any{"name": "Set8"}}
			},
			setIndex: 0,
			contains: "no champions",
		},
		{
			name: "unresolved component",
			mutate: func(doc map[string]any) {
				doc["items"] = []any{item("TFT_Item_Deathblade", "Deathblade", "TFT_Item_Missing", "TFT_Item_Missing")}
			},
			setIndex: 1,
			contains: "TFT_Item_Missing",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.mutate(s.doc)

			catalog, err := ingest.Filter(s.encode(), tc.setIndex)

			s.Nil(catalog)
			s.Require().Error(err)
			s.True(errors.IsIngestion(err), "expected ingestion error, got %v", err)
			s.Contains(err.Error(), tc.contains)
		})
	}
}

func (s *FilterTestSuite) TestFilterRejectsNonObject() {
	_, err := ingest.Filter([]byte(`[1,2,3]`), 0)
	s.True(errors.IsIngestion(err))
}

func (s *FilterTestSuite) TestListSets() {
	sets, err := ingest.ListSets(s.encode())
	s.Require().NoError(err)
	s.Require().Len(sets, 2)
	s.Equal(0, sets[0].Index)
	s.Equal("Set8", sets[0].Name)
	s.Equal(1, sets[1].Index)
	s.Equal("TFTSet8_Stage2", sets[1].Mutator)
}

func (s *FilterTestSuite) TestCatalogLookups() {
	catalog, err := ingest.Filter(s.encode(), 1)
	s.Require().NoError(err)

	ie, err := catalog.Item("TFT_Item_InfinityEdge")
	s.Require().NoError(err)
	s.Equal("Infinity Edge", ie.Name)

	_, err = catalog.Item("TFT_Item_BFSword")
	s.True(errors.IsNotFound(err), "components are not completed items")

	sword, err := catalog.Component("TFT_Item_BFSword")
	s.Require().NoError(err)
	s.Equal("B.F. Sword", sword.Name)

	ahri, err := catalog.Champion("Ahri")
	s.Require().NoError(err)
	s.Equal("TFT8_Ahri", ahri.APIName)

	_, err = catalog.Champion("Egg")
	s.True(errors.IsNotFound(err))
	s.True(strings.Contains(err.Error(), "Egg"))
}
