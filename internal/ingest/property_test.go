package ingest_test

import (
	"fmt"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/tft-notebook/internal/ingest"
)

var componentPool = []string{
	"TFT_Item_BFSword",
	"TFT_Item_ChainVest",
	"TFT_Item_RecurveBow",
	"TFT_Item_SparringGloves",
	"TFT_Item_TutorialSword",
	"TFT5_Item_Spatula",
}

func genDocument(t *rapid.T) ([]byte, map[string]bool) {
	champCount := rapid.IntRange(0, 12).Draw(t, "champions")
	champions := make([]any, champCount)
	for i := range champions {
		traits := rapid.SliceOfN(rapid.SampledFrom([]string{"Duelist", "Mascot", "Ace"}), 0, 3).Draw(t, "traits")
		champions[i] = champion(fmt.Sprintf("TFT8_Champ%d", i), fmt.Sprintf("Champ%d", i), 1, traits...)
	}

	all := make(map[string]bool)
	items := make([]any, 0)
	for _, name := range componentPool {
		items = append(items, item(name, name))
		all[name] = true
	}

	itemCount := rapid.IntRange(0, 20).Draw(t, "items")
	for i := 0; i < itemCount; i++ {
		apiName := rapid.StringMatching(`TFT[0-9]?_Item_[A-Za-z0-9]{1,8}`).Draw(t, "apiName")
		name := rapid.SampledFrom([]string{"Deathblade", "tft_item_name_Broken", "Rageblade"}).Draw(t, "name")
		composition := rapid.SliceOfN(rapid.SampledFrom(componentPool), 0, 3).Draw(t, "composition")
		if all[apiName] {
			continue
		}
		items = append(items, item(apiName, name, composition...))
		all[apiName] = true
	}

	doc := map[string]any{
		"setData": []any{map[string]any{"name": "Set8", "champions": champions}},
		"items":   items,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data, all
}

func TestFilterProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		doc, all := genDocument(t)

		catalog, err := ingest.Filter(doc, 0)
		if err != nil {
			t.Fatalf("filter: %v", err)
		}

		for _, champ := range catalog.Champions {
			if len(champ.Traits) == 0 {
				t.Fatalf("champion %s has no traits", champ.Name)
			}
		}

		components := make(map[string]bool)
		for _, c := range catalog.Components {
			components[c.APIName] = true
		}

		for _, it := range catalog.Items {
			if len(it.Composition) == 0 {
				t.Fatalf("item %s has empty composition", it.APIName)
			}
			if strings.ContainsAny(it.APIName, "567") {
				t.Fatalf("item %s carries an excluded generation digit", it.APIName)
			}
			if strings.Contains(it.Name, "tft_item_name") {
				t.Fatalf("item %s has a placeholder name", it.APIName)
			}
			for _, c := range it.Composition {
				if strings.Contains(c, "Tutorial") {
					t.Fatalf("item %s is built from tutorial component %s", it.APIName, c)
				}
				if !components[c] || !all[c] {
					t.Fatalf("component %s of %s is unresolved", c, it.APIName)
				}
			}
		}
	})
}
