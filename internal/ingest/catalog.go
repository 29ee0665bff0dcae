package ingest

import (
	"github.com/KirkDiggler/tft-notebook/internal/entities/tft"
	"github.com/KirkDiggler/tft-notebook/internal/errors"
)

// Item finds a completed item by identifier
func (c *Catalog) Item(apiName string) (tft.Item, error) {
	for _, item := range c.Items {
		if item.APIName == apiName {
			return item, nil
		}
	}
	return tft.Item{}, errors.NotFoundf("item %s not found", apiName).WithMeta("item", apiName)
}

// Component finds a component by identifier
func (c *Catalog) Component(apiName string) (tft.Item, error) {
	for _, item := range c.Components {
		if item.APIName == apiName {
			return item, nil
		}
	}
	return tft.Item{}, errors.NotFoundf("component %s not found", apiName).WithMeta("component", apiName)
}

// Champion finds a champion by display name
func (c *Catalog) Champion(name string) (tft.Champion, error) {
	for _, champ := range c.Champions {
		if champ.Name == name {
			return champ, nil
		}
	}
	return tft.Champion{}, errors.NotFoundf("champion %s not found", name).WithMeta("champion", name)
}
