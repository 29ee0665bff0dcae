package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/tft-notebook/internal/entities/tft"
	"github.com/KirkDiggler/tft-notebook/internal/errors"
	"github.com/KirkDiggler/tft-notebook/internal/inventory"
)

var components = []tft.Item{
	{APIName: "TFT_Item_BFSword", Name: "B.F. Sword"},
	{APIName: "TFT_Item_RecurveBow", Name: "Recurve Bow"},
}

type InventoryTestSuite struct {
	suite.Suite
	inv *inventory.Inventory
}

func TestInventorySuite(t *testing.T) {
	suite.Run(t, new(InventoryTestSuite))
}

func (s *InventoryTestSuite) SetupTest() {
	s.inv = inventory.New(components)
}

func (s *InventoryTestSuite) TestSeededAtZero() {
	s.Equal(map[string]int{"TFT_Item_BFSword": 0, "TFT_Item_RecurveBow": 0}, s.inv.Counts())

	states := s.inv.States()
	s.Require().Len(states, 2)
	s.Equal("TFT_Item_BFSword", states[0].Component.APIName)
}

func (s *InventoryTestSuite) TestIncrementDecrement() {
	count, err := s.inv.Increment("TFT_Item_BFSword")
	s.Require().NoError(err)
	s.Equal(1, count)

	count, err = s.inv.Increment("TFT_Item_BFSword")
	s.Require().NoError(err)
	s.Equal(2, count)

	count, err = s.inv.Decrement("TFT_Item_BFSword")
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *InventoryTestSuite) TestDecrementFloorsAtZero() {
	for i := 0; i < 3; i++ {
		count, err := s.inv.Decrement("TFT_Item_RecurveBow")
		s.Require().NoError(err)
		s.Equal(0, count)
	}
}

func (s *InventoryTestSuite) TestUnknownComponent() {
	_, err := s.inv.Increment("TFT_Item_Spatula")
	s.True(errors.IsNotFound(err))

	_, err = s.inv.Decrement("TFT_Item_Spatula")
	s.True(errors.IsNotFound(err))

	_, err = s.inv.Count("TFT_Item_Spatula")
	s.True(errors.IsNotFound(err))

	s.False(s.inv.Has("TFT_Item_Spatula"))
}

func (s *InventoryTestSuite) TestReset() {
	_, _ = s.inv.Increment("TFT_Item_BFSword")
	s.inv.Reset()

	count, err := s.inv.Count("TFT_Item_BFSword")
	s.Require().NoError(err)
	s.Equal(0, count)
}

func TestCountNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		inv := inventory.New(components)
		steps := rapid.SliceOf(rapid.Bool()).Draw(t, "steps")

		expected := 0
		for _, up := range steps {
			var (
				count int
				err   error
			)
			if up {
				count, err = inv.Increment("TFT_Item_BFSword")
				expected++
			} else {
				count, err = inv.Decrement("TFT_Item_BFSword")
				if expected > 0 {
					expected--
				}
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if count < 0 {
				t.Fatalf("count went negative: %d", count)
			}
			if count != expected {
				t.Fatalf("count %d, expected %d", count, expected)
			}
		}
	})
}
