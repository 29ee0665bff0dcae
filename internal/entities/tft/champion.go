package tft

// Variable is one named numeric array of an ability, one value per star level
type Variable struct {
	Name  string    `json:"name"`
	Value []float64 `json:"value"`
}

// Ability is a champion's active spell
type Ability struct {
	Name      string     `json:"name"`
	Desc      string     `json:"desc"`
	Icon      string     `json:"icon"`
	Variables []Variable `json:"variables"`
}

// Stats holds the gameplay attributes of a champion.
// Pointer fields are nil when the feed has them null or absent.
type Stats struct {
	Armor          *float64 `json:"armor"`
	AttackSpeed    *float64 `json:"attackSpeed"`
	CritChance     *float64 `json:"critChance"`
	CritMultiplier float64  `json:"critMultiplier"`
	Damage         *float64 `json:"damage"`
	HP             *float64 `json:"hp"`
	InitialMana    float64  `json:"initialMana"`
	MagicResist    *float64 `json:"magicResist"`
	Mana           float64  `json:"mana"`
	Range          float64  `json:"range"`
}

// Champion is a playable unit of the selected set
type Champion struct {
	APIName    string   `json:"apiName"`
	Name       string   `json:"name"`
	Cost       int      `json:"cost"`
	Traits     []string `json:"traits"`
	Stats      Stats    `json:"stats"`
	Ability    Ability  `json:"ability"`
	Icon       string   `json:"icon"`
	SquareIcon string   `json:"squareIcon"`
}

// IsPlayable reports whether the champion has traits. Trait-less entries are
// eggs, creeps and other board props.
func (c *Champion) IsPlayable() bool {
	return len(c.Traits) > 0
}

// String returns the display name
func (c Champion) String() string {
	return c.Name
}

// Normalize replaces absent lists with empty ones
func (c *Champion) Normalize() {
	if c.Traits == nil {
		c.Traits = []string{}
	}
	if c.Ability.Variables == nil {
		c.Ability.Variables = []Variable{}
	}
	for i := range c.Ability.Variables {
		if c.Ability.Variables[i].Value == nil {
			c.Ability.Variables[i].Value = []float64{}
		}
	}
}
