package game

// ColorGroup identifies a property color group. Monopoly detection and house
// build costs key off the group.
type ColorGroup string

const (
	ColorBrown     ColorGroup = "brown"
	ColorLightBlue ColorGroup = "light_blue"
	ColorPink      ColorGroup = "pink"
	ColorOrange    ColorGroup = "orange"
	ColorRed       ColorGroup = "red"
	ColorYellow    ColorGroup = "yellow"
	ColorGreen     ColorGroup = "green"
	ColorDarkBlue  ColorGroup = "dark_blue"
)

// Board geometry.
const (
	BoardSize           = 40
	GoPosition          = 0
	JailPosition        = 10
	FreeParkingPosition = 20
	GoToJailPosition    = 30
)

// Fixed prices and bonuses.
const (
	RailroadPrice    = 200
	RailroadBaseRent = 25
	UtilityPrice     = 150

	// GoPassBonus is paid for wrapping past Go; GoLandingBonus is paid by the
	// Go tile itself when a move ends exactly on it.
	GoPassBonus    = 200
	GoLandingBonus = 400
)

// buildCosts maps a color group to the per-house build cost.
var buildCosts = map[ColorGroup]int{
	ColorBrown:     50,
	ColorLightBlue: 50,
	ColorPink:      100,
	ColorOrange:    100,
	ColorRed:       150,
	ColorYellow:    150,
	ColorGreen:     200,
	ColorDarkBlue:  200,
}

// tileSpec is one row of the board table. Only the fields meaningful for the
// kind are set: color/price/rent for properties, tax for tax tiles.
type tileSpec struct {
	kind  TileKind
	name  string
	color ColorGroup
	price int
	rent  int
	tax   int
}

// boardTable is the classic 40-tile layout in play order. Prices and base
// rents are fixed data; tests pin the values the rules depend on.
var boardTable = [BoardSize]tileSpec{
	{kind: TileGo, name: "Go"},
	{kind: TileProperty, name: "Mediterranean Avenue", color: ColorBrown, price: 60, rent: 2},
	{kind: TileCommunityChest, name: "Community Chest"},
	{kind: TileProperty, name: "Baltic Avenue", color: ColorBrown, price: 60, rent: 4},
	{kind: TileTax, name: "Income Tax", tax: 200},
	{kind: TileRailroad, name: "Reading Railroad"},
	{kind: TileProperty, name: "Oriental Avenue", color: ColorLightBlue, price: 100, rent: 6},
	{kind: TileChance, name: "Chance"},
	{kind: TileProperty, name: "Vermont Avenue", color: ColorLightBlue, price: 100, rent: 6},
	{kind: TileProperty, name: "Connecticut Avenue", color: ColorLightBlue, price: 120, rent: 8},
	{kind: TileJail, name: "Jail"},
	{kind: TileProperty, name: "St. Charles Place", color: ColorPink, price: 140, rent: 10},
	{kind: TileUtility, name: "Electric Company"},
	{kind: TileProperty, name: "States Avenue", color: ColorPink, price: 140, rent: 10},
	{kind: TileProperty, name: "Virginia Avenue", color: ColorPink, price: 160, rent: 12},
	{kind: TileRailroad, name: "Pennsylvania Railroad"},
	{kind: TileProperty, name: "St. James Place", color: ColorOrange, price: 180, rent: 14},
	{kind: TileCommunityChest, name: "Community Chest"},
	{kind: TileProperty, name: "Tennessee Avenue", color: ColorOrange, price: 180, rent: 14},
	{kind: TileProperty, name: "New York Avenue", color: ColorOrange, price: 200, rent: 16},
	{kind: TileFreeParking, name: "Free Parking"},
	{kind: TileProperty, name: "Kentucky Avenue", color: ColorRed, price: 220, rent: 18},
	{kind: TileChance, name: "Chance"},
	{kind: TileProperty, name: "Indiana Avenue", color: ColorRed, price: 220, rent: 18},
	{kind: TileProperty, name: "Illinois Avenue", color: ColorRed, price: 240, rent: 20},
	{kind: TileRailroad, name: "B&O Railroad"},
	{kind: TileProperty, name: "Atlantic Avenue", color: ColorYellow, price: 260, rent: 22},
	{kind: TileProperty, name: "Ventnor Avenue", color: ColorYellow, price: 260, rent: 22},
	{kind: TileUtility, name: "Water Works"},
	{kind: TileProperty, name: "Marvin Gardens", color: ColorYellow, price: 280, rent: 24},
	{kind: TileGoToJail, name: "Go To Jail"},
	{kind: TileProperty, name: "Pacific Avenue", color: ColorGreen, price: 300, rent: 26},
	{kind: TileProperty, name: "North Carolina Avenue", color: ColorGreen, price: 300, rent: 26},
	{kind: TileCommunityChest, name: "Community Chest"},
	{kind: TileProperty, name: "Pennsylvania Avenue", color: ColorGreen, price: 320, rent: 28},
	{kind: TileRailroad, name: "Short Line"},
	{kind: TileChance, name: "Chance"},
	{kind: TileProperty, name: "Park Place", color: ColorDarkBlue, price: 350, rent: 35},
	{kind: TileTax, name: "Luxury Tax", tax: 100},
	{kind: TileProperty, name: "Boardwalk", color: ColorDarkBlue, price: 400, rent: 50},
}

// NewBoard returns the 40-tile board in play order.
func NewBoard() []*Tile {
	tiles := make([]*Tile, BoardSize)
	for pos, spec := range boardTable {
		t := &Tile{
			Position: pos,
			Kind:     spec.kind,
			Name:     spec.name,
		}
		switch spec.kind {
		case TileProperty:
			t.Color = spec.color
			t.Price = spec.price
			t.BaseRent = spec.rent
			t.BuildCost = buildCosts[spec.color]
		case TileRailroad:
			t.Price = RailroadPrice
			t.BaseRent = RailroadBaseRent
		case TileUtility:
			t.Price = UtilityPrice
		case TileTax:
			t.TaxAmount = spec.tax
		}
		tiles[pos] = t
	}
	return tiles
}
