package game

import "fmt"

// TileKind discriminates the ten tile variants.
type TileKind string

const (
	TileGo             TileKind = "go"
	TileProperty       TileKind = "property"
	TileRailroad       TileKind = "railroad"
	TileUtility        TileKind = "utility"
	TileTax            TileKind = "tax"
	TileChance         TileKind = "chance"
	TileCommunityChest TileKind = "community_chest"
	TileJail           TileKind = "jail"
	TileFreeParking    TileKind = "free_parking"
	TileGoToJail       TileKind = "go_to_jail"
)

// Tile is one board position. Kind discriminates which fields carry meaning:
// properties use color/price/rent/houses, railroads and utilities price and
// owner, tax tiles an amount. Owners are stored as player ids so the snapshot
// graph stays acyclic.
type Tile struct {
	Position   int        `json:"position"`
	Kind       TileKind   `json:"kind"`
	Name       string     `json:"name"`
	Color      ColorGroup `json:"color,omitempty"`
	Price      int        `json:"price,omitempty"`
	BaseRent   int        `json:"base_rent,omitempty"`
	BuildCost  int        `json:"build_cost,omitempty"`
	HouseCount int        `json:"house_count,omitempty"`
	TaxAmount  int        `json:"tax_amount,omitempty"`
	OwnerID    string     `json:"owner_id,omitempty"`
}

// Ownable reports whether the tile can be owned by a player.
func (t *Tile) Ownable() bool {
	return t.Kind == TileProperty || t.Kind == TileRailroad || t.Kind == TileUtility
}

// Interaction action tags, one per observable landing outcome.
const (
	ActionLandedOnGo        = "landed_on_go"
	ActionPurchased         = "purchased"
	ActionPropertyAvailable = "property_available"
	ActionRentPaid          = "rent_paid"
	ActionTaxPaid           = "tax_paid"
	ActionCardDrawn         = "card_drawn"
	ActionJustVisiting      = "just_visiting"
	ActionFreeParking       = "free_parking"
	ActionSentToJail        = "sent_to_jail"
	ActionNoEffect          = "no_effect"
)

// Interaction describes what happened when a player landed on a tile (or a
// drawn card resolved). It is returned to the roller and broadcast with the
// turn result.
type Interaction struct {
	Action      string `json:"action"`
	Message     string `json:"message"`
	Position    int    `json:"position"`
	Property    string `json:"property,omitempty"`
	Amount      int    `json:"amount,omitempty"`
	Beneficiary string `json:"beneficiary,omitempty"` // player id on rent, "side_pot" on tax
	Price       int    `json:"price,omitempty"`
	CanAfford   bool   `json:"can_afford,omitempty"`
	Card        *Card  `json:"card,omitempty"`
}

// Land resolves the effect of p landing on t: one closed switch over the tile
// kinds. Card effects resolve inline; a card that moves the player does not
// re-resolve the destination tile.
func (t *Tile) Land(g *Game, p *Player) *Interaction {
	switch t.Kind {
	case TileGo:
		g.bankPays(p, GoLandingBonus)
		return &Interaction{
			Action:   ActionLandedOnGo,
			Message:  fmt.Sprintf("%s landed on Go and collects %d", p.Name, GoLandingBonus),
			Position: t.Position,
			Amount:   GoLandingBonus,
		}

	case TileProperty, TileRailroad, TileUtility:
		return t.landOwnable(g, p)

	case TileTax:
		g.paysPot(p, t.TaxAmount)
		return &Interaction{
			Action:      ActionTaxPaid,
			Message:     fmt.Sprintf("%s pays %s of %d", p.Name, t.Name, t.TaxAmount),
			Position:    t.Position,
			Amount:      t.TaxAmount,
			Beneficiary: "side_pot",
		}

	case TileChance:
		return g.applyCard(g.ChanceDeck.Draw(), p)

	case TileCommunityChest:
		return g.applyCard(g.CommunityChestDeck.Draw(), p)

	case TileJail:
		return &Interaction{
			Action:   ActionJustVisiting,
			Message:  p.Name + " is just visiting jail",
			Position: t.Position,
		}

	case TileFreeParking:
		amount := g.collectPot(p)
		return &Interaction{
			Action:   ActionFreeParking,
			Message:  fmt.Sprintf("%s collects %d from Free Parking", p.Name, amount),
			Position: t.Position,
			Amount:   amount,
		}

	case TileGoToJail:
		g.sendToJail(p)
		return &Interaction{
			Action:   ActionSentToJail,
			Message:  p.Name + " goes directly to jail",
			Position: JailPosition,
		}

	default:
		return &Interaction{
			Action:   ActionNoEffect,
			Message:  p.Name + " landed on " + t.Name,
			Position: t.Position,
		}
	}
}

// landOwnable handles property, railroad and utility landings: auto-purchase
// when unowned and affordable, rent when owned by somebody else.
func (t *Tile) landOwnable(g *Game, p *Player) *Interaction {
	switch {
	case t.OwnerID == "":
		if p.Balance < t.Price {
			return &Interaction{
				Action:    ActionPropertyAvailable,
				Message:   fmt.Sprintf("%s cannot afford %s", p.Name, t.Name),
				Position:  t.Position,
				Property:  t.Name,
				Price:     t.Price,
				CanAfford: false,
			}
		}
		g.paysBank(p, t.Price)
		t.OwnerID = p.ID
		p.Properties = append(p.Properties, t.Position)
		return &Interaction{
			Action:   ActionPurchased,
			Message:  fmt.Sprintf("%s bought %s for %d", p.Name, t.Name, t.Price),
			Position: t.Position,
			Property: t.Name,
			Price:    t.Price,
		}

	case t.OwnerID == p.ID:
		return &Interaction{
			Action:   ActionNoEffect,
			Message:  p.Name + " owns " + t.Name,
			Position: t.Position,
			Property: t.Name,
		}

	default:
		rent := t.Rent(g)
		owner := g.PlayerByID(t.OwnerID)
		p.Balance -= rent
		owner.Balance += rent
		return &Interaction{
			Action:      ActionRentPaid,
			Message:     fmt.Sprintf("%s pays %d rent to %s for %s", p.Name, rent, owner.Name, t.Name),
			Position:    t.Position,
			Property:    t.Name,
			Amount:      rent,
			Beneficiary: owner.ID,
		}
	}
}

// Rent computes the rent owed on t, which must be owned.
func (t *Tile) Rent(g *Game) int {
	switch t.Kind {
	case TileRailroad:
		// 25 doubles with each railroad the owner holds: 25, 50, 100, 200.
		n := g.OwnedCount(t.OwnerID, TileRailroad)
		return RailroadBaseRent << (n - 1)

	case TileUtility:
		// Four times the last roll with one utility, ten times with both.
		multiplier := 4
		if g.OwnedCount(t.OwnerID, TileUtility) > 1 {
			multiplier = 10
		}
		return g.LastDiceSum * multiplier

	default:
		// Houses only exist on monopolies, so the house multiplier already
		// implies the doubled-group case.
		if t.HouseCount > 0 {
			return t.BaseRent * 5 * t.HouseCount
		}
		if g.HasMonopoly(t.OwnerID, t.Color) {
			return t.BaseRent * 2
		}
		return t.BaseRent
	}
}
