package game

import (
	"fmt"
	"math/rand/v2"
)

// CardKind tags which deck a card belongs to.
type CardKind string

const (
	CardChance         CardKind = "chance"
	CardCommunityChest CardKind = "community_chest"
)

// CardAction is the closed set of card effects.
type CardAction string

const (
	CardCollect      CardAction = "collect"
	CardPay          CardAction = "pay"
	CardPayToPot     CardAction = "pay_to_pot"
	CardMove         CardAction = "move"
	CardMoveTo       CardAction = "move_to"
	CardGoToJail     CardAction = "go_to_jail"
	CardGetOutOfJail CardAction = "get_out_of_jail_free"
)

// Card is one declarative deck entry. Parameters are per action: Amount for
// collect/pay/pay_to_pot, Spaces (signed) for move, Position for move_to.
type Card struct {
	Kind        CardKind   `json:"kind"`
	Description string     `json:"description"`
	Action      CardAction `json:"action"`
	Amount      int        `json:"amount,omitempty"`
	Spaces      int        `json:"spaces,omitempty"`
	Position    int        `json:"position,omitempty"`
}

// Deck is an ordered pile of cards. The order is part of the game snapshot.
type Deck struct {
	Kind  CardKind `json:"kind"`
	Cards []Card   `json:"cards"`
}

// NewDeck builds a shuffled deck of the printed card set for kind.
func NewDeck(kind CardKind) Deck {
	cards := cardSet(kind)
	shuffleCards(cards)
	return Deck{Kind: kind, Cards: cards}
}

// Draw removes and returns the top card. An empty deck is repopulated and
// reshuffled first, so Draw always succeeds.
func (d *Deck) Draw() Card {
	if len(d.Cards) == 0 {
		d.Cards = cardSet(d.Kind)
		shuffleCards(d.Cards)
	}
	c := d.Cards[0]
	d.Cards = d.Cards[1:]
	return c
}

func shuffleCards(cards []Card) {
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// cardSet returns a fresh copy of the printed card list for kind.
func cardSet(kind CardKind) []Card {
	src := chanceCards
	if kind == CardCommunityChest {
		src = communityChestCards
	}
	out := make([]Card, len(src))
	copy(out, src)
	for i := range out {
		out[i].Kind = kind
	}
	return out
}

var chanceCards = []Card{
	{Description: "Advance to Go", Action: CardMoveTo, Position: GoPosition},
	{Description: "Advance to Illinois Avenue", Action: CardMoveTo, Position: 24},
	{Description: "Advance to St. Charles Place", Action: CardMoveTo, Position: 11},
	{Description: "Take a ride on the Reading Railroad", Action: CardMoveTo, Position: 5},
	{Description: "Take a walk on the Boardwalk", Action: CardMoveTo, Position: 39},
	{Description: "Go back three spaces", Action: CardMove, Spaces: -3},
	{Description: "Move forward five spaces", Action: CardMove, Spaces: 5},
	{Description: "Go directly to jail", Action: CardGoToJail},
	{Description: "Get out of jail free", Action: CardGetOutOfJail},
	{Description: "Bank pays you a dividend of 50", Action: CardCollect, Amount: 50},
	{Description: "Your building loan matures, collect 150", Action: CardCollect, Amount: 150},
	{Description: "You won a crossword competition, collect 100", Action: CardCollect, Amount: 100},
	{Description: "Speeding fine, pay 15", Action: CardPayToPot, Amount: 15},
	{Description: "School fees, pay 150", Action: CardPay, Amount: 150},
	{Description: "Elected chairman of the board, pay 50", Action: CardPay, Amount: 50},
	{Description: "General repairs on your property, pay 25", Action: CardPay, Amount: 25},
}

var communityChestCards = []Card{
	{Description: "Advance to Go", Action: CardMoveTo, Position: GoPosition},
	{Description: "Bank error in your favor, collect 200", Action: CardCollect, Amount: 200},
	{Description: "Doctor's fees, pay 50", Action: CardPay, Amount: 50},
	{Description: "From sale of stock you get 50", Action: CardCollect, Amount: 50},
	{Description: "Get out of jail free", Action: CardGetOutOfJail},
	{Description: "Go directly to jail", Action: CardGoToJail},
	{Description: "Holiday fund matures, collect 100", Action: CardCollect, Amount: 100},
	{Description: "Income tax refund, collect 20", Action: CardCollect, Amount: 20},
	{Description: "Life insurance matures, collect 100", Action: CardCollect, Amount: 100},
	{Description: "Hospital fees, pay 100", Action: CardPayToPot, Amount: 100},
	{Description: "School fees, pay 50", Action: CardPay, Amount: 50},
	{Description: "Consultancy fee, collect 25", Action: CardCollect, Amount: 25},
	{Description: "You inherit 100", Action: CardCollect, Amount: 100},
	{Description: "Second prize in a beauty contest, collect 10", Action: CardCollect, Amount: 10},
	{Description: "Street repairs, pay 40", Action: CardPayToPot, Amount: 40},
	{Description: "It is your birthday, collect 40", Action: CardCollect, Amount: 40},
}

// applyCard executes c against p and returns the turn interaction. Movement
// cards pay the Go-pass bonus only for forward wraps: move_to pays whenever
// the target is numerically behind the player, move pays for positive spaces
// that wrap, and backward motion never pays.
func (g *Game) applyCard(c Card, p *Player) *Interaction {
	switch c.Action {
	case CardCollect:
		g.bankPays(p, c.Amount)

	case CardPay:
		g.paysBank(p, c.Amount)

	case CardPayToPot:
		g.paysPot(p, c.Amount)

	case CardMove:
		from := p.Position
		p.Position = ((from+c.Spaces)%BoardSize + BoardSize) % BoardSize
		if c.Spaces > 0 && p.Position < from {
			g.bankPays(p, GoPassBonus)
		}

	case CardMoveTo:
		if c.Position < p.Position {
			g.bankPays(p, GoPassBonus)
		}
		p.Position = c.Position

	case CardGoToJail:
		g.sendToJail(p)

	case CardGetOutOfJail:
		p.HasJailCard = true
	}

	return &Interaction{
		Action:   ActionCardDrawn,
		Message:  fmt.Sprintf("%s drew: %s", p.Name, c.Description),
		Position: p.Position,
		Card:     &c,
	}
}
