package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeckDrawConsumes(t *testing.T) {
	d := NewDeck(CardChance)
	n := len(d.Cards)
	c := d.Draw()
	require.Equal(t, CardChance, c.Kind)
	require.Len(t, d.Cards, n-1)
}

func TestDeckReshufflesWhenEmpty(t *testing.T) {
	d := NewDeck(CardCommunityChest)
	d.Cards = nil

	c := d.Draw()

	require.Equal(t, CardCommunityChest, c.Kind)
	require.Len(t, d.Cards, len(communityChestCards)-1)
}

func TestCardCollectAndPay(t *testing.T) {
	g, alice, _ := twoPlayerGame(t)
	bank := g.Bank.Balance

	in := g.applyCard(Card{Action: CardCollect, Amount: 100, Description: "d"}, alice)
	require.Equal(t, ActionCardDrawn, in.Action)
	require.Equal(t, StartingBalance+100, alice.Balance)
	require.Equal(t, bank-100, g.Bank.Balance)

	g.applyCard(Card{Action: CardPay, Amount: 30}, alice)
	require.Equal(t, StartingBalance+70, alice.Balance)
	require.Equal(t, bank-70, g.Bank.Balance)

	g.applyCard(Card{Action: CardPayToPot, Amount: 15}, alice)
	require.Equal(t, StartingBalance+55, alice.Balance)
	require.Equal(t, 15, g.SidePot.Balance)
}

func TestCardMoveToPaysGoOnWrap(t *testing.T) {
	g, alice, _ := twoPlayerGame(t)
	alice.Position = 36

	g.applyCard(Card{Action: CardMoveTo, Position: 5}, alice)

	require.Equal(t, 5, alice.Position)
	require.Equal(t, StartingBalance+GoPassBonus, alice.Balance)
}

func TestCardMoveToForwardNoBonus(t *testing.T) {
	g, alice, _ := twoPlayerGame(t)
	alice.Position = 5

	g.applyCard(Card{Action: CardMoveTo, Position: 24}, alice)

	require.Equal(t, 24, alice.Position)
	require.Equal(t, StartingBalance, alice.Balance)
}

func TestCardMoveBackwardWrapsWithoutBonus(t *testing.T) {
	g, alice, _ := twoPlayerGame(t)
	alice.Position = 1

	g.applyCard(Card{Action: CardMove, Spaces: -3}, alice)

	require.Equal(t, 38, alice.Position)
	require.Equal(t, StartingBalance, alice.Balance)
}

func TestCardMoveForwardWrapPaysBonus(t *testing.T) {
	g, alice, _ := twoPlayerGame(t)
	alice.Position = 38

	g.applyCard(Card{Action: CardMove, Spaces: 5}, alice)

	require.Equal(t, 3, alice.Position)
	require.Equal(t, StartingBalance+GoPassBonus, alice.Balance)
}

func TestCardGoToJail(t *testing.T) {
	g, alice, _ := twoPlayerGame(t)
	alice.Position = 36

	g.applyCard(Card{Action: CardGoToJail}, alice)

	require.Equal(t, JailPosition, alice.Position)
	require.True(t, alice.InJail)
	require.Equal(t, StartingBalance, alice.Balance)
}

func TestCardGetOutOfJailFree(t *testing.T) {
	g, alice, _ := twoPlayerGame(t)

	g.applyCard(Card{Action: CardGetOutOfJail}, alice)

	require.True(t, alice.HasJailCard)
}

func TestCardSetsAreFixedSize(t *testing.T) {
	require.Len(t, chanceCards, 16)
	require.Len(t, communityChestCards, 16)
}
