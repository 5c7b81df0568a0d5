package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// twoPlayerGame returns an in-progress game with Alice (seat 0) and Bob.
func twoPlayerGame(t *testing.T) (*Game, *Player, *Player) {
	t.Helper()
	g := NewGame()
	alice, err := g.AddPlayer("Alice", TokenCar)
	require.NoError(t, err)
	bob, err := g.AddPlayer("Bob", TokenHat)
	require.NoError(t, err)
	require.NoError(t, g.Start())
	return g, alice, bob
}

// own assigns the tiles at the given positions to p.
func own(g *Game, p *Player, positions ...int) {
	for _, pos := range positions {
		g.Board[pos].OwnerID = p.ID
		p.Properties = append(p.Properties, pos)
	}
}

func TestLandOnGoPays400(t *testing.T) {
	g, alice, _ := twoPlayerGame(t)
	before := alice.Balance

	in := g.Board[GoPosition].Land(g, alice)

	require.Equal(t, ActionLandedOnGo, in.Action)
	require.Equal(t, before+GoLandingBonus, alice.Balance)
}

func TestUnownedPropertyAutoPurchase(t *testing.T) {
	g, alice, _ := twoPlayerGame(t)

	in := g.Board[1].Land(g, alice) // Mediterranean, 60

	require.Equal(t, ActionPurchased, in.Action)
	require.Equal(t, StartingBalance-60, alice.Balance)
	require.Equal(t, alice.ID, g.Board[1].OwnerID)
	require.Equal(t, []int{1}, alice.Properties)
}

func TestUnownedPropertyUnaffordable(t *testing.T) {
	g, alice, _ := twoPlayerGame(t)
	alice.Balance = 30

	in := g.Board[1].Land(g, alice)

	require.Equal(t, ActionPropertyAvailable, in.Action)
	require.False(t, in.CanAfford)
	require.Equal(t, 60, in.Price)
	require.Equal(t, 30, alice.Balance)
	require.Empty(t, g.Board[1].OwnerID)
}

func TestSelfOwnedPropertyNoEffect(t *testing.T) {
	g, alice, _ := twoPlayerGame(t)
	own(g, alice, 1)
	before := alice.Balance

	in := g.Board[1].Land(g, alice)

	require.Equal(t, ActionNoEffect, in.Action)
	require.Equal(t, before, alice.Balance)
}

func TestRentWithoutMonopoly(t *testing.T) {
	g, alice, bob := twoPlayerGame(t)
	own(g, bob, 3) // Baltic, base rent 4; brown group incomplete

	in := g.Board[3].Land(g, alice)

	require.Equal(t, ActionRentPaid, in.Action)
	require.Equal(t, 4, in.Amount)
	require.Equal(t, StartingBalance-4, alice.Balance)
	require.Equal(t, StartingBalance+4, bob.Balance)
}

func TestRentWithMonopolyDoubles(t *testing.T) {
	g, alice, bob := twoPlayerGame(t)
	own(g, bob, 1, 3)

	in := g.Board[3].Land(g, alice)

	require.Equal(t, 8, in.Amount)
	require.Equal(t, StartingBalance-8, alice.Balance)
	require.Equal(t, StartingBalance+8, bob.Balance)
}

func TestRentHouseMultipliers(t *testing.T) {
	g, _, bob := twoPlayerGame(t)
	own(g, bob, 37, 39) // dark blue monopoly
	tile := g.Board[39] // Boardwalk, base rent 50

	cases := []struct {
		houses int
		want   int
	}{
		{1, 250},
		{2, 500},
		{3, 750},
		{4, 1000},
		{5, 1250}, // hotel
	}
	for _, tc := range cases {
		tile.HouseCount = tc.houses
		require.Equal(t, tc.want, tile.Rent(g), "%d houses", tc.houses)
	}
}

func TestRailroadRentDoublesPerRailroad(t *testing.T) {
	g, _, bob := twoPlayerGame(t)
	rails := []int{5, 15, 25, 35}
	want := []int{25, 50, 100, 200}
	for i, pos := range rails {
		own(g, bob, pos)
		require.Equal(t, want[i], g.Board[5].Rent(g), "%d railroads", i+1)
	}
}

func TestUtilityRentUsesLastDiceSum(t *testing.T) {
	g, _, bob := twoPlayerGame(t)
	g.LastDiceSum = 7

	own(g, bob, 12)
	require.Equal(t, 28, g.Board[12].Rent(g))

	own(g, bob, 28)
	require.Equal(t, 70, g.Board[12].Rent(g))
}

func TestTaxFeedsSidePot(t *testing.T) {
	g, alice, _ := twoPlayerGame(t)

	in := g.Board[4].Land(g, alice) // Income Tax, 200

	require.Equal(t, ActionTaxPaid, in.Action)
	require.Equal(t, "side_pot", in.Beneficiary)
	require.Equal(t, StartingBalance-200, alice.Balance)
	require.Equal(t, 200, g.SidePot.Balance)
}

func TestFreeParkingCollectsPot(t *testing.T) {
	g, alice, _ := twoPlayerGame(t)
	g.SidePot.Balance = 315

	in := g.Board[FreeParkingPosition].Land(g, alice)

	require.Equal(t, ActionFreeParking, in.Action)
	require.Equal(t, 315, in.Amount)
	require.Equal(t, StartingBalance+315, alice.Balance)
	require.Zero(t, g.SidePot.Balance)
}

func TestGoToJailTile(t *testing.T) {
	g, alice, _ := twoPlayerGame(t)
	alice.Position = GoToJailPosition
	before := alice.Balance

	in := g.Board[GoToJailPosition].Land(g, alice)

	require.Equal(t, ActionSentToJail, in.Action)
	require.Equal(t, JailPosition, alice.Position)
	require.True(t, alice.InJail)
	require.Zero(t, alice.JailTurns)
	require.Equal(t, before, alice.Balance)
}

func TestJailTileJustVisiting(t *testing.T) {
	g, alice, _ := twoPlayerGame(t)

	in := g.Board[JailPosition].Land(g, alice)

	require.Equal(t, ActionJustVisiting, in.Action)
	require.False(t, alice.InJail)
}

func TestMonopolyDetection(t *testing.T) {
	g, alice, bob := twoPlayerGame(t)

	require.False(t, g.HasMonopoly(bob.ID, ColorBrown))
	own(g, bob, 1)
	require.False(t, g.HasMonopoly(bob.ID, ColorBrown))
	own(g, bob, 3)
	require.True(t, g.HasMonopoly(bob.ID, ColorBrown))

	// Splitting the group breaks it again.
	g.Board[1].OwnerID = alice.ID
	require.False(t, g.HasMonopoly(bob.ID, ColorBrown))
	require.False(t, g.HasMonopoly("", ColorBrown))
}
