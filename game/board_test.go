package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardShape(t *testing.T) {
	board := NewBoard()
	require.Len(t, board, BoardSize)

	require.Equal(t, TileGo, board[GoPosition].Kind)
	require.Equal(t, TileJail, board[JailPosition].Kind)
	require.Equal(t, TileFreeParking, board[FreeParkingPosition].Kind)
	require.Equal(t, TileGoToJail, board[GoToJailPosition].Kind)

	for _, pos := range []int{5, 15, 25, 35} {
		require.Equal(t, TileRailroad, board[pos].Kind, "position %d", pos)
		require.Equal(t, RailroadPrice, board[pos].Price)
		require.Equal(t, RailroadBaseRent, board[pos].BaseRent)
	}
	for _, pos := range []int{12, 28} {
		require.Equal(t, TileUtility, board[pos].Kind, "position %d", pos)
		require.Equal(t, UtilityPrice, board[pos].Price)
	}
	for _, pos := range []int{7, 22, 36} {
		require.Equal(t, TileChance, board[pos].Kind, "position %d", pos)
	}
	for _, pos := range []int{2, 17, 33} {
		require.Equal(t, TileCommunityChest, board[pos].Kind, "position %d", pos)
	}

	require.Equal(t, TileTax, board[4].Kind)
	require.Equal(t, 200, board[4].TaxAmount)
	require.Equal(t, TileTax, board[38].Kind)
	require.Equal(t, 100, board[38].TaxAmount)
}

func TestBoardGroupSizes(t *testing.T) {
	board := NewBoard()
	counts := make(map[ColorGroup]int)
	for _, tile := range board {
		if tile.Kind == TileProperty {
			counts[tile.Color]++
		}
	}
	want := map[ColorGroup]int{
		ColorBrown:     2,
		ColorLightBlue: 3,
		ColorPink:      3,
		ColorOrange:    3,
		ColorRed:       3,
		ColorYellow:    3,
		ColorGreen:     3,
		ColorDarkBlue:  2,
	}
	require.Equal(t, want, counts)
}

func TestBoardBuildCosts(t *testing.T) {
	board := NewBoard()
	want := map[ColorGroup]int{
		ColorBrown:     50,
		ColorLightBlue: 50,
		ColorPink:      100,
		ColorOrange:    100,
		ColorRed:       150,
		ColorYellow:    150,
		ColorGreen:     200,
		ColorDarkBlue:  200,
	}
	for _, tile := range board {
		if tile.Kind == TileProperty {
			require.Equal(t, want[tile.Color], tile.BuildCost, "%s", tile.Name)
		}
	}
}

// Pins the price/rent rows the rule scenarios depend on.
func TestBoardKnownValues(t *testing.T) {
	board := NewBoard()

	require.Equal(t, 60, board[1].Price)
	require.Equal(t, 2, board[1].BaseRent)
	require.Equal(t, 60, board[3].Price)
	require.Equal(t, 4, board[3].BaseRent)
	require.Equal(t, 400, board[39].Price)
	require.Equal(t, 50, board[39].BaseRent)
	require.Equal(t, "Boardwalk", board[39].Name)
	require.Equal(t, 350, board[37].Price)
	require.Equal(t, ColorDarkBlue, board[37].Color)
}
