package game

// DiceRoll records one roll of two dice.
type DiceRoll struct {
	Die1    int  `json:"die1"`
	Die2    int  `json:"die2"`
	Sum     int  `json:"sum"`
	Doubles bool `json:"doubles"`
}

// JailOutcome reports what happened to a jailed player this turn.
type JailOutcome struct {
	Turns     int  `json:"turns"`
	Released  bool `json:"released"`
	ByDoubles bool `json:"by_doubles"`
	UsedCard  bool `json:"used_card"`
	FeePaid   int  `json:"fee_paid"`
}

// Movement records a board move and whether it wrapped past Go.
type Movement struct {
	From     int  `json:"from"`
	To       int  `json:"to"`
	PassedGo bool `json:"passed_go"`
}

// TurnResult is the full outcome of one ExecuteTurn, returned to the roller
// and broadcast to subscribers.
type TurnResult struct {
	PlayerID        string       `json:"player_id"`
	PlayerName      string       `json:"player_name"`
	Dice            DiceRoll     `json:"dice"`
	Jail            *JailOutcome `json:"jail,omitempty"`
	Movement        *Movement    `json:"movement,omitempty"`
	TileInteraction *Interaction `json:"tile_interaction,omitempty"`
	Bankrupt        bool         `json:"bankrupt"`
	NextPlayerID    string       `json:"next_player_id,omitempty"`
	GameFinished    bool         `json:"game_finished"`
	WinnerID        string       `json:"winner_id,omitempty"`
}

// ExecuteTurn runs one complete turn for the current player: roll, jail
// handling, move, tile resolution, bankruptcy check, turn advance. The game
// is mutated in memory only; callers persist the snapshot afterwards.
func ExecuteTurn(g *Game, dice Dice) (*TurnResult, error) {
	if g.Status != StatusInProgress {
		return nil, ErrNotStarted
	}

	p := g.CurrentPlayer()
	d1, d2 := dice.Roll()
	roll := DiceRoll{Die1: d1, Die2: d2, Sum: d1 + d2, Doubles: d1 == d2}
	g.LastDiceSum = roll.Sum

	result := &TurnResult{
		PlayerID:   p.ID,
		PlayerName: p.Name,
		Dice:       roll,
	}

	if p.InJail {
		if !resolveJail(g, p, roll, result) {
			finishTurn(g, p, result)
			return result, nil
		}
	}

	// Move. A wrap past Go pays the pass bonus; landing exactly on Go is a
	// landing, paid by the tile itself instead.
	from := p.Position
	to := (from + roll.Sum) % BoardSize
	p.Position = to
	passedGo := to < from && to != GoPosition
	if passedGo {
		g.bankPays(p, GoPassBonus)
	}
	result.Movement = &Movement{From: from, To: to, PassedGo: passedGo}

	// A card drawn here may relocate the player; the destination tile is not
	// re-resolved.
	result.TileInteraction = g.Board[to].Land(g, p)

	finishTurn(g, p, result)
	return result, nil
}

// resolveJail applies the jail rules and reports whether the player moves
// this turn. Doubles release immediately; the third failed attempt forces a
// release paid with a get-out-of-jail-free card if held, otherwise the fee.
func resolveJail(g *Game, p *Player, roll DiceRoll, result *TurnResult) bool {
	p.JailTurns++
	outcome := &JailOutcome{Turns: p.JailTurns}
	result.Jail = outcome

	switch {
	case roll.Doubles:
		p.InJail = false
		outcome.Released = true
		outcome.ByDoubles = true

	case p.JailTurns >= MaxJailTurns:
		if p.HasJailCard {
			p.HasJailCard = false
			outcome.UsedCard = true
		} else {
			g.paysBank(p, JailFee)
			outcome.FeePaid = JailFee
		}
		p.InJail = false
		outcome.Released = true

	default:
		return false
	}
	return true
}

// finishTurn runs the bankruptcy check and advances to the next active seat.
func finishTurn(g *Game, p *Player, result *TurnResult) {
	if p.Balance < 0 {
		g.bankrupt(p)
		result.Bankrupt = true
	}

	switch g.ActivePlayers() {
	case 0:
		g.Status = StatusFinished
	case 1:
		g.Status = StatusFinished
		g.WinnerID = g.soleActivePlayer().ID
	}

	if g.Status == StatusFinished {
		result.GameFinished = true
		result.WinnerID = g.WinnerID
	} else {
		g.advanceTurn()
		result.NextPlayerID = g.CurrentPlayer().ID
	}
	g.Touch()
}
