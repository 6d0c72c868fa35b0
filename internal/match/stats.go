package match

import "math"

// The statistics aggregator. It replays the full ball log and never writes
// back to the match or the players; everything here is derived fresh on every
// call so the log stays the sole durable truth.

// BattingFigures are one player's derived batting numbers for a match.
type BattingFigures struct {
	Runs       int     `json:"runs"`
	Balls      int     `json:"balls"` // legal deliveries faced
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	StrikeRate float64 `json:"strike_rate"`
}

// BowlingFigures are one player's derived bowling numbers for a match.
type BowlingFigures struct {
	legalBalls int
	Overs      float64 `json:"overs"` // display encoding, same as the scoreboard
	Maidens    int     `json:"maidens"`
	Runs       int     `json:"runs"` // runs conceded
	Wickets    int     `json:"wickets"`
	Economy    float64 `json:"economy"`
}

// PlayerFigures pairs both disciplines for one player.
type PlayerFigures struct {
	PlayerID uint           `json:"player_id"`
	Name     string         `json:"name,omitempty"`
	Side     TeamSide       `json:"side,omitempty"`
	Batting  BattingFigures `json:"batting"`
	Bowling  BowlingFigures `json:"bowling"`
}

type overTally struct {
	legal    int
	conceded int
}

// AggregateFigures replays the match's ball log from the start and produces
// figures for every player on either side, in squad order. Replaying twice
// over an unchanged log yields identical output.
func AggregateFigures(m *Match) []PlayerFigures {
	index := make(map[uint]*PlayerFigures, len(m.Players))
	order := make([]uint, 0, len(m.Players))

	register := func(playerID uint) *PlayerFigures {
		if f, ok := index[playerID]; ok {
			return f
		}
		f := &PlayerFigures{PlayerID: playerID}
		index[playerID] = f
		order = append(order, playerID)
		return f
	}

	for _, mp := range m.Players {
		f := register(mp.PlayerID)
		f.Name = mp.Player.Name
		f.Side = mp.Side
	}

	// Per-bowler, per-submitted-over tallies for maiden detection.
	overs := make(map[uint]map[int]*overTally)

	for i := range m.Balls {
		b := &m.Balls[i]

		bat := register(b.StrikerID)
		bat.Batting.Runs += b.Runs
		if b.IsLegalDelivery() {
			bat.Batting.Balls++
		}
		if b.Runs == 4 {
			bat.Batting.Fours++
		}
		if b.Runs == 6 {
			bat.Batting.Sixes++
		}

		bowl := register(b.BowlerID)
		conceded := bowlerConceded(b)
		bowl.Bowling.Runs += conceded
		if b.IsLegalDelivery() {
			bowl.Bowling.legalBalls++
		}
		if b.IsWicket {
			bowl.Bowling.Wickets++
		}

		if overs[b.BowlerID] == nil {
			overs[b.BowlerID] = make(map[int]*overTally)
		}
		tally := overs[b.BowlerID][b.Over]
		if tally == nil {
			tally = &overTally{}
			overs[b.BowlerID][b.Over] = tally
		}
		if b.IsLegalDelivery() {
			tally.legal++
		}
		tally.conceded += conceded
	}

	figures := make([]PlayerFigures, 0, len(order))
	for _, id := range order {
		f := index[id]

		if f.Batting.Balls > 0 {
			f.Batting.StrikeRate = round2(float64(f.Batting.Runs) / float64(f.Batting.Balls) * 100)
		}

		f.Bowling.Overs = OversValue(f.Bowling.legalBalls)
		for _, tally := range overs[id] {
			if tally.legal >= 6 && tally.conceded == 0 {
				f.Bowling.Maidens++
			}
		}
		// Economy divides by the one-decimal display overs, not true overs.
		if f.Bowling.Overs > 0 {
			f.Bowling.Economy = round2(float64(f.Bowling.Runs) / f.Bowling.Overs)
		}

		figures = append(figures, *f)
	}
	return figures
}

// bowlerConceded is the runs charged against the bowler on a delivery: runs
// off the bat always, extras runs only for wides and no-balls. Byes and
// leg-byes are the fielding side's fault, not the bowler's.
func bowlerConceded(b *BallEvent) int {
	runs := b.Runs
	if b.Extras == ExtraWide || b.Extras == ExtraNoBall {
		runs += b.ExtrasRun
	}
	return runs
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
