package match

import (
	"testing"

	"github.com/DhavalSuthar-24/gully/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func figuresFor(t *testing.T, figures []PlayerFigures, playerID uint) PlayerFigures {
	t.Helper()
	for _, f := range figures {
		if f.PlayerID == playerID {
			return f
		}
	}
	t.Fatalf("no figures for player %d", playerID)
	return PlayerFigures{}
}

func statsMatch(balls []BallEvent) *Match {
	m := &Match{
		Status:             StatusMatchLive,
		CurrentBattingTeam: TeamA,
		Balls:              balls,
		Players: []MatchPlayer{
			{PlayerID: 1, Side: TeamA, Order: 1, Player: player.Player{Model: gorm.Model{ID: 1}, Name: "Asha"}},
			{PlayerID: 2, Side: TeamA, Order: 2, Player: player.Player{Model: gorm.Model{ID: 2}, Name: "Biju"}},
			{PlayerID: 11, Side: TeamB, Order: 1, Player: player.Player{Model: gorm.Model{ID: 11}, Name: "Chetan"}},
		},
	}
	return m
}

func TestAggregateFigures(t *testing.T) {
	t.Run("batting figures from the log", func(t *testing.T) {
		balls := []BallEvent{
			{StrikerID: 1, BowlerID: 11, Runs: 4, Extras: ExtraNone, Over: 1, Ball: 1, BattingSide: TeamA},
			{StrikerID: 1, BowlerID: 11, Runs: 6, Extras: ExtraNone, Over: 1, Ball: 2, BattingSide: TeamA},
			{StrikerID: 1, BowlerID: 11, Runs: 0, Extras: ExtraWide, ExtrasRun: 1, Over: 1, Ball: 3, BattingSide: TeamA},
			{StrikerID: 1, BowlerID: 11, Runs: 1, Extras: ExtraNone, Over: 1, Ball: 3, BattingSide: TeamA},
			{StrikerID: 2, BowlerID: 11, Runs: 0, Extras: ExtraNone, Over: 1, Ball: 4, BattingSide: TeamA},
		}
		figures := AggregateFigures(statsMatch(balls))

		asha := figuresFor(t, figures, 1)
		assert.Equal(t, "Asha", asha.Name)
		assert.Equal(t, TeamA, asha.Side)
		assert.Equal(t, 11, asha.Batting.Runs)
		assert.Equal(t, 3, asha.Batting.Balls) // wide not faced
		assert.Equal(t, 1, asha.Batting.Fours)
		assert.Equal(t, 1, asha.Batting.Sixes)
		assert.InDelta(t, 366.67, asha.Batting.StrikeRate, 1e-9)

		biju := figuresFor(t, figures, 2)
		assert.Equal(t, 0, biju.Batting.Runs)
		assert.Equal(t, 1, biju.Batting.Balls)
		assert.Zero(t, biju.Batting.StrikeRate)
	})

	t.Run("bowling figures and economy", func(t *testing.T) {
		var balls []BallEvent
		// A full over: 2 runs off the bat, one wide, one wicket.
		for i := 1; i <= 6; i++ {
			ev := BallEvent{StrikerID: 1, BowlerID: 11, Over: 1, Ball: i, BattingSide: TeamA}
			if i == 2 {
				ev.Runs = 2
			}
			if i == 5 {
				ev.IsWicket = true
				ev.WicketType = WicketBowled
			}
			balls = append(balls, ev)
		}
		balls = append(balls, BallEvent{
			StrikerID: 1, BowlerID: 11, Runs: 0,
			Extras: ExtraWide, ExtrasRun: 1,
			Over: 1, Ball: 6, BattingSide: TeamA,
		})

		figures := AggregateFigures(statsMatch(balls))
		chetan := figuresFor(t, figures, 11)

		assert.InDelta(t, 1.0, chetan.Bowling.Overs, 1e-9)
		assert.Equal(t, 3, chetan.Bowling.Runs) // 2 off the bat + 1 wide
		assert.Equal(t, 1, chetan.Bowling.Wickets)
		assert.Equal(t, 0, chetan.Bowling.Maidens)
		assert.InDelta(t, 3.0, chetan.Bowling.Economy, 1e-9)
	})

	t.Run("maiden needs a full over with nothing conceded", func(t *testing.T) {
		var balls []BallEvent
		for i := 1; i <= 6; i++ {
			balls = append(balls, BallEvent{StrikerID: 1, BowlerID: 11, Over: 1, Ball: i, BattingSide: TeamA})
		}
		// A second, incomplete scoreless over must not count.
		for i := 1; i <= 3; i++ {
			balls = append(balls, BallEvent{StrikerID: 1, BowlerID: 11, Over: 2, Ball: i, BattingSide: TeamA})
		}

		figures := AggregateFigures(statsMatch(balls))
		chetan := figuresFor(t, figures, 11)
		assert.Equal(t, 1, chetan.Bowling.Maidens)
		assert.InDelta(t, 1.3, chetan.Bowling.Overs, 1e-9)
	})

	t.Run("byes do not break a maiden", func(t *testing.T) {
		var balls []BallEvent
		for i := 1; i <= 6; i++ {
			ev := BallEvent{StrikerID: 1, BowlerID: 11, Over: 1, Ball: i, BattingSide: TeamA}
			if i == 3 {
				ev.Extras = ExtraBye
				ev.ExtrasRun = 2
			}
			balls = append(balls, ev)
		}

		figures := AggregateFigures(statsMatch(balls))
		chetan := figuresFor(t, figures, 11)
		assert.Equal(t, 1, chetan.Bowling.Maidens)
		assert.Equal(t, 0, chetan.Bowling.Runs)
	})

	t.Run("replay is idempotent", func(t *testing.T) {
		balls := []BallEvent{
			{StrikerID: 1, BowlerID: 11, Runs: 4, Over: 1, Ball: 1, BattingSide: TeamA},
			{StrikerID: 2, BowlerID: 11, Runs: 0, IsWicket: true, WicketType: WicketCaught, Over: 1, Ball: 2, BattingSide: TeamA},
		}
		m := statsMatch(balls)

		first := AggregateFigures(m)
		second := AggregateFigures(m)
		assert.Equal(t, first, second)
	})

	t.Run("players without deliveries still appear", func(t *testing.T) {
		figures := AggregateFigures(statsMatch(nil))
		require.Len(t, figures, 3)
		for _, f := range figures {
			assert.Zero(t, f.Batting.Runs)
			assert.Zero(t, f.Bowling.Overs)
		}
	})

	t.Run("unlisted participants get registered from the log", func(t *testing.T) {
		balls := []BallEvent{
			{StrikerID: 99, BowlerID: 11, Runs: 1, Over: 1, Ball: 1, BattingSide: TeamA},
		}
		figures := AggregateFigures(statsMatch(balls))
		stray := figuresFor(t, figures, 99)
		assert.Equal(t, 1, stray.Batting.Runs)
	})
}

func TestBowlerConceded(t *testing.T) {
	assert.Equal(t, 2, bowlerConceded(&BallEvent{Runs: 2, Extras: ExtraNone}))
	assert.Equal(t, 3, bowlerConceded(&BallEvent{Runs: 2, Extras: ExtraWide, ExtrasRun: 1}))
	assert.Equal(t, 3, bowlerConceded(&BallEvent{Runs: 2, Extras: ExtraNoBall, ExtrasRun: 1}))
	assert.Equal(t, 0, bowlerConceded(&BallEvent{Runs: 0, Extras: ExtraBye, ExtrasRun: 4}))
	assert.Equal(t, 1, bowlerConceded(&BallEvent{Runs: 1, Extras: ExtraLegBye, ExtrasRun: 2}))
}
