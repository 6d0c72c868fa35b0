package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func liveMatch() *Match {
	m := &Match{Status: StatusMatchUpcoming, Title: "test", Overs: 6}
	if err := m.RecordToss(TeamA, DecisionBat); err != nil {
		panic(err)
	}
	if err := m.Start(); err != nil {
		panic(err)
	}
	return m
}

func legalBall(runs int) *BallEvent {
	return &BallEvent{StrikerID: 1, BowlerID: 2, Runs: runs, Over: 1, Ball: 1}
}

func TestOversValue(t *testing.T) {
	cases := []struct {
		legal int
		want  float64
	}{
		{0, 0},
		{1, 0.1},
		{5, 0.5},
		{6, 1},
		{7, 1.1},
		{11, 1.5},
		{12, 2},
		{36, 6},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, OversValue(tc.legal), 1e-9, "legal=%d", tc.legal)
	}
}

func TestApplyBall(t *testing.T) {
	t.Run("accumulates total wickets and overs", func(t *testing.T) {
		m := liveMatch()

		deliveries := []*BallEvent{
			{StrikerID: 1, BowlerID: 2, Runs: 4, Over: 1, Ball: 1},
			{StrikerID: 1, BowlerID: 2, Runs: 0, Extras: ExtraWide, ExtrasRun: 1, Over: 1, Ball: 2},
			{StrikerID: 1, BowlerID: 2, Runs: 1, Over: 1, Ball: 2},
			{StrikerID: 3, BowlerID: 2, Runs: 0, IsWicket: true, WicketType: WicketBowled, Over: 1, Ball: 3},
		}
		for _, ev := range deliveries {
			require.NoError(t, m.ApplyBall(ev))
		}

		score := m.TeamAScore
		assert.Equal(t, 6, score.Total) // 4 + 1 wide + 1
		assert.Equal(t, 1, score.Wickets)
		assert.InDelta(t, 0.3, score.Overs, 1e-9) // wide does not count
		assert.Len(t, m.Balls, 4)
	})

	t.Run("six legal balls complete the over", func(t *testing.T) {
		m := liveMatch()
		for i := 1; i <= 6; i++ {
			ev := &BallEvent{StrikerID: 1, BowlerID: 2, Runs: 1, Over: 1, Ball: i}
			require.NoError(t, m.ApplyBall(ev))
		}
		assert.InDelta(t, 1.0, m.TeamAScore.Overs, 1e-9)
	})

	t.Run("defaults extras and wicket type", func(t *testing.T) {
		m := liveMatch()
		ev := legalBall(2)
		ev.Extras = ""
		ev.WicketType = ""
		require.NoError(t, m.ApplyBall(ev))

		assert.Equal(t, ExtraNone, m.Balls[0].Extras)
		assert.Equal(t, WicketNone, m.Balls[0].WicketType)
		assert.Equal(t, TeamA, m.Balls[0].BattingSide)
	})

	t.Run("rejects when not live", func(t *testing.T) {
		m := &Match{Status: StatusMatchUpcoming}
		err := m.ApplyBall(legalBall(1))
		assert.ErrorIs(t, err, ErrMatchNotLive)
		assert.Empty(t, m.Balls)
		assert.Equal(t, 0, m.TeamAScore.Total)

		m.Status = StatusMatchCompleted
		assert.ErrorIs(t, m.ApplyBall(legalBall(1)), ErrMatchNotLive)
	})

	t.Run("rejects missing participants or position", func(t *testing.T) {
		m := liveMatch()

		missing := []*BallEvent{
			{BowlerID: 2, Over: 1, Ball: 1},
			{StrikerID: 1, Over: 1, Ball: 1},
			{StrikerID: 1, BowlerID: 2, Ball: 1},
			{StrikerID: 1, BowlerID: 2, Over: 1},
		}
		for _, ev := range missing {
			assert.ErrorIs(t, m.ApplyBall(ev), ErrMissingFields)
		}
		assert.Empty(t, m.Balls)
	})

	t.Run("tracks the side that is batting", func(t *testing.T) {
		m := liveMatch()
		require.NoError(t, m.ApplyBall(legalBall(2)))

		// Innings swap: team B now batting.
		m.CurrentBattingTeam = TeamB
		ev := &BallEvent{StrikerID: 5, BowlerID: 1, Runs: 3, Over: 1, Ball: 1}
		require.NoError(t, m.ApplyBall(ev))

		assert.Equal(t, 2, m.TeamAScore.Total)
		assert.Equal(t, 3, m.TeamBScore.Total)
		assert.InDelta(t, 0.1, m.TeamAScore.Overs, 1e-9)
		assert.InDelta(t, 0.1, m.TeamBScore.Overs, 1e-9)
	})
}

func TestIsLegalDelivery(t *testing.T) {
	assert.True(t, (&BallEvent{Extras: ExtraNone}).IsLegalDelivery())
	assert.True(t, (&BallEvent{Extras: ExtraBye}).IsLegalDelivery())
	assert.True(t, (&BallEvent{Extras: ExtraLegBye}).IsLegalDelivery())
	assert.False(t, (&BallEvent{Extras: ExtraWide}).IsLegalDelivery())
	assert.False(t, (&BallEvent{Extras: ExtraNoBall}).IsLegalDelivery())
}
