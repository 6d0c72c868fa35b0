package match

import (
	"testing"

	"github.com/DhavalSuthar-24/gully/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deltaFor(t *testing.T, deltas []player.Delta, playerID uint) player.Delta {
	t.Helper()
	for _, d := range deltas {
		if d.PlayerID == playerID {
			return d
		}
	}
	t.Fatalf("no delta for player %d in %+v", playerID, deltas)
	return player.Delta{}
}

func TestIncentiveDeltas(t *testing.T) {
	const (
		striker = uint(1)
		bowler  = uint(2)
		catcher = uint(3)
	)

	t.Run("boundary pays the striker and charges the bowler", func(t *testing.T) {
		ev := &BallEvent{StrikerID: striker, BowlerID: bowler, Runs: 4}
		deltas := IncentiveDeltas(ev)
		require.Len(t, deltas, 2)

		s := deltaFor(t, deltas, striker)
		assert.Equal(t, int64(20), s.Earnings)
		assert.Equal(t, 4, s.Runs)

		b := deltaFor(t, deltas, bowler)
		assert.Equal(t, int64(-20), b.Earnings)
	})

	t.Run("true dot swings five from striker to bowler", func(t *testing.T) {
		ev := &BallEvent{StrikerID: striker, BowlerID: bowler, Runs: 0, Extras: ExtraNone}
		deltas := IncentiveDeltas(ev)
		require.Len(t, deltas, 2)

		assert.Equal(t, int64(-5), deltaFor(t, deltas, striker).Earnings)
		assert.Equal(t, int64(5), deltaFor(t, deltas, bowler).Earnings)
	})

	t.Run("wide is not a dot and charges nothing off the bat", func(t *testing.T) {
		ev := &BallEvent{StrikerID: striker, BowlerID: bowler, Runs: 0, Extras: ExtraWide, ExtrasRun: 1}
		deltas := IncentiveDeltas(ev)
		// No bat runs, no dot swing, extras runs not charged to the bowler.
		assert.Empty(t, deltas)
	})

	t.Run("runs plus extras charge only the bat runs", func(t *testing.T) {
		ev := &BallEvent{StrikerID: striker, BowlerID: bowler, Runs: 2, Extras: ExtraNoBall, ExtrasRun: 1}
		deltas := IncentiveDeltas(ev)

		assert.Equal(t, int64(10), deltaFor(t, deltas, striker).Earnings)
		assert.Equal(t, int64(-10), deltaFor(t, deltas, bowler).Earnings)
	})

	t.Run("caught with fielder splits the reward", func(t *testing.T) {
		fid := catcher
		ev := &BallEvent{
			StrikerID: striker, BowlerID: bowler, FielderID: &fid,
			Runs: 0, Extras: ExtraNone,
			IsWicket: true, WicketType: WicketCaught,
		}
		deltas := IncentiveDeltas(ev)
		require.Len(t, deltas, 3)

		b := deltaFor(t, deltas, bowler)
		assert.Equal(t, int64(25+DotBallSwing), b.Earnings) // dot swing still applies
		assert.Equal(t, 1, b.Wickets)

		f := deltaFor(t, deltas, catcher)
		assert.Equal(t, int64(25), f.Earnings)
		assert.Equal(t, 1, f.Catches)
		assert.Equal(t, 0, f.Wickets)
	})

	t.Run("caught without a fielder pays the full bowler reward", func(t *testing.T) {
		ev := &BallEvent{
			StrikerID: striker, BowlerID: bowler,
			Runs: 0, Extras: ExtraNone,
			IsWicket: true, WicketType: WicketCaught,
		}
		deltas := IncentiveDeltas(ev)
		require.Len(t, deltas, 2)

		b := deltaFor(t, deltas, bowler)
		assert.Equal(t, int64(50+DotBallSwing), b.Earnings)
		assert.Equal(t, 1, b.Wickets)
	})

	t.Run("bowled pays fifty to the bowler", func(t *testing.T) {
		ev := &BallEvent{
			StrikerID: striker, BowlerID: bowler,
			Runs: 0, Extras: ExtraNone,
			IsWicket: true, WicketType: WicketBowled,
		}
		deltas := IncentiveDeltas(ev)

		b := deltaFor(t, deltas, bowler)
		assert.Equal(t, int64(50+DotBallSwing), b.Earnings)
		assert.Equal(t, 1, b.Wickets)
	})

	t.Run("wicket on a scoring ball combines both rules", func(t *testing.T) {
		ev := &BallEvent{
			StrikerID: striker, BowlerID: bowler,
			Runs:     1,
			IsWicket: true, WicketType: WicketRunOut,
		}
		deltas := IncentiveDeltas(ev)

		s := deltaFor(t, deltas, striker)
		assert.Equal(t, int64(5), s.Earnings)
		assert.Equal(t, 1, s.Runs)

		b := deltaFor(t, deltas, bowler)
		assert.Equal(t, int64(-5+50), b.Earnings)
		assert.Equal(t, 1, b.Wickets)
	})

	t.Run("zero deltas are filtered out", func(t *testing.T) {
		ev := &BallEvent{StrikerID: striker, BowlerID: bowler, Runs: 0, Extras: ExtraBye, ExtrasRun: 1}
		deltas := IncentiveDeltas(ev)
		// Bye: not a dot, no bat runs. Striker has nothing, bowler has nothing.
		assert.Empty(t, deltas)
	})
}
