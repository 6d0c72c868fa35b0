package match

import "github.com/DhavalSuthar-24/gully/internal/player"

// Incentive rates, in currency units.
const (
	RunReward          = 5  // striker, per run off the bat
	DotBallSwing       = 5  // striker pays, bowler earns
	RunsConcededRate   = 5  // bowler pays, per run off the bat on a scoring ball
	CaughtWicketReward = 25 // bowler and fielder each
	WicketReward       = 50 // bowler, any other dismissal
)

// IncentiveDeltas derives the earnings and stat increments a single ball
// produces for the striker, bowler and fielder. The rules are independent and
// combine on one ball: a boundary credits the striker and debits the bowler,
// and a wicket on a scoring ball still pays the full wicket bonus. A true dot
// is no bat runs and no extras; an extras delivery is not a dot.
func IncentiveDeltas(ev *BallEvent) []player.Delta {
	striker := player.Delta{PlayerID: ev.StrikerID}
	bowler := player.Delta{PlayerID: ev.BowlerID}
	var fielder *player.Delta

	if ev.Runs > 0 {
		striker.Earnings += int64(ev.Runs * RunReward)
		striker.Runs += ev.Runs
	}

	if ev.Runs == 0 && ev.Extras == ExtraNone {
		striker.Earnings -= DotBallSwing
		bowler.Earnings += DotBallSwing
	}

	// Only bat-scored runs are charged to the bowler, extras runs are not.
	if ev.Runs > 0 || ev.Extras != ExtraNone {
		bowler.Earnings -= int64(RunsConcededRate * ev.Runs)
	}

	if ev.IsWicket {
		if ev.WicketType == WicketCaught && ev.FielderID != nil {
			bowler.Earnings += CaughtWicketReward
			bowler.Wickets++
			fielder = &player.Delta{PlayerID: *ev.FielderID, Earnings: CaughtWicketReward, Catches: 1}
		} else {
			bowler.Earnings += WicketReward
			bowler.Wickets++
		}
	}

	deltas := make([]player.Delta, 0, 3)
	for _, d := range []player.Delta{striker, bowler} {
		if !isZeroDelta(d) {
			deltas = append(deltas, d)
		}
	}
	if fielder != nil {
		deltas = append(deltas, *fielder)
	}
	return deltas
}

func isZeroDelta(d player.Delta) bool {
	return d.Earnings == 0 && d.Runs == 0 && d.Wickets == 0 && d.Catches == 0
}
