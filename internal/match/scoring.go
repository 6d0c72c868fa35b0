package match

// Ball ingestion and the scoreboard updater. The ball log is append-only; the
// per-side scoreboard is an incrementally maintained cache that stays
// derivable as a prefix-sum of the log.

// IsLegalDelivery reports whether the delivery counts toward the over. Wides
// and no-balls must be re-bowled and are excluded.
func (b *BallEvent) IsLegalDelivery() bool {
	return b.Extras != ExtraWide && b.Extras != ExtraNoBall
}

// TotalRuns is everything the batting team scored off this delivery.
func (b *BallEvent) TotalRuns() int {
	return b.Runs + b.ExtrasRun
}

// OversValue encodes a legal-delivery count in the scorer's display form:
// completed overs before the decimal point, balls of the current over after
// it. 5 legal balls -> 0.5, 6 -> 1, 11 -> 1.5. The fractional digit is the
// ball count divided by 10, not by 6.
func OversValue(legalCount int) float64 {
	return float64(legalCount/6) + float64(legalCount%6)/10
}

// ApplyBall validates and appends a delivery to the log, then updates the
// batting side's scoreboard: total and wickets incrementally, overs recomputed
// from the full log for that side. Valid only while the match is live.
func (m *Match) ApplyBall(ev *BallEvent) error {
	if m.Status != StatusMatchLive {
		return ErrMatchNotLive
	}
	if ev.StrikerID == 0 || ev.BowlerID == 0 || ev.Over <= 0 || ev.Ball <= 0 {
		return ErrMissingFields
	}

	ev.MatchID = m.ID
	ev.BattingSide = m.CurrentBattingTeam
	if ev.Extras == "" {
		ev.Extras = ExtraNone
	}
	if ev.WicketType == "" {
		ev.WicketType = WicketNone
	}

	m.Balls = append(m.Balls, *ev)

	score := m.BattingScore()
	score.Total += ev.TotalRuns()
	if ev.IsWicket {
		score.Wickets++
	}
	score.Overs = OversValue(m.legalDeliveries(m.CurrentBattingTeam))

	return nil
}

// legalDeliveries counts the legal balls recorded while the given side was
// batting, over the entire log.
func (m *Match) legalDeliveries(side TeamSide) int {
	count := 0
	for i := range m.Balls {
		b := &m.Balls[i]
		if b.BattingSide == side && b.IsLegalDelivery() {
			count++
		}
	}
	return count
}
