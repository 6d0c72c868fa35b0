package match

import "github.com/DhavalSuthar-24/gully/internal/player"

// Team formation policy.
const (
	// SquadCap is the most players selected into a match from the pool.
	SquadCap = 30
	// MinimumPool is the fewest eligible players a match can be formed from.
	MinimumPool = 22
)

// SplitSquad partitions an earnings-descending ranked squad into the two
// sides: the first teamSize players become team A, the rest team B. The split
// point is floor(n/2), so the stronger earners are seeded across the roster
// rather than shuffled. Pure so the policy is testable on its own.
func SplitSquad(ranked []player.Player, teamSize int) (teamA, teamB []player.Player) {
	return ranked[:teamSize], ranked[teamSize:]
}

// FormTeams validates the ranked eligible pool and produces the match player
// assignments for a new match. The input must already be ordered by earnings
// descending and capped at SquadCap (the repository's selection query).
func FormTeams(ranked []player.Player) ([]MatchPlayer, error) {
	if len(ranked) < MinimumPool {
		return nil, ErrInsufficientPlayers
	}
	if len(ranked) > SquadCap {
		ranked = ranked[:SquadCap]
	}

	teamSize := len(ranked) / 2
	teamA, teamB := SplitSquad(ranked, teamSize)

	assignments := make([]MatchPlayer, 0, len(ranked))
	for i, p := range teamA {
		assignments = append(assignments, MatchPlayer{PlayerID: p.ID, Side: TeamA, Order: i + 1})
	}
	for i, p := range teamB {
		assignments = append(assignments, MatchPlayer{PlayerID: p.ID, Side: TeamB, Order: i + 1})
	}
	return assignments, nil
}
