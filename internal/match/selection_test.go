package match

import (
	"testing"

	"github.com/DhavalSuthar-24/gully/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// rankedPool builds n players already ordered by earnings descending, the way
// the repository's selection query returns them.
func rankedPool(n int) []player.Player {
	pool := make([]player.Player, n)
	for i := 0; i < n; i++ {
		pool[i] = player.Player{
			Model:    gorm.Model{ID: uint(i + 1)},
			Name:     "p",
			Eligible: true,
			Earnings: int64(1000 - i*10),
		}
	}
	return pool
}

func TestFormTeams(t *testing.T) {
	t.Run("splits an even pool in half", func(t *testing.T) {
		assignments, err := FormTeams(rankedPool(22))
		require.NoError(t, err)
		require.Len(t, assignments, 22)

		var teamA, teamB []MatchPlayer
		for _, a := range assignments {
			switch a.Side {
			case TeamA:
				teamA = append(teamA, a)
			case TeamB:
				teamB = append(teamB, a)
			}
		}
		assert.Len(t, teamA, 11)
		assert.Len(t, teamB, 11)

		// Top earners land on team A, in order.
		assert.Equal(t, uint(1), teamA[0].PlayerID)
		assert.Equal(t, uint(11), teamA[10].PlayerID)
		assert.Equal(t, uint(12), teamB[0].PlayerID)
		assert.Equal(t, uint(22), teamB[10].PlayerID)

		// Seeding order is 1-based within each side.
		assert.Equal(t, 1, teamA[0].Order)
		assert.Equal(t, 11, teamA[10].Order)
		assert.Equal(t, 1, teamB[0].Order)
	})

	t.Run("odd pool gives the extra player to team B", func(t *testing.T) {
		assignments, err := FormTeams(rankedPool(23))
		require.NoError(t, err)

		counts := map[TeamSide]int{}
		for _, a := range assignments {
			counts[a.Side]++
		}
		assert.Equal(t, 11, counts[TeamA])
		assert.Equal(t, 12, counts[TeamB])
	})

	t.Run("rejects a pool below the minimum", func(t *testing.T) {
		_, err := FormTeams(rankedPool(21))
		assert.ErrorIs(t, err, ErrInsufficientPlayers)

		_, err = FormTeams(nil)
		assert.ErrorIs(t, err, ErrInsufficientPlayers)
	})

	t.Run("caps an oversized pool at the squad cap", func(t *testing.T) {
		assignments, err := FormTeams(rankedPool(40))
		require.NoError(t, err)
		require.Len(t, assignments, SquadCap)

		// Only the top 30 earners are selected.
		for _, a := range assignments {
			assert.LessOrEqual(t, a.PlayerID, uint(SquadCap))
		}
	})
}

func TestSplitSquad(t *testing.T) {
	pool := rankedPool(10)
	teamA, teamB := SplitSquad(pool, 4)
	require.Len(t, teamA, 4)
	require.Len(t, teamB, 6)
	assert.Equal(t, uint(1), teamA[0].ID)
	assert.Equal(t, uint(5), teamB[0].ID)
}
