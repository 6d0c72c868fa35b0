package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordToss(t *testing.T) {
	t.Run("winner opting to bat bats first", func(t *testing.T) {
		m := &Match{Status: StatusMatchUpcoming}

		err := m.RecordToss(TeamB, DecisionBat)
		require.NoError(t, err)

		require.NotNil(t, m.TossWonBy)
		assert.Equal(t, TeamB, *m.TossWonBy)
		assert.Equal(t, DecisionBat, *m.TossDecision)
		assert.Equal(t, TeamB, m.CurrentBattingTeam)
	})

	t.Run("winner opting to bowl puts the other side in", func(t *testing.T) {
		m := &Match{Status: StatusMatchUpcoming}

		err := m.RecordToss(TeamB, DecisionBowl)
		require.NoError(t, err)
		assert.Equal(t, TeamA, m.CurrentBattingTeam)
	})

	t.Run("rejects a second toss", func(t *testing.T) {
		m := &Match{Status: StatusMatchUpcoming}
		require.NoError(t, m.RecordToss(TeamA, DecisionBat))

		err := m.RecordToss(TeamB, DecisionBowl)
		assert.ErrorIs(t, err, ErrTossAlreadySet)

		// First result untouched.
		assert.Equal(t, TeamA, *m.TossWonBy)
		assert.Equal(t, TeamA, m.CurrentBattingTeam)
	})

	t.Run("rejects toss once live", func(t *testing.T) {
		m := &Match{Status: StatusMatchLive}
		err := m.RecordToss(TeamA, DecisionBat)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestMatchLifecycle(t *testing.T) {
	t.Run("start requires a recorded toss", func(t *testing.T) {
		m := &Match{Status: StatusMatchUpcoming}
		assert.ErrorIs(t, m.Start(), ErrTossRequired)
		assert.Equal(t, StatusMatchUpcoming, m.Status)
	})

	t.Run("upcoming to live to completed", func(t *testing.T) {
		m := &Match{Status: StatusMatchUpcoming}
		require.NoError(t, m.RecordToss(TeamA, DecisionBat))

		require.NoError(t, m.Start())
		assert.Equal(t, StatusMatchLive, m.Status)

		require.NoError(t, m.Finish())
		assert.Equal(t, StatusMatchCompleted, m.Status)
	})

	t.Run("no restart after completion", func(t *testing.T) {
		m := &Match{Status: StatusMatchCompleted}
		assert.ErrorIs(t, m.Start(), ErrInvalidState)
		assert.ErrorIs(t, m.Finish(), ErrInvalidState)
		assert.Equal(t, StatusMatchCompleted, m.Status)
	})

	t.Run("finish only from live", func(t *testing.T) {
		m := &Match{Status: StatusMatchUpcoming}
		assert.ErrorIs(t, m.Finish(), ErrInvalidState)
	})
}

func TestTeamSideOpposite(t *testing.T) {
	assert.Equal(t, TeamB, TeamA.Opposite())
	assert.Equal(t, TeamA, TeamB.Opposite())
}
