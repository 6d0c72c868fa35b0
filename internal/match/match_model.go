package match

import (
	"time"

	"github.com/DhavalSuthar-24/gully/internal/player"
	"github.com/DhavalSuthar-24/gully/internal/user"
	"gorm.io/gorm"
)

type MatchStatus string

const (
	StatusMatchUpcoming  MatchStatus = "upcoming"
	StatusMatchLive      MatchStatus = "live"
	StatusMatchCompleted MatchStatus = "completed"
)

// TeamSide identifies one of the two sides of a match.
type TeamSide string

const (
	TeamA TeamSide = "team_a"
	TeamB TeamSide = "team_b"
)

// Opposite returns the other side.
func (s TeamSide) Opposite() TeamSide {
	if s == TeamA {
		return TeamB
	}
	return TeamA
}

// TossDecision is what the toss winner opted to do.
type TossDecision string

const (
	DecisionBat  TossDecision = "bat"
	DecisionBowl TossDecision = "bowl"
)

// ExtraType for runs not scored off the bat.
type ExtraType string

const (
	ExtraNone   ExtraType = "none"
	ExtraWide   ExtraType = "wide"
	ExtraNoBall ExtraType = "no_ball"
	ExtraBye    ExtraType = "bye"
	ExtraLegBye ExtraType = "leg_bye"
)

// WicketType for cricket dismissals.
type WicketType string

const (
	WicketNone      WicketType = "none"
	WicketBowled    WicketType = "bowled"
	WicketCaught    WicketType = "caught"
	WicketLBW       WicketType = "lbw"
	WicketRunOut    WicketType = "run_out"
	WicketStumped   WicketType = "stumped"
	WicketHitWicket WicketType = "hit_wicket"
)

// TeamScore is the running scoreboard for one side. Overs uses the scorer's
// display encoding: full overs plus balls-in-over after the decimal point
// (11 legal balls -> 1.5), not true decimal overs.
type TeamScore struct {
	Total   int     `json:"total" gorm:"default:0"`
	Wickets int     `json:"wickets" gorm:"default:0"`
	Overs   float64 `json:"overs" gorm:"default:0"`
}

// Match is the aggregate: lifecycle status, toss, the two squads, the
// append-only ball log and the materialized scoreboard. The ball log is the
// source of truth; the scoreboard is a recomputable cache of it.
type Match struct {
	gorm.Model
	Title           string      `json:"title" gorm:"not null"`
	Overs           int         `json:"overs" gorm:"not null"`
	Status          MatchStatus `json:"status" gorm:"index;default:'upcoming'"`
	CreatedByUserID uint        `json:"created_by_user_id" gorm:"index"`
	CreatedByUser   user.User   `json:"-" gorm:"foreignKey:CreatedByUserID"`

	// Toss information, absent until the toss is recorded.
	TossWonBy    *TeamSide     `json:"toss_won_by,omitempty"`
	TossDecision *TossDecision `json:"toss_decision,omitempty"`

	CurrentBattingTeam TeamSide `json:"current_batting_team,omitempty"`

	TeamAScore TeamScore `json:"team_a_score" gorm:"embedded;embeddedPrefix:team_a_"`
	TeamBScore TeamScore `json:"team_b_score" gorm:"embedded;embeddedPrefix:team_b_"`

	Players []MatchPlayer `json:"players,omitempty" gorm:"foreignKey:MatchID"`
	Balls   []BallEvent   `json:"ball_by_ball,omitempty" gorm:"foreignKey:MatchID"`
}

// MatchPlayer assigns a pool player to one side of a match. Membership is
// fixed once the match is created.
type MatchPlayer struct {
	gorm.Model
	MatchID  uint          `json:"match_id" gorm:"index;not null"`
	PlayerID uint          `json:"player_id" gorm:"index;not null"`
	Player   player.Player `json:"player" gorm:"foreignKey:PlayerID"`
	Side     TeamSide      `json:"side" gorm:"index;not null"`
	Order    int           `json:"order" gorm:"not null"` // seeding order within the side, earnings descending
}

// BallEvent is one delivery in the append-only log. Immutable once appended;
// insertion order is chronological order. Over/Ball are the position as
// submitted by the scorer and are not validated against the log length.
type BallEvent struct {
	gorm.Model
	MatchID uint `json:"match_id" gorm:"index;not null"`

	StrikerID    uint          `json:"striker_id" gorm:"index;not null"`
	Striker      player.Player `json:"-" gorm:"foreignKey:StrikerID"`
	NonStrikerID *uint         `json:"non_striker_id,omitempty" gorm:"index"`
	BowlerID     uint          `json:"bowler_id" gorm:"index;not null"`
	Bowler       player.Player `json:"-" gorm:"foreignKey:BowlerID"`
	FielderID    *uint         `json:"fielder_id,omitempty" gorm:"index"`

	Runs       int        `json:"runs" gorm:"default:0"` // runs off the bat, 0-6
	Extras     ExtraType  `json:"extras" gorm:"default:'none'"`
	ExtrasRun  int        `json:"extras_run" gorm:"default:0"`
	IsWicket   bool       `json:"is_wicket" gorm:"default:false"`
	WicketType WicketType `json:"wicket_type" gorm:"default:'none'"`

	Over        int       `json:"over" gorm:"not null"` // 1-indexed, as submitted
	Ball        int       `json:"ball" gorm:"not null"` // 1-indexed within the over
	BattingSide TeamSide  `json:"batting_side" gorm:"index;not null"`
	RecordedAt  time.Time `json:"recorded_at" gorm:"autoCreateTime"`
}

// BattingScore returns the scoreboard of the side currently batting.
func (m *Match) BattingScore() *TeamScore {
	if m.CurrentBattingTeam == TeamB {
		return &m.TeamBScore
	}
	return &m.TeamAScore
}

// Side returns the match players assigned to one side, in seeding order.
func (m *Match) Side(side TeamSide) []MatchPlayer {
	var out []MatchPlayer
	for _, mp := range m.Players {
		if mp.Side == side {
			out = append(out, mp)
		}
	}
	return out
}

// RecordToss stores the toss result and derives the batting side: the winner
// bats on "bat", the other side bats on "bowl". Valid only while upcoming,
// and only once.
func (m *Match) RecordToss(wonBy TeamSide, decision TossDecision) error {
	if m.Status != StatusMatchUpcoming {
		return ErrInvalidState
	}
	if m.TossWonBy != nil {
		return ErrTossAlreadySet
	}

	m.TossWonBy = &wonBy
	m.TossDecision = &decision
	if decision == DecisionBat {
		m.CurrentBattingTeam = wonBy
	} else {
		m.CurrentBattingTeam = wonBy.Opposite()
	}
	return nil
}

// Start transitions the match to live. Requires the toss to be recorded.
func (m *Match) Start() error {
	if m.Status != StatusMatchUpcoming {
		return ErrInvalidState
	}
	if m.TossWonBy == nil {
		return ErrTossRequired
	}
	m.Status = StatusMatchLive
	return nil
}

// Finish transitions a live match to completed. Status never regresses, so
// this is the only way out of live.
func (m *Match) Finish() error {
	if m.Status != StatusMatchLive {
		return ErrInvalidState
	}
	m.Status = StatusMatchCompleted
	return nil
}
