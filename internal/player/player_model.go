package player

import (
	"github.com/DhavalSuthar-24/gully/internal/user"
	"gorm.io/gorm"
)

// Player is a pool member eligible for match selection. Stats and earnings are
// mutated by the scoring engine after every ball that involves the player.
type Player struct {
	gorm.Model
	UserID   uint      `json:"user_id" gorm:"index;not null"`
	User     user.User `json:"-" gorm:"foreignKey:UserID"`
	Name     string    `json:"name" gorm:"not null"`
	Eligible bool      `json:"eligible" gorm:"index;default:true"`

	// Earnings are signed currency units; dot balls cost the striker.
	Earnings int64 `json:"earnings" gorm:"index;default:0"`

	// Cumulative career counts.
	Matches int `json:"matches" gorm:"default:0"`
	Runs    int `json:"runs" gorm:"default:0"`
	Wickets int `json:"wickets" gorm:"default:0"`
	Catches int `json:"catches" gorm:"default:0"`

	// Current form, refreshed from the last completed match.
	StrikeRate float64 `json:"strike_rate" gorm:"default:0"`
	Economy    float64 `json:"economy" gorm:"default:0"`
}

// Delta is an increment to a player's earnings and counting stats, produced by
// the incentive calculator for a single ball.
type Delta struct {
	PlayerID uint
	Earnings int64
	Runs     int
	Wickets  int
	Catches  int
}
