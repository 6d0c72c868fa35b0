package match

import (
	"errors"

	"github.com/DhavalSuthar-24/gully/internal/player"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MatchRepository defines methods to interact with match data.
type MatchRepository interface {
	CreateMatch(match *Match) error
	GetMatchByID(id uint) (*Match, error)
	// GetMatchForUpdate loads a match with its log under a row lock so that
	// at most one ball-append runs per match at a time. Must be called inside
	// WithTransaction.
	GetMatchForUpdate(id uint) (*Match, error)
	SaveMatchState(match *Match) error
	DeleteMatch(id uint) error
	GetMatches(filters map[string]interface{}, page, pageSize int) ([]Match, int64, error)
	AddPlayersToMatch(players []MatchPlayer) error
	IncrementPlayerMatches(playerIDs []uint) error
	AppendBall(ball *BallEvent) error
	ApplyPlayerDeltas(deltas []player.Delta) error
	RefreshPlayerForm(figures []PlayerFigures) error

	// Transaction support
	WithTransaction(txFunc func(MatchRepository) error) error
}

// GormMatchRepository implements MatchRepository using GORM.
type GormMatchRepository struct {
	db *gorm.DB
}

// NewGormMatchRepository creates a new GormMatchRepository.
func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

// WithTransaction implements transaction support.
func (r *GormMatchRepository) WithTransaction(txFunc func(MatchRepository) error) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	txRepo := &GormMatchRepository{db: tx}
	if err := txFunc(txRepo); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// CreateMatch creates a new match.
func (r *GormMatchRepository) CreateMatch(match *Match) error {
	return r.db.Create(match).Error
}

// GetMatchByID retrieves a match with its squads and full ball log.
func (r *GormMatchRepository) GetMatchByID(id uint) (*Match, error) {
	var match Match
	result := r.db.Preload("Players", func(db *gorm.DB) *gorm.DB {
		return db.Order("match_players.side, match_players.order")
	}).
		Preload("Players.Player").
		Preload("Balls", func(db *gorm.DB) *gorm.DB {
			return db.Order("ball_events.id")
		}).
		First(&match, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &match, nil
}

// GetMatchForUpdate locks the match row (SELECT ... FOR UPDATE) and loads the
// same associations as GetMatchByID. Concurrent scorers for the same match
// serialize here; other matches are unaffected.
func (r *GormMatchRepository) GetMatchForUpdate(id uint) (*Match, error) {
	var match Match
	result := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Players", func(db *gorm.DB) *gorm.DB {
			return db.Order("match_players.side, match_players.order")
		}).
		Preload("Players.Player").
		Preload("Balls", func(db *gorm.DB) *gorm.DB {
			return db.Order("ball_events.id")
		}).
		First(&match, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &match, nil
}

// SaveMatchState persists the match row (status, toss, scoreboard) without
// touching the ball log or squad associations.
func (r *GormMatchRepository) SaveMatchState(match *Match) error {
	return r.db.Omit(clause.Associations).Save(match).Error
}

// DeleteMatch soft-deletes a match.
func (r *GormMatchRepository) DeleteMatch(id uint) error {
	return r.db.Delete(&Match{}, id).Error
}

// GetMatches retrieves match summaries based on filters with pagination. The
// ball log is not loaded here.
func (r *GormMatchRepository) GetMatches(filters map[string]interface{}, page, pageSize int) ([]Match, int64, error) {
	var matches []Match
	var total int64

	query := r.db.Model(&Match{})
	for key, value := range filters {
		query = query.Where(key, value)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	result := query.Order("created_at desc").
		Offset(offset).Limit(pageSize).
		Find(&matches)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return matches, total, nil
}

// AddPlayersToMatch stores the side assignments produced by team formation.
func (r *GormMatchRepository) AddPlayersToMatch(players []MatchPlayer) error {
	return r.db.Create(&players).Error
}

// IncrementPlayerMatches bumps the career match count for every selected
// player. Called in the same transaction as the squad insert.
func (r *GormMatchRepository) IncrementPlayerMatches(playerIDs []uint) error {
	if len(playerIDs) == 0 {
		return nil
	}
	return r.db.Model(&player.Player{}).
		Where("id IN ?", playerIDs).
		Update("matches", gorm.Expr("matches + 1")).Error
}

// AppendBall appends one delivery to the log.
func (r *GormMatchRepository) AppendBall(ball *BallEvent) error {
	return r.db.Create(ball).Error
}

// ApplyPlayerDeltas applies earnings/stat increments to the pool. Called
// inside the same transaction as the ball append so the two commit or roll
// back as one unit.
func (r *GormMatchRepository) ApplyPlayerDeltas(deltas []player.Delta) error {
	for _, d := range deltas {
		updates := map[string]interface{}{}
		if d.Earnings != 0 {
			updates["earnings"] = gorm.Expr("earnings + ?", d.Earnings)
		}
		if d.Runs != 0 {
			updates["runs"] = gorm.Expr("runs + ?", d.Runs)
		}
		if d.Wickets != 0 {
			updates["wickets"] = gorm.Expr("wickets + ?", d.Wickets)
		}
		if d.Catches != 0 {
			updates["catches"] = gorm.Expr("catches + ?", d.Catches)
		}
		if len(updates) == 0 {
			continue
		}
		result := r.db.Model(&player.Player{}).Where("id = ?", d.PlayerID).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

// RefreshPlayerForm writes the derived strike rate and economy of a finished
// match back to the pool as each player's current form. Players who did not
// bat keep their previous strike rate; likewise for bowlers and economy.
func (r *GormMatchRepository) RefreshPlayerForm(figures []PlayerFigures) error {
	for _, f := range figures {
		updates := map[string]interface{}{}
		if f.Batting.Balls > 0 {
			updates["strike_rate"] = f.Batting.StrikeRate
		}
		if f.Bowling.Overs > 0 {
			updates["economy"] = f.Bowling.Economy
		}
		if len(updates) == 0 {
			continue
		}
		if err := r.db.Model(&player.Player{}).Where("id = ?", f.PlayerID).Updates(updates).Error; err != nil {
			return err
		}
	}
	return nil
}
