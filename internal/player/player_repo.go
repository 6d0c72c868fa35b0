package player

import (
	"errors"

	"gorm.io/gorm"
)

// PlayerRepository defines methods to interact with the player pool.
type PlayerRepository interface {
	CreatePlayer(player *Player) error
	GetPlayerByID(id uint) (*Player, error)
	GetPlayers(page, pageSize int) ([]Player, int64, error)
	SetEligibility(id uint, eligible bool) error
	EligibleByEarnings(limit int) ([]Player, error)
	RankByEarnings(limit int) ([]Player, error)
}

// GormPlayerRepository implements PlayerRepository using GORM.
type GormPlayerRepository struct {
	db *gorm.DB
}

// NewGormPlayerRepository creates a new GormPlayerRepository.
func NewGormPlayerRepository(db *gorm.DB) *GormPlayerRepository {
	return &GormPlayerRepository{db: db}
}

// CreatePlayer adds a player to the pool.
func (r *GormPlayerRepository) CreatePlayer(player *Player) error {
	return r.db.Create(player).Error
}

// GetPlayerByID retrieves a player by ID.
func (r *GormPlayerRepository) GetPlayerByID(id uint) (*Player, error) {
	var p Player
	result := r.db.First(&p, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &p, nil
}

// GetPlayers retrieves players with pagination.
func (r *GormPlayerRepository) GetPlayers(page, pageSize int) ([]Player, int64, error) {
	var players []Player
	var total int64

	query := r.db.Model(&Player{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	result := query.Order("name asc").Offset(offset).Limit(pageSize).Find(&players)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return players, total, nil
}

// SetEligibility flags a player as selectable (or not) for team formation.
func (r *GormPlayerRepository) SetEligibility(id uint, eligible bool) error {
	result := r.db.Model(&Player{}).Where("id = ?", id).Update("eligible", eligible)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// EligibleByEarnings returns eligible players ordered by earnings descending,
// capped at limit. This is the selection order team formation relies on.
func (r *GormPlayerRepository) EligibleByEarnings(limit int) ([]Player, error) {
	var players []Player
	err := r.db.Where("eligible = ?", true).
		Order("earnings desc").
		Limit(limit).
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// RankByEarnings returns the top players by earnings regardless of eligibility.
func (r *GormPlayerRepository) RankByEarnings(limit int) ([]Player, error) {
	var players []Player
	err := r.db.Order("earnings desc").Limit(limit).Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}
