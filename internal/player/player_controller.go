package player

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/gully/pkg/responses"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PlayerController handles player-pool HTTP requests.
type PlayerController struct {
	repo PlayerRepository
}

// NewPlayerController creates a new player controller.
func NewPlayerController(repo PlayerRepository) *PlayerController {
	return &PlayerController{repo: repo}
}

// CreatePlayerRequest defines the request payload for adding a player to the pool.
type CreatePlayerRequest struct {
	UserID   uint   `json:"user_id" binding:"required"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Eligible *bool  `json:"eligible,omitempty"`
}

// UpdateEligibilityRequest defines the request payload for roster management.
type UpdateEligibilityRequest struct {
	Eligible *bool `json:"eligible" binding:"required"`
}

// CreatePlayer adds a player to the pool.
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	p := Player{
		UserID:   req.UserID,
		Name:     req.Name,
		Eligible: true,
	}
	if req.Eligible != nil {
		p.Eligible = *req.Eligible
	}

	if err := pc.repo.CreatePlayer(&p); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create player: "+err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Player created successfully", p)
}

// GetPlayerByID retrieves a specific player by ID.
func (pc *PlayerController) GetPlayerByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID")
		return
	}

	p, err := pc.repo.GetPlayerByID(uint(id))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch player: "+err.Error())
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", p)
}

// GetPlayers retrieves the player pool with pagination.
func (pc *PlayerController) GetPlayers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	players, total, err := pc.repo.GetPlayers(page, pageSize)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch players: "+err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "", players, total, page, pageSize)
}

// UpdateEligibility flags a player as selectable for team formation.
func (pc *PlayerController) UpdateEligibility(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID")
		return
	}

	var req UpdateEligibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	if err := pc.repo.SetEligibility(uint(id), *req.Eligible); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Player")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to update eligibility: "+err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Eligibility updated successfully", nil)
}

// GetRankings returns the top players ordered by earnings.
func (pc *PlayerController) GetRankings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	if limit < 1 || limit > 100 {
		limit = 30
	}

	players, err := pc.repo.RankByEarnings(limit)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch rankings: "+err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", players)
}
