package match

import (
	"errors"
	"net/http"
	"strconv"

	mw "github.com/DhavalSuthar-24/gully/internal/middleware"
	"github.com/DhavalSuthar-24/gully/internal/player"
	"github.com/DhavalSuthar-24/gully/pkg/responses"
	"github.com/gin-gonic/gin"
)

// MatchController handles match-related HTTP requests.
type MatchController struct {
	repo       MatchRepository
	playerRepo player.PlayerRepository
}

// NewMatchController creates a new match controller.
func NewMatchController(repo MatchRepository, playerRepo player.PlayerRepository) *MatchController {
	return &MatchController{
		repo:       repo,
		playerRepo: playerRepo,
	}
}

// --- DTOs for requests ---

// CreateMatchRequest defines the request payload for creating a match.
type CreateMatchRequest struct {
	Title string `json:"title" binding:"required,min=3,max=200"`
	Overs int    `json:"overs" binding:"required,min=1"`
}

// UpdateMatchRequest defines the request payload for updating match metadata.
type UpdateMatchRequest struct {
	Title *string `json:"title,omitempty" binding:"omitempty,min=3,max=200"`
	Overs *int    `json:"overs,omitempty" binding:"omitempty,min=1"`
}

// SetTossRequest defines the request payload for recording the toss.
type SetTossRequest struct {
	WonBy TeamSide     `json:"won_by" binding:"required,oneof=team_a team_b"`
	Opted TossDecision `json:"opted" binding:"required,oneof=bat bowl"`
}

// AddBallRequest defines the request payload for recording one delivery.
type AddBallRequest struct {
	StrikerID    uint       `json:"striker_id" binding:"required"`
	NonStrikerID *uint      `json:"non_striker_id,omitempty"`
	BowlerID     uint       `json:"bowler_id" binding:"required"`
	FielderID    *uint      `json:"fielder_id,omitempty"`
	Runs         int        `json:"runs" binding:"min=0,max=6"`
	Extras       ExtraType  `json:"extras,omitempty" binding:"omitempty,oneof=none wide no_ball bye leg_bye"`
	ExtrasRun    int        `json:"extras_run,omitempty" binding:"omitempty,min=0"`
	IsWicket     bool       `json:"is_wicket,omitempty"`
	WicketType   WicketType `json:"wicket_type,omitempty" binding:"omitempty,oneof=none bowled caught lbw run_out stumped hit_wicket"`
	Over         int        `json:"over" binding:"required,min=1"`
	Ball         int        `json:"ball" binding:"required,min=1"`
}

// ScoreboardSnapshot is the batting side's scoreboard returned after a ball.
type ScoreboardSnapshot struct {
	BattingTeam TeamSide  `json:"batting_team"`
	Score       TeamScore `json:"score"`
}

// engineErrorResponse maps engine sentinels to HTTP responses. Everything in
// the taxonomy is a client-correctable condition; anything else is internal.
func engineErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidState),
		errors.Is(err, ErrTossRequired),
		errors.Is(err, ErrTossAlreadySet),
		errors.Is(err, ErrMatchNotLive),
		errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInsufficientPlayers):
		responses.SendError(c, http.StatusBadRequest, err.Error())
	default:
		responses.SendError(c, http.StatusInternalServerError, "Operation failed: "+err.Error())
	}
}

// CreateMatch forms two teams from the eligible player pool and creates the
// match in upcoming status with an empty toss and zero scoreboards.
func (mc *MatchController) CreateMatch(c *gin.Context) {
	userID, err := mw.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	pool, err := mc.playerRepo.EligibleByEarnings(SquadCap)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to load player pool: "+err.Error())
		return
	}

	assignments, err := FormTeams(pool)
	if err != nil {
		engineErrorResponse(c, err)
		return
	}

	match := Match{
		Title:           req.Title,
		Overs:           req.Overs,
		Status:          StatusMatchUpcoming,
		CreatedByUserID: userID,
	}

	err = mc.repo.WithTransaction(func(txRepo MatchRepository) error {
		if err := txRepo.CreateMatch(&match); err != nil {
			return err
		}
		playerIDs := make([]uint, 0, len(assignments))
		for i := range assignments {
			assignments[i].MatchID = match.ID
			playerIDs = append(playerIDs, assignments[i].PlayerID)
		}
		if err := txRepo.AddPlayersToMatch(assignments); err != nil {
			return err
		}
		return txRepo.IncrementPlayerMatches(playerIDs)
	})
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create match: "+err.Error())
		return
	}

	created, err := mc.repo.GetMatchByID(match.ID)
	if err != nil || created == nil {
		responses.SendSuccess(c, http.StatusCreated, "Match created successfully", match)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Match created successfully", created)
}

// GetMatches retrieves match summaries, optionally filtered by status.
func (mc *MatchController) GetMatches(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	filters := make(map[string]interface{})
	if status := c.Query("status"); status != "" {
		filters["status"] = status
	}

	matches, total, err := mc.repo.GetMatches(filters, page, pageSize)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch matches: "+err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "", matches, total, page, pageSize)
}

// GetMatchByID retrieves a specific match by ID.
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	match, ok := mc.loadMatch(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", match)
}

// UpdateMatch updates match metadata. Permitted only while upcoming; the
// lifecycle itself moves through the toss/start/complete operations.
func (mc *MatchController) UpdateMatch(c *gin.Context) {
	id, ok := matchIDParam(c)
	if !ok {
		return
	}

	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	var match *Match
	err := mc.repo.WithTransaction(func(txRepo MatchRepository) error {
		m, err := txRepo.GetMatchForUpdate(id)
		if err != nil {
			return err
		}
		if m == nil {
			return errMatchNotFound
		}
		if m.Status != StatusMatchUpcoming {
			return ErrInvalidState
		}
		if req.Title != nil {
			m.Title = *req.Title
		}
		if req.Overs != nil {
			m.Overs = *req.Overs
		}
		match = m
		return txRepo.SaveMatchState(m)
	})
	if err != nil {
		if errors.Is(err, errMatchNotFound) {
			responses.NotFound(c, "Match")
			return
		}
		engineErrorResponse(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Match updated successfully", match)
}

// DeleteMatch deletes a match that has not started.
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	id, ok := matchIDParam(c)
	if !ok {
		return
	}

	err := mc.repo.WithTransaction(func(txRepo MatchRepository) error {
		m, err := txRepo.GetMatchForUpdate(id)
		if err != nil {
			return err
		}
		if m == nil {
			return errMatchNotFound
		}
		if m.Status != StatusMatchUpcoming {
			return ErrInvalidState
		}
		return txRepo.DeleteMatch(id)
	})
	if err != nil {
		if errors.Is(err, errMatchNotFound) {
			responses.NotFound(c, "Match")
			return
		}
		engineErrorResponse(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Match deleted successfully", nil)
}

// SetToss records the toss and derives the batting side.
func (mc *MatchController) SetToss(c *gin.Context) {
	id, ok := matchIDParam(c)
	if !ok {
		return
	}

	var req SetTossRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	var match *Match
	err := mc.repo.WithTransaction(func(txRepo MatchRepository) error {
		m, err := txRepo.GetMatchForUpdate(id)
		if err != nil {
			return err
		}
		if m == nil {
			return errMatchNotFound
		}
		if err := m.RecordToss(req.WonBy, req.Opted); err != nil {
			return err
		}
		match = m
		return txRepo.SaveMatchState(m)
	})
	if err != nil {
		if errors.Is(err, errMatchNotFound) {
			responses.NotFound(c, "Match")
			return
		}
		engineErrorResponse(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Toss recorded successfully", gin.H{
		"won_by":               match.TossWonBy,
		"opted":                match.TossDecision,
		"current_batting_team": match.CurrentBattingTeam,
	})
}

// StartMatch transitions an upcoming match with a recorded toss to live.
func (mc *MatchController) StartMatch(c *gin.Context) {
	mc.transition(c, "Match started successfully", func(m *Match) error { return m.Start() })
}

// CompleteMatch transitions a live match to completed and writes the derived
// strike rate and economy of every participant back to the pool as their
// current form.
func (mc *MatchController) CompleteMatch(c *gin.Context) {
	id, ok := matchIDParam(c)
	if !ok {
		return
	}

	var match *Match
	err := mc.repo.WithTransaction(func(txRepo MatchRepository) error {
		m, err := txRepo.GetMatchForUpdate(id)
		if err != nil {
			return err
		}
		if m == nil {
			return errMatchNotFound
		}
		if err := m.Finish(); err != nil {
			return err
		}
		if err := txRepo.SaveMatchState(m); err != nil {
			return err
		}
		match = m
		return txRepo.RefreshPlayerForm(AggregateFigures(m))
	})
	if err != nil {
		if errors.Is(err, errMatchNotFound) {
			responses.NotFound(c, "Match")
			return
		}
		engineErrorResponse(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Match completed successfully", gin.H{"status": match.Status})
}

// transition runs a lifecycle step under the match row lock.
func (mc *MatchController) transition(c *gin.Context, message string, step func(*Match) error) {
	id, ok := matchIDParam(c)
	if !ok {
		return
	}

	var match *Match
	err := mc.repo.WithTransaction(func(txRepo MatchRepository) error {
		m, err := txRepo.GetMatchForUpdate(id)
		if err != nil {
			return err
		}
		if m == nil {
			return errMatchNotFound
		}
		if err := step(m); err != nil {
			return err
		}
		match = m
		return txRepo.SaveMatchState(m)
	})
	if err != nil {
		if errors.Is(err, errMatchNotFound) {
			responses.NotFound(c, "Match")
			return
		}
		engineErrorResponse(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, message, gin.H{"status": match.Status})
}

// AddBall appends one delivery to a live match. The log append, the
// scoreboard update and the incentive payout commit as one unit: if any step
// fails the whole operation rolls back.
func (mc *MatchController) AddBall(c *gin.Context) {
	id, ok := matchIDParam(c)
	if !ok {
		return
	}

	var req AddBallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	ev := BallEvent{
		StrikerID:    req.StrikerID,
		NonStrikerID: req.NonStrikerID,
		BowlerID:     req.BowlerID,
		FielderID:    req.FielderID,
		Runs:         req.Runs,
		Extras:       req.Extras,
		ExtrasRun:    req.ExtrasRun,
		IsWicket:     req.IsWicket,
		WicketType:   req.WicketType,
		Over:         req.Over,
		Ball:         req.Ball,
	}

	var snapshot ScoreboardSnapshot
	err := mc.repo.WithTransaction(func(txRepo MatchRepository) error {
		m, err := txRepo.GetMatchForUpdate(id)
		if err != nil {
			return err
		}
		if m == nil {
			return errMatchNotFound
		}

		if err := m.ApplyBall(&ev); err != nil {
			return err
		}
		if err := txRepo.AppendBall(&ev); err != nil {
			return err
		}
		if err := txRepo.SaveMatchState(m); err != nil {
			return err
		}
		if err := txRepo.ApplyPlayerDeltas(IncentiveDeltas(&ev)); err != nil {
			return err
		}

		snapshot = ScoreboardSnapshot{
			BattingTeam: m.CurrentBattingTeam,
			Score:       *m.BattingScore(),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errMatchNotFound) {
			responses.NotFound(c, "Match")
			return
		}
		engineErrorResponse(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Ball recorded successfully", snapshot)
}

// GetScoreboard returns the full match with per-player figures derived fresh
// from the ball log. Read-only: nothing is written back.
func (mc *MatchController) GetScoreboard(c *gin.Context) {
	match, ok := mc.loadMatch(c)
	if !ok {
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", gin.H{
		"match":   match,
		"figures": AggregateFigures(match),
	})
}

// errMatchNotFound distinguishes a missing match inside a transaction
// callback from engine state errors.
var errMatchNotFound = errors.New("match not found")

func matchIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return 0, false
	}
	return uint(id), true
}

func (mc *MatchController) loadMatch(c *gin.Context) (*Match, bool) {
	id, ok := matchIDParam(c)
	if !ok {
		return nil, false
	}
	match, err := mc.repo.GetMatchByID(id)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch match: "+err.Error())
		return nil, false
	}
	if match == nil {
		responses.NotFound(c, "Match")
		return nil, false
	}
	return match, true
}
