package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/DhavalSuthar-24/gully/config"
	"github.com/DhavalSuthar-24/gully/internal/middleware"
	"github.com/DhavalSuthar-24/gully/internal/user"
	"github.com/DhavalSuthar-24/gully/pkg/responses"
	"github.com/DhavalSuthar-24/gully/pkg/token"
	pkgutils "github.com/DhavalSuthar-24/gully/pkg/utils"
	"github.com/DhavalSuthar-24/gully/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const DefaultUserRole = "scorer"

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
	}
}

func (ac *AuthController) generateAndSaveTokens(userID uint, role string) (string, string, error) {
	accessToken, err := token.GenerateJWT(userID, role, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return "", "", fmt.Errorf("access token generation failed: %w", err)
	}

	refreshTokenString, err := pkgutils.GenerateRefreshToken(userID, ac.config.JWT.RefreshTokenSecret, ac.config.JWT.RefreshTokenExpiryDays)
	if err != nil {
		return "", "", fmt.Errorf("refresh token generation failed: %w", err)
	}

	refreshToken := &user.RefreshToken{
		UserID:    userID,
		Token:     refreshTokenString,
		ExpiresAt: time.Now().AddDate(0, 0, ac.config.JWT.RefreshTokenExpiryDays),
	}

	if err := ac.repo.SaveRefreshToken(refreshToken); err != nil {
		return "", "", fmt.Errorf("failed to save refresh token: %w", err)
	}
	return accessToken, refreshTokenString, nil
}

func primaryRole(u *user.User) string {
	if len(u.Roles) > 0 {
		return u.Roles[0].Name
	}
	return ""
}

// Register creates a new user account and issues the first token pair.
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	// Check for existing users
	if _, err := ac.repo.GetUserByEmail(req.Email); !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.SendError(c, http.StatusConflict, "User with this email already exists")
		return
	}
	if _, err := ac.repo.GetUserByUsername(req.Username); !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.SendError(c, http.StatusConflict, "User with this username already exists")
		return
	}

	for _, rn := range req.Roles {
		if _, err := ac.repo.GetRoleByName(rn); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.SendError(c, http.StatusBadRequest, fmt.Sprintf("role %q does not exist", rn))
				return
			}
			responses.SendError(c, http.StatusInternalServerError, "Role lookup failed")
			return
		}
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Error hashing password")
		return
	}

	newUser := &user.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}
	if err := ac.repo.CreateUser(newUser); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create user: "+err.Error())
		return
	}

	roles := req.Roles
	if len(roles) == 0 {
		roles = []string{DefaultUserRole}
	}
	for _, rn := range roles {
		if err := ac.repo.AssignRoleToUser(newUser.ID, rn); err != nil {
			responses.SendError(c, http.StatusInternalServerError, "Failed to assign role: "+err.Error())
			return
		}
	}

	created, err := ac.repo.GetUserByID(newUser.ID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to load user")
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(created.ID, primaryRole(created))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "User registered successfully", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(created),
	})
}

// Login authenticates by email or username and issues a token pair.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	u, err := ac.repo.GetUserByEmail(req.LoginIdentifier)
	if err != nil {
		u, err = ac.repo.GetUserByUsername(req.LoginIdentifier)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.Unauthorized(c, "Invalid credentials")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Login failed: "+err.Error())
		return
	}

	if !utils.CheckPassword(u.Password, req.Password) {
		responses.Unauthorized(c, "Invalid credentials")
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(u.ID, primaryRole(u))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Login successful", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(u),
	})
}

// RefreshToken rotates a valid refresh token into a fresh token pair.
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	userID, err := pkgutils.VerifyRefreshToken(req.RefreshToken, ac.config.JWT.RefreshTokenSecret)
	if err != nil {
		responses.Unauthorized(c, "Invalid refresh token")
		return
	}

	// The token must also still be live in the store; a revoked token fails
	// even if its signature checks out.
	if _, err := ac.repo.GetRefreshToken(req.RefreshToken); err != nil {
		responses.Unauthorized(c, "Refresh token revoked or expired")
		return
	}

	if err := ac.repo.InvalidateRefreshToken(req.RefreshToken); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to rotate refresh token")
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		responses.Unauthorized(c, "User not found")
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(u.ID, primaryRole(u))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Token refreshed successfully", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(u),
	})
}

// GetProfile returns the authenticated user's profile.
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "User")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to load profile: "+err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", FilterUserRecord(u))
}

// Logout invalidates the given refresh token, or every session on request.
func (ac *AuthController) Logout(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	if req.InvalidateAllSessions {
		err = ac.repo.InvalidateAllRefreshTokensForUser(userID)
	} else if req.RefreshToken != "" {
		err = ac.repo.InvalidateRefreshToken(req.RefreshToken)
	}
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Logout failed: "+err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Logged out successfully", nil)
}
