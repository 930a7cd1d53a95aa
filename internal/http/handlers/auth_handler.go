package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/infrastructure/auth"
)

// AuthHandler handles HTTP requests for player authentication
type AuthHandler struct {
	settlementUseCase domain.SettlementUseCase
	jwtService        auth.JWTService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(settlementUseCase domain.SettlementUseCase, jwtService auth.JWTService) *AuthHandler {
	return &AuthHandler{
		settlementUseCase: settlementUseCase,
		jwtService:        jwtService,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"alice"`
}

// LoginResponse represents the login response body
type LoginResponse struct {
	Token  string     `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Player PlayerInfo `json:"player"`
}

// PlayerInfo represents player information
type PlayerInfo struct {
	Username string  `json:"username" example:"alice"`
	Balance  float64 `json:"balance" example:"1000.00"`
}

// Login handles player authentication
// @Summary Player login
// @Description Authenticate a player by username and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(domain.NewInvalidInputError("username", "username is required")))
		return
	}

	token, err := h.jwtService.GenerateToken(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, domain.NewErrorResponse(domain.NewInternalError("Failed to generate token", err)))
		return
	}

	// First login materializes the player with the opening balance.
	balance, err := h.settlementUseCase.Balance(c.Request.Context(), req.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		Player: PlayerInfo{
			Username: req.Username,
			Balance:  balance,
		},
	})
}

// GetBalance handles getting the authenticated player's balance
// @Summary Get player balance
// @Description Get the current balance for the authenticated player
// @Tags players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PlayerInfo
// @Failure 401 {object} domain.ErrorResponse
// @Router /players/me/balance [get]
func (h *AuthHandler) GetBalance(c *gin.Context) {
	playerID, ok := getAuthenticatedPlayerID(c)
	if !ok {
		return
	}

	balance, err := h.settlementUseCase.Balance(c.Request.Context(), playerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PlayerInfo{Username: playerID, Balance: balance})
}

// AdjustBalanceRequest represents the balance adjust request body
type AdjustBalanceRequest struct {
	Username string  `json:"username" binding:"required" example:"alice"`
	Delta    float64 `json:"delta" example:"-50.00"`
}

// GetPlayerBalance handles getting any player's balance by username
// @Summary Get balance by player
// @Description Get the current balance for the named player
// @Tags balances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param player path string true "Player username"
// @Success 200 {object} PlayerInfo
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /balances/{player} [get]
func (h *AuthHandler) GetPlayerBalance(c *gin.Context) {
	player := c.Param("player")

	balance, err := h.settlementUseCase.Balance(c.Request.Context(), player)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PlayerInfo{Username: player, Balance: balance})
}

// AdjustBalance handles applying a signed delta to a player's balance
// @Summary Adjust player balance
// @Description Apply a signed delta to the named player's balance, clamped at zero
// @Tags balances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AdjustBalanceRequest true "Adjustment"
// @Success 200 {object} PlayerInfo
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /balances [post]
func (h *AuthHandler) AdjustBalance(c *gin.Context) {
	var req AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(domain.NewInvalidInputError("request", "username is required")))
		return
	}

	newBalance, err := h.settlementUseCase.AdjustBalance(c.Request.Context(), req.Username, req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PlayerInfo{Username: req.Username, Balance: newBalance})
}

// getAuthenticatedPlayerID extracts the authenticated player ID from the context
func getAuthenticatedPlayerID(c *gin.Context) (string, bool) {
	playerID, exists := c.Get("player_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, domain.NewErrorResponse(domain.NewUnauthorizedError("Player not authenticated")))
		return "", false
	}
	return playerID.(string), true
}

// respondError writes an error response with the status the error carries.
func respondError(c *gin.Context, err error) {
	if appErr, ok := domain.IsAppError(err); ok {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		c.JSON(status, domain.NewErrorResponse(appErr))
		return
	}
	c.JSON(http.StatusInternalServerError, domain.NewErrorResponse(domain.NewInternalError("Internal server error", err)))
}
