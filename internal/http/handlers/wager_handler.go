package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// WagerHandler handles HTTP requests for placing wagers
type WagerHandler struct {
	settlementUseCase domain.SettlementUseCase
	logger            *logger.Logger
}

// NewWagerHandler creates a new wager handler
func NewWagerHandler(settlementUseCase domain.SettlementUseCase, logger *logger.Logger) *WagerHandler {
	return &WagerHandler{
		settlementUseCase: settlementUseCase,
		logger:            logger,
	}
}

// PlayRequest represents the wager request body
type PlayRequest struct {
	Action    string         `json:"action" binding:"required" example:"roll"`
	BetAmount float64        `json:"bet_amount" example:"50"`
	BetType   string         `json:"bet_type" example:"pass"`
	BetDetail map[string]any `json:"bet_detail"`
}

// PlayResponse represents the wager response body
type PlayResponse struct {
	Outcome    *domain.Outcome `json:"outcome"`
	NewBalance float64         `json:"new_balance" example:"1050.00"`
}

// Play handles one wager for the authenticated player
// @Summary Place a wager
// @Description Resolve one bet for the given game and settle it against the player's balance
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param game path string true "Game name" Enums(dice, slots, roulette, blackjack)
// @Param request body PlayRequest true "Wager details"
// @Success 200 {object} PlayResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 402 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Failure 502 {object} domain.ErrorResponse
// @Router /games/{game}/play [post]
func (h *WagerHandler) Play(c *gin.Context) {
	playerID, ok := getAuthenticatedPlayerID(c)
	if !ok {
		return
	}

	var req PlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(domain.NewInvalidInputError("body", "invalid request body")))
		return
	}

	wager := domain.Wager{
		PlayerID:  playerID,
		Game:      domain.Game(c.Param("game")),
		Action:    domain.Action(req.Action),
		BetAmount: req.BetAmount,
		BetType:   req.BetType,
		BetDetail: req.BetDetail,
	}

	settlement, err := h.settlementUseCase.PlaceWager(c.Request.Context(), wager)
	if err != nil {
		h.logger.WithContext(c.Request.Context()).Warn("Wager rejected",
			zap.String("player_id", playerID),
			zap.String("game", string(wager.Game)),
			zap.String("action", string(wager.Action)),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PlayResponse{
		Outcome:    settlement.Outcome,
		NewBalance: settlement.NewBalance,
	})
}

// GetState handles reading the last stored display state
// @Summary Get game display state
// @Description Get the last resolved outcome stored for the player and game
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param game path string true "Game name" Enums(dice, slots, roulette, blackjack)
// @Success 200 {object} map[string]any
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /games/{game}/state [get]
func (h *WagerHandler) GetState(c *gin.Context) {
	playerID, ok := getAuthenticatedPlayerID(c)
	if !ok {
		return
	}

	raw, found, err := h.settlementUseCase.DisplayState(c.Request.Context(), playerID, domain.Game(c.Param("game")))
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, domain.NewErrorResponse(domain.NewNotFoundError("game state")))
		return
	}

	var state map[string]any
	if err := json.Unmarshal(raw, &state); err != nil {
		c.JSON(http.StatusInternalServerError, domain.NewErrorResponse(domain.NewInternalError("Failed to decode game state", err)))
		return
	}

	c.JSON(http.StatusOK, state)
}
