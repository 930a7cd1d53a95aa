package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ScoringHandler handles HTTP requests for game stats and leaderboards
type ScoringHandler struct {
	scoringUseCase domain.ScoringUseCase
	logger         *logger.Logger
}

// NewScoringHandler creates a new scoring handler
func NewScoringHandler(scoringUseCase domain.ScoringUseCase, logger *logger.Logger) *ScoringHandler {
	return &ScoringHandler{
		scoringUseCase: scoringUseCase,
		logger:         logger,
	}
}

// GetStats handles aggregate stats queries
// @Summary Get game stats
// @Description Aggregate totals, top players and recent results for one game, or "all"
// @Tags scoring
// @Accept json
// @Produce json
// @Param game path string true "Game name or all" Enums(dice, slots, roulette, blackjack, all)
// @Success 200 {object} domain.GameStats
// @Failure 400 {object} domain.ErrorResponse
// @Router /scoring/stats/{game} [get]
func (h *ScoringHandler) GetStats(c *gin.Context) {
	stats, err := h.scoringUseCase.StatsFor(c.Request.Context(), domain.Game(c.Param("game")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetTopPlayers handles leaderboard queries
// @Summary Get leaderboard
// @Description Top players by score for one game
// @Tags scoring
// @Accept json
// @Produce json
// @Param game path string true "Game name" Enums(dice, slots, roulette, blackjack, all)
// @Param limit query int false "Maximum entries" default(10)
// @Success 200 {array} domain.PlayerScore
// @Failure 400 {object} domain.ErrorResponse
// @Router /scoring/top/{game} [get]
func (h *ScoringHandler) GetTopPlayers(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	scores, err := h.scoringUseCase.TopPlayers(c.Request.Context(), domain.Game(c.Param("game")), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, scores)
}

// GetRecent handles recent result queries
// @Summary Get recent results
// @Description Most recent resolved wagers for one game, or "all"
// @Tags scoring
// @Accept json
// @Produce json
// @Param game path string true "Game name or all" Enums(dice, slots, roulette, blackjack, all)
// @Success 200 {array} domain.GameResult
// @Failure 400 {object} domain.ErrorResponse
// @Router /scoring/recent/{game} [get]
func (h *ScoringHandler) GetRecent(c *gin.Context) {
	stats, err := h.scoringUseCase.StatsFor(c.Request.Context(), domain.Game(c.Param("game")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats.Recent)
}

// RecordResult handles result ingestion from a settlement deployment
// @Summary Record a game result
// @Description Append one resolved wager to the result log
// @Tags scoring
// @Accept json
// @Produce json
// @Param request body domain.GameResult true "Game result"
// @Success 201 {object} map[string]string
// @Failure 400 {object} domain.ErrorResponse
// @Router /scoring/game-result [post]
func (h *ScoringHandler) RecordResult(c *gin.Context) {
	var result domain.GameResult
	if err := c.ShouldBindJSON(&result); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(domain.NewInvalidInputError("body", "invalid game result body")))
		return
	}

	if err := h.scoringUseCase.Record(c.Request.Context(), &result); err != nil {
		h.logger.Error("Failed to record game result",
			zap.String("username", result.Username),
			zap.String("game", result.Game),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "recorded"})
}
