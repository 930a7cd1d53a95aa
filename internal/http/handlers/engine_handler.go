package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/engine"
)

// EngineHandler exposes the local engines over HTTP for deployments that
// split games into their own service. It is the server side of the remote
// engine client: no auth, no money, outcomes and AppError envelopes only.
type EngineHandler struct {
	engines *engine.Registry
}

// NewEngineHandler creates a new engine handler
func NewEngineHandler(engines *engine.Registry) *EngineHandler {
	return &EngineHandler{engines: engines}
}

// gameMetadata is the static per-game service descriptor reported by Health.
var gameMetadata = map[domain.Game]gin.H{
	domain.GameDice:      {"game_type": "dice", "rtp": 98.6, "owner": "tables"},
	domain.GameSlots:     {"game_type": "slots", "rtp": 96.0, "owner": "machines"},
	domain.GameRoulette:  {"game_type": "roulette", "rtp": 97.3, "owner": "tables"},
	domain.GameBlackjack: {"game_type": "blackjack", "rtp": 99.5, "owner": "tables"},
}

// Health reports service status plus the metadata of every hosted game.
func (h *EngineHandler) Health(c *gin.Context) {
	games := make(map[string]gin.H)
	for _, game := range h.engines.Games() {
		meta, ok := gameMetadata[game]
		if !ok {
			meta = gin.H{"game_type": string(game)}
		}
		games[string(game)] = meta
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": "1.0.0",
		"games":   games,
	})
}

// Resolve handles one engine resolution
// @Summary Resolve a bet
// @Description Resolve one bet against the named game engine without touching balances
// @Tags engine
// @Accept json
// @Produce json
// @Param game path string true "Game name" Enums(dice, slots, roulette, blackjack)
// @Param request body domain.EngineRequest true "Engine request"
// @Success 200 {object} domain.Outcome
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /engine/{game}/resolve [post]
func (h *EngineHandler) Resolve(c *gin.Context) {
	eng, ok := h.engines.Get(domain.Game(c.Param("game")))
	if !ok {
		c.JSON(http.StatusNotFound, domain.NewErrorResponse(domain.NewNotFoundError("game engine")))
		return
	}

	var req domain.EngineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(domain.NewInvalidInputError("body", "invalid engine request body")))
		return
	}

	outcome, err := eng.Resolve(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}
