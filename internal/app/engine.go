package app

import (
	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/engine"
	"github.com/vegaslabs/casinocore/internal/engine/blackjack"
	"github.com/vegaslabs/casinocore/internal/engine/dice"
	"github.com/vegaslabs/casinocore/internal/engine/roulette"
	"github.com/vegaslabs/casinocore/internal/engine/slots"
	"github.com/vegaslabs/casinocore/internal/infrastructure/external/engineclient"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
)

// InitEngineRegistry wires one engine per game. A game with a remote URL in
// the config resolves over HTTP; everything else runs in process.
func (a *application) InitEngineRegistry(
	flagProvider domain.FlagProvider,
	sessions *blackjack.SessionStore,
	log *logger.Logger,
) (*engine.Registry, error) {
	registry := engine.NewRegistry()

	local := map[domain.Game]domain.GameEngine{
		domain.GameDice:      dice.New(flagProvider, log),
		domain.GameSlots:     slots.New(log),
		domain.GameRoulette:  roulette.New(flagProvider, log),
		domain.GameBlackjack: blackjack.New(sessions, log),
	}

	for _, game := range domain.KnownGames {
		var eng domain.GameEngine = local[game]
		if url, ok := a.config.Engines.Remote[string(game)]; ok && url != "" {
			eng = engineclient.New(game, url, 0)
		}
		if err := registry.Register(eng); err != nil {
			return nil, err
		}
	}

	return registry, nil
}
