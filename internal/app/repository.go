package app

import (
	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitRepository(db *gorm.DB) (domain.GameResultRepository, domain.PlayerScoreRepository) {
	return repository.NewGameResultRepository(db), repository.NewPlayerScoreRepository(db)
}
