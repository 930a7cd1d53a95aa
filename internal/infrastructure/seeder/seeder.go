package seeder

import (
	"context"
	"log"

	"github.com/vegaslabs/casinocore/internal/domain"
)

// Seeder provisions demo players with an opening balance so the API is
// usable straight after startup.
type Seeder struct {
	ledger         domain.BalanceLedger
	openingBalance float64
}

// NewSeeder creates a new seeder instance
func NewSeeder(ledger domain.BalanceLedger, openingBalance float64) *Seeder {
	return &Seeder{
		ledger:         ledger,
		openingBalance: openingBalance,
	}
}

// SeedPlayers writes opening balances for the demo roster. Players that
// already hold a balance are left untouched.
func (s *Seeder) SeedPlayers(ctx context.Context) error {
	log.Printf("Seeding players...")

	players := []string{"alice", "bob", "carol", "dave"}

	for _, player := range players {
		balance, err := s.ledger.Get(ctx, player)
		if err != nil {
			log.Printf("Error checking existing balance, skipping.")
			continue
		}

		if balance != s.openingBalance && balance != 0 {
			log.Printf("Player already has a balance, skipping.")
			continue
		}

		if err := s.ledger.Set(ctx, player, s.openingBalance); err != nil {
			log.Printf("Error seeding player balance.")
			return err
		}
		log.Printf("Successfully seeded player balance.")
	}

	log.Printf("Player seeding completed successfully")
	return nil
}
