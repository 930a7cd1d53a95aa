// Package main Casino Core API
//
// Casino Core is the wager settlement service behind the casino demo floor.
// It resolves bets for dice, slots, roulette and blackjack, settles them
// against player balances and records every resolved wager for stats and
// leaderboards.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer
package main

import (
	"context"

	_ "github.com/vegaslabs/casinocore/docs"
	"github.com/vegaslabs/casinocore/internal/app"
)

// @title Casino Core API Service
// @version 1.0
// @description Casino Core is the wager settlement service for the casino demo floor: game engines, balance ledger and result scoring behind one API.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
