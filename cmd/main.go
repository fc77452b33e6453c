// Package main is the entry point for the slitting pattern service.
//
// @title           Slitting Pattern Service API
// @version         1.0.0
// @description     API for generating raw material slitting patterns and yield calculations.
//
//	The service enumerates every feasible combination of desired slit widths
//	across a master roll's usable width, ranks the patterns by yield, and
//	attaches GSM-based cost and weight breakdowns.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled without a JWT secret.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token issued by the upstream platform. Format: "Bearer {token}".
//
// @tag.name        Slitting
// @tag.description Slitting pattern calculation operations
//
// @tag.name        Materials
// @tag.description Material catalog operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/Adela-Cal/Misty-Manufacturing-sub002/docs" // swagger docs

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/config"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/app"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/middleware"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	err := server.Run()

	// Flush any request logs still buffered in the async logger.
	middleware.StopAsyncLogger()

	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
