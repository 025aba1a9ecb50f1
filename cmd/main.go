// Package main is the entry point for the freight-service application.
//
// @title           Freight Service API
// @version         1.0.0
// @description     Air-freight cost estimates for bearing shipments.
//
//	Computes actual, volumetric and chargeable weight for catalog parts and converts the
//	freight charge into the destination currency.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/freight-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 "Bearer <access token>" from /api/auth/login. Used when AUTH_ENABLED and MongoDB are on.
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key from API_KEYS. Used when AUTH_ENABLED is on without MongoDB.
//
// @tag.name        Quotes
// @tag.description Freight cost estimates
//
// @tag.name        Catalog
// @tag.description Parts catalog search and import
//
// @tag.name        Tariff
// @tag.description Per-kilogram pricing
//
// @tag.name        Rates
// @tag.description Exchange rates
//
// @tag.name        Audit
// @tag.description Audit log queries
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/freight-service/docs" // swagger docs

	"github.com/guttosm/freight-service/config"
	"github.com/guttosm/freight-service/internal/app"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server.Port)
	server.OnShutdown(application.Close)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
