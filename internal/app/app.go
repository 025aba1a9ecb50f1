// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/freight-service/config"
)

// App is the wired application: the HTTP engine plus everything that needs an orderly stop.
type App struct {
	Router *gin.Engine

	services  *ServiceComponents
	database  *DatabaseComponents
	router    *RouterComponents
	logCloser io.Closer
}

// InitializeApp creates and wires all application dependencies.
// The logger comes first so every later component logs through it.
func InitializeApp(ctx context.Context, cfg config.Config) (*App, error) {
	logCloser := InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(cfg.Database)

	serviceComponents, err := InitializeServices(cfg, dbComponents)
	if err != nil {
		dbComponents.Close(ctx)
		closeLog(logCloser)
		return nil, err
	}
	if err := serviceComponents.StartBackground(ctx); err != nil {
		serviceComponents.Close(ctx)
		dbComponents.Close(ctx)
		closeLog(logCloser)
		return nil, err
	}

	authService := InitializeAuth(cfg.Auth, dbComponents.Users())

	routerComponents := InitializeRouter(serviceComponents, dbComponents, authService, cfg)

	return &App{
		Router:    routerComponents.NewEngine(),
		services:  serviceComponents,
		database:  dbComponents,
		router:    routerComponents,
		logCloser: logCloser,
	}, nil
}

// Close releases resources in reverse dependency order. Pending audit entries are
// flushed before the database connection goes away.
func (a *App) Close(ctx context.Context) {
	a.router.Close()
	a.services.Close(ctx)
	a.database.Close(ctx)
	log.Info().Msg("Application stopped")
	closeLog(a.logCloser)
}

func closeLog(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
