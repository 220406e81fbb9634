package server

import (
	"context"
	"fmt"

	"github.com/grachmannico95/transfer-engine/internal/config"
	"github.com/grachmannico95/transfer-engine/internal/handler"
	"github.com/grachmannico95/transfer-engine/internal/middleware"
	"github.com/grachmannico95/transfer-engine/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo             *echo.Echo
	cfg              *config.Config
	logger           *logger.Logger
	transferHandler  *handler.TransferHandler
	directoryHandler *handler.DirectoryHandler
	healthHandler    *handler.HealthHandler
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	transferHandler *handler.TransferHandler,
	directoryHandler *handler.DirectoryHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:             e,
		cfg:              cfg,
		logger:           log,
		transferHandler:  transferHandler,
		directoryHandler: directoryHandler,
		healthHandler:    healthHandler,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
	s.echo.Use(middleware.Credentials())
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)

	transfers := s.echo.Group("/transfers")
	transfers.POST("", s.transferHandler.Create)
	transfers.POST("/reverse", s.transferHandler.Reverse)
	transfers.GET("/:id", s.transferHandler.Get)

	owners := s.echo.Group("/owners")
	owners.POST("", s.directoryHandler.CreateOwner)
	owners.GET("/:id", s.directoryHandler.GetOwner)
	owners.PUT("/:id", s.directoryHandler.UpdateOwner)
	owners.GET("/:id/accounts", s.directoryHandler.ListOwnerAccounts)

	accounts := s.echo.Group("/accounts")
	accounts.POST("", s.directoryHandler.CreateAccount)
	accounts.GET("/:id", s.directoryHandler.GetAccount)
}

func (s *Server) Handler() *echo.Echo {
	return s.echo
}
