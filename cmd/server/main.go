package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/julianmr/helpdesk-api/internal/auth"
	"github.com/julianmr/helpdesk-api/internal/config"
	"github.com/julianmr/helpdesk-api/internal/database"
	"github.com/julianmr/helpdesk-api/internal/handlers"
	"github.com/julianmr/helpdesk-api/internal/logger"
	"github.com/julianmr/helpdesk-api/internal/middleware"
	"github.com/julianmr/helpdesk-api/internal/repository"
	"github.com/julianmr/helpdesk-api/internal/services"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "helpdesk",
		Short: "Helpdesk ticketing backend",
	}

	rootCmd.AddCommand(
		newServeCommand(),
		newInitDBCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger.Init(cfg.LogLevel)
			gin.SetMode(cfg.GinMode)

			if err := database.RequireExisting(cfg.DBPath); err != nil {
				return err
			}
			if err := database.Connect(cfg.DBPath); err != nil {
				return err
			}
			if err := database.Migrate(); err != nil {
				return err
			}
			if err := database.EnsureAdmin(database.GetDB()); err != nil {
				return err
			}

			r := buildRouter(cfg.Secret)

			slog.Info("server starting", "port", cfg.Port)
			return r.Run(":" + cfg.Port)
		},
	}
}

func newInitDBCommand() *cobra.Command {
	var (
		seed   bool
		reset  bool
		dbPath string
	)

	cmd := &cobra.Command{
		Use:   "initdb",
		Short: "Create the database schema and bootstrap the admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger.Init(cfg.LogLevel)

			path := cfg.DBPath
			if dbPath != "" {
				path = dbPath
			}

			if reset {
				if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
					return err
				}
				slog.Info("removed existing database", "path", path)
			}

			if err := database.Connect(path); err != nil {
				return err
			}
			if err := database.Migrate(); err != nil {
				return err
			}
			if seed {
				if err := database.Seed(database.GetDB()); err != nil {
					return err
				}
			}
			if err := database.EnsureAdmin(database.GetDB()); err != nil {
				return err
			}

			slog.Info("database initialized", "path", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "load demo seed data")
	cmd.Flags().BoolVar(&reset, "reset", false, "delete an existing database first")
	cmd.Flags().StringVar(&dbPath, "db", "", "database path override")
	return cmd
}

func buildRouter(secret string) *gin.Engine {
	tokens := auth.NewTokenService(secret)
	userRepo := repository.NewUserRepository(database.GetDB())
	ticketRepo := repository.NewTicketRepository(database.GetDB())

	authService := services.NewAuthService(userRepo, tokens)
	ticketService := services.NewTicketService(ticketRepo)
	userService := services.NewUserService(userRepo)

	authHandler := handlers.NewAuthHandler(authService)
	ticketHandler := handlers.NewTicketHandler(ticketService)
	userHandler := handlers.NewUserHandler(userService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Helpdesk API is running",
		})
	})

	r.POST("/auth/login", authHandler.Login)

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth(tokens, userRepo))
	{
		authed.GET("/tickets", ticketHandler.ListTickets)
		authed.POST("/tickets", ticketHandler.CreateTicket)
		authed.PUT("/tickets/:id", ticketHandler.UpdateTicket)
		authed.DELETE("/tickets/:id", ticketHandler.DeleteTicket)
		authed.POST("/tickets/:id/comments", ticketHandler.AddComment)

		authed.GET("/users", middleware.RequireAdmin(), userHandler.ListUsers)
	}

	return r
}
