package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/radreport/radreport/internal/config"
	"github.com/radreport/radreport/internal/domain/findings"
	"github.com/radreport/radreport/internal/domain/history"
	"github.com/radreport/radreport/internal/domain/identity"
	"github.com/radreport/radreport/internal/domain/quality"
	"github.com/radreport/radreport/internal/domain/report"
	"github.com/radreport/radreport/internal/domain/templates"
	"github.com/radreport/radreport/internal/platform/ai"
	"github.com/radreport/radreport/internal/platform/auth"
	"github.com/radreport/radreport/internal/platform/db"
	"github.com/radreport/radreport/internal/platform/dicomx"
	"github.com/radreport/radreport/internal/platform/export"
	"github.com/radreport/radreport/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "radreport-server",
		Short: "Radiology report drafting API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(userCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the report drafting API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	// migrate up
	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	// migrate status
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			role, _ := cmd.Flags().GetString("role")
			specialty, _ := cmd.Flags().GetString("specialty")
			signature, _ := cmd.Flags().GetString("signature")
			if username == "" || password == "" {
				return fmt.Errorf("--username and --password are required")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
			trail := identity.NewAuditTrail(identity.NewAuditLogRepoPG(pool), logger)
			svc := identity.NewService(identity.NewUserRepoPG(pool), trail, auth.JWTConfig{
				SigningKey: []byte(cfg.JWTSecret),
			})

			u, err := svc.CreateUser(ctx, username, password, role, specialty, signature)
			if err != nil {
				return err
			}
			fmt.Printf("Created user %s (%s) with role %s\n", u.Username, u.ID, u.Role)
			return nil
		},
	}
	createCmd.Flags().String("username", "", "Login name")
	createCmd.Flags().String("password", "", "Initial password")
	createCmd.Flags().String("role", "radiologist", "Role (radiologist, technician, admin)")
	createCmd.Flags().String("specialty", "", "Radiology specialty")
	createCmd.Flags().String("signature", "", "Report signature line")
	cmd.AddCommand(createCmd)

	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// AI text generator
	generator, err := ai.NewGenerator(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure AI provider")
	}
	logger.Info().Str("provider", cfg.AIProvider).Msg("AI generation configured")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))
	e.Use(auth.RemoteIPMiddleware())

	// Rate limiting middleware
	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}

	// Repositories and services
	userRepo := identity.NewUserRepoPG(pool)
	auditRepo := identity.NewAuditLogRepoPG(pool)
	trail := identity.NewAuditTrail(auditRepo, logger)
	jwtCfg := auth.JWTConfig{SigningKey: []byte(cfg.JWTSecret)}
	identitySvc := identity.NewService(userRepo, trail, jwtCfg)
	identityHandler := identity.NewHandler(identitySvc, trail)

	templateRepo := templates.NewTemplateRepoPG(pool)
	templateSvc := templates.NewService(templateRepo, trail)
	templateHandler := templates.NewHandler(templateSvc)

	draftRepo := report.NewDraftRepoPG(pool)
	reportSvc := report.NewService(draftRepo, generator, trail,
		cfg.AIMaxTokens, time.Duration(cfg.AITimeoutSecs)*time.Second)
	reportHandler := report.NewHandler(reportSvc, templateSvc)

	entryRepo := history.NewEntryRepoPG(pool)
	historySvc := history.NewService(entryRepo, templateRepo, draftRepo, trail)
	historyHandler := history.NewHandler(historySvc)

	findingsHandler := findings.NewHandler()
	qualityHandler := quality.NewHandler()
	dicomHandler := dicomx.NewHandler()
	exportHandler := export.NewHandler(export.Branding{
		Hospital:   cfg.HospitalName,
		Department: cfg.DepartmentName,
	})

	// Public routes, no token required
	public := e.Group("/api/v1")
	public.Use(middleware.RateLimit(rateLimitCfg))
	identityHandler.RegisterPublicRoutes(public)

	// Authenticated API group
	apiV1 := e.Group("/api/v1")
	if cfg.IsDev() {
		apiV1.Use(auth.DevAuthMiddleware())
	} else {
		apiV1.Use(auth.JWTMiddleware(jwtCfg))
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	identityHandler.RegisterRoutes(apiV1)
	templateHandler.RegisterRoutes(apiV1)
	reportHandler.RegisterRoutes(apiV1)
	historyHandler.RegisterRoutes(apiV1)
	findingsHandler.RegisterRoutes(apiV1)
	qualityHandler.RegisterRoutes(apiV1)
	dicomHandler.RegisterRoutes(apiV1)
	exportHandler.RegisterRoutes(apiV1)

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", func(c echo.Context) error {
		status := db.CheckHealth(c.Request().Context(), pool)
		code := http.StatusOK
		if !status.Healthy {
			code = http.StatusServiceUnavailable
		}
		return c.JSON(code, status)
	})

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
