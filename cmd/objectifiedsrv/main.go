package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mugiliam/objectifiedsrv/internal/cache"
	"github.com/mugiliam/objectifiedsrv/internal/config"
	"github.com/mugiliam/objectifiedsrv/internal/db"
	"github.com/mugiliam/objectifiedsrv/internal/metamodel"
	"github.com/mugiliam/objectifiedsrv/internal/rbac"
	"github.com/mugiliam/objectifiedsrv/internal/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string
	rootCmd := &cobra.Command{
		Use:           "objectifiedsrv",
		Short:         "Objectified schema and instance server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			setupLogger(cfg.Log)
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(log.Logger.WithContext(ctx), cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "objectified.toml", "path to the TOML config file")
	rootCmd.AddCommand(newTokenCommand(&configFile))
	return rootCmd
}

func setupLogger(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	if err != nil {
		log.Warn().Str("level", cfg.Level).Msg("unknown log level, using info")
	}
}

func serve(ctx context.Context, cfg *config.ObjectifiedConfig) error {
	if err := db.Init(ctx, cfg.DB); err != nil {
		return fmt.Errorf("unable to initialize database: %w", err)
	}
	defer func() {
		if err := db.Shutdown(ctx); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to close the database")
		}
	}()

	if cfg.SeedCoreData {
		if err := metamodel.Seed(ctx); err != nil {
			return fmt.Errorf("unable to seed core data: %w", err)
		}
	}

	c, err := cache.New(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("unable to initialize cache: %w", err)
	}
	s, err := server.CreateNewServer(metamodel.NewServices(c))
	if err != nil {
		return err
	}
	s.MountHandlers()
	return s.ListenAndServe(ctx, cfg.ListenAddr(), cfg.Server.ShutdownTimeout.Duration)
}

// newTokenCommand signs bearer tokens with the configured secret.
func newTokenCommand(configFile *string) *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the admin console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFile)
			if err != nil {
				return err
			}
			a := rbac.NewAuthorizer(cfg.Auth.JWTSecret)
			if !a.Enabled() {
				return fmt.Errorf("auth.jwt_secret is not configured")
			}
			r, err := rbac.ParseRole(role)
			if err != nil {
				return err
			}
			token, err := a.Issue(subject, r, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "admin", "token subject")
	cmd.Flags().StringVar(&role, "role", string(rbac.RoleReader), "admin, editor or reader")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
