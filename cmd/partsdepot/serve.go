package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/partsdepot/internal/httpapi"
	"github.com/nikolayk812/partsdepot/internal/mail"
	"github.com/nikolayk812/partsdepot/internal/port"
	"github.com/nikolayk812/partsdepot/internal/repository"
	"github.com/nikolayk812/partsdepot/internal/service"
	"github.com/nikolayk812/partsdepot/internal/session"
	"github.com/nikolayk812/partsdepot/internal/telemetry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the storefront HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("cfg.Validate: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTracing, err := telemetry.Setup(cfg.Tracing.Exporter, os.Stdout)
	if err != nil {
		return fmt.Errorf("telemetry.Setup: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return fmt.Errorf("redis.ParseURL: %w", err)
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()

	notifier, err := mail.NewNotifier(newMailer(), cfg.Mail.ShopInbox)
	if err != nil {
		return fmt.Errorf("mail.NewNotifier: %w", err)
	}

	parts := repository.NewPart(pool)
	orders := repository.NewOrder(pool)
	partners := repository.NewPartner(pool)
	carts := service.NewCartRouter(session.NewCartStore(rdb, cfg.Redis.CartTTL), repository.NewCart(pool))

	server := httpapi.NewServer(httpapi.Deps{
		Storefront: service.NewStorefront(parts, orders, partners, carts, notifier, logger),
		Parts:      parts,
		Orders:     orders,
		Partners:   partners,
		Users:      repository.NewUser(pool),
		JWTSecret:  []byte(cfg.Auth.JWTSecret),
		CartTTL:    cfg.Redis.CartTTL,
		Ping: func(ctx context.Context) error {
			if err := pool.Ping(ctx); err != nil {
				return fmt.Errorf("pool.Ping: %w", err)
			}
			if err := rdb.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("rdb.Ping: %w", err)
			}
			return nil
		},
	}, logger)

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpServer.ListenAndServe: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("httpServer.Shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func newMailer() port.Mailer {
	if cfg.Mail.SMTPHost == "" {
		logger.Warn("smtp host is not set, emails are only logged")
		return mail.NewLogSender(logger)
	}

	return mail.NewSMTPSender(mail.SMTPConfig{
		Host:     cfg.Mail.SMTPHost,
		Port:     cfg.Mail.SMTPPort,
		Username: cfg.Mail.SMTPUsername,
		Password: cfg.Mail.SMTPPassword,
		From:     cfg.Mail.From,
	})
}
