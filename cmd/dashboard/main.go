// Command dashboard is a terminal smoke client: it logs in, fans out
// across every façade, and prints a field-operations summary. Useful
// against the real backend or the local mock API.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/mapadengue/mapadengue-go/internal/config"
	"github.com/mapadengue/mapadengue-go/internal/domain"
	"github.com/mapadengue/mapadengue-go/internal/mockdata"
	"github.com/mapadengue/mapadengue-go/internal/service/facts"
	"github.com/mapadengue/mapadengue-go/internal/service/municipios"
	"github.com/mapadengue/mapadengue-go/internal/telemetry"
	"github.com/mapadengue/mapadengue-go/pkg/mapadengue"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(os.Getenv("MAPADENGUE_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	shutdown, err := telemetry.Init("mapadengue-dashboard", logger)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown tracer", slog.String("error", err.Error()))
		}
	}()

	opts := []mapadengue.Option{
		mapadengue.WithLogger(logger),
		mapadengue.WithTimeout(cfg.API.Timeout),
		mapadengue.WithMockMode(cfg.MockAPI),
		mapadengue.WithUnauthorizedHandler(func() {
			logger.Warn("session expired, login required")
		}),
	}
	if cfg.API.Key != "" {
		opts = append(opts, mapadengue.WithAPIKey(cfg.API.Key))
	}
	if cfg.Session.File != "" {
		opts = append(opts, mapadengue.WithSessionFile(cfg.Session.File))
	}

	client, err := mapadengue.New(cfg.API.BaseURL, opts...)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	ctx := context.Background()

	email := os.Getenv("MAPADENGUE_EMAIL")
	password := os.Getenv("MAPADENGUE_PASSWORD")
	if email == "" {
		email, password = mockdata.MockEmail, mockdata.MockPassword
	}

	login := client.Auth.Login(ctx, email, password)
	if !login.Success {
		log.Fatalf("Login failed: %v", login.Err)
	}
	logger.Info("logged in", slog.String("user", login.Data.Nome))

	var (
		munis domain.Result[[]domain.Municipio]
		pois  domain.Result[[]domain.PointOfInterest]
		clima domain.Result[[]domain.WeatherSample]
		risco domain.Result[domain.RiskDashboard]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		munis = client.Municipios.List(gctx, municipios.ListParams{Limit: 50})
		return nil
	})
	g.Go(func() error {
		pois = client.Facts.List(gctx, facts.ListParams{Limit: 200})
		return nil
	})
	g.Go(func() error {
		clima = client.Weather.List(gctx)
		return nil
	})
	g.Go(func() error {
		risco = client.Risk.Dashboard(gctx)
		return nil
	})
	// The façades never return Go errors; failures arrive as Results.
	_ = g.Wait()

	report(logger, "municipios", len(munis.Data), munis.Err)
	report(logger, "pontos de interesse", len(pois.Data), pois.Err)
	report(logger, "amostras de clima", len(clima.Data), clima.Err)

	if risco.Success {
		logger.Info("painel de risco",
			slog.Int("municipios", len(risco.Data.Municipios)),
			slog.Int("criticos", risco.Data.Criticos),
			slog.Int("altos", risco.Data.Altos),
		)
	} else {
		logger.Error("painel de risco indisponível", slog.String("error", risco.Err.Error()))
	}
}

func report(logger *slog.Logger, name string, count int, apiErr *domain.APIError) {
	if apiErr != nil {
		logger.Error(name+" indisponível", slog.String("error", apiErr.Error()))
		return
	}
	logger.Info(name, slog.Int("total", count))
}
