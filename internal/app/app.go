package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/twmb/franz-go/pkg/sr"

	"github.com/voicecart/voicecart/config"
	"github.com/voicecart/voicecart/internal/adapter/gemini"
	"github.com/voicecart/voicecart/internal/adapter/httphandler"
	"github.com/voicecart/voicecart/internal/adapter/kafka"
	"github.com/voicecart/voicecart/internal/core/domain"
	"github.com/voicecart/voicecart/internal/core/port"
	"github.com/voicecart/voicecart/internal/core/service"
	"github.com/voicecart/voicecart/pkg/schema"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	catalog    domain.Catalog
	gemini     *gemini.Client
	cartEvents port.CartEventsProducer
	service    *service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initCatalog()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initCatalog() {
	app.catalog = domain.DefaultCatalog()
	slog.Info("product catalog loaded",
		"nProducts", len(app.catalog.AllProducts()),
		"nCategories", len(app.catalog.Categories()),
	)
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	geminiClient, err := gemini.NewClient(app.ctx, gemini.Config{
		APIKey:         app.cfg.Gemini.APIKey,
		Model:          app.cfg.Gemini.Model,
		RequestTimeout: app.cfg.Gemini.RequestTimeout,
		MaxRetries:     app.cfg.Gemini.MaxRetries,
	}, app.catalog)
	if err != nil {
		app.fallDown(op, err)
	}
	app.gemini = geminiClient

	if !app.cfg.TelemetryEnabled() {
		slog.Info("cart telemetry is disabled: no brokers configured")
		return
	}

	srClient, err := sr.NewClient(sr.URLs(app.cfg.Broker.SchemaRegistryURLs...))
	if err != nil {
		app.fallDown(op, err)
	}
	schemaCreater := schema.NewSchemaCreater(srClient)

	subject := app.cfg.Broker.CartEventsTopic + "-value"
	producer, err := kafka.NewCartEventsProducer(
		kafka.CartEventsProducerClientOpt(
			app.ctx,
			app.cfg.Broker.SeedBrokers,
			app.cfg.Broker.CartEventsTopic,
		),
		kafka.CartEventsProducerEncoderOpt(app.ctx, schemaCreater, subject),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.cartEvents = producer
}

func (app *App) initCoreService() {
	app.service = service.New(
		app.catalog,
		app.gemini,
		app.gemini,
		app.gemini,
		app.cartEvents,
		app.gemini.Ready(),
	)
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.service)
	httphandler.RegisterVoiceCommand(mux, app.service)
	httphandler.RegisterChatbot(mux, app.service)
	httphandler.RegisterSearch(mux, app.service)
	httphandler.RegisterAnalytics(mux, app.service)
	httphandler.RegisterCartMonitor(mux, app.service)

	handler := httphandler.AllowCORS(httphandler.AllowJSON(mux))
	app.httpServer = httphandler.NewHTTPServer(addr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.cartEvents != nil {
		app.cartEvents.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
