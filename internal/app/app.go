package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/DelcyVillalba/chic-storefront/config"
	"github.com/DelcyVillalba/chic-storefront/internal/adapter/apiclient"
	"github.com/DelcyVillalba/chic-storefront/internal/adapter/httphandler"
	"github.com/DelcyVillalba/chic-storefront/internal/adapter/kafka"
	"github.com/DelcyVillalba/chic-storefront/internal/adapter/storage"
	"github.com/DelcyVillalba/chic-storefront/internal/core/catalog"
	"github.com/DelcyVillalba/chic-storefront/internal/core/port"
	"github.com/DelcyVillalba/chic-storefront/internal/core/service"
	"github.com/DelcyVillalba/chic-storefront/pkg/retry"
	"github.com/DelcyVillalba/chic-storefront/pkg/schema"
	"github.com/redis/go-redis/v9"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sr"
)

const (
	connectAttempts = 5
	connectDelay    = 500 * time.Millisecond
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	store      port.Store
	closers    []func()
	producer   *kafka.ActivityProducer
	loader     *catalog.Loader
	service    *service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStore()
	app.initPublisher()
	app.initCatalog()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStore() {
	const op = "App.initStore"

	ctx := app.ctx
	cfg := app.cfg.Storage
	connect := retry.RetryConfig{
		MaxAttempts: connectAttempts,
		Backoff:     retry.ExponentialBackoff(connectDelay),
	}

	switch cfg.Driver {
	case storage.DriverPostgres, storage.DriverSQLite:
		db, err := retry.DoWithResult(ctx, connect, func() (storage.SQLDB, error) {
			return storage.NewSQLDB(ctx, cfg.Driver, cfg.DSN)
		})
		if err != nil {
			app.fallDown(op, err)
		}
		if cfg.Driver == storage.DriverSQLite {
			if err := storage.MigrateSQLite(db); err != nil {
				db.Close()
				app.fallDown(op, err)
			}
		}
		app.store = storage.NewSQLStore(db, cfg.KeyPrefix)
		app.closers = append(app.closers, db.Close)

	case storage.DriverRedis:
		client, err := retry.DoWithResult(ctx, connect, func() (*redis.Client, error) {
			return storage.NewRedisClient(ctx, cfg.RedisAddr)
		})
		if err != nil {
			app.fallDown(op, err)
		}
		app.store = storage.NewRedisStore(client, cfg.KeyPrefix)
		app.closers = append(app.closers, func() {
			if err := client.Close(); err != nil {
				slog.Error("failed to close redis client", "op", op, "err", err)
			}
		})

	default:
		app.fallDown(op, fmt.Errorf("unsupported storage driver %q", cfg.Driver))
	}
}

func (app *App) initPublisher() {
	const op = "App.initPublisher"

	if !app.cfg.PublishActivity() {
		slog.Info("activity publishing is disabled", "op", op)
		return
	}

	ctx := app.ctx
	urls := app.cfg.Broker.SchemaRegistryURLs
	topic := app.cfg.Broker.Topics.Activity

	srClient, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		app.fallDown(op, err)
	}

	activityEncoder, err := schema.NewActivityEncoderV1(
		ctx,
		schema.SubjectOpt(topic+"-value"),
		schema.SchemaIdentifierOpt(schema.NewSchemaCreater(srClient)),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	tlsCfg := app.cfg.Broker.TLS
	tlsConfig, err := kafka.LoadTLSConfig(
		tlsCfg.CAFile, tlsCfg.CertFile, tlsCfg.KeyFile,
	)
	if err != nil {
		app.fallDown(op, err)
	}
	var clientOpts []kgo.Opt
	if tlsConfig != nil {
		clientOpts = append(clientOpts, kgo.DialTLSConfig(tlsConfig))
	}

	producer, err := kafka.NewActivityProducer(
		kafka.ProducerClientOpt(
			ctx, app.cfg.Broker.SeedBrokers, topic, clientOpts...,
		),
		kafka.ProducerEncoderOpt(activityEncoder),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.producer = &producer
}

func (app *App) initCatalog() {
	hc := &http.Client{Timeout: app.cfg.Catalog.Timeout}
	client := apiclient.New(app.cfg.Catalog.BaseURL, hc)
	app.loader = catalog.NewLoader(client, catalog.DefaultTranslator())
}

func (app *App) initCoreService() {
	var publisher port.ActivityPublisher
	if app.producer != nil {
		publisher = app.producer
	}

	app.service = service.New(
		app.loader,
		service.NewContainers(app.ctx, app.store),
		publisher,
		app.cfg.Catalog.PerPage,
	)
}

func (app *App) initInboundAdapters() {
	handler := httphandler.NewRouter(app.service)
	app.httpServer = httphandler.NewHTTPServer(
		app.cfg.HTTPServerAddr, handler, app.cfg.Catalog.Timeout+time.Second,
	)
}

// Run starts the first catalog load and the http server.
func (app *App) Run(stopFn context.CancelFunc) {
	go app.loader.Load(app.ctx)
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.loader.Close()
	app.httpServer.Close(ctx)
	if app.producer != nil {
		app.producer.Close()
	}
	for _, closeFn := range app.closers {
		closeFn()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
