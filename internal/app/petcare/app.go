package petcare

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/petcare-miniapp/internal/cache"
	"github.com/magabrotheeeer/petcare-miniapp/internal/config"
	grpcserver "github.com/magabrotheeeer/petcare-miniapp/internal/grpc/server"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/jwt"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/sl"
	"github.com/magabrotheeeer/petcare-miniapp/internal/migrations"
	"github.com/magabrotheeeer/petcare-miniapp/internal/paymentprovider"
	authservice "github.com/magabrotheeeer/petcare-miniapp/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/petcare-miniapp/internal/services/catalog"
	orderservice "github.com/magabrotheeeer/petcare-miniapp/internal/services/order"
	petservice "github.com/magabrotheeeer/petcare-miniapp/internal/services/pet"
	tariffservice "github.com/magabrotheeeer/petcare-miniapp/internal/services/tariff"
	userservice "github.com/magabrotheeeer/petcare-miniapp/internal/services/user"
	"github.com/magabrotheeeer/petcare-miniapp/internal/storage/repository"
)

const (
	shutdownTimeout = 15 * time.Second
	amqpRetries     = 5
	amqpRetryDelay  = 2 * time.Second
)

// App держит HTTP-сервер и ресурсы, которые нужно освободить при остановке.
// closers вызываются в обратном порядке, база данных закрывается последней.
type App struct {
	server  *http.Server
	grpc    *grpcserver.Server
	grpcAdr string
	logger  *slog.Logger
	closers []func() error
}

// New поднимает зависимости и собирает роутер. Redis, RabbitMQ и gRPC
// необязательны: при пустом адресе они отключаются.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.petcare.New"

	db, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrations.Run(db.DB); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a := &App{
		logger:  logger,
		grpcAdr: cfg.GRPCHealthAddress,
		closers: []func() error{db.Close},
	}

	var readCache catalogservice.Cache = cache.Nop{}
	if cfg.AddressRedis != "" {
		cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		readCache = cacheRedis
		a.closers = append(a.closers, cacheRedis.Close)
	} else {
		logger.Info("redis address is empty, cache disabled")
	}

	orderOpts := []orderservice.Option{}
	if cfg.RabbitMQ.URL != "" {
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, amqpRetries, amqpRetryDelay)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.closers = append(a.closers, conn.Close)
		ch, err := rabbitmq.SetupChannel(conn, cfg.Exchange, rabbitmq.GetOrderQueues())
		if err != nil {
			a.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		publisher := rabbitmq.NewPublisher(ch, cfg.Exchange)
		orderOpts = append(orderOpts, orderservice.WithPublisher(publisher))
		a.closers = append(a.closers, publisher.Close)
	} else {
		logger.Info("rabbitmq url is empty, order events disabled")
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	providerClient := paymentprovider.NewClient(cfg.ShopID, cfg.APIKey, cfg.APIURL)

	userService := userservice.New(db, logger)
	services := Services{
		Auth:    authservice.New(userService, jwtMaker, cfg.BotToken, logger),
		User:    userService,
		Pet:     petservice.New(db, logger),
		Catalog: catalogservice.New(db, readCache, cfg.CacheTTL, logger),
		Tariff:  tariffservice.New(db, readCache, cfg.CacheTTL, logger),
		Order: orderservice.New(db, providerClient, orderservice.Config{
			Currency:    cfg.Currency,
			FrontendURL: cfg.FrontendURL,
		}, logger, orderOpts...),
		DB: db,
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, services)

	a.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	if cfg.GRPCHealthAddress != "" {
		a.grpc = grpcserver.New(db, logger)
	}

	return a, nil
}

// Run запускает серверы и блокируется до отмены ctx или ошибки сервера.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()
	if a.grpc != nil {
		go func() {
			errCh <- a.grpc.ListenAndServe(a.grpcAdr)
		}()
	}

	var runErr error
	select {
	case runErr = <-errCh:
	case <-ctx.Done():
	}

	timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	a.logger.Info("shutting down HTTP server gracefully")
	if err := a.server.Shutdown(timeoutCtx); err != nil && runErr == nil {
		runErr = err
	}
	if a.grpc != nil {
		a.grpc.Stop()
	}
	a.close()
	return runErr
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("failed to release resource", sl.Err(err))
		}
	}
	a.closers = nil
}
