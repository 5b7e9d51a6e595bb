// Package petcare собирает HTTP-приложение: зависимости, маршруты и
// жизненный цикл серверов.
package petcare

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	// Регистрация swagger-документации.
	_ "github.com/magabrotheeeer/petcare-miniapp/docs"
	"github.com/magabrotheeeer/petcare-miniapp/internal/config"
	"github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/auth/validate"
	"github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/health"
	"github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/order/cancelsubscription"
	"github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/order/createpayment"
	orderlist "github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/order/listbyuser"
	orderread "github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/order/read"
	"github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/order/webhook"
	petcreate "github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/pet/create"
	petlist "github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/pet/listbyuser"
	petread "github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/pet/read"
	petremove "github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/pet/remove"
	petupdate "github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/pet/update"
	servicecreate "github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/service/create"
	servicelist "github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/service/list"
	serviceread "github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/service/read"
	serviceremove "github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/service/remove"
	serviceupdate "github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/service/update"
	tariffcreate "github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/tariff/create"
	tarifflist "github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/tariff/list"
	tariffread "github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/tariff/read"
	tariffremove "github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/tariff/remove"
	tariffupdate "github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/tariff/update"
	userread "github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/user/read"
	userupdate "github.com/magabrotheeeer/petcare-miniapp/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/petcare-miniapp/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/petcare-miniapp/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/petcare-miniapp/internal/services/catalog"
	orderservice "github.com/magabrotheeeer/petcare-miniapp/internal/services/order"
	petservice "github.com/magabrotheeeer/petcare-miniapp/internal/services/pet"
	tariffservice "github.com/magabrotheeeer/petcare-miniapp/internal/services/tariff"
	userservice "github.com/magabrotheeeer/petcare-miniapp/internal/services/user"
)

// Services - сервисы бизнес-логики, которые обслуживают маршруты.
type Services struct {
	Auth    *authservice.Service
	User    *userservice.Service
	Pet     *petservice.Service
	Catalog *catalogservice.Service
	Tariff  *tariffservice.Service
	Order   *orderservice.Service
	DB      health.Pinger
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, s Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middlewarectx.RealIP(cfg.TrustProxy),
		middleware.Recoverer,
		middlewarectx.CORSMiddleware(cfg.AllowedOrigins),
		middlewarectx.Metrics,
		middlewarectx.RequestLogger(logger),
	)

	// Открытые конечные точки
	r.With(middlewarectx.RateLimitMiddleware(logger, cfg.RPS, cfg.Burst)).
		Post("/auth/login", login.New(logger, s.Auth).ServeHTTP)
	r.Post("/auth/validate", validate.New(logger, s.Auth).ServeHTTP)

	r.Get("/services", servicelist.New(logger, s.Catalog).ServeHTTP)
	r.Get("/services/{id}", serviceread.New(logger, s.Catalog).ServeHTTP)
	r.Get("/tariffs", tarifflist.New(logger, s.Tariff).ServeHTTP)
	r.Get("/tariffs/{id}", tariffread.New(logger, s.Tariff).ServeHTTP)

	// Webhook YooKassa (без аутентификации)
	r.Post("/orders/webhook", webhook.New(logger, s.Order).ServeHTTP)

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(s.Auth, logger))

		r.Get("/users/{id}", userread.New(logger, s.User).ServeHTTP)
		r.Put("/users/{id}", userupdate.New(logger, s.User).ServeHTTP)

		r.Post("/pets", petcreate.New(logger, s.Pet).ServeHTTP)
		r.Get("/pets/user/{userId}", petlist.New(logger, s.Pet).ServeHTTP)
		r.Get("/pets/{id}", petread.New(logger, s.Pet).ServeHTTP)
		r.Put("/pets/{id}", petupdate.New(logger, s.Pet).ServeHTTP)
		r.Delete("/pets/{id}", petremove.New(logger, s.Pet).ServeHTTP)

		r.Post("/services", servicecreate.New(logger, s.Catalog).ServeHTTP)
		r.Put("/services/{id}", serviceupdate.New(logger, s.Catalog).ServeHTTP)
		r.Delete("/services/{id}", serviceremove.New(logger, s.Catalog).ServeHTTP)

		r.Post("/tariffs", tariffcreate.New(logger, s.Tariff).ServeHTTP)
		r.Put("/tariffs/{id}", tariffupdate.New(logger, s.Tariff).ServeHTTP)
		r.Delete("/tariffs/{id}", tariffremove.New(logger, s.Tariff).ServeHTTP)

		r.Post("/orders/create-payment", createpayment.New(logger, s.Order).ServeHTTP)
		r.Delete("/orders/cancel-subscription/{userId}", cancelsubscription.New(logger, s.Order).ServeHTTP)
		r.Get("/orders/user/{userId}", orderlist.New(logger, s.Order).ServeHTTP)
		r.Get("/orders/{id}", orderread.New(logger, s.Order).ServeHTTP)
	})

	r.Get("/health", health.New(logger, s.DB).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
