// Package list реализует HTTP-обработчик каталога активных услуг.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/petcare-miniapp/internal/http/response"
	"github.com/magabrotheeeer/petcare-miniapp/internal/models"
)

// Service описывает интерфейс чтения каталога.
type Service interface {
	ListActive(ctx context.Context) ([]models.Service, error)
}

// Handler обрабатывает запросы на список услуг.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Каталог услуг
// @Description Активные услуги, старые первыми.
// @Tags Services
// @Produce  json
// @Success 200 {array} models.Service
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /services [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.service.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	services, err := h.service.ListActive(r.Context())
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	render.JSON(w, r, services)
}
