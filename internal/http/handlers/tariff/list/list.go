// Package list реализует HTTP-обработчик списка активных тарифов.
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

// Service описывает интерфейс чтения тарифов.
type Service interface {
	ListActive(ctx context.Context) ([]models.Tariff, error)
}

// Handler обрабатывает запросы на список тарифов.
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
// @Summary Тарифы
// @Description Активные тарифы по возрастанию цены.
// @Tags Tariffs
// @Produce  json
// @Success 200 {array} models.Tariff
// @Router /tariffs [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tariff.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	tariffs, err := h.service.ListActive(r.Context())
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	if tariffs == nil {
		tariffs = []models.Tariff{}
	}
	render.JSON(w, r, tariffs)
}
