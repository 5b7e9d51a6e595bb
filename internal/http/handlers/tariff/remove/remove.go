// Package remove реализует HTTP-обработчик снятия тарифа с продажи.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/petcare-miniapp/internal/http/response"
)

// Service описывает интерфейс деактивации тарифа.
type Service interface {
	Deactivate(ctx context.Context, tariffID string) error
}

// Handler обрабатывает запросы на удаление тарифа.
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
// @Summary Удалить тариф
// @Tags Tariffs
// @Produce  json
// @Security BearerAuth
// @Param id path string true "ID тарифа"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse "Тариф не найден"
// @Router /tariffs/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tariff.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := h.service.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	render.JSON(w, r, response.Success())
}
