// Package remove реализует HTTP-обработчик снятия услуги с каталога.
// Запись не удаляется, а помечается неактивной.
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

// Service описывает интерфейс деактивации услуги.
type Service interface {
	Deactivate(ctx context.Context, serviceID string) error
}

// Handler обрабатывает запросы на удаление услуги.
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
// @Summary Удалить услугу
// @Tags Services
// @Produce  json
// @Security BearerAuth
// @Param id path string true "ID услуги"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse "Услуга не найдена"
// @Router /services/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.service.remove"

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
