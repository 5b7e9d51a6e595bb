// Package read реализует HTTP-обработчик получения питомца по ID.
package read

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/petcare-miniapp/internal/http/response"
	"github.com/magabrotheeeer/petcare-miniapp/internal/models"
)

// Service описывает интерфейс чтения питомца.
type Service interface {
	Get(ctx context.Context, petID string) (*models.Pet, error)
}

// Handler обрабатывает запросы на получение питомца.
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
// @Summary Питомец по ID
// @Tags Pets
// @Produce  json
// @Security BearerAuth
// @Param id path string true "ID питомца"
// @Success 200 {object} models.Pet
// @Failure 404 {object} response.ErrorResponse "Питомец не найден"
// @Router /pets/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pet.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	pet, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	render.JSON(w, r, pet)
}
