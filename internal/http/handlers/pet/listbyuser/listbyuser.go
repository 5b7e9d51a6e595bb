// Package listbyuser реализует HTTP-обработчик списка питомцев пользователя.
package listbyuser

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

// Service описывает интерфейс получения питомцев пользователя.
type Service interface {
	ListByUser(ctx context.Context, userID string) ([]models.Pet, error)
}

// Handler обрабатывает запросы на список питомцев.
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
// @Summary Питомцы пользователя
// @Tags Pets
// @Produce  json
// @Security BearerAuth
// @Param userId path string true "ID пользователя"
// @Success 200 {array} models.Pet
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Router /pets/user/{userId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pet.listbyuser"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	pets, err := h.service.ListByUser(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	if pets == nil {
		pets = []models.Pet{}
	}
	render.JSON(w, r, pets)
}
