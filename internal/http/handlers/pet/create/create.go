// Package create реализует HTTP-обработчик добавления питомца.
//
// Handler принимает JSON с данными питомца, валидирует их и передаёт сервису.
// Владелец должен существовать, иначе ответ 404.
package create

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/petcare-miniapp/internal/http/response"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/sl"
	"github.com/magabrotheeeer/petcare-miniapp/internal/models"
)

// Service описывает интерфейс создания питомца.
type Service interface {
	Create(ctx context.Context, in models.DummyPet) (*models.Pet, error)
}

// Handler обрабатывает запросы на добавление питомца.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис питомцев
	validate *validator.Validate // Валидатор тела запроса
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавить питомца
// @Tags Pets
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyPet true "Данные питомца"
// @Success 201 {object} models.Pet
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 404 {object} response.ErrorResponse "Владелец не найден"
// @Router /pets [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pet.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPet
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("failed to decode request body", sl.Err(err))
		response.WriteBadRequest(w, r, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		response.WriteValidation(w, r, err)
		return
	}

	pet, err := h.service.Create(r.Context(), req)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, pet)
}
