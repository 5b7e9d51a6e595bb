// Package login реализует HTTP-обработчик входа через Telegram Mini App.
//
// Клиент передаёт строку initData, полученную от Telegram WebApp. Обработчик
// делегирует проверку подписи и выпуск токена сервису аутентификации и
// возвращает пользователя вместе с JWT.
package login

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

// Request - тело запроса на вход.
type Request struct {
	InitData string `json:"initData" validate:"required"`
}

// Response - ответ на успешный вход.
type Response struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, initData string) (*models.User, string, error)
}

// Handler обрабатывает HTTP-запросы на вход.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
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
// @Summary Вход через Telegram
// @Description Проверяет подпись initData, находит или создаёт пользователя и выдаёт JWT.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "initData из Telegram WebApp"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Неверная подпись initData"
// @Failure 429 {object} response.ErrorResponse "Слишком много запросов"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
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

	user, token, err := h.service.Login(r.Context(), req.InitData)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	log.Info("login success", slog.String("user_id", user.ID), slog.Int64("telegram_id", user.TelegramID))
	render.JSON(w, r, Response{User: user, Token: token})
}
