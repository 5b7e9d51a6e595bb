// Package validate реализует HTTP-обработчик проверки сессионного токена.
package validate

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/petcare-miniapp/internal/http/response"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/jwt"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/sl"
)

// Request - тело запроса на проверку токена.
type Request struct {
	Token string `json:"token" validate:"required"`
}

// Service описывает интерфейс проверки токена.
type Service interface {
	ValidateToken(ctx context.Context, token string) (*jwt.CustomClaims, error)
}

// Handler обрабатывает запросы на проверку токена.
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
// @Summary Проверить токен
// @Description Возвращает claims действующего токена.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "JWT"
// @Success 200 {object} jwt.CustomClaims
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Токен недействителен или истёк"
// @Router /auth/validate [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.validate"

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
		response.WriteValidation(w, r, err)
		return
	}

	claims, err := h.service.ValidateToken(r.Context(), req.Token)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	render.JSON(w, r, claims)
}
