// Package cancelsubscription реализует HTTP-обработчик отмены подписки.
package cancelsubscription

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

// Service описывает интерфейс отмены подписки.
type Service interface {
	CancelSubscription(ctx context.Context, userID string) (*models.CancellationResult, error)
}

// Handler обрабатывает запросы на отмену подписки.
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
// @Summary Отменить подписку
// @Description Переводит пользователя на план free и пишет запись об отмене в историю заказов.
// @Tags Orders
// @Produce  json
// @Security BearerAuth
// @Param userId path string true "ID пользователя"
// @Success 200 {object} models.CancellationResult
// @Failure 400 {object} response.ErrorResponse "Нет активной подписки"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Router /orders/cancel-subscription/{userId} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.cancelsubscription"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.CancelSubscription(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	render.JSON(w, r, res)
}
