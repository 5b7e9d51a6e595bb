// Package listbyuser реализует HTTP-обработчик истории заказов пользователя.
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

// Service описывает интерфейс получения заказов пользователя.
type Service interface {
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
}

// Handler обрабатывает запросы на список заказов.
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
// @Summary Заказы пользователя
// @Description Новые первыми, с загруженным тарифом.
// @Tags Orders
// @Produce  json
// @Security BearerAuth
// @Param userId path string true "ID пользователя"
// @Success 200 {array} models.Order
// @Router /orders/user/{userId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.listbyuser"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	orders, err := h.service.ListByUser(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	render.JSON(w, r, orders)
}
