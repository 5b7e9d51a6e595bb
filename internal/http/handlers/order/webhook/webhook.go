// Package webhook реализует HTTP-обработчик уведомлений YooKassa.
//
// Из тела берётся только ID платежа: актуальный статус сервис запрашивает
// у провайдера сам. Ответ всегда {"status":"ok"}, чтобы провайдер не
// повторял доставку из-за наших ошибок; ошибки только логируются.
package webhook

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/petcare-miniapp/internal/http/response"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/sl"
	"github.com/magabrotheeeer/petcare-miniapp/internal/paymentprovider"
)

// Service описывает интерфейс обработки уведомления о платеже.
type Service interface {
	HandleWebhook(ctx context.Context, paymentID string) (string, error)
}

// Handler обрабатывает уведомления о платежах.
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
// @Summary Уведомление YooKassa
// @Tags Orders
// @Accept  json
// @Produce  json
// @Param request body paymentprovider.WebhookNotification true "Уведомление"
// @Success 200 {object} response.StatusResponse
// @Router /orders/webhook [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.webhook"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var notification paymentprovider.WebhookNotification
	if err := render.DecodeJSON(r.Body, &notification); err != nil {
		log.Warn("failed to decode notification", sl.Err(err))
		render.JSON(w, r, response.OK())
		return
	}
	log.Debug("notification received",
		slog.String("event", notification.Event),
		slog.String("payment_id", notification.Object.ID),
	)

	// Ошибки уже залогированы сервисом.
	_, _ = h.service.HandleWebhook(r.Context(), notification.Object.ID)

	render.JSON(w, r, response.OK())
}
