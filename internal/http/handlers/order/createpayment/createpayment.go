// Package createpayment реализует HTTP-обработчик создания платежа.
//
// Handler валидирует запрос, создаёт платёж у YooKassa через сервис заказов
// и возвращает ссылку на страницу оплаты. Заказ сохраняется в статусе pending
// и становится оплаченным только после уведомления от провайдера.
package createpayment

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

// Service описывает интерфейс создания платежа.
type Service interface {
	CreatePayment(ctx context.Context, in models.CreatePaymentInput) (*models.PaymentResult, error)
}

// Handler обрабатывает запросы на создание платежа.
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
// @Summary Создать платёж
// @Description Создаёт платёж в YooKassa и заказ в статусе pending.
// @Tags Orders
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.CreatePaymentInput true "Параметры платежа"
// @Success 200 {object} models.PaymentResult
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации или платёжного провайдера"
// @Failure 404 {object} response.ErrorResponse "Пользователь, тариф или услуга не найдены"
// @Router /orders/create-payment [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.createpayment"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CreatePaymentInput
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

	res, err := h.service.CreatePayment(r.Context(), req)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	render.JSON(w, r, res)
}
