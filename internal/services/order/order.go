// Package order содержит бизнес-логику заказов: создание платежа в YooKassa,
// обработку уведомлений о статусе платежа и отмену подписки.
package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/apperr"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/month"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/sl"
	"github.com/magabrotheeeer/petcare-miniapp/internal/metrics"
	"github.com/magabrotheeeer/petcare-miniapp/internal/models"
	"github.com/magabrotheeeer/petcare-miniapp/internal/paymentprovider"
	"github.com/magabrotheeeer/petcare-miniapp/internal/storage"
)

const (
	defaultDescription = "Subscription payment"
	paymentResultPath  = "/payment-result"

	// MaxAmount - наибольшая сумма, которую вмещает orders.amount NUMERIC(10,2).
	MaxAmount = 99999999.99
)

// Repository описывает контракт хранилища, нужный сервису заказов.
type Repository interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	GetTariff(ctx context.Context, tariffID string) (*models.Tariff, error)
	GetService(ctx context.Context, serviceID string) (*models.Service, error)

	CreateOrder(ctx context.Context, order models.Order) (*models.Order, error)
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
	GetOrderByPaymentID(ctx context.Context, paymentID string) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
	MarkOrderPaid(ctx context.Context, orderID string, change *models.SubscriptionChange) (bool, error)
	MarkOrderCancelled(ctx context.Context, orderID string) (bool, error)
	CancelSubscription(ctx context.Context, userID string, at time.Time) (models.SubscriptionPlan, *models.Order, error)
}

// PaymentGateway - платёжный провайдер.
type PaymentGateway interface {
	CreatePayment(ctx context.Context, req paymentprovider.CreatePaymentRequest, idempotencyKey string) (*paymentprovider.Payment, error)
	GetPayment(ctx context.Context, paymentID string) (*paymentprovider.Payment, error)
}

// EventPublisher отправляет события заказов в брокер.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// Config - параметры платежей.
type Config struct {
	Currency    string
	FrontendURL string
}

// Option настраивает Service.
type Option func(*Service)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithPublisher включает публикацию событий заказов.
func WithPublisher(p EventPublisher) Option {
	return func(s *Service) {
		s.events = p
	}
}

// Service реализует операции над заказами.
type Service struct {
	repo    Repository
	gateway PaymentGateway
	events  EventPublisher
	cfg     Config
	now     func() time.Time
	log     *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, gateway PaymentGateway, cfg Config, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:    repo,
		gateway: gateway,
		events:  rabbitmq.NopPublisher{},
		cfg:     cfg,
		now:     time.Now,
		log:     log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreatePayment создаёт платёж у провайдера и сохраняет заказ в статусе pending.
func (s *Service) CreatePayment(ctx context.Context, in models.CreatePaymentInput) (*models.PaymentResult, error) {
	const op = "services.order.CreatePayment"

	if err := apperr.CheckID("user id", in.UserID); err != nil {
		return nil, err
	}
	if in.Amount == nil || *in.Amount <= 0 {
		return nil, apperr.Validation("amount must be greater than zero")
	}
	if *in.Amount > MaxAmount {
		return nil, apperr.Validation("amount must not exceed %.2f", MaxAmount)
	}
	if err := s.checkReferences(ctx, in); err != nil {
		return nil, err
	}

	orderType := models.OrderService
	if in.TariffID != nil {
		orderType = models.OrderSubscription
	}

	description := defaultDescription
	if in.Description != nil && *in.Description != "" {
		description = *in.Description
	}
	metadata := map[string]string{"userId": in.UserID}
	if in.TariffID != nil {
		metadata["tariffId"] = *in.TariffID
	}
	if in.ServiceID != nil {
		metadata["serviceId"] = *in.ServiceID
	}

	req := paymentprovider.CreatePaymentRequest{
		Amount: paymentprovider.Amount{
			Value:    fmt.Sprintf("%.2f", *in.Amount),
			Currency: s.cfg.Currency,
		},
		PaymentMethodData: &paymentprovider.PaymentMethodData{Type: "bank_card"},
		Confirmation: &paymentprovider.Confirmation{
			Type:      "redirect",
			ReturnURL: strings.TrimRight(s.cfg.FrontendURL, "/") + paymentResultPath,
		},
		Capture:     true,
		Description: description,
		Metadata:    metadata,
	}

	payment, err := s.gateway.CreatePayment(ctx, req, uuid.NewString())
	if err != nil {
		metrics.PaymentsCreated.WithLabelValues(string(orderType), "gateway_error").Inc()
		s.log.Error("payment creation failed", sl.Op(op), slog.String("user_id", in.UserID), sl.Err(err))
		return nil, apperr.Gateway("payment creation failed", err)
	}

	paymentID := payment.ID
	o, err := s.repo.CreateOrder(ctx, models.Order{
		UserID:      in.UserID,
		PaymentID:   &paymentID,
		Amount:      *in.Amount,
		Status:      models.OrderPending,
		Type:        orderType,
		TariffID:    in.TariffID,
		ServiceID:   in.ServiceID,
		Description: in.Description,
	})
	if err != nil {
		metrics.PaymentsCreated.WithLabelValues(string(orderType), "store_error").Inc()
		s.log.Error("failed to save order", sl.Op(op), slog.String("payment_id", paymentID), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.PaymentsCreated.WithLabelValues(string(orderType), "ok").Inc()
	s.log.Info("payment created",
		slog.String("order_id", o.ID),
		slog.String("payment_id", paymentID),
		slog.String("type", string(orderType)),
	)

	return &models.PaymentResult{
		OrderID:         o.ID,
		PaymentID:       paymentID,
		ConfirmationURL: payment.ConfirmationURL(),
		Status:          payment.Status,
	}, nil
}

func (s *Service) checkReferences(ctx context.Context, in models.CreatePaymentInput) error {
	const op = "services.order.checkReferences"

	if _, err := s.repo.GetUser(ctx, in.UserID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFound("user %s not found", in.UserID)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if in.TariffID != nil {
		if err := apperr.CheckID("tariff id", *in.TariffID); err != nil {
			return err
		}
		if _, err := s.repo.GetTariff(ctx, *in.TariffID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperr.NotFound("tariff %s not found", *in.TariffID)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	if in.ServiceID != nil {
		if err := apperr.CheckID("service id", *in.ServiceID); err != nil {
			return err
		}
		if _, err := s.repo.GetService(ctx, *in.ServiceID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperr.NotFound("service %s not found", *in.ServiceID)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}

// HandleWebhook применяет актуальный статус платежа к заказу.
//
// Статус берётся у провайдера, тело уведомления не считается достоверным.
// Заказ меняется только из pending, поэтому повторные уведомления ничего
// не делают. Возвращает исход обработки для логов и метрик.
func (s *Service) HandleWebhook(ctx context.Context, paymentID string) (string, error) {
	const op = "services.order.HandleWebhook"
	log := s.log.With(sl.Op(op), slog.String("payment_id", paymentID))

	outcome, err := s.handleWebhook(ctx, log, paymentID)
	metrics.WebhookOutcomes.WithLabelValues(outcome).Inc()
	if err != nil {
		log.Error("webhook handling failed", slog.String("outcome", outcome), sl.Err(err))
		return outcome, fmt.Errorf("%s: %w", op, err)
	}
	log.Info("webhook handled", slog.String("outcome", outcome))
	return outcome, nil
}

func (s *Service) handleWebhook(ctx context.Context, log *slog.Logger, paymentID string) (string, error) {
	if paymentID == "" {
		return metrics.WebhookIgnored, nil
	}

	o, err := s.repo.GetOrderByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return metrics.WebhookUnknownOrder, nil
		}
		return metrics.WebhookStoreFailed, err
	}

	payment, err := s.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return metrics.WebhookGatewayFailed, err
	}

	switch payment.Status {
	case paymentprovider.StatusSucceeded:
		processedAt := s.now()
		var change *models.SubscriptionChange
		if o.Type == models.OrderSubscription && o.TariffID != nil {
			change, err = s.subscriptionChange(ctx, o, processedAt)
			if err != nil {
				return metrics.WebhookStoreFailed, err
			}
		}

		applied, err := s.repo.MarkOrderPaid(ctx, o.ID, change)
		if err != nil {
			return metrics.WebhookStoreFailed, err
		}
		if !applied {
			return metrics.WebhookDuplicate, nil
		}

		event := models.OrderEvent{
			OrderID: o.ID,
			UserID:  o.UserID,
			Status:  models.OrderPaid,
			Type:    o.Type,
			Amount:  o.Amount,
			At:      processedAt,
		}
		if change != nil {
			event.Plan = change.Plan
			event.ExpiresAt = &change.ExpiresAt
			log.Info("subscription activated",
				slog.String("user_id", change.UserID),
				slog.String("plan", string(change.Plan)),
				slog.Time("expires_at", change.ExpiresAt),
			)
		}
		s.publish(ctx, rabbitmq.RoutingOrderPaid, event)
		return metrics.WebhookPaid, nil

	case paymentprovider.StatusCanceled:
		applied, err := s.repo.MarkOrderCancelled(ctx, o.ID)
		if err != nil {
			return metrics.WebhookStoreFailed, err
		}
		if !applied {
			return metrics.WebhookDuplicate, nil
		}
		s.publish(ctx, rabbitmq.RoutingOrderCancelled, models.OrderEvent{
			OrderID: o.ID,
			UserID:  o.UserID,
			Status:  models.OrderCancelled,
			Type:    o.Type,
			Amount:  o.Amount,
			At:      s.now(),
		})
		return metrics.WebhookCancelled, nil

	default:
		log.Debug("payment status ignored", slog.String("status", payment.Status))
		return metrics.WebhookIgnored, nil
	}
}

func (s *Service) subscriptionChange(ctx context.Context, o *models.Order, paidAt time.Time) (*models.SubscriptionChange, error) {
	t := o.Tariff
	if t == nil {
		var err error
		t, err = s.repo.GetTariff(ctx, *o.TariffID)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
	}
	return &models.SubscriptionChange{
		UserID:    o.UserID,
		Plan:      PlanForTariff(t.Name),
		ExpiresAt: month.Next(paidAt),
	}, nil
}

// PlanForTariff возвращает план подписки для тарифа с именем name.
// Имя сравнивается без учёта регистра; неизвестные имена дают basic.
func PlanForTariff(name string) models.SubscriptionPlan {
	plan := models.SubscriptionPlan(strings.ToLower(strings.TrimSpace(name)))
	if plan.Valid() && plan != models.PlanFree {
		return plan
	}
	return models.PlanBasic
}

// CancelSubscription переводит пользователя на план free и пишет заказ-запись
// об отмене в историю.
func (s *Service) CancelSubscription(ctx context.Context, userID string) (*models.CancellationResult, error) {
	const op = "services.order.CancelSubscription"
	if err := apperr.CheckID("user id", userID); err != nil {
		return nil, err
	}

	at := s.now()
	previous, history, err := s.repo.CancelSubscription(ctx, userID, at)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, apperr.NotFound("user %s not found", userID)
		case errors.Is(err, storage.ErrNoActiveSubscription):
			return nil, apperr.Validation("user does not have an active subscription")
		}
		s.log.Error("failed to cancel subscription", sl.Op(op), slog.String("user_id", userID), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.SubscriptionCancellations.WithLabelValues(string(previous)).Inc()
	s.log.Info("subscription cancelled", slog.String("user_id", userID), slog.String("previous_plan", string(previous)))

	event := models.OrderEvent{
		UserID: userID,
		Status: models.OrderCancelled,
		Type:   models.OrderSubscription,
		Plan:   models.PlanFree,
		At:     at,
	}
	if history != nil {
		event.OrderID = history.ID
	}
	s.publish(ctx, rabbitmq.RoutingSubscriptionCancelled, event)

	return &models.CancellationResult{
		Message:      "Subscription cancelled successfully",
		PreviousPlan: previous,
		NewPlan:      models.PlanFree,
		CancelledAt:  at,
	}, nil
}

// ListByUser возвращает заказы пользователя, новые первыми.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	const op = "services.order.ListByUser"
	if err := apperr.CheckID("user id", userID); err != nil {
		return nil, err
	}

	orders, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}

// Get возвращает заказ вместе с тарифом.
func (s *Service) Get(ctx context.Context, orderID string) (*models.Order, error) {
	const op = "services.order.Get"
	if err := apperr.CheckID("order id", orderID); err != nil {
		return nil, err
	}

	o, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("order %s not found", orderID)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return o, nil
}

// Ошибка брокера не отменяет уже зафиксированное изменение.
func (s *Service) publish(ctx context.Context, key string, event models.OrderEvent) {
	if err := s.events.Publish(ctx, key, event); err != nil {
		s.log.Warn("failed to publish order event", slog.String("routing_key", key), sl.Err(err))
	}
}
