// Package models содержит доменные структуры приложения: пользователей,
// питомцев, услуги, тарифы и заказы, а также структуры для приёма
// данных из JSON-запросов.
package models

import "time"

// SubscriptionPlan - тарифный план пользователя.
type SubscriptionPlan string

const (
	PlanFree    SubscriptionPlan = "free"
	PlanBasic   SubscriptionPlan = "basic"
	PlanPremium SubscriptionPlan = "premium"
	PlanVIP     SubscriptionPlan = "vip"
)

// Valid сообщает, является ли p известным планом.
func (p SubscriptionPlan) Valid() bool {
	switch p {
	case PlanFree, PlanBasic, PlanPremium, PlanVIP:
		return true
	}
	return false
}

// User представляет пользователя Mini App, созданного по данным Telegram.
type User struct {
	ID                    string           `json:"id"`
	TelegramID            int64            `json:"telegramId"`
	FirstName             string           `json:"firstName"`
	LastName              *string          `json:"lastName"`
	Username              *string          `json:"username"`
	PhoneNumber           *string          `json:"phoneNumber"`
	Email                 *string          `json:"email"`
	SubscriptionPlan      SubscriptionPlan `json:"subscriptionPlan"`
	SubscriptionExpiresAt *time.Time       `json:"subscriptionExpiresAt"` // nil, если подписка не оплачивалась
	CreatedAt             time.Time        `json:"createdAt"`
	UpdatedAt             time.Time        `json:"updatedAt"`
}

// UserProfile - пользователь вместе с питомцами и заказами.
type UserProfile struct {
	*User
	SubscriptionActive bool    `json:"subscriptionActive"` // платный план и срок не истёк
	Pets               []Pet   `json:"pets"`
	Orders             []Order `json:"orders"`
}

// TelegramProfile - данные пользователя из проверенного initData.
type TelegramProfile struct {
	TelegramID int64
	FirstName  string
	LastName   *string
	Username   *string
}

// UserUpdate - частичное обновление профиля. nil означает «не менять».
type UserUpdate struct {
	FirstName   *string `json:"firstName" validate:"omitempty,min=1,max=255"`
	LastName    *string `json:"lastName" validate:"omitempty,max=255"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=32"`
	Email       *string `json:"email" validate:"omitempty,email"`
}

// Empty сообщает, что в обновлении нет ни одного поля.
func (u UserUpdate) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.PhoneNumber == nil && u.Email == nil
}

// SubscriptionChange - новое состояние подписки пользователя.
type SubscriptionChange struct {
	UserID    string
	Plan      SubscriptionPlan
	ExpiresAt time.Time
}
