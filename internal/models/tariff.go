package models

import "time"

// Tariff - тариф подписки с ежемесячной оплатой.
type Tariff struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	MonthlyPrice float64   `json:"monthlyPrice"`
	Features     []string  `json:"features"`
	IsPopular    bool      `json:"isPopular"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DummyTariff используется для приёма данных нового тарифа.
type DummyTariff struct {
	Name         string   `json:"name" validate:"required,max=255"`
	Description  string   `json:"description" validate:"required"`
	MonthlyPrice *float64 `json:"monthlyPrice" validate:"required,gte=0"`
	Features     []string `json:"features" validate:"omitempty,dive,required"`
	IsPopular    bool     `json:"isPopular"`
}

// TariffUpdate - частичное обновление тарифа.
type TariffUpdate struct {
	Name         *string   `json:"name" validate:"omitempty,min=1,max=255"`
	Description  *string   `json:"description" validate:"omitempty,min=1"`
	MonthlyPrice *float64  `json:"monthlyPrice" validate:"omitempty,gte=0"`
	Features     *[]string `json:"features"`
	IsPopular    *bool     `json:"isPopular"`
	IsActive     *bool     `json:"isActive"`
}

// Empty сообщает, что в обновлении нет ни одного поля.
func (u TariffUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.MonthlyPrice == nil &&
		u.Features == nil && u.IsPopular == nil && u.IsActive == nil
}
