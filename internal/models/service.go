package models

import "time"

// Service - услуга из каталога (выгул, груминг, передержка и т.п.).
type Service struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	FullDescription *string   `json:"fullDescription"`
	BasePrice       float64   `json:"basePrice"`
	Icon            *string   `json:"icon"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// DummyService используется для приёма данных новой услуги.
type DummyService struct {
	Title           string   `json:"title" validate:"required,max=255"`
	Description     string   `json:"description" validate:"required"`
	FullDescription *string  `json:"fullDescription"`
	BasePrice       *float64 `json:"basePrice" validate:"required,gte=0"`
	Icon            *string  `json:"icon" validate:"omitempty,max=255"`
}

// ServiceUpdate - частичное обновление услуги.
type ServiceUpdate struct {
	Title           *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Description     *string  `json:"description" validate:"omitempty,min=1"`
	FullDescription *string  `json:"fullDescription"`
	BasePrice       *float64 `json:"basePrice" validate:"omitempty,gte=0"`
	Icon            *string  `json:"icon" validate:"omitempty,max=255"`
	IsActive        *bool    `json:"isActive"`
}

// Empty сообщает, что в обновлении нет ни одного поля.
func (u ServiceUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.FullDescription == nil &&
		u.BasePrice == nil && u.Icon == nil && u.IsActive == nil
}
