package models

import "time"

// Pet - питомец пользователя.
type Pet struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Breed       string    `json:"breed"`
	Age         int       `json:"age"`
	Description *string   `json:"description"`
	PhotoURL    *string   `json:"photoUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DummyPet используется для приёма данных нового питомца из JSON-запроса.
type DummyPet struct {
	UserID      string  `json:"userId" validate:"required,uuid"`
	Name        string  `json:"name" validate:"required,max=255"`
	Breed       string  `json:"breed" validate:"required,max=255"`
	Age         *int    `json:"age" validate:"required,gte=0,lte=100"`
	Description *string `json:"description" validate:"omitempty"`
}

// PetUpdate - частичное обновление питомца.
type PetUpdate struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Breed       *string `json:"breed" validate:"omitempty,min=1,max=255"`
	Age         *int    `json:"age" validate:"omitempty,gte=0,lte=100"`
	Description *string `json:"description"`
}

// Empty сообщает, что в обновлении нет ни одного поля.
func (u PetUpdate) Empty() bool {
	return u.Name == nil && u.Breed == nil && u.Age == nil && u.Description == nil
}
