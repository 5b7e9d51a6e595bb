// Package storage содержит ошибки слоя хранения, общие для всех реализаций.
package storage

import "errors"

var (
	// ErrNotFound - запись не найдена.
	ErrNotFound = errors.New("record not found")
	// ErrUserExists - пользователь с таким telegram_id уже создан.
	ErrUserExists = errors.New("user already exists")
	// ErrReferenceNotFound - внешний ключ указывает на несуществующую запись.
	ErrReferenceNotFound = errors.New("referenced record not found")
	// ErrNoActiveSubscription - у пользователя нет платной подписки.
	ErrNoActiveSubscription = errors.New("no active subscription")
)
