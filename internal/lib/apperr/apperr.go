// Package apperr описывает классы ошибок бизнес-логики.
//
// Сервисы возвращают *Error с нужным Kind, а HTTP-слой переводит Kind
// в статус ответа. Всё, что не является *Error, считается внутренней ошибкой.
package apperr

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Kind - класс ошибки.
type Kind int

const (
	// KindInternal - непредвиденная ошибка.
	KindInternal Kind = iota
	// KindValidation - некорректный ввод или отсутствует обязательное поле.
	KindValidation
	// KindAuthentication - неверная или отсутствующая подпись, недействительный токен.
	KindAuthentication
	// KindNotFound - идентификатор не указывает на существующую запись.
	KindNotFound
	// KindGateway - ошибка платёжного провайдера.
	KindGateway
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	case KindGateway:
		return "gateway"
	default:
		return "internal"
	}
}

// Reason уточняет причину ошибки аутентификации.
type Reason string

const (
	ReasonMissingSignature      Reason = "missing_signature"
	ReasonBadSignature          Reason = "bad_signature"
	ReasonMissingIdentity       Reason = "missing_identity"
	ReasonMalformedIdentity     Reason = "malformed_identity"
	ReasonInvalidOrExpiredToken Reason = "invalid_or_expired_token"
)

// Error - ошибка бизнес-логики с классом и сообщением для клиента.
type Error struct {
	Kind    Kind
	Reason  Reason
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation создаёт ошибку валидации.
func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound создаёт ошибку отсутствующей записи.
func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Authentication создаёт ошибку аутентификации с причиной reason.
func Authentication(reason Reason, msg string) error {
	return &Error{Kind: KindAuthentication, Reason: reason, Message: msg}
}

// Gateway оборачивает ошибку платёжного провайдера.
func Gateway(msg string, err error) error {
	return &Error{Kind: KindGateway, Message: msg, Err: err}
}

// KindOf возвращает класс ошибки err. Для nil и посторонних ошибок - KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// ReasonOf возвращает причину ошибки аутентификации или пустую строку.
func ReasonOf(err error) Reason {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return ""
}

// MessageOf возвращает сообщение для клиента.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}

// CheckID возвращает ошибку валидации, если value не является UUID.
func CheckID(name, value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return Validation("invalid %s: %q", name, value)
	}
	return nil
}
