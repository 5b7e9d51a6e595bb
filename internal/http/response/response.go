// Package response содержит вспомогательные типы и функции для формирования
// JSON-ответов HTTP-обработчиков: тело ошибки, сообщения валидации и
// перевод классов ошибок бизнес-логики в HTTP-статусы.
package response

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/apperr"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/sl"
)

// ErrorResponse - тело ответа с ошибкой.
// Используется в аннотациях @Failure как возвращаемый тип ошибки.
type ErrorResponse struct {
	Status string `json:"status" example:"Error"`
	Error  string `json:"error" example:"invalid request body"`
}

// SuccessResponse - ответ на удаление.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// StatusResponse - ответ health-check и webhook.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

const (
	// StatusError - значение статуса для ответа с ошибкой.
	StatusError = "Error"
	// StatusOK - значение статуса для health-check и webhook.
	StatusOK = "ok"
)

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error:  msg,
	}
}

// Success возвращает ответ {"success": true}.
func Success() SuccessResponse {
	return SuccessResponse{Success: true}
}

// OK возвращает ответ {"status": "ok"}.
func OK() StatusResponse {
	return StatusResponse{Status: StatusOK}
}

// ValidationError формирует ErrorResponse на основе ошибок валидации.
// Каждое нарушение формируется в человеко-читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "uuid":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only uuid", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "gt", "gte":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at least %s", err.Field(), boundFor(err)))
		case "lte", "max":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at most %s", err.Field(), err.Param()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must not be empty", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Error(strings.Join(errsMsgs, ", "))
}

func boundFor(err validator.FieldError) string {
	if err.ActualTag() == "gt" {
		return "greater than " + err.Param()
	}
	return err.Param()
}

// HTTPStatus возвращает HTTP-статус для класса ошибки.
func HTTPStatus(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindGateway:
		return http.StatusBadRequest
	case apperr.KindAuthentication:
		return http.StatusUnauthorized
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError пишет ответ для ошибки бизнес-логики.
// Внутренние ошибки логируются, клиент получает "internal error".
func WriteError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	kind := apperr.KindOf(err)
	status := HTTPStatus(kind)
	if status == http.StatusInternalServerError {
		log.Error("request failed", sl.Err(err))
	} else {
		log.Warn("request rejected", slog.String("kind", kind.String()), sl.Err(err))
	}

	render.Status(r, status)
	render.JSON(w, r, Error(apperr.MessageOf(err)))
}

// WriteBadRequest пишет 400 с сообщением msg.
func WriteBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, Error(msg))
}

// WriteValidation пишет 400 с описанием ошибок валидации.
func WriteValidation(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, http.StatusBadRequest)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		render.JSON(w, r, ValidationError(verrs))
		return
	}
	render.JSON(w, r, Error("invalid request body"))
}
