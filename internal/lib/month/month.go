// Package month содержит расчёт сроков подписки в календарных месяцах.
package month

import (
	"time"
)

// Add возвращает момент через n календарных месяцев после from.
//
// Переполнение дня нормализуется как в time.AddDate: 31 января + 1 месяц
// даёт 2 или 3 марта.
func Add(from time.Time, n int) time.Time {
	return from.AddDate(0, n, 0)
}

// Next возвращает новый срок окончания подписки, оплаченной в момент paidAt.
func Next(paidAt time.Time) time.Time {
	return Add(paidAt, 1)
}

// Active сообщает, действует ли подписка со сроком expiresAt в момент now.
func Active(expiresAt *time.Time, now time.Time) bool {
	if expiresAt == nil {
		return false
	}
	return expiresAt.After(now)
}
