// Package telegram проверяет подпись данных запуска Telegram Mini App (initData).
//
// Алгоритм описан в документации Telegram WebApp: из строки запроса убирается
// поле hash, оставшиеся пары key=value сортируются по ключу и склеиваются через
// перевод строки. Ключ подписи - HMAC-SHA256 токена бота с ключом "WebAppData".
package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sort"
	"strings"

	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/apperr"
)

const webAppDataKey = "WebAppData"

// WebAppUser - данные пользователя из поля user.
type WebAppUser struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
	IsPremium    bool   `json:"is_premium,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty"`
}

// ValidateInitData проверяет подпись initData токеном бота и возвращает пользователя.
//
// Все ошибки имеют класс apperr.KindAuthentication с соответствующей причиной.
func ValidateInitData(initData, botToken string) (*WebAppUser, error) {
	// ParseQuery пропускает пары, которые не удалось декодировать, и разбирает
	// остальные. Выпавшая пара меняет строку проверки, поэтому подпись не сойдётся.
	values, _ := url.ParseQuery(initData)

	hash := values.Get("hash")
	if hash == "" {
		return nil, apperr.Authentication(apperr.ReasonMissingSignature, "no hash provided")
	}
	values.Del("hash")

	expected := sign(dataCheckString(values), botToken)
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(hash))) {
		return nil, apperr.Authentication(apperr.ReasonBadSignature, "invalid hash")
	}

	raw := values.Get("user")
	if raw == "" {
		return nil, apperr.Authentication(apperr.ReasonMissingIdentity, "no user data provided")
	}

	var user WebAppUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, apperr.Authentication(apperr.ReasonMalformedIdentity, "invalid user data")
	}
	if user.ID == 0 {
		return nil, apperr.Authentication(apperr.ReasonMalformedIdentity, "user id is missing")
	}

	return &user, nil
}

// SignInitData подписывает values токеном бота и возвращает готовую строку initData.
// values не изменяется.
func SignInitData(values url.Values, botToken string) string {
	signed := make(url.Values, len(values)+1)
	for k, v := range values {
		if k == "hash" {
			continue
		}
		signed[k] = append([]string(nil), v...)
	}
	signed.Set("hash", sign(dataCheckString(signed), botToken))
	return signed.Encode()
}

func dataCheckString(values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		for _, v := range values[k] {
			lines = append(lines, k+"="+v)
		}
	}
	return strings.Join(lines, "\n")
}

func sign(checkString, botToken string) string {
	secret := hmac.New(sha256.New, []byte(webAppDataKey))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))
	return hex.EncodeToString(mac.Sum(nil))
}
