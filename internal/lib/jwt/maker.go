// Package jwt реализует выпуск и проверку подписанных токенов сессии.
//
// Maker определяет интерфейс для создания и проверки JWT с идентификатором пользователя.
// MakerImpl — реализация на HS256 с секретным ключом процесса и временем жизни токена.
package jwt

import (
	"errors"
	"time"
)

// DefaultTokenTTL — время жизни токена по умолчанию.
const DefaultTokenTTL = 72 * time.Hour

// ErrEmptySecret возвращается, если секрет подписи не задан.
var ErrEmptySecret = errors.New("jwt: signing secret is empty")

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken выпускает токен для пользователя с указанным ID.
	GenerateToken(userID string) (string, error)
	// ParseToken проверяет подпись и срок действия, возвращает claims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey []byte        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
	now       func() time.Time
}

// NewJWTMaker создаёт MakerImpl. Пустой секрет — ошибка: сервис не должен стартовать без него.
func NewJWTMaker(secretKey string, ttl time.Duration) (*MakerImpl, error) {
	if secretKey == "" {
		return nil, ErrEmptySecret
	}
	return &MakerImpl{
		secretKey: []byte(secretKey),
		tokenTTL:  ttl,
		now:       time.Now,
	}, nil
}
