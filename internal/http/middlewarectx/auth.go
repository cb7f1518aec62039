// Package middlewarectx содержит HTTP middleware сервиса.
//
// JWTMiddleware проверяет токен сессии из заголовка Authorization и кладёт
// идентификатор пользователя в контекст запроса. Обработчики читают его через
// UserIDFromContext и никогда не берут владельца из тела запроса.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-journal/internal/common"
	"github.com/magabrotheeeer/travel-journal/internal/http/response"
	"github.com/magabrotheeeer/travel-journal/internal/lib/jwt"
	"github.com/magabrotheeeer/travel-journal/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// UserID - ключ идентификатора аутентифицированного пользователя в контексте.
const UserID Key = "userId"

// TokenParser проверяет подпись и срок действия токена.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwt.CustomClaims, error)
}

// JWTMiddleware пропускает запрос дальше только с валидным токеном,
// иначе отвечает 401 и не вызывает следующий обработчик.
func JWTMiddleware(parser TokenParser, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"
			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			claims, err := parser.ParseToken(bearerToken(r))
			if err != nil {
				log.Info("request rejected", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(rejectMessage(err)))
				return
			}

			ctx := WithUserID(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[7:])
}

func rejectMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrTokenMissing):
		return "Access token is missing"
	case errors.Is(err, common.ErrTokenExpired):
		return "Access token expired"
	default:
		return "Invalid access token"
	}
}

// WithUserID возвращает контекст с идентификатором пользователя.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserID, userID)
}

// UserIDFromContext возвращает идентификатор, положенный JWTMiddleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserID).(string)
	return id, ok && id != ""
}
