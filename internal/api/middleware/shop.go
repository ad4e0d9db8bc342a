package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/servicebox-app/booking-service/internal/api/handlers"
)

// HeaderShopID заголовок с идентификатором магазина (tenant)
const HeaderShopID = "X-Shop-ID"

const (
	msgMissingShopID = "отсутствует заголовок X-Shop-ID"
	msgInvalidShopID = "некорректный ID магазина"
)

type shopIDKey struct{}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// ShopMiddleware извлекает ID магазина из заголовка X-Shop-ID и кладет его
// в контекст запроса. Все операции ниже по стеку работают только с данными
// этого магазина; запрос без валидного заголовка отклоняется
func ShopMiddleware(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			shopID := r.Header.Get(HeaderShopID)
			if shopID == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, HeaderShopID)
				handlers.RespondBadRequest(w, msgMissingShopID)
				return
			}

			if _, err := uuid.Parse(shopID); err != nil {
				logger.Warn("%s %s - Invalid shop ID %q: %v", r.Method, r.URL.Path, shopID, err)
				handlers.RespondBadRequest(w, msgInvalidShopID)
				return
			}

			ctx := context.WithValue(r.Context(), shopIDKey{}, shopID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ShopIDFromContext возвращает ID магазина, положенный ShopMiddleware
func ShopIDFromContext(ctx context.Context) (string, bool) {
	shopID, ok := ctx.Value(shopIDKey{}).(string)
	return shopID, ok
}
