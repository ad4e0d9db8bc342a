package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Warn(format string, v ...interface{}) {}

func TestShopMiddleware(t *testing.T) {
	const shopID = "10000000-0000-0000-0000-000000000001"

	var gotShopID string
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotShopID, gotOK = ShopIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := ShopMiddleware(nopLogger{})(next)

	// Валидный заголовок прокидывает ID магазина в контекст
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set(HeaderShopID, shopID)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotOK)
	assert.Equal(t, shopID, gotShopID)

	// Без заголовка запрос отклоняется
	req = httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Невалидный UUID отклоняется
	req = httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set(HeaderShopID, "shop-1")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
