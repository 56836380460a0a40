package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stockline/backend/internal/infrastructure/auth"
	"github.com/stockline/backend/internal/infrastructure/config"
	"github.com/stockline/backend/internal/interfaces/http/handler"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestRouter() http.Handler {
	cfg := &config.Config{}
	cfg.App.Name = "stockline"
	cfg.App.Env = "test"

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "router-test-secret-key-long-enough",
		AccessTokenExpiration: time.Hour,
		Issuer:                "stockline-test",
	})

	return New(Handlers{
		System:    handler.NewSystemHandler("stockline", "test"),
		Auth:      handler.NewAuthHandler(nil),
		Item:      handler.NewItemHandler(nil),
		Indent:    handler.NewIndentHandler(nil),
		Purchase:  handler.NewPurchaseHandler(nil),
		Receipt:   handler.NewReceiptHandler(nil),
		Issue:     handler.NewIssueHandler(nil),
		Stock:     handler.NewStockHandler(nil),
		Reconcile: handler.NewReconcileHandler(nil, nil),
	}, Options{
		Config:     cfg,
		Logger:     zap.NewNop(),
		JWTService: jwtService,
	})
}

func TestRouterHealth(t *testing.T) {
	r := newTestRouter()

	for _, path := range []string{"/health", "/api/v1/health"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouterRequiresAuth(t *testing.T) {
	r := newTestRouter()

	paths := []string{
		"/api/v1/items",
		"/api/v1/indents",
		"/api/v1/purchase-entries",
		"/api/v1/psirs",
		"/api/v1/vsirs",
		"/api/v1/vendor-issues",
		"/api/v1/inhouse-issues",
		"/api/v1/stocks",
		"/api/v1/reconcile/allocations",
	}
	for _, path := range paths {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRouterSetsRequestID(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
