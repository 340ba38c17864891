package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"contractor_estimates/internal/adapter/http/handlers"
	"contractor_estimates/internal/adapter/http/handlers/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	return NewRouter(Handlers{
		Wizard:      handlers.NewWizardHandler(mocks.NewMockIWizardUseCase(ctrl), nil),
		Lead:        handlers.NewLeadHandler(mocks.NewMockILeadUseCase(ctrl), nil),
		Catalog:     handlers.NewCatalogHandler(mocks.NewMockICatalogUseCase(ctrl), nil),
		Measurement: handlers.NewMeasurementHandler(mocks.NewMockIMeasurementUseCase(ctrl), nil),
		Payment:     handlers.NewBillingPaymentHandler(mocks.NewMockIBillingPaymentUseCase(ctrl), false, nil),
	}, nil)
}

func TestNewRouter_RegistersSurface(t *testing.T) {
	r := newTestRouter(t)

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	want := []string{
		"GET /v1/ping",
		"POST /v1/wizard/sessions",
		"GET /v1/wizard/sessions/:id",
		"DELETE /v1/wizard/sessions/:id",
		"PUT /v1/wizard/sessions/:id/photos",
		"PUT /v1/wizard/sessions/:id/description",
		"GET /v1/wizard/sessions/:id/categories/suggested",
		"PUT /v1/wizard/sessions/:id/categories",
		"POST /v1/wizard/sessions/:id/advance",
		"PUT /v1/wizard/sessions/:id/answers/:question_id",
		"POST /v1/wizard/sessions/:id/contact",
		"PATCH /v1/wizard/sessions/:id/estimate/items",
		"GET /v1/contractors/:contractor_id/leads",
		"GET /v1/contractors/:contractor_id/categories",
		"POST /v1/categories/match",
		"GET /v1/leads/:id",
		"DELETE /v1/leads/:id",
		"GET /v1/leads/:id/estimate/wait",
		"PATCH /v1/leads/:id/status",
		"PUT /v1/leads/:id/estimate",
		"PATCH /v1/leads/:id/estimate/items",
		"POST /v1/leads/:id/estimate/lines",
		"POST /v1/leads/:id/sign",
		"POST /v1/leads/:id/send",
		"POST /v1/measurements",
		"POST /v1/payments/:lead_id",
		"GET /v1/payments/:lead_id",
		"GET /v1/payments/:lead_id/:payment_id",
		"GET /swagger/*any",
	}
	for _, w := range want {
		if !registered[w] {
			t.Errorf("route %q not registered", w)
		}
	}
}

func TestNewRouter_Ping(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
