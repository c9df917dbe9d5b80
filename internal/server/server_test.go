package server

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/internal/testutil"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/tax"
)

func newTestHandler(t *testing.T, maxRequestSize int64) http.Handler {
	t.Helper()
	registry, err := calculator.NewDefaultRegistry(zap.NewNop(), tax.TaxYear{})
	require.NoError(t, err)
	return NewHandler(zap.NewNop(), registry, maxRequestSize, "1.2.3")
}

func serve(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestHandleList(t *testing.T) {
	handler := newTestHandler(t, constants.DefaultMaxRequestSizeBytes)

	rr := serve(handler, http.MethodGet, "/api/calculators", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp listResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Calculators, 25)
	assert.Equal(t, "annuity", resp.Calculators[0].Name)
	assert.Len(t, resp.Categories, 4)

	rr = serve(handler, http.MethodGet, "/api/calculators?category=tax", "")
	require.Equal(t, http.StatusOK, rr.Code)
	resp = listResponse{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Calculators, 7)
	for _, c := range resp.Calculators {
		assert.Equal(t, calculator.CategoryTax, c.Category)
	}

	rr = serve(handler, http.MethodGet, "/api/calculators?category=nothing", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"calculators":[]`)
}

func TestHandleSchema(t *testing.T) {
	handler := newTestHandler(t, constants.DefaultMaxRequestSizeBytes)

	rr := serve(handler, http.MethodGet, "/api/calculators/annuity", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var schema calculator.Calculator
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &schema))
	assert.Equal(t, "annuity", schema.Name)
	require.NotEmpty(t, schema.Fields)
	assert.Equal(t, "pot", schema.Fields[0].Key)
	assert.Equal(t, calculator.KindCurrency, schema.Fields[0].Kind)
}

func TestHandleComputeSuccess(t *testing.T) {
	handler := newTestHandler(t, constants.DefaultMaxRequestSizeBytes)

	body := `{"inputs": {"pot": 150000, "rate": "5%", "years": 20, "frequency": "monthly"}}`
	rr := serve(handler, http.MethodPost, "/api/calculators/annuity", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var result calculator.Result
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, "annuity", result.Calculator)
	assert.InDelta(t, 989.93, testutil.OutputValue(t, result, "payment"), 0.01)
	assert.Equal(t, 5.0, result.Inputs["rate"])
}

func TestHandleComputeEmptyBodyUsesDefaults(t *testing.T) {
	handler := newTestHandler(t, constants.DefaultMaxRequestSizeBytes)

	rr := serve(handler, http.MethodPost, "/api/calculators/income-tax", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var result calculator.Result
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 50000.0, result.Inputs["income"])
	assert.InDelta(t, 7486, testutil.OutputValue(t, result, "tax"), 0.01)
}

func TestHandleComputeCoercesBadValues(t *testing.T) {
	handler := newTestHandler(t, constants.DefaultMaxRequestSizeBytes)

	rr := serve(handler, http.MethodPost, "/api/calculators/annuity", `{"inputs": {"pot": "lots", "rate": null}}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var result calculator.Result
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 0.0, testutil.OutputValue(t, result, "payment"))
}

func TestHandleComputeErrors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		wantStatus int
		wantError  string
	}{
		{"malformed json", "/api/calculators/annuity", `{"inputs":`, http.StatusBadRequest, "failed to decode request"},
		{"nested input", "/api/calculators/annuity", `{"inputs": {"pot": {"a": 1}}}`, http.StatusBadRequest, "input pot"},
		{"unknown calculator", "/api/calculators/anuity", `{}`, http.StatusNotFound, "unknown calculator"},
	}

	handler := newTestHandler(t, constants.DefaultMaxRequestSizeBytes)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(handler, http.MethodPost, tt.target, tt.body)
			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, tt.wantError)
			assert.Equal(t, rr.Header().Get(RequestIDHeader), resp.RequestID)
		})
	}
}

func TestUnknownCalculatorSuggestions(t *testing.T) {
	handler := newTestHandler(t, constants.DefaultMaxRequestSizeBytes)

	rr := serve(handler, http.MethodGet, "/api/calculators/mortage", "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, "mortgage", resp.Suggestions[0])
}

func TestHandleComputeRequestTooLarge(t *testing.T) {
	handler := newTestHandler(t, 64)

	payload := map[string]interface{}{
		"inputs": map[string]string{"pot": strings.Repeat("1", 200)},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	rr := serve(handler, http.MethodPost, "/api/calculators/annuity", string(body))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code, rr.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	handler := newTestHandler(t, constants.DefaultMaxRequestSizeBytes)

	tests := []struct {
		method, target, allow string
	}{
		{http.MethodPost, "/api/calculators", "GET"},
		{http.MethodDelete, "/api/calculators/annuity", "GET, POST"},
		{http.MethodPut, "/api/version", "GET"},
	}
	for _, tt := range tests {
		rr := serve(handler, tt.method, tt.target, "")
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code, tt.target)
		assert.Equal(t, tt.allow, rr.Header().Get("Allow"), tt.target)
	}
}

func TestHandleVersion(t *testing.T) {
	handler := newTestHandler(t, constants.DefaultMaxRequestSizeBytes)

	rr := serve(handler, http.MethodGet, "/api/version", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "1.2.3", resp["version"])

	dev := NewHandler(nil, nil, 0, "  ")
	rr = serve(dev, http.MethodGet, "/api/version", "")
	assert.Contains(t, rr.Body.String(), `"dev"`)
}

func TestRequestID(t *testing.T) {
	handler := newTestHandler(t, constants.DefaultMaxRequestSizeBytes)

	rr := serve(handler, http.MethodGet, "/api/version", "")
	_, err := uuid.Parse(rr.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(RequestIDHeader, "client-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "client-123", rec.Header().Get(RequestIDHeader))
}

func TestServeShutsDownOnCancel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Address = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, zap.NewNop(), cfg, http.NotFoundHandler())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestServeListenError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Address = "256.0.0.1:bad"
	err := Serve(context.Background(), nil, cfg, http.NotFoundHandler())
	assert.Error(t, err)
}

func TestStringInputs(t *testing.T) {
	raw, err := stringInputs(map[string]interface{}{
		"a": 1.5,
		"b": "£2,000",
		"c": nil,
		"d": true,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1.5", "b": "£2,000", "c": "", "d": "true"}, raw)

	_, err = stringInputs(map[string]interface{}{"x": []interface{}{1}})
	assert.Error(t, err)
}

func TestWriteJSONEncodeFailure(t *testing.T) {
	h := &handler{logger: zap.NewNop()}
	rr := httptest.NewRecorder()
	h.writeJSON(rr, http.StatusOK, map[string]float64{"value": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"failed to encode response"}`, rr.Body.String())
}

func TestHandleComputeHugeAmount(t *testing.T) {
	h := newTestHandler(t, constants.DefaultMaxRequestSizeBytes)
	rr := serve(h, http.MethodPost, "/api/calculators/vat", `{"inputs":{"amount":"1e307"}}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var result calculator.Result
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.InDelta(t, 1.2e307, testutil.OutputValue(t, result, "gross"), 1e295)
}
