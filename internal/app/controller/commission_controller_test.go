package controller

import (
	"net/http"
	"testing"

	apperrors "github.com/ikkim/pcbuild-backend/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommissionController_GetRates(t *testing.T) {
	env := setupControllerTest(t)

	w := performJSON(t, env.router, http.MethodGet, "/commission-rates", nil)
	require.Equal(t, http.StatusOK, w.Code)

	rates := decodeBody(t, w)["rates"].(map[string]interface{})
	assert.Equal(t, float64(6), rates["naver"])
	assert.Equal(t, float64(11), rates["coupang"])
	assert.Equal(t, float64(8), rates["market"])
}

func TestCommissionController_UpdateRates(t *testing.T) {
	env := setupControllerTest(t)

	w := performJSON(t, env.router, http.MethodPut, "/commission-rates", map[string]interface{}{
		"naver":   10,
		"coupang": 0,
		"market":  5.5,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = performJSON(t, env.router, http.MethodGet, "/bundles/quotes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := decodeBody(t, w)["quotes"].([]interface{})[0].(map[string]interface{})
	naver := first["marketplaces"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, float64(10), naver["rate"])
	assert.Equal(t, float64(2362905), naver["settlement"])
}

func TestCommissionController_UpdateRates_Invalid(t *testing.T) {
	env := setupControllerTest(t)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"negative", map[string]interface{}{"naver": -1, "coupang": 11, "market": 8}},
		{"missing field", map[string]interface{}{"naver": 6, "coupang": 11}},
		{"over hundred", map[string]interface{}{"naver": 101, "coupang": 11, "market": 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(t, env.router, http.MethodPut, "/commission-rates", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, apperrors.ValidationInvalidInput, decodeBody(t, w)["error"])
		})
	}

	w := performJSON(t, env.router, http.MethodGet, "/commission-rates", nil)
	assert.Equal(t, float64(6), decodeBody(t, w)["rates"].(map[string]interface{})["naver"])
}
