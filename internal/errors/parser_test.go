package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/ikkim/pcbuild-backend/internal/app/service"
	"github.com/ikkim/pcbuild-backend/internal/importer"
	"github.com/ikkim/pcbuild-backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"nil", nil, http.StatusInternalServerError, InternalServerError},
		{"bad passphrase", service.ErrInvalidPassphrase, http.StatusUnauthorized, AuthInvalidPassphrase},
		{"passphrase required", service.ErrPassphraseRequired, http.StatusBadRequest, AdminPassphraseRequired},
		{"passphrase mismatch", service.ErrPassphraseMismatch, http.StatusBadRequest, AdminPassphraseMismatch},
		{"generation wrapped", fmt.Errorf("%w: upstream 500", service.ErrGeneration), http.StatusBadGateway, QuoteGenerationFailed},
		{"invalid quote", service.ErrInvalidQuoteRequest, http.StatusBadRequest, QuoteInvalidRequest},
		{"component", service.ErrComponentNotFound, http.StatusNotFound, CatalogComponentNotFound},
		{"item", service.ErrAdditionalItemNotFound, http.StatusNotFound, ItemNotFound},
		{"bundle", service.ErrBundleNotFound, http.StatusNotFound, BundleNotFound},
		{"category", model.ErrUnknownCategory, http.StatusBadRequest, CatalogUnknownCategory},
		{"mismatch", fmt.Errorf("%w: item 0", model.ErrCategoryMismatch), http.StatusBadRequest, CatalogCategoryMismatch},
		{"commission", model.ErrCommissionOutOfRange, http.StatusBadRequest, CommissionInvalidRate},
		{"item price", service.ErrInvalidAdditionalItem, http.StatusBadRequest, ItemInvalidPrice},
		{"bundle price", service.ErrInvalidPrice, http.StatusBadRequest, BundleInvalidPrice},
		{"empty file", importer.ErrEmptyFile, http.StatusBadRequest, ImportEmptyFile},
		{"format", importer.ErrUnsupportedFormat, http.StatusBadRequest, ImportUnsupportedFormat},
		{"storage", storage.ErrStorageDisabled, http.StatusServiceUnavailable, DocumentStorageDisabled},
		{"network", fmt.Errorf("dial tcp: connection refused"), http.StatusBadGateway, InternalExternalAPI},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, InternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ParseError(tt.err, "")
			assert.Equal(t, tt.wantStatus, info.Status)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.NotEmpty(t, info.Message)
		})
	}
}

func TestParseError_GenerationMessageHidesCause(t *testing.T) {
	info := ParseError(fmt.Errorf("%w: secret upstream body", service.ErrGeneration), "quote")
	assert.Equal(t, GenerationFailedMessage, info.Message)
	assert.NotContains(t, info.Message, "secret")
}

func TestParseError_ContextMessage(t *testing.T) {
	assert.Contains(t, ParseError(fmt.Errorf("x"), "import").Message, "파일")
	assert.Equal(t, "요청 처리 중 오류가 발생했습니다", ParseError(fmt.Errorf("x"), "").Message)
}

type quoteForm struct {
	Prompt string `validate:"required"`
	Budget int64  `validate:"gt=0"`
}

func TestValidationFields(t *testing.T) {
	err := validator.New().Struct(quoteForm{})
	require.Error(t, err)

	fields := ValidationFields(err)
	assert.Equal(t, map[string]string{
		"prompt": "필수 항목입니다",
		"budget": "0보다 커야 합니다",
	}, fields)

	assert.Nil(t, ValidationFields(fmt.Errorf("plain")))
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, service.ErrBundleNotFound, "bundle")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, BundleNotFound, body.Error)
}

func TestRespondWithBindError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondWithBindError(c, validator.New().Struct(quoteForm{Prompt: "x"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var verr ValidationError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verr))
	assert.Equal(t, ValidationInvalidInput, verr.Error)
	assert.Contains(t, verr.Fields, "budget")

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	RespondWithBindError(c, fmt.Errorf("unexpected EOF"))
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ValidationInvalidFormat, body.Error)
}
