package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeroXten/alexa-threat-model-game/internal/model"
)

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid request", NewInvalidRequestError("bad"), http.StatusBadRequest, CodeInvalidRequest},
		{"store unavailable", fmt.Errorf("load: %w", model.ErrStoreUnavailable), http.StatusServiceUnavailable, CodeStoreUnavailable},
		{"store corrupt", model.ErrStoreCorrupt, http.StatusInternalServerError, CodeStoreCorrupt},
		{"not loaded", model.ErrNotLoaded, http.StatusInternalServerError, CodeInternalError},
		{"index out of range", model.ErrIndexOutOfRange, http.StatusInternalServerError, CodeInternalError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestPanicHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	PanicHandler(rec, httptest.NewRequest(http.MethodPost, "/api/v1/skill", nil), "boom")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"INTERNAL_ERROR","message":"Internal server error"}}`, rec.Body.String())
}
