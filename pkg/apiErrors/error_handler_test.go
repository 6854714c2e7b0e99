package apiErrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrStoreWithoutHistory, "Loja sem histórico", map[string]int{"store_id": 7})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "FCT_001", body["code"])
	assert.Equal(t, "Loja sem histórico", body["message"])
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, StatusOf(ErrUndefinedRatio))
	assert.Equal(t, http.StatusServiceUnavailable, StatusOf(ErrDatasetUnavailable))
	assert.Equal(t, http.StatusInternalServerError, StatusOf("XYZ_999"))
}

func TestFromError(t *testing.T) {
	apiErr := FromError(errors.New("falhou"), ErrOutOfRange)
	assert.Equal(t, ErrOutOfRange, apiErr.Code)
	assert.Equal(t, "falhou", apiErr.Message)

	assert.Equal(t, ErrInternalServer, FromError(nil, ErrOutOfRange).Code)
}
