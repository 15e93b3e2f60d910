package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, map[string]string{"id": "b1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"id":"b1"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	RespondJSON(rec, http.StatusNoContent, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRespondValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondValidationError(rec, "dados inválidos", map[string]string{"cpf": "CPF inválido."})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "CPF inválido.", body.Fields["cpf"])
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Date string `json:"date"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":"2025-06-10"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "2025-06-10", dst.Date)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.Error(t, DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":`))
	assert.Error(t, DecodeJSON(req, &dst))
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "10/06/2025", FormatDisplayDate("2025-06-10"))
	assert.Equal(t, "junk", FormatDisplayDate("junk"))
}
