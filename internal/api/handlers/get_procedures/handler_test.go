package get_procedures

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/OdontoBooking/internal/service/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_ListsCatalog(t *testing.T) {
	h := NewHandler(catalog.NewService(""), nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/procedures", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []ProcedureResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 7)
	assert.Equal(t, "Limpeza Dental (Profilaxia)", resp[0].Name)
	assert.Equal(t, "Dr(a). Ana Silva", resp[0].Professional)
}
