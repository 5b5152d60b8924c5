package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/metinatakli/cinema-kiosk/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHealth(t *testing.T) {
	app := newTestApplication()

	w, r := executeRequest(t, http.MethodGet, "/healthcheck", nil)

	app.GetHealth(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var response api.HealthcheckResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))

	assert.Equal(t, "UP", response.Status)
	assert.Equal(t, "test", response.SystemInfo.Environment)
	assert.Equal(t, version, response.SystemInfo.Version)
}
