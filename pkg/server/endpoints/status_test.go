package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusEndpoint(t *testing.T) {
	t.Run("healthy database reports ok", func(t *testing.T) {
		ts := newTestServer(t)
		ts.health.On("CheckConnectivity").Return(nil)

		w := ts.do("GET", "/status", "", nil)

		require.Equal(t, http.StatusOK, w.Code)

		var resp StatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.NotEmpty(t, resp.Version)
	})

	t.Run("unreachable database reports 503", func(t *testing.T) {
		ts := newTestServer(t)
		ts.health.On("CheckConnectivity").Return(errors.New("connection refused"))

		w := ts.do("GET", "/status", "", nil)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp StatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "error", resp.Status)
	})
}
