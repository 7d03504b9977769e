package ping

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

func ping(t *testing.T, h *Handler) (int, Response) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestPing_NoChecks(t *testing.T) {
	code, resp := ping(t, NewHandler(nil, logger.NewNop()))
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, resp.OK)
	assert.Empty(t, resp.Checks)
}

func TestPing_DependencyDown(t *testing.T) {
	h := NewHandler(map[string]Pinger{
		"postgres": PingerFunc(func(context.Context) error { return nil }),
		"redis":    PingerFunc(func(context.Context) error { return errors.New("connection refused") }),
	}, logger.NewNop())

	code, resp := ping(t, h)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.False(t, resp.OK)
	assert.Equal(t, "ok", resp.Checks["postgres"])
	assert.Equal(t, "connection refused", resp.Checks["redis"])
}
