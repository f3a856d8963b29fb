package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tammam101/temox/backend/internal/store"
)

func doRegister(t *testing.T, h *Handler, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.Register(rr, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	return rr, out
}

func TestHandler_Register(t *testing.T) {
	h := NewHandler(newTestService(store.NewMemoryUserStore()))

	rr, out := doRegister(t, h, `{"username":"alice","password":"secret1"}`)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "User registered successfully", out["message"])

	user := out["user"].(map[string]any)
	assert.Equal(t, "alice", user["username"])
	assert.NotEmpty(t, user["id"])
	assert.NotContains(t, rr.Body.String(), "secret1")
	assert.NotContains(t, rr.Body.String(), "$2a$")

	rr, out = doRegister(t, h, `{"username":"alice","password":"secret2"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "Username already exists", out["message"])
}

func TestHandler_Register_Validation(t *testing.T) {
	h := NewHandler(newTestService(store.NewMemoryUserStore()))

	rr, out := doRegister(t, h, `{"username":"ab","password":"12345"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "Validation failed", out["message"])

	errs := out["errors"].([]any)
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.(map[string]any)["field"].(string)] = true
	}
	assert.True(t, fields["username"])
	assert.True(t, fields["password"])
}

func TestHandler_Register_BadBody(t *testing.T) {
	h := NewHandler(newTestService(store.NewMemoryUserStore()))

	rr, out := doRegister(t, h, `{"username":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid request body", out["message"])
}

func TestHandler_Register_Internal(t *testing.T) {
	h := NewHandler(newTestService(&fakeUserStore{err: assert.AnError}))

	rr, out := doRegister(t, h, `{"username":"alice","password":"secret1"}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Internal server error", out["message"])
	assert.NotContains(t, rr.Body.String(), assert.AnError.Error())
}
