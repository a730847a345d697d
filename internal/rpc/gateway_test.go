package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubController struct{}

func (stubController) Execute(_ context.Context, op string, _ json.RawMessage) (any, error) {
	switch op {
	case "ping":
		return map[string]any{"pong": true}, nil
	case "none":
		return nil, nil
	case "fail":
		return nil, NotFound("thing")
	case "boom":
		return nil, errors.New("connection reset")
	default:
		return nil, MethodNotFound("stub." + op)
	}
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	gw := NewGateway(zerolog.Nop())
	gw.Register("stub", stubController{})

	r.POST("/api", gw.Handle)
	r.HandleMethodNotAllowed = true
	r.NoRoute(BadRequest)
	r.NoMethod(BadRequest)
	return r
}

func post(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestHandleEchoesIDAndMethod(t *testing.T) {
	r := newTestEngine()
	w := post(t, r, `{"id":"req-1","method":"stub.ping","params":{}}`)

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decode(t, w)
	assert.JSONEq(t, `"req-1"`, string(envelope["id"]))
	assert.JSONEq(t, `"stub.ping"`, string(envelope["method"]))
	assert.JSONEq(t, `{"pong":true}`, string(envelope["result"]))
	assert.NotContains(t, envelope, "error")
}

func TestHandleOmitsResultOnEmptySuccess(t *testing.T) {
	r := newTestEngine()
	w := post(t, r, `{"id":"req-2","method":"stub.none"}`)

	envelope := decode(t, w)
	assert.NotContains(t, envelope, "result")
	assert.NotContains(t, envelope, "error")
}

func TestHandleDomainError(t *testing.T) {
	r := newTestEngine()
	w := post(t, r, `{"id":"req-3","method":"stub.fail"}`)

	envelope := decode(t, w)
	assert.NotContains(t, envelope, "result")

	var wireErr Error
	require.NoError(t, json.Unmarshal(envelope["error"], &wireErr))
	assert.Equal(t, CodeNotFound, wireErr.Code)
}

func TestHandleStoreErrorBecomesInternal(t *testing.T) {
	r := newTestEngine()
	w := post(t, r, `{"id":"req-4","method":"stub.boom"}`)

	envelope := decode(t, w)
	var wireErr Error
	require.NoError(t, json.Unmarshal(envelope["error"], &wireErr))
	assert.Equal(t, CodeInternal, wireErr.Code)
	assert.NotContains(t, wireErr.Message, "connection reset")
}

func TestHandleUnknownNamespace(t *testing.T) {
	r := newTestEngine()
	w := post(t, r, `{"id":"req-5","method":"nosuch.op"}`)

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decode(t, w)
	var wireErr Error
	require.NoError(t, json.Unmarshal(envelope["error"], &wireErr))
	assert.Equal(t, CodeMethodNotFound, wireErr.Code)
}

func TestHandleUnknownOperation(t *testing.T) {
	r := newTestEngine()
	w := post(t, r, `{"id":"req-6","method":"stub.nosuch"}`)

	envelope := decode(t, w)
	var wireErr Error
	require.NoError(t, json.Unmarshal(envelope["error"], &wireErr))
	assert.Equal(t, CodeMethodNotFound, wireErr.Code)
}

func TestHandleMethodWithoutDot(t *testing.T) {
	r := newTestEngine()
	w := post(t, r, `{"id":"req-7","method":"ping"}`)

	envelope := decode(t, w)
	var wireErr Error
	require.NoError(t, json.Unmarshal(envelope["error"], &wireErr))
	assert.Equal(t, CodeMethodNotFound, wireErr.Code)
}

func TestHandleMalformedBody(t *testing.T) {
	r := newTestEngine()
	w := post(t, r, `{"id":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Bad request", w.Body.String())
}

func TestRejectWrongVerbAndPath(t *testing.T) {
	r := newTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Bad request", w.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/other", bytes.NewBufferString(`{}`))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResponseMarshalOmitsAbsentSide(t *testing.T) {
	out, err := json.Marshal(Response{ID: "1", Method: "a.b"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","method":"a.b"}`, string(out))

	out, err = json.Marshal(Response{ID: "1", Method: "a.b", Error: NotFound("x")})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "result")
}
