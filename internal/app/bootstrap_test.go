package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"greeting-api/internal/config"
	"greeting-api/internal/db"
	"greeting-api/internal/db/dbtest"
	"greeting-api/internal/utils"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *Application {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{AppName: "greetingApi", FrontendURL: "http://localhost:3000"}
	return Assemble(cfg, zap.NewNop(), dbtest.Open(t, db.Models()...), nil, nil)
}

func request(a *Application, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.Router.Engine.ServeHTTP(w, req)
	return w
}

func TestAssembledRoutes(t *testing.T) {
	a := newTestApp(t)

	w := request(a, http.MethodPost, "/api/greeting", `{"text":"hello"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "A new greeting is created with identifier 1", w.Header().Get("X-greetingApi-alert"))
	assert.Equal(t, "1", w.Header().Get("X-greetingApi-params"))

	w = request(a, http.MethodPost, "/api/messages", `{"text":"hi","timestamp":"1970-01-01T00:00:00Z","greeting":{"id":1}}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/messages/1", w.Header().Get("Location"))

	w = request(a, http.MethodGet, "/api/greeting/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"text":"hello","messages":[{"id":1,"text":"hi","timestamp":"1970-01-01T00:00:00Z"}]}`, w.Body.String())

	w = request(a, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusMethodNotAllowed, request(a, http.MethodPut, "/api/greeting", `{}`).Code)
	assert.Equal(t, http.StatusNotFound, request(a, http.MethodGet, "/api/unknown", "").Code)
}

func TestAssembledCORSExposesAlertHeaders(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/greetings", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	a.Router.Engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	exposed := strings.ToLower(w.Header().Get("Access-Control-Expose-Headers"))
	assert.Contains(t, exposed, "x-greetingapi-alert")
	assert.Contains(t, exposed, "x-greetingapi-params")
}

func TestChangeFeedReceivesWrites(t *testing.T) {
	a := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	a.Start(ctx)

	server := httptest.NewServer(a.Router.Engine)
	t.Cleanup(server.Close)

	conn, _, err := gorilla.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool { return a.Hub.Connected() == 1 }, 2*time.Second, 10*time.Millisecond)

	w := request(a, http.MethodPost, "/api/greeting", `{"text":"hello"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event utils.Event
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, "greeting_created", event.Event)
	assert.Equal(t, map[string]interface{}{"entity": "greeting", "id": float64(1)}, event.Data)

	w = request(a, http.MethodDelete, fmt.Sprintf("/api/greeting/%d", 1), "")
	require.Equal(t, http.StatusNoContent, w.Code)
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, "greeting_deleted", event.Event)
}

func TestSwaggerDocumentListsEveryRoute(t *testing.T) {
	a := newTestApp(t)

	w := request(a, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)

	doc := w.Body.String()
	for _, path := range []string{
		`"/api/greeting"`, `"/api/greeting/{id}"`, `"/api/greetings"`,
		`"/api/messages"`, `"/api/messages/{id}"`, `"/api/health"`,
	} {
		assert.Contains(t, doc, path)
	}
	assert.Contains(t, doc, "application/merge-patch+json")
}
