package message

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"greeting-api/internal/app/crud"
	"greeting-api/internal/app/greeting"
	"greeting-api/internal/db/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	defaultText = "AAAAAAAAAA"
	updatedText = "BBBBBBBBBB"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	repo      Repository
	greetings greeting.Repository
	router    *gin.Engine
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := dbtest.Open(t, &greeting.Greeting{}, &Message{})
	repo := NewRepository(db)
	greetings := greeting.NewRepository(db)
	alerts := crud.Alerts{AppName: "greetingApi"}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	api := router.Group("/api")
	RegisterRoutes(api, NewHandler(NewService(repo, nil, nil, nil), alerts, nil))
	greeting.RegisterRoutes(api, greeting.NewHandler(greeting.NewService(greetings, nil, nil, nil), alerts, nil))

	return fixture{repo: repo, greetings: greetings, router: router}
}

func (f fixture) do(method, path, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f fixture) greeting(t *testing.T, text string) *greeting.Greeting {
	t.Helper()
	g := &greeting.Greeting{Text: &text}
	require.NoError(t, f.greetings.Save(context.Background(), g))
	return g
}

func (f fixture) create(t *testing.T, body string) Message {
	t.Helper()
	w := f.do(http.MethodPost, "/api/messages", gin.MIMEJSON, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var m Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	require.NotZero(t, m.ID)
	return m
}

func (f fixture) get(t *testing.T, id uint64) map[string]interface{} {
	t.Helper()
	w := f.do(http.MethodGet, fmt.Sprintf("/api/messages/%d", id), "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreateMessageKeepsTimestamp(t *testing.T) {
	f := setup(t)
	epoch := time.Unix(0, 0).UTC().Format(time.RFC3339)

	m := f.create(t, fmt.Sprintf(`{"text":%q,"timestamp":%q}`, defaultText, epoch))

	body := f.get(t, m.ID)
	assert.Equal(t, defaultText, body["text"])
	assert.Equal(t, "1970-01-01T00:00:00Z", body["timestamp"])
	assert.Nil(t, body["greeting"])
}

func TestCreateMessageWithExistingID(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodPost, "/api/messages", gin.MIMEJSON, `{"id":3,"text":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error.idexists", w.Header().Get("X-greetingApi-error"))
	assert.Equal(t, "message", w.Header().Get("X-greetingApi-params"))

	n, err := f.repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMessageReferencesGreeting(t *testing.T) {
	f := setup(t)
	g := f.greeting(t, "hello")

	m := f.create(t, fmt.Sprintf(`{"text":"hi","greeting":{"id":%d}}`, g.ID))

	stored, err := f.repo.FindByID(context.Background(), m.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.GreetingID)
	assert.Equal(t, g.ID, *stored.GreetingID)
	require.NotNil(t, stored.Greeting)
	assert.Equal(t, "hello", *stored.Greeting.Text)

	w := f.do(http.MethodGet, fmt.Sprintf("/api/greeting/%d", g.ID), "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var parent greeting.Greeting
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parent))
	require.Len(t, parent.Messages, 1)
	assert.Equal(t, m.ID, parent.Messages[0].ID)
}

func TestDeletingGreetingDetachesMessages(t *testing.T) {
	f := setup(t)
	g := f.greeting(t, "hello")
	m := f.create(t, fmt.Sprintf(`{"text":"hi","greeting":{"id":%d}}`, g.ID))

	w := f.do(http.MethodDelete, fmt.Sprintf("/api/greeting/%d", g.ID), "", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	body := f.get(t, m.ID)
	assert.Nil(t, body["greeting"])
	assert.Equal(t, "hi", body["text"])
}

func TestPatchMessage(t *testing.T) {
	f := setup(t)
	first := f.greeting(t, "first")
	second := f.greeting(t, "second")
	m := f.create(t, fmt.Sprintf(`{"text":%q,"timestamp":"1970-01-01T00:00:00Z","greeting":{"id":%d}}`, defaultText, first.ID))
	path := fmt.Sprintf("/api/messages/%d", m.ID)

	w := f.do(http.MethodPatch, path, crud.MergePatchJSON, fmt.Sprintf(`{"id":%d}`, m.ID))
	require.Equal(t, http.StatusOK, w.Code)
	body := f.get(t, m.ID)
	assert.Equal(t, defaultText, body["text"])
	assert.Equal(t, "1970-01-01T00:00:00Z", body["timestamp"])
	assert.EqualValues(t, first.ID, body["greeting"].(map[string]interface{})["id"])

	patch := fmt.Sprintf(`{"id":%d,"text":%q,"timestamp":"2020-01-02T03:04:05Z","greeting":{"id":%d}}`, m.ID, updatedText, second.ID)
	w = f.do(http.MethodPatch, path, gin.MIMEJSON, patch)
	require.Equal(t, http.StatusOK, w.Code)

	body = f.get(t, m.ID)
	assert.Equal(t, updatedText, body["text"])
	assert.Equal(t, "2020-01-02T03:04:05Z", body["timestamp"])
	assert.EqualValues(t, second.ID, body["greeting"].(map[string]interface{})["id"])
}

func TestReplaceMessage(t *testing.T) {
	f := setup(t)
	g := f.greeting(t, "hello")
	m := f.create(t, fmt.Sprintf(`{"text":%q,"greeting":{"id":%d}}`, defaultText, g.ID))

	w := f.do(http.MethodPut, fmt.Sprintf("/api/messages/%d", m.ID), gin.MIMEJSON, fmt.Sprintf(`{"id":%d,"text":%q}`, m.ID, updatedText))
	require.Equal(t, http.StatusOK, w.Code)

	body := f.get(t, m.ID)
	assert.Equal(t, updatedText, body["text"])
	assert.Nil(t, body["greeting"])

	w = f.do(http.MethodPut, "/api/messages/9999", gin.MIMEJSON, `{"id":9999,"text":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error.idnotfound", w.Header().Get("X-greetingApi-error"))
}

func TestMessageRoutes(t *testing.T) {
	f := setup(t)
	m := f.create(t, `{"text":"x"}`)

	assert.Equal(t, http.StatusMethodNotAllowed, f.do(http.MethodPut, "/api/messages", gin.MIMEJSON, `{}`).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, f.do(http.MethodPatch, "/api/messages", gin.MIMEJSON, `{}`).Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/messages/9999", "", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/messages/abc", "", "").Code)

	w := f.do(http.MethodGet, "/api/messages", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var all []Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 1)
	assert.Equal(t, m.ID, all[0].ID)

	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, fmt.Sprintf("/api/messages/%d", m.ID), "", "").Code)
	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, fmt.Sprintf("/api/messages/%d", m.ID), "", "").Code)
}

func TestMerge(t *testing.T) {
	text := "a"
	ts := time.Unix(0, 0).UTC()
	parent := &greeting.Greeting{ID: 4}
	existing := &Message{ID: 1, Text: &text, Timestamp: &ts, Greeting: parent}

	Merge(existing, &Message{ID: 1})
	assert.Equal(t, "a", *existing.Text)
	assert.Equal(t, ts, *existing.Timestamp)
	assert.Same(t, parent, existing.Greeting)

	other := &greeting.Greeting{ID: 5}
	Merge(existing, &Message{ID: 1, Greeting: other})
	assert.Same(t, other, existing.Greeting)
	assert.Equal(t, "a", *existing.Text)
}

func TestBeforeSaveDerivesForeignKey(t *testing.T) {
	m := &Message{Greeting: &greeting.Greeting{ID: 7}}
	require.NoError(t, m.BeforeSave(nil))
	require.NotNil(t, m.GreetingID)
	assert.EqualValues(t, 7, *m.GreetingID)

	m.Greeting = nil
	require.NoError(t, m.BeforeSave(nil))
	assert.Nil(t, m.GreetingID)
}

func TestWritesReturnStoredGreeting(t *testing.T) {
	f := setup(t)
	g := f.greeting(t, "hello")

	w := f.do(http.MethodPost, "/api/messages", gin.MIMEJSON, fmt.Sprintf(`{"text":"hi","greeting":{"id":%d}}`, g.ID))
	require.Equal(t, http.StatusCreated, w.Code)
	var created Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotNil(t, created.Greeting)
	assert.Equal(t, "hello", *created.Greeting.Text)

	other := f.create(t, `{"text":"loose"}`)
	path := fmt.Sprintf("/api/messages/%d", other.ID)

	w = f.do(http.MethodPatch, path, gin.MIMEJSON, fmt.Sprintf(`{"id":%d,"greeting":{"id":%d}}`, other.ID, g.ID))
	require.Equal(t, http.StatusOK, w.Code)

	got := f.do(http.MethodGet, path, "", "")
	require.Equal(t, http.StatusOK, got.Code)
	assert.JSONEq(t, got.Body.String(), w.Body.String())
	assert.Contains(t, w.Body.String(), `"text":"hello"`)

	w = f.do(http.MethodPut, path, gin.MIMEJSON, fmt.Sprintf(`{"id":%d,"text":"tied","greeting":{"id":%d,"text":"ignored"}}`, other.ID, g.ID))
	require.Equal(t, http.StatusOK, w.Code)
	got = f.do(http.MethodGet, path, "", "")
	assert.JSONEq(t, got.Body.String(), w.Body.String())
	assert.NotContains(t, w.Body.String(), "ignored")
}

func TestMissingGreetingReferenceIsRejected(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodPost, "/api/messages", gin.MIMEJSON, `{"text":"hi","greeting":{"id":4242}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error."+crud.KeyInvalidReference, w.Header().Get("X-greetingApi-error"))

	n, err := f.repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	m := f.create(t, `{"text":"hi"}`)
	w = f.do(http.MethodPut, fmt.Sprintf("/api/messages/%d", m.ID), gin.MIMEJSON, fmt.Sprintf(`{"id":%d,"greeting":{"id":4242}}`, m.ID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error."+crud.KeyInvalidReference, w.Header().Get("X-greetingApi-error"))

	body := f.get(t, m.ID)
	assert.Equal(t, "hi", body["text"])
}
