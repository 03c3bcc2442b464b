package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zizouhuweidi/trivia/internal/ratelimit"
	"github.com/zizouhuweidi/trivia/internal/service"
	ws "github.com/zizouhuweidi/trivia/internal/websocket"
)

func TestQuestionEventsFeed(t *testing.T) {
	store := seedStore()
	hub := ws.NewHub()
	go hub.Run()
	defer hub.Stop()

	e := NewServer(Options{
		Questions:  service.NewQuestionService(store.Questions(), store.Categories(), service.WithEvents(hub)),
		Categories: service.NewCategoryService(store.Categories()),
		Hub:        hub,
	})
	srv := httptest.NewServer(e)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Post(srv.URL+"/questions", "application/json",
		strings.NewReader(`{"question":"Largest ocean?","answer":"Pacific","difficulty":2,"category":3}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/questions/25", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var created ws.Message
	require.NoError(t, conn.ReadJSON(&created))
	assert.Equal(t, ws.EventQuestionCreated, created.Type)
	assert.JSONEq(t, `{"id":25,"question":"Largest ocean?","answer":"Pacific","difficulty":2,"category":3}`, string(created.Payload))

	var deleted ws.Message
	require.NoError(t, conn.ReadJSON(&deleted))
	assert.Equal(t, ws.EventQuestionDeleted, deleted.Type)
	assert.JSONEq(t, `{"id":25}`, string(deleted.Payload))
}

func TestQuizRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := seedStore()
	e := NewServer(Options{
		Questions:  service.NewQuestionService(store.Questions(), store.Categories()),
		Categories: service.NewCategoryService(store.Categories()),
		QuizLimit:  ratelimit.NewLimiter(client, "quiz", 2, time.Minute),
	})

	body := `{"previous_questions":[],"quiz_category":{"id":1,"type":"Science"}}`
	for i := 0; i < 2; i++ {
		rec := do(e, http.MethodPost, "/quizzes", body)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp QuizResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Question)
		assert.Equal(t, 1, resp.Question.Category)
	}

	rec := do(e, http.MethodPost, "/quizzes", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":429,"message":"too many requests"}`, rec.Body.String())

	rec = do(e, http.MethodGet, "/questions", "")
	assert.Equal(t, http.StatusOK, rec.Code, "only quizzes are limited")
}
