package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"

	"caddie/internal/config"
	"caddie/internal/engine"
	"caddie/internal/observability"
	"caddie/internal/session"
)

var (
	metricsOnce sync.Once
	testMetrics *observability.Metrics
)

func newTestServer(t *testing.T) (*httptest.Server, session.Store) {
	t.Helper()
	metricsOnce.Do(func() {
		testMetrics = observability.NewMetrics("caddie_httpapi_test")
	})
	store := session.NewInMemoryStore()
	eng := engine.New(store, nil, testMetrics, 40)
	srv := New(config.Config{AllowAnyOrigin: true}, eng, store, testMetrics)
	return httptest.NewServer(srv.Router()), store
}

func postChat(t *testing.T, url string, body map[string]string) (*http.Response, map[string]any) {
	t.Helper()
	payload, _ := json.Marshal(body)
	res, err := http.Post(url+"/v1/chat", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST /v1/chat: %v", err)
	}
	defer res.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return res, out
}

func TestChatAssignsSessionID(t *testing.T) {
	ts, _ := newTestServer(t)
	defer ts.Close()

	res, out := postChat(t, ts.URL, map[string]string{"message": "recommend a good cigar"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	id, _ := out["session_id"].(string)
	if id == "" {
		t.Fatal("no session_id assigned")
	}
	if out["intent"] != "recommendation_request" {
		t.Fatalf("intent = %v", out["intent"])
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	ts, _ := newTestServer(t)
	defer ts.Close()

	res, out := postChat(t, ts.URL, map[string]string{"message": "  "})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if out["code"] != "missing_message" {
		t.Fatalf("code = %v", out["code"])
	}
}

func TestChatKeepsSessionAcrossTurns(t *testing.T) {
	ts, store := newTestServer(t)
	defer ts.Close()

	_, out := postChat(t, ts.URL, map[string]string{"message": "recommend a full bodied cigar"})
	id := out["session_id"].(string)

	_, out = postChat(t, ts.URL, map[string]string{"session_id": id, "message": "give me mor robust optins"})
	if out["intent"] != "more_request" || out["subject"] != "cigar" {
		t.Fatalf("second turn = %v", out)
	}

	sess, err := store.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(sess.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(sess.History))
	}
}

func TestDebugSessionEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)
	defer ts.Close()

	_, out := postChat(t, ts.URL, map[string]string{"message": "tell me about bourbon"})
	id := out["session_id"].(string)

	res, err := http.Get(ts.URL + "/v1/debug/session/" + id)
	if err != nil {
		t.Fatalf("GET debug: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	var sess session.Session
	if err := json.NewDecoder(res.Body).Decode(&sess); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sess.ID != id || len(sess.History) != 1 {
		t.Fatalf("session = %+v", sess)
	}
}

func TestHealthz(t *testing.T) {
	ts, _ := newTestServer(t)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
}

func TestChatWebSocket(t *testing.T) {
	ts, _ := newTestServer(t)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/v1/chat/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(map[string]string{"message": "recommend a good bourbon"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out map[string]any
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out["intent"] != "recommendation_request" || out["subject"] != "bourbon" {
		t.Fatalf("resolution = %v", out)
	}
}
