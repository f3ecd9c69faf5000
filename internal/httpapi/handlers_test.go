package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"beandex/internal/engine"
	"beandex/internal/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := engine.NewStore(nil,
		engine.WithClock(func() time.Time {
			return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		}),
		engine.WithLocation(time.UTC),
		engine.WithRand(func() float64 { return 0.99 }),
	)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(NewRouter(store, logger))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d, want 200", resp.StatusCode)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["status"] != "ok" {
		t.Fatalf("body=%v", body)
	}
}

func TestAddItemCreated(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/items/", map[string]any{
		"name":                 "Peanut",
		"animal_type":          "elephant",
		"estimated_value_low":  900,
		"estimated_value_high": 1200,
		"tier":                 5,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status=%d, want 201", resp.StatusCode)
	}
	var item storage.Item
	decodeBody(t, resp, &item)
	if item.ID == "" || item.Name != "Peanut" || item.Tier != 5 {
		t.Fatalf("item=%+v", item)
	}
}

func TestAddItemRejectsBadBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/items/", "application/json", bytes.NewReader([]byte("{nope")))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", resp.StatusCode)
	}

	resp = postJSON(t, srv.URL+"/api/items/", map[string]any{"name": "  "})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("blank name status=%d, want 400", resp.StatusCode)
	}
}

func TestRemoveItem(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/items/", map[string]any{"name": "Cubbie", "tier": 1})
	var item storage.Item
	decodeBody(t, resp, &item)

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/items/"+item.ID, nil)
	del, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE: %v", err)
	}
	del.Body.Close()
	if del.StatusCode != http.StatusNoContent {
		t.Fatalf("status=%d, want 204", del.StatusCode)
	}

	req, _ = http.NewRequest(http.MethodDelete, srv.URL+"/api/items/"+item.ID, nil)
	del, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("second DELETE: %v", err)
	}
	del.Body.Close()
	if del.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete status=%d, want 404", del.StatusCode)
	}
}

func TestStatusReflectsCollection(t *testing.T) {
	srv := newTestServer(t)

	postJSON(t, srv.URL+"/api/items/", map[string]any{
		"name":                 "Peanut",
		"estimated_value_low":  900,
		"estimated_value_high": 1200,
		"tier":                 5,
	}).Body.Close()

	resp, err := http.Get(srv.URL + "/api/status")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	var status statusResponse
	decodeBody(t, resp, &status)

	if status.CollectionSize != 1 {
		t.Fatalf("collection size=%d, want 1", status.CollectionSize)
	}
	if status.Streak != 1 {
		t.Fatalf("streak=%d, want 1", status.Streak)
	}
	if status.TotalValueHigh != 1200 {
		t.Fatalf("total high=%v, want 1200", status.TotalValueHigh)
	}
	if status.Achievements == 0 {
		t.Fatalf("expected unlocked achievements in status")
	}
}

func TestChallengeEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/challenge")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	var ch engine.DailyChallenge
	decodeBody(t, resp, &ch)
	if ch.ID != "daily-2025-03-10" {
		t.Fatalf("challenge id=%q, want daily-2025-03-10", ch.ID)
	}
}

func TestLoginBonusOncePerDay(t *testing.T) {
	srv := newTestServer(t)

	var first struct {
		Awarded bool               `json:"awarded"`
		Bonus   *engine.LoginBonus `json:"bonus"`
	}
	decodeBody(t, postJSON(t, srv.URL+"/api/login-bonus", nil), &first)
	if !first.Awarded || first.Bonus == nil || first.Bonus.XP != 10 {
		t.Fatalf("first claim=%+v", first)
	}

	var second struct {
		Awarded bool `json:"awarded"`
	}
	decodeBody(t, postJSON(t, srv.URL+"/api/login-bonus", nil), &second)
	if second.Awarded {
		t.Fatalf("second claim on the same day must not award")
	}
}

func TestProfileUpdate(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/profile", map[string]any{
		"user_name": "Robin",
		"onboarded": true,
	})
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["user_name"] != "Robin" {
		t.Fatalf("body=%v", body)
	}

	var status statusResponse
	decodeBody(t, mustGet(t, srv.URL+"/api/status"), &status)
	if status.UserName != "Robin" || !status.Onboarded {
		t.Fatalf("status=%+v", status)
	}
}

func TestNotificationsClear(t *testing.T) {
	srv := newTestServer(t)

	postJSON(t, srv.URL+"/api/items/", map[string]any{"name": "Cubbie", "tier": 1}).Body.Close()

	var pending engine.Notifications
	decodeBody(t, mustGet(t, srv.URL+"/api/notifications"), &pending)
	if pending.Empty() {
		t.Fatalf("expected pending notifications after add")
	}

	resp := postJSON(t, srv.URL+"/api/notifications/clear", map[string]string{"kind": "bogus"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown kind status=%d, want 400", resp.StatusCode)
	}

	resp = postJSON(t, srv.URL+"/api/notifications/clear", map[string]string{"kind": "all"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("clear all status=%d, want 204", resp.StatusCode)
	}

	pending = engine.Notifications{}
	decodeBody(t, mustGet(t, srv.URL+"/api/notifications"), &pending)
	if !pending.Empty() {
		t.Fatalf("notifications survived clear: %+v", pending)
	}
}

func mustGet(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	return resp
}
