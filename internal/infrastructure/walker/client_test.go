package walker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestClient_LoginUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/walker/login_user" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("invalid json body: %v", err)
		}
		if len(body) != 2 || body["email"] != "alice@news.com" || body["password"] != "secret" {
			t.Errorf("unexpected body: %v", body)
		}
		_, _ = w.Write([]byte(`{"reports":[{"success":true,"user":{"name":"Alice","email":"alice@news.com","role":"reader","created_at":"2024-01-01"}}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", nil, zerolog.Nop())
	reply, err := client.LoginUser(context.Background(), "alice@news.com", "secret")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if len(reply.Reports) != 1 || !reply.Reports[0].Success {
		t.Fatalf("unexpected reply: %+v", reply)
	}
	u := reply.Reports[0].User
	if u == nil || u.Name != "Alice" || u.Role != "reader" || u.CreatedAt != "2024-01-01" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestClient_LoginUser_ErrorStatusStillDecoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"reports":[{"success":false,"message":"Invalid credentials"}]}`))
	}))
	defer srv.Close()

	reply, err := NewClient(srv.URL, nil, zerolog.Nop()).LoginUser(context.Background(), "a@news.com", "x")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if reply.Reports[0].Success || reply.Reports[0].Message != "Invalid credentials" {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}

func TestClient_LoginUser_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, nil, zerolog.Nop()).LoginUser(context.Background(), "a@news.com", "x"); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, nil, zerolog.Nop())
	if _, err := client.LoginUser(context.Background(), "a@news.com", "x"); err == nil {
		t.Fatalf("expected transport error")
	}
	if err := client.Ping(context.Background()); err == nil {
		t.Fatalf("expected ping error")
	}
}

func TestClient_GetAllUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/walker/get_all_users" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["admin_email"] != "root@news.com" {
			t.Errorf("unexpected body: %v", body)
		}
		_, _ = w.Write([]byte(`{"success":true,"users":[{"name":"Alice","email":"alice@news.com","role":"reader","is_active":true}]}`))
	}))
	defer srv.Close()

	reply, err := NewClient(srv.URL, nil, zerolog.Nop()).GetAllUsers(context.Background(), "root@news.com")
	if err != nil {
		t.Fatalf("GetAllUsers: %v", err)
	}
	if !reply.Success || len(reply.Users) != 1 || !reply.Users[0].IsActive {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}

func TestClient_Ping(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	if err := NewClient(srv.URL, nil, zerolog.Nop()).Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
