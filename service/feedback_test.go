package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
)

func TestFeedbackClient_Review(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ai-feedback" {
			t.Errorf("path = %q, want /ai-feedback", r.URL.Path)
		}
		var req struct {
			ImageURL string `json:"image_url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ImageURL != "https://example.com/fit.jpg" {
			t.Errorf("bad request payload: %v %q", err, req.ImageURL)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"feedback":           "great color balance",
			"coordination_score": 87.5,
			"letter_grade":       "A",
		})
	}))
	defer srv.Close()

	c := NewFeedbackClient(srv.URL)
	got, err := c.Review(context.Background(), "https://example.com/fit.jpg")
	if err != nil {
		t.Fatalf("Review() error = %v", err)
	}
	if got.Feedback != "great color balance" || got.CoordinationScore != 87.5 || got.LetterGrade != "A" {
		t.Errorf("Review() = %+v", got)
	}
}

func TestFeedbackClient_ReviewEmptyURL(t *testing.T) {
	c := NewFeedbackClient("http://unused")
	if _, err := c.Review(context.Background(), ""); err == nil {
		t.Error("Review(\"\") expected error")
	}
}

func TestFeedbackClient_Chat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stylist-chat" {
			t.Errorf("path = %q, want /stylist-chat", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{"reply": "try a maroon dupatta"})
	}))
	defer srv.Close()

	c := NewFeedbackClient(srv.URL)
	reply, err := c.Chat(context.Background(), "what goes with a black kurta?")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if reply != "try a maroon dupatta" {
		t.Errorf("Chat() = %q", reply)
	}
}

func TestFeedbackClient_BearerAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tkn" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		json.NewEncoder(w).Encode(map[string]string{"reply": "ok"})
	}))
	defer srv.Close()

	c := NewFeedbackClient(srv.URL, WithFeedbackAuth(&AuthConfig{Type: "bearer", Token: "tkn"}))
	if _, err := c.Chat(context.Background(), "hi"); err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
}

func TestFeedbackClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream model unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewFeedbackClient(srv.URL)
	if _, err := c.Review(context.Background(), "https://example.com/x.jpg"); err == nil {
		t.Error("Review() expected error on 502")
	}
}
