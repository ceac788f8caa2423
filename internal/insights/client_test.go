package insights

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(endpoint string) *Client {
	c := NewClient(endpoint, "test-key")
	c.delay = time.Millisecond
	return c
}

func TestGenerateRetriesOnRateLimit(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"text":"steady week"}`))
	}))
	defer srv.Close()

	text, err := testClient(srv.URL).Generate(context.Background(), "summarize")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if text != "steady week" {
		t.Errorf("got %q", text)
	}
	if calls != 3 {
		t.Errorf("got %d calls, want 3", calls)
	}
}

func TestGenerateGivesUpAfterRetries(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Generate(context.Background(), "summarize")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("got %v, want ErrUnavailable", err)
	}
	if calls != 4 {
		t.Errorf("got %d calls, want the initial attempt plus 3 retries", calls)
	}
}

func TestGenerateFailsFastOnServerError(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Generate(context.Background(), "summarize")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("got %v, want ErrUnavailable", err)
	}
	if calls != 1 {
		t.Errorf("got %d calls, want 1 (no retry on non-429)", calls)
	}
}

func TestGenerateWithoutEndpoint(t *testing.T) {
	_, err := NewClient("", "").Generate(context.Background(), "summarize")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("got %v, want ErrUnavailable", err)
	}
}
