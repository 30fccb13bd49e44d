package scorer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientSimilarity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/similarity" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("word1"); got != "cat" {
			t.Errorf("word1 = %q, want cat", got)
		}
		if got := r.URL.Query().Get("word2"); got != "kitten" {
			t.Errorf("word2 = %q, want kitten", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"similarity": 0.42}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	similarity, err := client.Similarity(context.Background(), "cat", "kitten")
	if err != nil {
		t.Fatalf("Similarity() error: %v", err)
	}
	if similarity != 0.42 {
		t.Errorf("similarity = %v, want 0.42", similarity)
	}
}

func TestClientSimilarityServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Similarity(context.Background(), "cat", "kitten")
	if err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestClientSimilarityBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Similarity(context.Background(), "cat", "kitten")
	if err == nil {
		t.Fatal("expected error on malformed response")
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		name       string
		similarity float64
		want       int
	}{
		{name: "truncates not rounds", similarity: 0.19, want: 1},
		{name: "just above threshold", similarity: 0.21, want: 2},
		{name: "below threshold", similarity: 0.14, want: 1},
		{name: "zero", similarity: 0, want: 0},
		{name: "negative truncates toward zero", similarity: -0.15, want: -1},
		{name: "full similarity", similarity: 1.0, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantize(tt.similarity); got != tt.want {
				t.Errorf("Quantize(%v) = %d, want %d", tt.similarity, got, tt.want)
			}
		})
	}
}
