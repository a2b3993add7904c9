package omdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseYear(t *testing.T) {
	tests := []struct {
		raw      string
		expected *int
	}{
		{"2014", intPtr(2014)},
		{"1999", intPtr(1999)},
		{"2001–2003", intPtr(2001)},
		{"2015–", intPtr(2015)},
		{"N/A", nil},
		{"", nil},
		{"soon", nil},
	}

	for _, tt := range tests {
		result := ParseYear(tt.raw)
		if tt.expected == nil {
			assert.Nil(t, result, "raw=%q", tt.raw)
		} else {
			assert.NotNil(t, result, "raw=%q", tt.raw)
			assert.Equal(t, *tt.expected, *result, "raw=%q", tt.raw)
		}
	}
}

func intPtr(i int) *int { return &i }

func TestNormalize(t *testing.T) {
	assert.Nil(t, normalize(""))
	assert.Nil(t, normalize("N/A"))

	value := normalize("Christopher Nolan")
	assert.NotNil(t, value)
	assert.Equal(t, "Christopher Nolan", *value)
}

func TestFetchByTitle_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Interstellar", r.URL.Query().Get("t"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"Response": "True",
			"Title": "Interstellar",
			"Year": "2014",
			"Plot": "A team of explorers travel through a wormhole.",
			"Director": "Christopher Nolan",
			"Poster": "https://example.com/poster.jpg",
			"Genre": "Adventure, Drama, Sci-Fi",
			"imdbID": "tt0816692"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second)
	details, err := client.FetchByTitle(context.Background(), "Interstellar")

	assert.NoError(t, err)
	assert.Equal(t, "Interstellar", details.Title)
	assert.Equal(t, "tt0816692", details.ImdbID)
	assert.Equal(t, 2014, *details.ReleaseYear)
	assert.Equal(t, "Christopher Nolan", *details.Director)
}

func TestFetchByTitle_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Response": "False", "Error": "Movie not found!"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second)
	details, err := client.FetchByTitle(context.Background(), "No Such Movie")

	assert.Error(t, err)
	assert.Equal(t, ErrNotFound, err)
	assert.Nil(t, details)
}

func TestFetchByTitle_SentinelFieldsBecomeNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"Response": "True",
			"Title": "Obscure Short",
			"Year": "N/A",
			"Plot": "N/A",
			"Director": "N/A",
			"Poster": "N/A",
			"Genre": "N/A",
			"imdbID": "tt9999999"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second)
	details, err := client.FetchByTitle(context.Background(), "Obscure Short")

	assert.NoError(t, err)
	assert.Equal(t, "Obscure Short", details.Title)
	assert.Nil(t, details.Plot)
	assert.Nil(t, details.Poster)
	assert.Nil(t, details.ReleaseYear)
	assert.Nil(t, details.Genre)
	assert.Nil(t, details.Director)
}

func TestFetchByTitle_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second)
	details, err := client.FetchByTitle(context.Background(), "Interstellar")

	assert.Error(t, err)
	assert.Nil(t, details)
}

func TestFetchByTitle_MissingAPIKey(t *testing.T) {
	client := NewClient("http://example.com", "", 5*time.Second)
	details, err := client.FetchByTitle(context.Background(), "Interstellar")

	assert.Error(t, err)
	assert.Nil(t, details)
}
