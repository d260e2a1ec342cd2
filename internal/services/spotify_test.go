package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"golang.org/x/time/rate"

	"github.com/desertthunder/festify/internal/models"
	"github.com/desertthunder/festify/internal/shared"
	festtest "github.com/desertthunder/festify/internal/testing"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

// testClient builds a SpotifyClient whose transport serves a canned response.
func testClient(resp *http.Response, err error) *SpotifyClient {
	return &SpotifyClient{
		httpClient: &http.Client{Transport: festtest.NewMockRoundTripper(resp, err)},
		limiter:    rate.NewLimiter(rate.Inf, 1),
	}
}

func TestNewSpotifyClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Credentials", func(t *testing.T) {
		_, err := NewSpotifyClient(ctx, shared.SpotifyConfig{}, 10)
		if !errors.Is(err, shared.ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("With Credentials", func(t *testing.T) {
		client, err := NewSpotifyClient(ctx, shared.SpotifyConfig{ClientID: "id", ClientSecret: "secret"}, 10)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if client == nil {
			t.Fatal("expected client to be created")
		}
	})
}

func TestSearchArtist(t *testing.T) {
	ctx := context.Background()

	t.Run("Best Match", func(t *testing.T) {
		client := testClient(jsonResponse(200, `{"artists":{"items":[{"id":"a1","name":"Alpha","genres":["pop"]}]}}`), nil)

		artist, err := client.SearchArtist(ctx, "Alpha")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if artist.ID != "a1" || artist.Name != "Alpha" || len(artist.Genres) != 1 {
			t.Errorf("unexpected artist: %+v", artist)
		}
	})

	t.Run("No Match", func(t *testing.T) {
		client := testClient(jsonResponse(200, `{"artists":{"items":[]}}`), nil)
		_, err := client.SearchArtist(ctx, "Nobody")
		if !errors.Is(err, shared.ErrArtistNotFound) {
			t.Errorf("expected ErrArtistNotFound, got %v", err)
		}
	})

	t.Run("API Error Status", func(t *testing.T) {
		client := testClient(jsonResponse(429, `{}`), nil)
		_, err := client.SearchArtist(ctx, "Alpha")
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})
}

func TestTopTracks(t *testing.T) {
	ctx := context.Background()
	client := testClient(jsonResponse(200, `{"tracks":[
		{"id":"t1","name":"One","album":{"name":"LP"}},
		{"id":"t2","name":"Two","album":{"name":"LP"}},
		{"id":"t3","name":"Three","album":{"name":"LP"}}
	]}`), nil)

	tracks, err := client.TopTracks(ctx, models.Artist{ID: "a1"}, 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("expected limit of 2 tracks, got %d", len(tracks))
	}
	if tracks[0].ID != "t1" || tracks[0].Album != "LP" {
		t.Errorf("unexpected track: %+v", tracks[0])
	}
}

func TestSetlistTracks(t *testing.T) {
	ctx := context.Background()
	client := testClient(jsonResponse(200, `{"tracks":{"items":[
		{"id":"t1","name":"Quiet One","popularity":10},
		{"id":"t2","name":"Big One","popularity":90}
	]}}`), nil)

	tracks, err := client.SetlistTracks(ctx, models.Artist{ID: "a1", Name: "Alpha"}, 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(tracks))
	}
	if tracks[0].ID != "t2" {
		t.Errorf("expected most popular first, got %s", tracks[0].ID)
	}
}

func TestConvertTracks(t *testing.T) {
	in := []SpotifyTrack{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}}

	t.Run("Truncates At Limit", func(t *testing.T) {
		if got := convertTracks(in, 2); len(got) != 2 {
			t.Errorf("expected 2 tracks, got %d", len(got))
		}
	})

	t.Run("Zero Limit Keeps All", func(t *testing.T) {
		if got := convertTracks(in, 0); len(got) != 3 {
			t.Errorf("expected 3 tracks, got %d", len(got))
		}
	})
}
