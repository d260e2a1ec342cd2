// Spotify API implementation of [ArtistSource] and [TrackSource]
//
// Response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/desertthunder/festify/internal/models"
	"github.com/desertthunder/festify/internal/shared"
)

const (
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"

	// Spotify caps most collection endpoints at 50 items.
	maxPageSize = 50
)

// SpotifyArtist represents a Spotify artist.
type SpotifyArtist struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Genres []string `json:"genres"`
	URI    string   `json:"uri"`
}

// SpotifyAlbum represents a Spotify album.
type SpotifyAlbum struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ReleaseDate string `json:"release_date"`
	AlbumType   string `json:"album_type"`
	URI         string `json:"uri"`
}

type trackAlbum struct {
	Name string `json:"name"`
}

// SpotifyTrack represents a Spotify track.
type SpotifyTrack struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Album      trackAlbum `json:"album"`
	Popularity int        `json:"popularity"`
	URI        string     `json:"uri"`
}

// SpotifyClient talks to the Spotify Web API using an app token from the
// client credentials flow. Implements [ArtistSource] and [TrackSource].
type SpotifyClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewSpotifyClient creates a Spotify client from app credentials.
//
// The returned client owns token refresh; callers never see the token. The
// limiter bounds outbound request rate across all callers sharing the client.
func NewSpotifyClient(ctx context.Context, cfg shared.SpotifyConfig, rps float64) (*SpotifyClient, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("%w: spotify client_id and client_secret required", shared.ErrMissingCredentials)
	}
	if rps <= 0 {
		rps = 10
	}

	conf := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     spotifyTokenURL,
	}

	return &SpotifyClient{
		httpClient: conf.Client(ctx),
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}, nil
}

// doRequest performs a rate-limited GET against the Spotify API and decodes
// the JSON response into result.
func (s *SpotifyClient) doRequest(ctx context.Context, endpoint string, result any) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, spotifyBaseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: spotify status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// SearchArtist returns the best match for the given artist name.
func (s *SpotifyClient) SearchArtist(ctx context.Context, name string) (*models.Artist, error) {
	endpoint := fmt.Sprintf("/search?type=artist&limit=1&q=%s", url.QueryEscape(name))

	var response struct {
		Artists struct {
			Items []SpotifyArtist `json:"items"`
		} `json:"artists"`
	}
	if err := s.doRequest(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	if len(response.Artists.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrArtistNotFound, name)
	}

	match := response.Artists.Items[0]
	return &models.Artist{ID: match.ID, Name: match.Name, Genres: match.Genres}, nil
}

// TopTracks returns the artist's most popular tracks.
func (s *SpotifyClient) TopTracks(ctx context.Context, artist models.Artist, limit int) ([]models.Track, error) {
	endpoint := fmt.Sprintf("/artists/%s/top-tracks?market=US", artist.ID)

	var response struct {
		Tracks []SpotifyTrack `json:"tracks"`
	}
	if err := s.doRequest(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	return convertTracks(response.Tracks, limit), nil
}

// NewTracks returns tracks from the artist's newest releases, walking the
// most recent albums and singles until limit tracks are collected.
func (s *SpotifyClient) NewTracks(ctx context.Context, artist models.Artist, limit int) ([]models.Track, error) {
	endpoint := fmt.Sprintf("/artists/%s/albums?include_groups=album,single&limit=%d", artist.ID, maxPageSize)

	var albums struct {
		Items []SpotifyAlbum `json:"items"`
	}
	if err := s.doRequest(ctx, endpoint, &albums); err != nil {
		return nil, err
	}

	// Release dates are ISO formatted, so newest-first is a string sort.
	sort.SliceStable(albums.Items, func(i, j int) bool {
		return albums.Items[i].ReleaseDate > albums.Items[j].ReleaseDate
	})

	var tracks []models.Track
	for _, album := range albums.Items {
		if len(tracks) >= limit {
			break
		}

		var albumTracks struct {
			Items []SpotifyTrack `json:"items"`
		}
		if err := s.doRequest(ctx, fmt.Sprintf("/albums/%s/tracks?limit=%d", album.ID, maxPageSize), &albumTracks); err != nil {
			return nil, err
		}

		for _, t := range albumTracks.Items {
			if len(tracks) >= limit {
				break
			}
			tracks = append(tracks, models.Track{ID: t.ID, Name: t.Name, Album: album.Name, URI: t.URI})
		}
	}

	return tracks, nil
}

// SetlistTracks returns tracks seen in the artist's recent live sets,
// approximated with a live-tagged track search.
func (s *SpotifyClient) SetlistTracks(ctx context.Context, artist models.Artist, limit int) ([]models.Track, error) {
	query := fmt.Sprintf("artist:%q tag:live", artist.Name)
	endpoint := fmt.Sprintf("/search?type=track&limit=%d&q=%s", maxPageSize, url.QueryEscape(query))

	var response struct {
		Tracks struct {
			Items []SpotifyTrack `json:"items"`
		} `json:"tracks"`
	}
	if err := s.doRequest(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	// Most recognizable first.
	sort.SliceStable(response.Tracks.Items, func(i, j int) bool {
		return response.Tracks.Items[i].Popularity > response.Tracks.Items[j].Popularity
	})

	return convertTracks(response.Tracks.Items, limit), nil
}

// convertTracks maps API tracks into domain tracks, truncating at limit.
func convertTracks(in []SpotifyTrack, limit int) []models.Track {
	if limit > 0 && len(in) > limit {
		in = in[:limit]
	}
	out := make([]models.Track, 0, len(in))
	for _, t := range in {
		out = append(out, models.Track{ID: t.ID, Name: t.Name, Album: t.Album.Name, URI: t.URI})
	}
	return out
}
