// Package services contains clients for external music data APIs.
//
// [SpotifyClient] implements both [ArtistSource] and [TrackSource] against the
// Spotify Web API using the client credentials flow; requests are rate-limited
// with a shared [rate.Limiter].
package services
