package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Request errors
	ErrInvalidQuery     = fmt.Errorf("invalid query parameters")
	ErrFestivalNotFound = fmt.Errorf("festival not found")
	ErrNoSession        = fmt.Errorf("no session data")
	ErrUnknownTrackType = fmt.Errorf("unknown track type")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrArtistNotFound     = fmt.Errorf("artist not found")
	ErrTrackNotFound      = fmt.Errorf("track not found")
)
