package server

import (
	"net/http"

	"github.com/desertthunder/festify/internal/web"
)

// Static serves the embedded fixed assets (stylesheet). Implements [Handler]
// so it registers through [Router.Handler] with its own route set.
type Static struct {
	files http.Handler
}

// NewStatic creates the static asset handler over the embedded files.
func NewStatic() *Static {
	return &Static{files: http.FileServerFS(web.StaticFiles())}
}

// ServeHTTP implements [http.Handler].
func (s *Static) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.files.ServeHTTP(w, r)
}

// Routes implements [Handler].
func (s *Static) Routes() []string {
	return []string{"/static/"}
}
