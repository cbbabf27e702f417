// Package site serves the prebuilt web bundle with a single-page fallback.
package site

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
)

const entryDocument = "index.html"

// Handler serves files from the bundle directory. Paths that do not match an
// existing file fall back to the entry document so client-side routing works.
type Handler struct {
	dir   string
	files http.Handler
}

// NewHandler creates a handler for the given bundle directory.
func NewHandler(dir string) *Handler {
	return &Handler{
		dir:   dir,
		files: http.FileServer(http.Dir(dir)),
	}
}

// Register attaches the fallback file server at the mux root. API routes must
// be registered first; the mux prefers their longer patterns.
func Register(_ context.Context, mux *http.ServeMux, dir string) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle("/", NewHandler(dir))
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Clean with a leading slash so escapes out of the bundle dir collapse.
	rel := filepath.Clean("/" + r.URL.Path)
	name := filepath.Join(h.dir, rel)

	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		h.files.ServeHTTP(w, r)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.dir, entryDocument))
}
