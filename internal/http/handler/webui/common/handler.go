package common

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed assets/*
var assetsFS embed.FS

// Handler serves the stylesheet and the script shared by every page
type Handler struct {
	files http.Handler
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	h.files.ServeHTTP(w, r)
}

func NewHandler() *Handler {
	assets, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(err)
	}

	return &Handler{files: http.FileServerFS(assets)}
}

var _ http.Handler = &Handler{}
