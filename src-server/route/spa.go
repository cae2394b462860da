package route

import (
	"bytes"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// SPA serves the static web client from dir, falling back to index.html for
// unknown paths. With no dir, or for non-GET requests, anything that reaches
// it is an unmatched route.
func SPA(muxer *http.ServeMux, dir string) {
	notFound := func(w http.ResponseWriter) {
		writeError(w, http.StatusNotFound, "Not Found")
	}

	if dir == "" {
		muxer.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) { notFound(w) })
		return
	}

	files := http.FS(os.DirFS(dir))
	indexPath := filepath.Join(dir, "index.html")
	indexFileStat, err := os.Stat(indexPath)
	if err != nil {
		slog.Error("Can't get index.html stat", "err", err)
		muxer.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) { notFound(w) })
		return
	}
	// read once, each request gets its own reader
	indexBytes, err := os.ReadFile(indexPath)
	if err != nil {
		slog.Error("Can't read index.html", "err", err)
		muxer.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) { notFound(w) })
		return
	}
	serveIndex := func(w http.ResponseWriter, r *http.Request) {
		http.ServeContent(w, r, indexFileStat.Name(), indexFileStat.ModTime(), bytes.NewReader(indexBytes))
	}

	muxer.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			notFound(w)
			return
		}

		filepath := filepath.Clean(r.URL.Path[1:])
		if filepath == "." || filepath == "" {
			filepath = "index.html"
		}

		// serve index.html if filepath not found
		file, err := files.Open(filepath)
		if err != nil {
			serveIndex(w, r)
			return
		}
		defer file.Close()

		// serve index.html if can't get file stat, or it's a directory
		stat, err := file.Stat()
		if err != nil || stat.IsDir() {
			serveIndex(w, r)
			return
		}

		http.ServeContent(w, r, stat.Name(), stat.ModTime(), file)
	})
}
