package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"
)

var (
	port = flag.Int("port", 8080, "listen port")
	root = flag.String("dir", "./static", "directory to serve")
)

// mimeTypes maps the file extensions the site ships to content types.
// Unlisted extensions are served as octet-stream.
var mimeTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "text/javascript; charset=utf-8",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".txt":  "text/plain; charset=utf-8",
}

// staticHandler serves files under root. No dynamic routes: "/" maps to
// index.html, a missing file is 404, any other read failure is 500 with
// the underlying error logged.
func staticHandler(root string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean(r.URL.Path)
		if name == "/" || name == "." {
			name = "/index.html"
		}
		full := filepath.Join(root, filepath.FromSlash(name))

		data, err := os.ReadFile(full)
		if err != nil {
			if os.IsNotExist(err) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			log.Printf("read %s: %v", full, err)
			http.Error(w, "server error", http.StatusInternalServerError)
			return
		}

		ctype, ok := mimeTypes[filepath.Ext(full)]
		if !ok {
			ctype = "application/octet-stream"
		}
		w.Header().Set("Content-Type", ctype)
		w.Write(data)
	}
}

func main() {
	flag.Parse()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           staticHandler(*root),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("serving %s on http://localhost:%d", *root, *port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
